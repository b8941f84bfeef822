package lvconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	set, dups, err := Load(Sources{})
	require.NoError(t, err)
	assert.Empty(t, dups)
	assert.Equal(t, MustBuild().Fingerprint(), set.Fingerprint())
}

func TestLoadHeaderThenOverrides(t *testing.T) {
	dir := t.TempDir()
	overrides := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(overrides, []byte("widgets:\n  list: true\ncolor:\n  swap16: true\n"), 0o644))

	set, dups, err := Load(Sources{Header: "testdata/esp32_st7789.h", Overrides: overrides})
	require.NoError(t, err)
	assert.Len(t, dups, 6)
	assert.True(t, set.WidgetEnabled(WidgetList))
	assert.True(t, set.WidgetEnabled(WidgetCanvas))
	assert.True(t, set.Config().Color.Swap16)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Load(Sources{Header: filepath.Join(dir, "missing.h")})
	assert.Error(t, err)

	_, _, err = Load(Sources{Overrides: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("fonts:\n  default: montserrat_40\n"), 0o644))
	_, _, err = Load(Sources{Overrides: bad})
	assert.ErrorIs(t, err, ErrFontDisabled)
}
