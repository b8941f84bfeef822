package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"

	"github.com/rook-computer/lvconf/internal/lvconf"
)

func TestRegistryLoadsEnabledFonts(t *testing.T) {
	set := lvconf.MustBuild()
	reg, err := NewRegistry(set, nil, nil)
	require.NoError(t, err)
	defer reg.Close()

	assert.Equal(t, []lvconf.FontID{lvconf.Montserrat(14), lvconf.Montserrat(28)}, reg.Enabled())
	assert.Equal(t, lvconf.Montserrat(14), reg.DefaultID())
	assert.Equal(t, lvconf.Montserrat(28), reg.Secondary())
	require.NotNil(t, reg.Default())

	small, err := reg.LineHeight(lvconf.Montserrat(14))
	require.NoError(t, err)
	large, err := reg.LineHeight(lvconf.Montserrat(28))
	require.NoError(t, err)
	assert.Greater(t, large, small)
	assert.InDelta(t, 14, small, 6)

	width := font.MeasureString(reg.Default(), "lv_conf").Ceil()
	assert.Greater(t, width, 0)
}

func TestRegistryRejectsDisabledAndUnknown(t *testing.T) {
	reg, err := NewRegistry(lvconf.MustBuild(), nil, nil)
	require.NoError(t, err)
	defer reg.Close()

	_, err = reg.Face(lvconf.Montserrat(20))
	assert.ErrorIs(t, err, lvconf.ErrFontDisabled)

	_, err = reg.Face(lvconf.NoFont)
	assert.ErrorIs(t, err, lvconf.ErrUnknownFont)
}

func TestRegistrySingleFont(t *testing.T) {
	cfg := lvconf.Default().EnableFonts(false, lvconf.Montserrat(28))
	set, err := lvconf.BuildFrom(cfg)
	require.NoError(t, err)

	reg, err := NewRegistry(set, nil, nil)
	require.NoError(t, err)
	defer reg.Close()

	assert.Equal(t, reg.DefaultID(), reg.Secondary())
}

func TestRegistryRejectsBadData(t *testing.T) {
	_, err := NewRegistry(lvconf.MustBuild(), []byte("not a font"), nil)
	assert.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	reg, err := NewRegistry(lvconf.MustBuild(), nil, nil)
	require.NoError(t, err)
	assert.NoError(t, reg.Close())
	assert.NoError(t, reg.Close())
}
