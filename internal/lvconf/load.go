package lvconf

import (
	"fmt"
	"os"
)

// Sources names the optional inputs a Set is built from. With both empty
// the result equals Build().
type Sources struct {
	// Header is an lv_conf.h to start from instead of Default().
	Header string
	// Overrides is a YAML file applied on top of the header or defaults.
	Overrides string
}

// Load builds a Set from src. Duplicate header definitions are returned
// for the caller to report.
func Load(src Sources) (*Set, []string, error) {
	cfg := Default()
	var duplicates []string

	if src.Header != "" {
		f, err := os.Open(src.Header)
		if err != nil {
			return nil, nil, fmt.Errorf("open header: %w", err)
		}
		res, err := ParseHeader(f)
		_ = f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", src.Header, err)
		}
		cfg = res.Set.Config()
		duplicates = res.Duplicates
	}

	if src.Overrides != "" {
		f, err := os.Open(src.Overrides)
		if err != nil {
			return nil, nil, fmt.Errorf("open overrides: %w", err)
		}
		cfg, err = ApplyOverrides(cfg, f)
		_ = f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", src.Overrides, err)
		}
	}

	set, err := BuildFrom(cfg)
	if err != nil {
		return nil, nil, err
	}
	return set, duplicates, nil
}
