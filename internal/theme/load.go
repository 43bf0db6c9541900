package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFile reads theme overrides from a .toml or .json file and returns the
// default theme extended with them.
//
// Example TOML:
//
//	[colors.brand]
//	DEFAULT = "#ff5a1f"
//	500 = "#ff5a1f"
//
//	[spacing]
//	"128" = "32rem"
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var overrides Theme
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &overrides); err != nil {
			return nil, fmt.Errorf("parsing theme %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &overrides); err != nil {
			return nil, fmt.Errorf("parsing theme %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported theme format %q (want .toml or .json)", ext)
	}

	t := Default()
	t.Merge(&overrides)
	return t, nil
}
