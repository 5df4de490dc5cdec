package codec

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vk/scaffoldgo/internal/ctxlog"
	"github.com/vk/scaffoldgo/internal/layout"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// extensions are the recognized structure description formats.
var extensions = map[string]struct{}{
	".json": {},
	".yaml": {},
	".yml":  {},
	".toml": {},
}

// SupportedExtension reports whether the path carries a recognized
// structure description extension.
func SupportedExtension(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// SupportedExtensions returns the recognized extensions for usage text.
func SupportedExtensions() []string {
	return []string{".json", ".yaml", ".yml", ".toml"}
}

// LoadFile reads and decodes a structure description file. Read failures
// (typically permissions) and decode failures are reported as distinct
// errors; neither has mutated anything on disk yet.
func LoadFile(ctx context.Context, path string) (*layout.Node, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read description file %s: %w", path, err)
	}

	v, err := decode(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("invalid description in %s: %w", path, err)
	}

	root, err := layout.FromValue(v)
	if err != nil {
		return nil, fmt.Errorf("invalid description in %s: %w", path, err)
	}

	logger.Debug("Description loaded.", "path", path, "top_level_entries", len(root.Entries))
	return root, nil
}

// decode parses raw description bytes according to the file extension.
func decode(data []byte, ext string) (cty.Value, error) {
	switch ext {
	case ".json":
		ty, err := ctyjson.ImpliedType(data)
		if err != nil {
			return cty.NilVal, fmt.Errorf("malformed JSON: %w", err)
		}
		v, err := ctyjson.Unmarshal(data, ty)
		if err != nil {
			return cty.NilVal, fmt.Errorf("malformed JSON: %w", err)
		}
		return v, nil
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cty.NilVal, fmt.Errorf("malformed YAML: %w", err)
		}
		return toCty(raw)
	case ".toml":
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return cty.NilVal, fmt.Errorf("malformed TOML: %w", err)
		}
		return toCty(raw)
	default:
		return cty.NilVal, fmt.Errorf("unsupported description format %q", ext)
	}
}
