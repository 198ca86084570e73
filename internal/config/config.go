// Package config loads optional CLI defaults from a jsonfmt config file.
// Flags always win over the file; the file wins over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// ErrUnsupportedFormat reports a config file whose extension is neither
// JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File holds the defaults a config file may set.
type File struct {
	Indent   string `koanf:"indent"` // "space" or "tab"
	Size     int    `koanf:"size"`
	Compact  bool   `koanf:"compact"`
	Palette  string `koanf:"palette"`
	Encoding string `koanf:"encoding"`
	Force    bool   `koanf:"force"`
	Jobs     int    `koanf:"jobs"`
}

// Default returns the built-in defaults.
func Default() File {
	return File{Indent: "space", Size: 2, Palette: "default", Encoding: "utf-8", Jobs: 4}
}

// Load reads the config at path. An empty path looks for jsonfmt.json,
// jsonfmt.yaml or jsonfmt.yml in the working directory and silently returns
// the defaults when none exists; an explicit path must exist.
func Load(path string) (File, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = findDefault()
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	parser, err := parserFor(path)
	if err != nil {
		return cfg, err
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func findDefault() string {
	for _, name := range []string{"jsonfmt.json", "jsonfmt.yaml", "jsonfmt.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser(), nil
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}
