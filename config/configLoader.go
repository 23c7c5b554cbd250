package config

import (
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"gopkg.in/yaml.v2"
)

// Format is a supported configuration file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

var (
	ValidConfigFileExtensions = []string{"toml", "yaml", "yml"}
)

// FormatFromFilename returns the Format for the given filename's extension,
// empty if not supported.
func FormatFromFilename(filename string) Format {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch ext {
	case "toml":
		return TOML
	case "yaml", "yml":
		return YAML
	}
	return ""
}

// UnmarshalToMap decodes data in the given format into a map.
func UnmarshalToMap(data []byte, f Format) (map[string]any, error) {
	m := make(map[string]any)
	if len(data) == 0 {
		return m, nil
	}
	if err := Unmarshal(data, f, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Unmarshal decodes data in the given format into v.
func Unmarshal(data []byte, f Format, v any) error {
	var err error
	switch f {
	case TOML:
		err = toml.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unmarshal of format %q is not supported", f)
	}
	if err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", f, err)
	}
	return nil
}

// FromFileToMap is the same as FromFile, but it returns the config values
// as a simple map.
func FromFileToMap(fs afero.Fs, filename string) (map[string]any, error) {
	return loadConfigFromFile(fs, filename)
}

func loadConfigFromFile(fs afero.Fs, filename string) (map[string]any, error) {
	f := FormatFromFilename(filename)
	if f == "" {
		return nil, fmt.Errorf("%q: unsupported config file extension, expected one of %v", filename, ValidConfigFileExtensions)
	}
	data, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, err
	}
	m, err := UnmarshalToMap(data, f)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", filename, err)
	}
	return m, nil
}

// FromFile loads the configuration from the given filename.
func FromFile(fs afero.Fs, filename string) (Provider, error) {
	m, err := loadConfigFromFile(fs, filename)
	if err != nil {
		return nil, err
	}
	return NewFrom(maps.Params(m)), nil
}
