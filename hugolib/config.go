package hugolib

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/sunwei/hugo-taxonomy/common/maps"
	"github.com/sunwei/hugo-taxonomy/config"
)

// ConfigSourceDescriptor describes where to find the config (e.g. config.toml etc.).
type ConfigSourceDescriptor struct {
	Fs afero.Fs

	// Path to the config file to use, e.g. /my/project/config.toml.
	// If empty, only the defaults are set.
	Filename string

	// The project's working dir. Relative filenames are resolved from here.
	WorkingDir string
}

func (d ConfigSourceDescriptor) configFilename() string {
	if d.Filename == "" || filepath.IsAbs(d.Filename) {
		return d.Filename
	}
	return filepath.Join(d.WorkingDir, d.Filename)
}

type configLoader struct {
	cfg config.Provider
	ConfigSourceDescriptor
}

func (l configLoader) loadConfig(filename string) error {
	m, err := config.FromFileToMap(l.Fs, filename)
	if err != nil {
		return err
	}

	// Set overwrites keys of the same name, recursively.
	l.cfg.Set("", m)

	return nil
}

func (l configLoader) applyConfigDefaults() {
	defaultSettings := maps.Params{
		"removePathAccents":      false,
		"disablePathToLower":     false,
		"titleCaseStyle":         "",
		"taxonomies":             maps.Params{"tags": "tag", "categories": "category"},
		"paginate":               10,
		"paginatePath":           "page",
		"defaultContentLanguage": "en",
	}

	l.cfg.SetDefaults(defaultSettings)
}

// LoadConfig loads the site configuration into a new config.Provider and
// then adds a set of defaults. It returns the config files read.
func LoadConfig(d ConfigSourceDescriptor) (config.Provider, []string, error) {
	if d.Fs == nil {
		d.Fs = afero.NewOsFs()
	}

	var configFiles []string
	l := configLoader{ConfigSourceDescriptor: d, cfg: config.New()}

	if filename := d.configFilename(); filename != "" {
		if err := l.loadConfig(filename); err != nil {
			return nil, nil, fmt.Errorf("failed to load config: %w", err)
		}
		configFiles = append(configFiles, filename)
	}

	l.applyConfigDefaults()

	return l.cfg, configFiles, nil
}
