package deps

import (
	"errors"

	"github.com/sunwei/hugo-taxonomy/common/loggers"
	"github.com/sunwei/hugo-taxonomy/config"
	"github.com/sunwei/hugo-taxonomy/helpers"
	"github.com/sunwei/hugo-taxonomy/langs"
	"github.com/sunwei/hugo-taxonomy/tpl"
)

// Deps holds dependencies used by many.
// There will be normally only one instance of deps in play
// at a given time, i.e. one per Site built.
type Deps struct {
	// The logger to use.
	Log loggers.Logger `json:"-"`

	// The PathSpec to use
	*helpers.PathSpec `json:"-"`

	// The configuration to use
	Cfg config.Provider `json:"-"`

	// The language in use.
	Language *langs.Language

	// Tells which page kinds can be rendered.
	Layouts tpl.LayoutHandler
}

// DepsCfg contains configuration options that can be used to configure a
// build on a global level, i.e. logging etc.
// Nil values will be given default values.
type DepsCfg struct {
	// The Logger to use.
	Logger loggers.Logger

	// The language to use.
	Language *langs.Language

	// The configuration to use.
	Cfg config.Provider

	// Template handling.
	Layouts tpl.LayoutHandler
}

// New initializes a Dep struct.
// Defaults are set for nil values, but Cfg is always required.
func New(cfg DepsCfg) (*Deps, error) {
	if cfg.Cfg == nil {
		return nil, errors.New("must provide a config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = loggers.NewDefault()
	}

	lang := cfg.Language
	if lang == nil {
		lang = langs.NewDefaultLanguage(cfg.Cfg)
	}

	layouts := cfg.Layouts
	if layouts == nil {
		layouts = tpl.AllLayouts{}
	}

	return &Deps{
		Log:      logger,
		PathSpec: helpers.NewPathSpec(cfg.Cfg),
		Cfg:      cfg.Cfg,
		Language: lang,
		Layouts:  layouts,
	}, nil
}
