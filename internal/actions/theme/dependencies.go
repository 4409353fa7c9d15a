package theme

import (
	"github.com/footprint-tools/cobalt/internal/config"
	"github.com/footprint-tools/cobalt/internal/ui/style"
)

type Deps struct {
	Load       func(path string) (*config.Config, error)
	Update     func(path string, fn func(*config.Config) error) (*config.Config, error)
	Apply      func(enable bool, theme string)
	Enabled    func() bool
	BaseNames  []string
	Themes     map[string]style.ColorConfig
	ResolveFor func(name string) string
}

func DefaultDeps() Deps {
	return Deps{
		Load:       config.Load,
		Update:     config.Update,
		Apply:      style.Init,
		Enabled:    style.Enabled,
		BaseNames:  style.BaseThemeNames,
		Themes:     style.Themes,
		ResolveFor: style.ResolveThemeName,
	}
}
