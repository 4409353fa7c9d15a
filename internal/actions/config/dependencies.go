package config

import (
	"github.com/footprint-tools/cobalt/internal/config"
)

type Deps struct {
	Load   func(path string) (*config.Config, error)
	Update func(path string, fn func(*config.Config) error) (*config.Config, error)
}

func DefaultDeps() Deps {
	return Deps{
		Load:   config.Load,
		Update: config.Update,
	}
}
