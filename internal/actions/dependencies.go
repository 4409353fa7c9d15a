package actions

import (
	"time"

	"github.com/google/uuid"

	"github.com/footprint-tools/cobalt/internal/app"
)

type actionDependencies struct {
	Version func() string
	NewUUID func() uuid.UUID
	After   func(time.Duration) <-chan time.Time
}

func defaultDeps() actionDependencies {
	return actionDependencies{
		Version: func() string { return app.Version },
		NewUUID: uuid.New,
		After:   time.After,
	}
}

// Env is the owner of the commands that read or write on-disk state.
type Env struct {
	ConfigPath string
	LogPath    string
}
