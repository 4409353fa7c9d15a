package logs

import (
	"os"
)

type Deps struct {
	ReadFile  func(string) ([]byte, error)
	WriteFile func(string, []byte, os.FileMode) error
	Stat      func(string) (os.FileInfo, error)
}

func DefaultDeps() Deps {
	return Deps{
		ReadFile:  os.ReadFile,
		WriteFile: os.WriteFile,
		Stat:      os.Stat,
	}
}
