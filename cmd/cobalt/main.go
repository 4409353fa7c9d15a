package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/footprint-tools/cobalt/internal/actions"
	"github.com/footprint-tools/cobalt/internal/app"
	"github.com/footprint-tools/cobalt/internal/cli"
	"github.com/footprint-tools/cobalt/internal/usage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive)

	stop()
	os.Exit(code)
}

// run is the whole program minus process state. With interactive set and no
// -c command, it hands the terminal to the full-screen console; otherwise it
// reads command lines from stdin.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) int {
	flags, err := cli.ParseFlags(args)
	if err != nil {
		return report(stderr, err)
	}

	if flags.Help {
		fmt.Fprintln(stdout, "usage: cobalt [flags] [command...]")
		fmt.Fprintln(stdout)
		fmt.Fprint(stdout, cli.FlagUsages())
		return 0
	}
	if flags.Version {
		fmt.Fprintf(stdout, "cobalt version %s\n", app.Version)
		return 0
	}

	application, err := app.New(app.Options{
		ConfigPath: flags.ConfigPath,
		LogLevel:   flags.LogLevel,
		NoColor:    flags.NoColor,
		IsTTY:      interactive,
	})
	if err != nil {
		return report(stderr, err)
	}
	defer func() { _ = app.Close(application) }()

	env := &actions.Env{
		ConfigPath: application.ConfigPath,
		LogPath:    application.Config.LogPath,
	}
	if err := cli.Register(application.Registry, env); err != nil {
		return report(stderr, err)
	}
	application.Logger.Debug("registered %d commands", len(application.Registry.Names()))

	if flags.Command != "" {
		if _, err := application.Console.Handle(ctx, flags.Command, stdout); err != nil {
			return exitCode(err)
		}
		return 0
	}

	if interactive {
		if err := application.Console.Interactive(ctx); err != nil && !errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, context.Canceled) {
			return report(stderr, err)
		}
		return 0
	}

	if err := application.Console.RunLines(ctx, stdin, stdout); err != nil {
		return exitCode(err)
	}
	return 0
}

func report(w io.Writer, err error) int {
	fmt.Fprintln(w, err.Error())
	return exitCode(err)
}

func exitCode(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}
