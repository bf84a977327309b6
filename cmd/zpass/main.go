package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpass/internal/cli"
	"github.com/zarlcorp/zpass/internal/password"
	"github.com/zarlcorp/zpass/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpass"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	// piped input gets the plain prompt flow instead of the TUI
	if !term.IsTerminal(int(syscall.Stdin)) {
		cli.CmdSetup(nil)
		_ = app.Close()
		return
	}

	if err := runTUI(); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zpass %s\n", version)
	case "generate":
		cli.CmdGenerate(os.Args[2:])
	case "check":
		cli.CmdCheck(os.Args[2:])
	case "setup":
		cli.CmdSetup(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "zpass: unknown command %q\n", cmd)
		fmt.Fprintln(os.Stderr, "commands: generate, check, setup, version")
		os.Exit(1)
	}
}

func runTUI() error {
	m := tui.New(version, password.NewGenerator())
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
