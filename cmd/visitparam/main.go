// Package main is the visitparam command line tool.
//
// visitparam extracts fields from files of JSON-like lines (one row per line)
// or from column blocks produced by its pack command:
//
//	visitparam extract -in events.log -key user_id -kind uint
//	visitparam extract -in events.vpb -jobs jobs.yaml -watch
//	visitparam pack -in events.log -out events.vpb -compression zstd
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := mainImpl(os.Args[1:], os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "visitparam: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("visitparam", flag.ContinueOnError)
	logLevel := fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	version := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: visitparam [flags] <extract|pack> [command flags]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *version {
		printVersion(stdout)
		return nil
	}

	logger, err := initLogger(*logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "extract":
		return runExtract(ctx, logger, rest, stdin, stdout)
	case "pack":
		return runPack(logger, rest, stdin)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// initLogger returns a tint logger on stderr, colored only on a terminal.
func initLogger(level string) (*slog.Logger, error) {
	ll := &slog.LevelVar{}
	if err := ll.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid -log-level %q: %w", level, err)
	}

	return slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      ll,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})), nil
}

func printVersion(w io.Writer) {
	version, goVersion, revision := "dev", "unknown", "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			version = v
		}
		goVersion = info.GoVersion
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				revision = setting.Value
			}
		}
	}
	fmt.Fprintf(w, "visitparam %s\n", version)
	fmt.Fprintf(w, "  Go version: %s\n", goVersion)
	fmt.Fprintf(w, "  Revision:   %s\n", revision)
}
