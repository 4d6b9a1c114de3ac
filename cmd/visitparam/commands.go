package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/arloliu/visitparam"
	"github.com/arloliu/visitparam/column"
	"github.com/arloliu/visitparam/format"
)

func runExtract(ctx context.Context, logger *slog.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	in := fs.String("in", "-", "Input file, - for stdin")
	inFormat := fs.String("format", formatAuto, "Input format (auto, lines, block)")
	key := fs.String("key", "", "Key to extract")
	kindName := fs.String("kind", "string", "Value kind (has, uint, int, float, bool, raw, string)")
	jobsPath := fs.String("jobs", "", "YAML file listing several {key, kind} extractions")
	parallel := fs.Int("parallel", 1, "Maximum number of concurrent row ranges")
	watch := fs.Bool("watch", false, "Re-run whenever the input file is written")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unknown arguments: %v", fs.Args())
	}

	var jobs []Job
	if *jobsPath != "" {
		var err error
		if jobs, err = ParseJobs(*jobsPath); err != nil {
			return err
		}
	} else {
		// -key "" is a valid key, so presence is judged by the flag being set.
		var keyArg *string
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "key" {
				keyArg = key
			}
		})
		job, err := newJob(keyArg, *kindName)
		if err != nil {
			return fmt.Errorf("invalid -key/-kind: %w", err)
		}
		jobs = []Job{job}
	}

	engine, err := visitparam.New(visitparam.WithLogger(logger), visitparam.WithParallelism(*parallel))
	if err != nil {
		return err
	}

	run := func() error {
		data, err := readInput(*in, stdin)
		if err != nil {
			return err
		}
		col, err := parseColumn(data, *inFormat)
		if err != nil {
			return err
		}
		logger.Debug("loaded input", "path", *in, "rows", col.Len(), "bytes", len(col.Data))

		return runJobs(engine, col, jobs, stdout)
	}

	if !*watch {
		return run()
	}
	if *in == "" || *in == "-" {
		return errors.New("-watch requires -in to name a file")
	}

	return watchFile(ctx, logger, *in, run)
}

func runPack(logger *slog.Logger, args []string, stdin io.Reader) error {
	fs := flag.NewFlagSet("pack", flag.ContinueOnError)
	in := fs.String("in", "-", "Input file of lines, - for stdin")
	out := fs.String("out", "", "Output column block file")
	compression := fs.String("compression", "zstd", "Payload compression (none, zstd, s2, lz4)")
	bigEndian := fs.Bool("big-endian", false, "Write header fields big-endian")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unknown arguments: %v", fs.Args())
	}
	if *out == "" {
		return errors.New("-out is required")
	}

	codec, err := format.ParseCompression(*compression)
	if err != nil {
		return err
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	opts := []column.BlockOption{column.WithCompression(codec)}
	if *bigEndian {
		opts = append(opts, column.WithBigEndian())
	}
	block, stats, err := column.Encode(splitLines(data), opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(*out, block, 0o644); err != nil { //nolint:gosec // block files are not secret
		return fmt.Errorf("failed to write block: %w", err)
	}
	logger.Info("packed column",
		"out", *out,
		"codec", codec,
		"original", stats.OriginalSize,
		"compressed", stats.CompressedSize,
		"ratio", stats.CompressionRatio(),
	)

	return nil
}
