// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"mirseed/internal/cli"
	"mirseed/internal/cmdutil"
	"mirseed/internal/output"
	"mirseed/internal/version"
	"mirseed/internal/writers"

	"mirseed-core/miranda"
	"mirseed-core/seed"
	"mirseed-core/transcripts"
)

// Exit codes: 0 ok (including zero records), 1 input file error,
// 2 usage error, 3 output error.
const (
	exitOK    = 0
	exitInput = 1
	exitUsage = 2
	exitWrite = 3
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("mirseed")
	fs.SetOutput(io.Discard)

	usage := func(dst io.Writer) int {
		cli.InstallUsage(fs, "mirseed")
		fs.SetOutput(dst)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return exitOK
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return exitWrite
		}
		return exitOK
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		return usage(outw)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return usage(outw)
		}
		_, _ = fmt.Fprintln(stderr, err)
		if code := usage(stderr); code != exitOK {
			return code
		}
		return exitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "mirseed version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return exitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return exitWrite
		}
		return exitOK
	}

	selected, err := transcripts.LoadSet(opts.TranscriptsFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "selected transcripts: %v\n", err)
		return exitInput
	}

	w, err := output.New(outw, opts.Output, opts.Header)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return exitUsage
	}

	span := seed.Span(opts.SeedStart, opts.SeedEnd)
	parser := miranda.NewParser()
	streamOpts := miranda.StreamOptions{
		Accept: selected.Contains,
		Trace: func(format string, a ...any) {
			cmdutil.Tracef(stderr, opts.Debug, format, a...)
		},
	}

	records := 0
	err = parser.StreamRecordsPath(parent, opts.MirandaFile, streamOpts, func(rec miranda.Record) error {
		records++
		for _, al := range rec.Alignments {
			res := seed.Analyze(al.Query, al.Ref, opts.SeedStart, opts.SeedEnd)
			if res.Truncated(span) {
				cmdutil.Warnf(stderr, opts.Quiet,
					"%s: alignment shorter than seed window (%d of %d positions)",
					rec.Transcript, res.Positions, span)
			}
			cmdutil.Tracef(stderr, opts.Debug, "%s %s window %s / %s",
				rec.Transcript, al.Strand, res.QueryWindow, res.RefWindow)
			if err := w.Write(output.Report{
				Transcript:  rec.Transcript,
				Gene:        rec.Gene,
				Length:      rec.Length,
				Strand:      al.Strand,
				Perfect:     res.Perfect,
				Wobble:      res.Wobble,
				Positions:   res.Positions,
				Span:        span,
				QueryWindow: res.QueryWindow,
				RefWindow:   res.RefWindow,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return exitOK
		}
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", opts.MirandaFile, err)
		return exitInput
	}
	if records == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no matching records in %s", opts.MirandaFile)
	}

	if err := w.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	if err := outw.Flush(); err != nil && !writers.IsBrokenPipe(err) {
		_, _ = fmt.Fprintln(stderr, err)
		return exitWrite
	}
	return exitOK
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
