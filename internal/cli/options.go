// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"mirseed/internal/cliutil"
	"mirseed/internal/output"

	"mirseed-core/seed"
)

// Options holds all CLI flags and the two positional file arguments.
type Options struct {
	MirandaFile     string // miRanda output ('-' = stdin, .gz ok)
	TranscriptsFile string // selected transcript IDs, one per line

	SeedStart int
	SeedEnd   int

	Output string
	Header bool // true unless --no-header

	Quiet   bool
	Debug   bool
	Version bool
}

// ParseArgs registers and parses all flags plus the two positionals,
// returning an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.SeedStart, "seed-start", seed.DefaultStart, "first seed position, 1-based on non-gap miRNA [2]")
	fs.IntVar(&opt.SeedEnd, "seed-end", seed.DefaultEnd, "last seed position, inclusive [8]")

	fs.StringVar(&opt.Output, "o", output.FormatText, "output format: text | tsv | json | jsonl (shorthand) [text]")
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | tsv | json | jsonl [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV [false]")

	fs.BoolVar(&opt.Quiet, "q", false, "suppress warnings (shorthand) [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Debug, "debug", false, "trace record accept/skip decisions on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	posArgs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	if len(posArgs) != 2 {
		return opt, fmt.Errorf("expected 2 arguments <miranda_output> <selected_transcripts>, got %d", len(posArgs))
	}
	opt.MirandaFile, opt.TranscriptsFile = posArgs[0], posArgs[1]
	if opt.TranscriptsFile == "-" {
		return opt, errors.New("selected transcripts cannot come from stdin")
	}

	if !output.ValidFormat(opt.Output) {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.SeedStart < 1 {
		return opt, errors.New("--seed-start must be ≥ 1")
	}
	if opt.SeedEnd < opt.SeedStart {
		return opt, errors.New("--seed-end must be ≥ --seed-start")
	}
	return opt, nil
}
