// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"mirseed/internal/version"
)

// InstallUsage installs the hand-formatted Usage() handler on fs.
func InstallUsage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – seed-region pairing counter for miRanda output\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage:\n  %s [flags] <miranda_output> <selected_transcripts>\n\n", name)
		fmt.Fprintln(out, "Arguments:")
		fmt.Fprintln(out, "  miranda_output            miRanda result file ('-' for STDIN, .gz ok)")
		fmt.Fprintln(out, "  selected_transcripts      transcript IDs to analyze, one per line")

		fmt.Fprintln(out, "\nSeed window:")
		fmt.Fprintf(out, "      --seed-start int      first seed position (1-based, non-gap miRNA) [%s]\n", def("seed-start"))
		fmt.Fprintf(out, "      --seed-end int        last seed position, inclusive [%s]\n", def("seed-end"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string       text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header           suppress header line in TSV [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet               suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --debug               trace accept/skip decisions on stderr [%s]\n", def("debug"))
		fmt.Fprintln(out, "  -v, --version             print version and exit")
		fmt.Fprintln(out, "  -h, --help                show this help and exit")
	}
}
