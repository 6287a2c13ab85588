// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
)

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth.
const TSVHeader = "transcript\tgene\tlength\tstrand\tperfect\twobble\tpositions\tmirna_window\tmrna_window"

type tsvWriter struct {
	w           io.Writer
	header      bool
	wroteHeader bool
}

func (tw *tsvWriter) Write(r Report) error {
	if tw.header && !tw.wroteHeader {
		if _, err := fmt.Fprintln(tw.w, TSVHeader); err != nil {
			return err
		}
		tw.wroteHeader = true
	}
	_, err := fmt.Fprintf(tw.w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
		r.Transcript, r.Gene, r.Length, r.Strand,
		r.Perfect, r.Wobble, r.Positions,
		r.QueryWindow, r.RefWindow,
	)
	return err
}

func (tw *tsvWriter) Flush() error { return nil }
