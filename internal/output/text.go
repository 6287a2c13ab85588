// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// textWriter prints the classic one-line summary per alignment:
//
//	Read Sequence:<id> gene=<gene>(<len> nt) - Complementary nucleotides in Seed: N (Wobble pairings in Seed: M)
//
// The shape is byte-exact, including "gene=( nt)" when the header had
// no gene annotation. Truncated windows get an explicit trailing note.
type textWriter struct {
	w io.Writer
}

func (tw *textWriter) Write(r Report) error {
	_, err := fmt.Fprintf(tw.w,
		"Read Sequence:%s gene=%s(%s nt) - Complementary nucleotides in Seed: %d (Wobble pairings in Seed: %d)",
		r.Transcript, r.Gene, r.Length, r.Perfect, r.Wobble,
	)
	if err != nil {
		return err
	}
	if r.Truncated() {
		if _, err := fmt.Fprintf(tw.w, " [seed truncated: %d of %d positions]", r.Positions, r.Span); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(tw.w)
	return err
}

func (tw *textWriter) Flush() error { return nil }
