// internal/output/report.go
package output

// Output format names accepted by --output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Report is one result row: one alignment block of one selected record.
type Report struct {
	Transcript  string
	Gene        string
	Length      string
	Strand      string
	Perfect     int
	Wobble      int
	Positions   int
	Span        int // requested window width
	QueryWindow string
	RefWindow   string
}

// Truncated reports whether the alignment covered fewer seed positions
// than the requested window.
func (r Report) Truncated() bool { return r.Positions < r.Span }

// ValidFormat reports whether f names a known output format.
func ValidFormat(f string) bool {
	switch f {
	case FormatText, FormatTSV, FormatJSON, FormatJSONL:
		return true
	}
	return false
}
