// internal/output/writer.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"mirseed/pkg/api"
)

// Writer consumes Reports in input order and renders one format.
// Flush must be called once after the last Write.
type Writer interface {
	Write(Report) error
	Flush() error
}

// New returns a Writer for format, or an error for unknown names.
// header applies to TSV only.
func New(w io.Writer, format string, header bool) (Writer, error) {
	switch format {
	case FormatText:
		return &textWriter{w: w}, nil
	case FormatTSV:
		return &tsvWriter{w: w, header: header}, nil
	case FormatJSON:
		return &jsonWriter{w: w}, nil
	case FormatJSONL:
		return &jsonlWriter{enc: json.NewEncoder(w)}, nil
	}
	return nil, fmt.Errorf("invalid --output %q", format)
}

func toAPIReport(r Report) api.ReportV1 {
	return api.ReportV1{
		Transcript:  r.Transcript,
		Gene:        r.Gene,
		Length:      r.Length,
		Strand:      r.Strand,
		Perfect:     r.Perfect,
		Wobble:      r.Wobble,
		Positions:   r.Positions,
		Truncated:   r.Truncated(),
		QueryWindow: r.QueryWindow,
		RefWindow:   r.RefWindow,
	}
}

type jsonWriter struct {
	w    io.Writer
	list []api.ReportV1
}

func (jw *jsonWriter) Write(r Report) error {
	jw.list = append(jw.list, toAPIReport(r))
	return nil
}

// Flush emits the whole run as one pretty-indented array.
func (jw *jsonWriter) Flush() error {
	if jw.list == nil {
		jw.list = []api.ReportV1{}
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(jw.list)
}

type jsonlWriter struct{ enc *json.Encoder }

func (jw *jsonlWriter) Write(r Report) error { return jw.enc.Encode(toAPIReport(r)) }
func (jw *jsonlWriter) Flush() error         { return nil }
