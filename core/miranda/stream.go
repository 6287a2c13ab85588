// core/miranda/stream.go
package miranda

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// StreamOptions controls record selection and diagnostics.
type StreamOptions struct {
	// Accept decides whether a record's alignments are parsed and the
	// record emitted. nil accepts every record.
	Accept func(transcript string) bool
	// Trace, when non-nil, receives one diagnostic line per record
	// examined (accepted or skipped). Not part of the result stream.
	Trace func(format string, a ...any)
}

// StreamRecordsCtx scans miRanda output line-by-line and emits one
// Record per accepted "Read Sequence:" block, in input order. Lines
// that fit no expected shape are skipped; a file with no parsable
// records is not an error. Returning a non-nil error from emit stops
// the scan; cancellation via ctx is honored between lines.
func (p *Parser) StreamRecordsCtx(ctx context.Context, r io.Reader, opt StreamOptions, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		cur      *Record
		strand   string
		query    string
		haveQ    bool
		awaiting bool // inside an announced Forward:/Reverse: block
	)

	trace := func(format string, a ...any) {
		if opt.Trace != nil {
			opt.Trace(format, a...)
		}
	}

	flush := func() error {
		if cur == nil {
			return nil
		}
		rec := *cur
		cur = nil
		strand, query, haveQ, awaiting = "", "", false, false
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Text()

		if strings.HasPrefix(line, headerTag) {
			if err := flush(); err != nil {
				return err
			}
			transcript, gene, length, ok := p.parseHeader(line)
			if !ok {
				trace("skip: unparsable header %q", line)
				continue
			}
			if opt.Accept != nil && !opt.Accept(transcript) {
				trace("skip: %s not selected", transcript)
				continue
			}
			trace("accept: %s", transcript)
			cur = &Record{Transcript: transcript, Gene: gene, Length: length}
			continue
		}
		if cur == nil {
			continue
		}

		switch {
		case strings.Contains(line, "Forward:"):
			strand, awaiting, haveQ = "Forward", true, false
		case strings.Contains(line, "Reverse:"):
			strand, awaiting, haveQ = "Reverse", true, false
		case awaiting && strings.HasPrefix(strings.TrimSpace(line), "Query:"):
			query, haveQ = p.cleanSeq(line), true
		case awaiting && haveQ && strings.HasPrefix(strings.TrimSpace(line), "Ref:"):
			cur.Alignments = append(cur.Alignments, Alignment{
				Strand: strand,
				Query:  query,
				Ref:    p.cleanSeq(line),
			})
			awaiting, haveQ = false, false
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("miranda scan: %w", err)
	}
	return flush()
}

// StreamRecordsPath opens path (stdin via "-", gzip transparent) and
// streams its records.
func (p *Parser) StreamRecordsPath(ctx context.Context, path string, opt StreamOptions, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return p.StreamRecordsCtx(ctx, rc, opt, emit)
}
