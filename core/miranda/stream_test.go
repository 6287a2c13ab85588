// core/miranda/stream_test.go
package miranda

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sample = `Read Sequence:ENST00000361390 gene=ND1(956 nt)
Performing Scan: hsa-miR-21-5p vs ENST00000361390

   Forward:	Score: 155.000000  Q:2 to 21  R:3 to 25 Align Len (22) (68.18%) (72.73%)

   Query:    3' ccAUGGAGUu 5'
                  |||||||
   Ref:      5' ggUACCUCAa 3'

   Energy:  -21.590000 kCal/Mol

   Reverse:	Score: 140.000000  Q:2 to 21  R:40 to 61 Align Len (20) (65.00%) (70.00%)

   Query:    3' ccUGCGGAUu 5'
                   ||:|||
   Ref:      5' ggUGCCUCAa 3'

Read Sequence:ENST00000999999 gene=XYZ(1200 nt)

   Forward:	Score: 120.000000  Q:2 to 18  R:10 to 30 Align Len (18) (60.00%) (66.00%)

   Query:    3' aaGGGGGGGg 5'

   Ref:      5' uuCCCCCCCc 3'

Read Sequence:utr_noalign gene=ABC(300 nt)
No hits found above threshold
`

func TestStreamRecords(t *testing.T) {
	p := NewParser()

	var recs []Record
	err := p.StreamRecordsCtx(context.Background(), strings.NewReader(sample), StreamOptions{}, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}

	r0 := recs[0]
	if r0.Transcript != "ENST00000361390" || r0.Gene != "ND1" || r0.Length != "956" {
		t.Errorf("record 0 header = %+v", r0)
	}
	if len(r0.Alignments) != 2 {
		t.Fatalf("record 0: %d alignments, want 2", len(r0.Alignments))
	}
	if r0.Alignments[0].Strand != "Forward" || r0.Alignments[1].Strand != "Reverse" {
		t.Errorf("strands = %s,%s", r0.Alignments[0].Strand, r0.Alignments[1].Strand)
	}
	if r0.Alignments[0].Query != "uUGAGGUAcc" {
		t.Errorf("query = %q, want 5'→3' orientation", r0.Alignments[0].Query)
	}
	if r0.Alignments[0].Ref != "aACUCCAUgg" {
		t.Errorf("ref = %q", r0.Alignments[0].Ref)
	}

	// blank line between Query: and Ref: must not break the block
	if len(recs[1].Alignments) != 1 {
		t.Errorf("record 1: %d alignments, want 1", len(recs[1].Alignments))
	}
	// record with no alignment blocks still parses
	if len(recs[2].Alignments) != 0 {
		t.Errorf("record 2: %d alignments, want 0", len(recs[2].Alignments))
	}
}

func TestStreamRecordsAccept(t *testing.T) {
	p := NewParser()

	var got []string
	var traced []string
	opt := StreamOptions{
		Accept: func(id string) bool { return id == "ENST00000999999" },
		Trace:  func(f string, a ...any) { traced = append(traced, f) },
	}
	err := p.StreamRecordsCtx(context.Background(), strings.NewReader(sample), opt, func(r Record) error {
		got = append(got, r.Transcript)
		return nil
	})
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if len(got) != 1 || got[0] != "ENST00000999999" {
		t.Fatalf("accepted = %v, want [ENST00000999999]", got)
	}
	if len(traced) != 3 {
		t.Errorf("trace lines = %d, want one per record", len(traced))
	}
}

func TestStreamRecordsEmptyInput(t *testing.T) {
	p := NewParser()
	n := 0
	err := p.StreamRecordsCtx(context.Background(), strings.NewReader("no records here\n"), StreamOptions{}, func(Record) error {
		n++
		return nil
	})
	if err != nil || n != 0 {
		t.Fatalf("err=%v n=%d, want nil/0", err, n)
	}
}

func TestStreamRecordsEmitError(t *testing.T) {
	p := NewParser()
	boom := errors.New("boom")
	err := p.StreamRecordsCtx(context.Background(), strings.NewReader(sample), StreamOptions{}, func(Record) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
}

func TestStreamRecordsCancel(t *testing.T) {
	p := NewParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.StreamRecordsCtx(ctx, strings.NewReader(sample), StreamOptions{}, func(Record) error {
		t.Fatal("emit after cancel")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
