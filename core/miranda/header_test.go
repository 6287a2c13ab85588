// core/miranda/header_test.go
package miranda

import "testing"

func TestParseHeader(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name   string
		line   string
		wantID string
		wantG  string
		wantL  string
		wantOK bool
	}{
		{
			name:   "full header with gene annotation",
			line:   "Read Sequence:ENST00000361390 gene=ND1(956 nt)",
			wantID: "ENST00000361390", wantG: "ND1", wantL: "956", wantOK: true,
		},
		{
			name:   "header without gene annotation",
			line:   "Read Sequence:utr_17 (1-1200)",
			wantID: "utr_17", wantOK: true,
		},
		{
			name: "tag with no identifier",
			line: "Read Sequence: ",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, gene, length, ok := p.parseHeader(tc.line)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if id != tc.wantID || gene != tc.wantG || length != tc.wantL {
				t.Errorf("got (%q,%q,%q), want (%q,%q,%q)",
					id, gene, length, tc.wantID, tc.wantG, tc.wantL)
			}
		})
	}
}

func TestCleanSeq(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "query line reversed to 5'→3'",
			line: "   Query:    3' ccAUGGAGUu 5'",
			want: "uUGAGGUAcc",
		},
		{
			name: "ref line",
			line: "   Ref:      5' ggUACCUCAa 3'",
			want: "aACUCCAUgg",
		},
		{
			name: "gaps and internal spaces preserved",
			line: "Query: 3' cc-AUG GAGUu 5'",
			want: "uUGAG GUA-cc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.cleanSeq(tc.line); got != tc.want {
				t.Errorf("cleanSeq(%q) = %q, want %q", tc.line, got, tc.want)
			}
		})
	}
}
