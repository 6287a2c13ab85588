// core/seed/seed.go
package seed

// Default seed-window bounds: miRNA positions 2–8 inclusive, 1-based
// from the 5' end, counted over non-gap miRNA nucleotides.
const (
	DefaultStart = 2
	DefaultEnd   = 8
)

type Pairing int

const (
	Mismatch Pairing = iota
	Perfect
	Wobble
)

// Result summarizes pairing over one alignment's seed window.
// Positions is the number of seed positions actually observed; it falls
// short of the window span when the alignment is truncated.
type Result struct {
	Perfect     int
	Wobble      int
	Positions   int
	QueryWindow string // aligned miRNA seed, gap columns included
	RefWindow   string // mRNA partner column per QueryWindow column
}

// Truncated reports whether fewer than span seed positions were seen.
func (r Result) Truncated(span int) bool { return r.Positions < span }

// Span returns the window width for 1-based inclusive bounds.
func Span(start, end int) int { return end - start + 1 }

func normalize(b byte) byte {
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	if b == 'T' {
		b = 'U'
	}
	return b
}

// Classify reports the pairing type for one miRNA/mRNA column.
// Canonical Watson-Crick pairs are Perfect; G–U and U–G are Wobble;
// everything else, gaps included, is a Mismatch.
func Classify(q, r byte) Pairing {
	q, r = normalize(q), normalize(r)
	switch {
	case q == 'A' && r == 'U', q == 'U' && r == 'A',
		q == 'G' && r == 'C', q == 'C' && r == 'G':
		return Perfect
	case q == 'G' && r == 'U', q == 'U' && r == 'G':
		return Wobble
	}
	return Mismatch
}

// Analyze walks two aligned sequences 5'→3' (query = miRNA, ref = mRNA)
// and counts perfect and wobble pairings over miRNA positions
// [start, end]. Spaces are skipped independently per sequence; gap
// columns ('-') do not advance the miRNA position numbering and are
// never counted as pairings. Either sequence running out before the
// window is filled yields a partial Result, not an error.
func Analyze(query, ref string, start, end int) Result {
	var res Result
	var qw, rw []byte

	i, j, pos := 0, 0, 0
	for i < len(query) && j < len(ref) {
		q := query[i]
		if q == ' ' {
			i++
			continue
		}
		r := ref[j]
		if r == ' ' {
			j++
			continue
		}
		if q != '-' {
			pos++
			if pos > end {
				break
			}
		}
		if pos >= start && pos <= end {
			if q == '-' {
				// internal gap between seed nucleotides: keep the
				// column for display, count nothing
				if pos < end {
					qw = append(qw, q)
					rw = append(rw, r)
				}
			} else {
				qw = append(qw, q)
				rw = append(rw, r)
				res.Positions++
				switch Classify(q, r) {
				case Perfect:
					res.Perfect++
				case Wobble:
					res.Wobble++
				}
			}
		}
		i++
		j++
	}

	res.QueryWindow = string(qw)
	res.RefWindow = string(rw)
	return res
}
