// core/miranda/record.go
package miranda

// Alignment is one scored hit inside a record. Query and Ref are the
// aligned miRNA and mRNA strings, re-oriented so the miRNA reads 5'→3',
// with gap characters preserved. They are positionally paired.
type Alignment struct {
	Strand string // "Forward" or "Reverse"
	Query  string
	Ref    string
}

// Record is one "Read Sequence:" block of miRanda output.
// Gene and Length are empty when the header carries no gene annotation.
type Record struct {
	Transcript string
	Gene       string
	Length     string
	Alignments []Alignment
}
