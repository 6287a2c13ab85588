// core/miranda/header.go
package miranda

import (
	"regexp"
	"strings"
)

const headerTag = "Read Sequence:"

// Parser holds the compiled patterns for one run. Construct once with
// NewParser and pass it around; there is no package-level regexp state.
type Parser struct {
	transcript *regexp.Regexp
	gene       *regexp.Regexp
	label      *regexp.Regexp
	leadEnd    *regexp.Regexp
	trailEnd   *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		transcript: regexp.MustCompile(`Read Sequence:(\S+)`),
		gene:       regexp.MustCompile(`gene=(\S+)\((\d+) nt\)`),
		label:      regexp.MustCompile(`^(Query|Ref):\s*`),
		leadEnd:    regexp.MustCompile(`^[35]'\s*`),
		trailEnd:   regexp.MustCompile(`\s*[35]'$`),
	}
}

// parseHeader extracts the transcript ID and optional gene annotation
// from a "Read Sequence:" line. ok is false when no ID token follows
// the tag; such records are skipped, not fatal.
func (p *Parser) parseHeader(line string) (transcript, gene, length string, ok bool) {
	m := p.transcript.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	transcript = m[1]
	if g := p.gene.FindStringSubmatch(line); g != nil {
		gene, length = g[1], g[2]
	}
	return transcript, gene, length, true
}

// cleanSeq strips the Query:/Ref: label and the flanking 5'/3' markers,
// then reverses the string so the miRNA reads 5'→3'. miRanda prints the
// query 3'→5'; reversing both lines keeps the columns paired.
func (p *Parser) cleanSeq(line string) string {
	s := strings.TrimSpace(line)
	s = p.label.ReplaceAllString(s, "")
	s = p.leadEnd.ReplaceAllString(s, "")
	s = p.trailEnd.ReplaceAllString(s, "")
	return reverse(s)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
