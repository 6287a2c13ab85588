// core/transcripts/loader.go
package transcripts

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Set is a membership-only collection of transcript identifiers.
type Set map[string]struct{}

func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// LoadSet reads one transcript ID per line. Blank lines and lines
// starting with '#' are ignored; duplicates collapse.
func LoadSet(path string) (Set, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	set := make(Set)
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		set[line] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}
