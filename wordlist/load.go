package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single word-list line.
const maxLineSize = 1 << 20

// Load reads one word per line from r. Lines are trimmed of surrounding
// white space and blank lines are skipped; order is preserved.
func Load(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return words, nil
}
