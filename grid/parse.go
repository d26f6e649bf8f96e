package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a rectangular block of decimal digits, one row per line,
// and returns a Map where the digit at column x of line y becomes the cost of
// Pos{x, y}. Blank lines and surrounding whitespace are ignored.
// Returns ErrEmptyInput, ErrRaggedInput, or a wrapped ErrBadDigit.
func ParseDigits(r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	var (
		nodes []Node
		width = -1
		y     int64
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedInput, y+1, len(line), width)
		}
		for x, c := range []byte(line) {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrBadDigit, c, y+1, x+1)
			}
			nodes = append(nodes, Node{Cost: int64(c - '0'), Position: Pos{X: int64(x), Y: y}})
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyInput
	}

	return NewMap(nodes), nil
}

// ParseDigitsString is ParseDigits over a string.
func ParseDigitsString(s string) (*Map, error) {
	return ParseDigits(strings.NewReader(s))
}
