package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

// Reader reads player input one line at a time.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

func (r *Reader) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return r.scanner.Text(), nil
}

// ReadColumn reads one line and returns the 0-indexed column it names.
// Anything that is not a column number comes back out of range, so the
// move validation rejects it.
func (r *Reader) ReadColumn() (int, error) {
	line, err := r.readLine()
	if err != nil {
		return -1, err
	}
	return ParseColumn(line), nil
}

// WaitForEnter blocks until the player submits a line.
func (r *Reader) WaitForEnter() error {
	_, err := r.readLine()
	return err
}

// ParseColumn turns user input (columns numbered 1 to 7) into a 0-indexed
// column. Like Ruby's to_i it reads the leading integer and ignores the
// rest; input without one counts as 0, which maps to -1.
func ParseColumn(input string) int {
	return leadingInt(input) - 1
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// too many digits to be a column anyway
		return 0
	}
	return n
}
