package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ormanli/simple-interest/internal/app/interest"
)

// parseNumber parses a single decimal number, ignoring surrounding whitespace.
// Hexadecimal notation is rejected. Values too large for float64 become ±Inf rather than failing.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if isHex(s) {
		return 0, interest.ErrInvalidNumber
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, interest.ErrInvalidNumber
	}

	return v, nil
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")

	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// numberFlag is a float flag that remembers whether it was given on the command line.
type numberFlag struct {
	value float64
	set   bool
}

func (n *numberFlag) String() string {
	if n == nil || !n.set {
		return ""
	}

	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

func (n *numberFlag) Set(s string) error {
	v, err := parseNumber(s)
	if err != nil {
		return err
	}

	n.value = v
	n.set = true

	return nil
}

// options holds everything parsed from the command line.
type options struct {
	principal numberFlag
	rate      numberFlag
	time      numberFlag
	selfTest  bool
}
