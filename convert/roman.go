// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRomanRange marks an integer outside 1..3999.
	ErrRomanRange = errors.New("convert: roman numerals cover 1..3999")

	// ErrInvalidRoman marks a string that is not a canonical Roman numeral.
	ErrInvalidRoman = errors.New("convert: invalid roman numeral")
)

const (
	minRoman = 1
	maxRoman = 3999
)

// romanTable lists values in descending order, subtractive pairs included.
var romanTable = [...]struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman formats n as an upper-case Roman numeral.
func ToRoman(n int) (string, error) {
	if n < minRoman || n > maxRoman {
		return "", fmt.Errorf("ToRoman(%d): %w", n, ErrRomanRange)
	}

	var sb strings.Builder
	for _, e := range romanTable {
		for n >= e.value {
			sb.WriteString(e.symbol)
			n -= e.value
		}
	}

	return sb.String(), nil
}

// FromRoman parses a Roman numeral, case-insensitively. Only the canonical
// form is accepted: "IIII", "VX" or "IC" are rejected.
func FromRoman(s string) (int, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	if up == "" {
		return 0, fmt.Errorf("FromRoman(%q): %w", s, ErrInvalidRoman)
	}

	n, rest := 0, up
	for _, e := range romanTable {
		for strings.HasPrefix(rest, e.symbol) {
			n += e.value
			rest = rest[len(e.symbol):]
		}
	}
	if rest != "" || n > maxRoman {
		return 0, fmt.Errorf("FromRoman(%q): %w", s, ErrInvalidRoman)
	}

	// Round-trip: a greedy parse accepts e.g. "IIII"; canonical text must re-encode to itself.
	if canon, _ := ToRoman(n); canon != up {
		return 0, fmt.Errorf("FromRoman(%q): canonical form is %s: %w", s, canon, ErrInvalidRoman)
	}

	return n, nil
}
