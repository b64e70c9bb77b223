// SPDX-License-Identifier: MIT

package convert

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidBase marks a radix outside 2..36.
	ErrInvalidBase = errors.New("convert: base must be within 2..36")

	// ErrInvalidDigits marks input that is not a number in the source base.
	ErrInvalidDigits = errors.New("convert: invalid digits for base")
)

const (
	minBase = 2
	maxBase = 36
)

// ConvertBase rewrites digits from base from to base to. Digits above 9 are
// letters in either case; the output uses lower case. A leading '-' is kept.
// Values are arbitrary precision.
func ConvertBase(digits string, from, to int) (string, error) {
	if from < minBase || from > maxBase {
		return "", fmt.Errorf("ConvertBase: from=%d: %w", from, ErrInvalidBase)
	}
	if to < minBase || to > maxBase {
		return "", fmt.Errorf("ConvertBase: to=%d: %w", to, ErrInvalidBase)
	}

	in := strings.TrimSpace(digits)
	var v big.Int
	if _, ok := v.SetString(in, from); !ok || strings.HasPrefix(in, "+") {
		return "", fmt.Errorf("ConvertBase: %q in base %d: %w", digits, from, ErrInvalidDigits)
	}

	return v.Text(to), nil
}
