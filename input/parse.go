// Package input parses numeric answers and runs the ask-until-valid
// prompts used by the interactive session.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse reports text that is not a decimal number.
var ErrParse = errors.New("not a number")

// ParseFloat parses signed decimal text such as "10000", "-1.5" or ".25".
// NaN and infinities are rejected.
func ParseFloat(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrParse)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q out of range", ErrParse, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}
