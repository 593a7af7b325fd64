package problem

import (
	"math"
	"strconv"
	"strings"
)

// Epsilon is the tolerance used when comparing a typed answer to the
// correct value.
const Epsilon = 1e-4

// CheckAnswer reports whether input is a number within Epsilon of correct.
//
// Whitespace is trimmed. Empty input, text that does not parse as a
// number, and non-finite values are all incorrect.
func CheckAnswer(input string, correct float64) bool {
	n, ok := ParseAnswer(input)
	if !ok {
		return false
	}
	return math.Abs(n-correct) < Epsilon
}

// ParseAnswer converts typed input to a number.
func ParseAnswer(input string) (float64, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// FormatAnswer renders an answer the way the player would type it.
func FormatAnswer(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
