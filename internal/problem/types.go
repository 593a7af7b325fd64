package problem

// Operation is one of the four arithmetic operators.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"
)

// Glyph returns the symbol shown to the player for the operation.
func (o Operation) Glyph() string {
	switch o {
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	default:
		return string(o)
	}
}

// Problem is a single generated arithmetic problem. Values are never
// mutated after generation.
type Problem struct {
	// ID is an opaque unique token for this problem.
	ID string

	Operand1  int
	Operand2  int
	Operation Operation

	// DisplayText is the rendered expression, e.g. "7 × 8".
	DisplayText string

	// CorrectAnswer is the exact result of applying Operation to the operands.
	CorrectAnswer float64

	// Difficulty is the tier this problem was generated for.
	Difficulty int
}

// TierConfig describes what problems look like at a tier.
type TierConfig struct {
	// Min and Max bound operands for addition and subtraction (inclusive).
	Min int
	Max int

	// Operations lists the permitted operators. The first entry is the
	// fallback when a caller asks for an operator the tier does not allow.
	Operations []Operation

	// MaxFactor bounds both factors of multiplication and the divisor and
	// quotient of division.
	MaxFactor int

	// AllowNegative permits subtraction results below zero.
	AllowNegative bool
}

// permits reports whether op is allowed at this tier.
func (c TierConfig) permits(op Operation) bool {
	for _, o := range c.Operations {
		if o == op {
			return true
		}
	}
	return false
}
