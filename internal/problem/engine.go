package problem

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Engine generates arithmetic problems for a difficulty tier. It holds no
// game state; the only thing that changes between calls is its random
// source.
type Engine struct {
	tiers map[int]TierConfig
	rng   *rand.Rand
	newID func() string
}

// New creates an Engine from cfg. A config without a tier 1 entry gets
// the default tier table.
func New(cfg Config) *Engine {
	tiers := cfg.Tiers
	if _, ok := tiers[1]; !ok {
		tiers = DefaultTiers()
	}
	return &Engine{
		tiers: tiers,
		rng:   cfg.source(),
		newID: uuid.NewString,
	}
}

// Tier returns the configuration for tier, falling back to tier 1.
func (e *Engine) Tier(tier int) TierConfig {
	if cfg, ok := e.tiers[tier]; ok {
		return cfg
	}
	return e.tiers[1]
}

// AllowedOperations returns the operators permitted at tier.
// Unknown tiers report tier 1's set.
func (e *Engine) AllowedOperations(tier int) []Operation {
	ops := e.Tier(tier).Operations
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out
}

// Generate builds a problem at tier. An empty op picks one of the tier's
// operators at random; an op the tier does not permit is replaced by the
// tier's first operator.
func (e *Engine) Generate(op Operation, tier int) Problem {
	cfg := e.Tier(tier)

	switch {
	case op == "":
		op = cfg.Operations[e.rng.IntN(len(cfg.Operations))]
	case !cfg.permits(op):
		op = cfg.Operations[0]
	}

	var a, b, answer int
	switch op {
	case OpAdd:
		a = e.between(cfg.Min, cfg.Max)
		b = e.between(cfg.Min, cfg.Max)
		answer = a + b
	case OpSubtract:
		a = e.between(cfg.Min, cfg.Max)
		b = e.between(cfg.Min, cfg.Max)
		if !cfg.AllowNegative && a < b {
			a, b = b, a
		}
		answer = a - b
	case OpMultiply:
		a = e.between(1, cfg.MaxFactor)
		b = e.between(1, cfg.MaxFactor)
		answer = a * b
	case OpDivide:
		divisor := e.between(1, cfg.MaxFactor)
		quotient := e.between(1, cfg.MaxFactor)
		a = divisor * quotient
		b = divisor
		answer = quotient
	}

	return Problem{
		ID:            e.newID(),
		Operand1:      a,
		Operand2:      b,
		Operation:     op,
		DisplayText:   fmt.Sprintf("%d %s %d", a, op.Glyph(), b),
		CorrectAnswer: float64(answer),
		Difficulty:    tier,
	}
}

// between returns a uniform integer in [lo, hi]. A reversed range is
// treated as the single value lo.
func (e *Engine) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + e.rng.IntN(hi-lo+1)
}
