// Package antispam implements the gate that sits in front of the public
// submission forms (subscribe, submit review, contact). A submission passes
// the gate only when the bot trap is empty, every field validates, and the
// arithmetic challenge is answered correctly; only then is it handed to the
// persistence port.
//
// The package has no knowledge of HTTP or of the database. Forms are plain
// state machines (see Form and Transition) so the whole flow can be driven
// from tests.
package antispam

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
)

// Operand bounds (inclusive) for generated problems.
const (
	OperandMin = 1
	OperandMax = 10
)

// Problem is a two-operand addition challenge.
type Problem struct {
	A int
	B int
}

// IsZero reports whether p is the zero Problem (no challenge issued).
func (p Problem) IsZero() bool { return p.A == 0 && p.B == 0 }

// Expected returns the correct answer.
func (p Problem) Expected() int { return p.A + p.B }

// Question renders the problem for display.
func (p Problem) Question() string { return fmt.Sprintf("What is %d + %d?", p.A, p.B) }

// Check reports whether answer is a well-formed integer equal to the expected
// sum. Surrounding whitespace is ignored; anything else that is not an
// integer (empty, "seven", "7.0") is simply a wrong answer. The zero Problem
// never checks.
func (p Problem) Check(answer string) bool {
	if p.IsZero() {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	return err == nil && n == p.Expected()
}

// Generator produces random Problems. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator returns a Generator drawing from src. A nil src uses the
// runtime's randomly seeded source.
func NewGenerator(src rand.Source) *Generator {
	g := &Generator{}
	if src != nil {
		g.rnd = rand.New(src)
	}
	return g
}

func (g *Generator) operand() int {
	const span = OperandMax - OperandMin + 1
	if g == nil || g.rnd == nil {
		return OperandMin + rand.IntN(span)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return OperandMin + g.rnd.IntN(span)
}

// Generate returns a fresh Problem with both operands in [OperandMin, OperandMax].
func (g *Generator) Generate() Problem {
	return Problem{A: g.operand(), B: g.operand()}
}

// Next returns a fresh Problem whose expected answer differs from prev's, so
// an answer that was already seen for prev can never satisfy the replacement.
// A zero prev behaves like Generate.
func (g *Generator) Next(prev Problem) Problem {
	for {
		p := g.Generate()
		if prev.IsZero() || p.Expected() != prev.Expected() {
			return p
		}
	}
}
