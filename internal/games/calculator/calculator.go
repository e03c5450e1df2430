// Package calculator implements a four-function calculator that evaluates
// left to right as operators are entered.
package calculator

import (
	"errors"
	"strconv"
)

// ErrDivisionByZero is returned when the pending operation divides by zero.
var ErrDivisionByZero = errors.New("calculator: division by zero")

// DefaultMaxDigits is the entry length limit, sign included.
const DefaultMaxDigits = 10

// Operator is a binary arithmetic operator.
type Operator rune

const (
	OpNone Operator = 0
	OpAdd  Operator = '+'
	OpSub  Operator = '-'
	OpMul  Operator = '*'
	OpDiv  Operator = '/'
)

// ParseOperator maps a typed character to an operator.
func ParseOperator(r rune) (Operator, bool) {
	switch op := Operator(r); op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return op, true
	}
	return OpNone, false
}

func (op Operator) apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	}
	return b, nil
}

// Calculator holds the entry state. Every input method returns the text
// to show on the display.
type Calculator struct {
	maxDigits int

	current       float64
	previous      float64
	pending       Operator
	newNumber     bool // next digit starts a new entry
	errState      bool
	negativeFirst bool // a leading '-' was typed for the next entry
}

// NewCalculator creates a cleared calculator. A non-positive maxDigits
// selects DefaultMaxDigits.
func NewCalculator(maxDigits int) *Calculator {
	if maxDigits <= 0 {
		maxDigits = DefaultMaxDigits
	}
	c := &Calculator{maxDigits: maxDigits}
	c.Clear()
	return c
}

// Clear resets to 0 with nothing pending.
func (c *Calculator) Clear() {
	c.current = 0
	c.previous = 0
	c.pending = OpNone
	c.newNumber = true
	c.errState = false
	c.negativeFirst = false
}

// Digit appends d to the current entry. Digits that would make the entry
// longer than the limit are dropped.
func (c *Calculator) Digit(d rune) string {
	if d < '0' || d > '9' {
		return Format(c.current)
	}
	if c.errState {
		c.Clear()
	}

	entry := ""
	if !c.newNumber {
		entry = Format(c.current)
	}
	entry += string(d)
	if len(entry) > c.maxDigits {
		return Format(c.current)
	}

	v, err := strconv.ParseFloat(entry, 64)
	if err != nil {
		return Format(c.current)
	}
	c.current = v
	c.newNumber = false

	if c.negativeFirst {
		if c.current != 0 {
			c.current = -c.current
		}
		c.negativeFirst = false
	}
	return Format(c.current)
}

// Operator folds any pending operation and stores op. A '-' at the start
// of an entry negates the next number instead.
func (c *Calculator) Operator(op Operator) string {
	if c.errState {
		c.Clear()
	}

	if op == OpSub && c.newNumber {
		c.negativeFirst = true
		return "-"
	}

	if c.pending != OpNone {
		v, err := c.pending.apply(c.previous, c.current)
		if err != nil {
			c.errState = true
			return "Error"
		}
		c.current = v
	}

	c.previous = c.current
	c.pending = op
	c.newNumber = true
	return Format(c.current)
}

// Equals evaluates the pending operation. With no pending operation or no
// second operand the current value is shown unchanged.
func (c *Calculator) Equals() string {
	if c.errState {
		c.Clear()
		return "0"
	}
	if c.pending == OpNone || c.newNumber {
		return Format(c.current)
	}

	v, err := c.pending.apply(c.previous, c.current)
	if errors.Is(err, ErrDivisionByZero) {
		c.errState = true
		return "Error: Division by zero"
	}
	if err != nil {
		c.errState = true
		return "Error"
	}
	c.current = v
	c.pending = OpNone
	c.newNumber = true
	return Format(v)
}

// Value returns the current value.
func (c *Calculator) Value() float64 { return c.current }

// Pending returns the operator waiting for its second operand.
func (c *Calculator) Pending() Operator { return c.pending }

// Err reports whether the calculator is in the error state.
func (c *Calculator) Err() bool { return c.errState }

// Format renders v without trailing zeros: 5 -> "5", 5.50 -> "5.5".
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
