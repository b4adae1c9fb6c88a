package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator(t *testing.T) {
	calc := New()

	// Initial register value
	assert.Equal(t, 0.0, calc.Result())

	calc.Add(10.5)
	assert.Equal(t, 10.5, calc.Result())

	calc.Subtract(5.5)
	assert.Equal(t, 5.0, calc.Result())

	calc.Multiply(2.0)
	assert.Equal(t, 10.0, calc.Result())

	calc.Divide(5.0)
	assert.Equal(t, 2.0, calc.Result())

	calc.Clear()
	assert.Equal(t, 0.0, calc.Result())
}

func TestDivideByZeroIsNoOp(t *testing.T) {
	// Dividing by zero leaves the register untouched, unlike
	// mathops.Divide which returns zero
	calc := New()
	calc.Add(7.5)

	calc.Divide(0)
	assert.Equal(t, 7.5, calc.Result())
}

func TestResultDoesNotMutate(t *testing.T) {
	calc := New()
	calc.Add(3)

	assert.Equal(t, 3.0, calc.Result())
	assert.Equal(t, 3.0, calc.Result())
}

func TestChaining(t *testing.T) {
	// ((0 + 10 - 5) * 2) / 2 = 5
	calc := New()
	calc.Add(10)
	calc.Subtract(5)
	calc.Multiply(2)
	calc.Divide(2)

	assert.Equal(t, 5.0, calc.Result())
}
