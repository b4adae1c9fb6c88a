package mathops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{5, 3, 8},
		{-5, 3, -2},
		{0, 0, 0},
		{-4, -6, -10},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Add(test.a, test.b), "Add(%d, %d)", test.a, test.b)
	}

	assert.Equal(t, 3.0, Add(1.5, 1.5))
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{10, 3, 7},
		{3, 10, -7},
		{0, 0, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Subtract(test.a, test.b), "Subtract(%d, %d)", test.a, test.b)
	}

	assert.Equal(t, 5.0, Subtract(10.5, 5.5))
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{4, 5, 20},
		{-4, 5, -20},
		{7, 0, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Multiply(test.a, test.b), "Multiply(%d, %d)", test.a, test.b)
	}

	assert.Equal(t, 10.0, Multiply(5.0, 2.0))
}

func TestDivide(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{10, 2, 5},
		{1, 4, 0.25},
		{-9, 3, -3},
		{0, 7, 0},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Divide(test.a, test.b), "Divide(%g, %g)", test.a, test.b)
	}

	// Integer division truncates
	assert.Equal(t, 3, Divide(10, 3))
}

func TestDivideByZero(t *testing.T) {
	// Division by zero returns zero instead of signaling an error
	assert.Equal(t, 0.0, Divide(10.0, 0.0))
	assert.Equal(t, 0, Divide(42, 0))
	assert.Equal(t, 0.0, Divide(0.0, 0.0))
}

func TestDivideMatchesOperator(t *testing.T) {
	// For every nonzero divisor the result is exactly a / b
	pairs := []struct{ a, b float64 }{
		{10, 2},
		{1, 3},
		{-7.5, 2.5},
		{100, -4},
	}

	for _, p := range pairs {
		assert.Equal(t, p.a/p.b, Divide(p.a, p.b), "Divide(%g, %g)", p.a, p.b)
	}
}
