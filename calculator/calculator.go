// Package calculator implements a running-total calculator.
package calculator

// Calculator holds a single floating-point register mutated in place
// by sequential operations.
type Calculator struct {
	result float64
}

// New creates a calculator with the register at zero
func New() *Calculator {
	return &Calculator{result: 0}
}

// Add adds a value to the register
func (c *Calculator) Add(value float64) {
	c.result += value
}

// Subtract subtracts a value from the register
func (c *Calculator) Subtract(value float64) {
	c.result -= value
}

// Multiply multiplies the register by a value
func (c *Calculator) Multiply(value float64) {
	c.result *= value
}

// Divide divides the register by a value.
// Dividing by zero leaves the register unchanged. Note this differs from
// mathops.Divide, which returns zero; both behaviors are contractual.
func (c *Calculator) Divide(value float64) {
	if value != 0 {
		c.result /= value
	}
}

// Clear resets the register to zero
func (c *Calculator) Clear() {
	c.result = 0
}

// Result returns the current register value
func (c *Calculator) Result() float64 {
	return c.result
}
