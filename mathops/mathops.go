// Package mathops provides basic arithmetic as pure free functions.
package mathops

// Number covers the operand types the arithmetic functions accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Add returns a + b
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a - b
func Subtract[T Number](a, b T) T {
	return a - b
}

// Multiply returns a * b
func Multiply[T Number](a, b T) T {
	return a * b
}

// Divide returns a / b, or zero when b is zero.
// Division by zero is treated as a defined safe result, not an error.
func Divide[T Number](a, b T) T {
	var zero T
	if b == zero {
		return zero
	}
	return a / b
}
