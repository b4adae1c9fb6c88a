// Package stringutil provides byte-wise ASCII string transforms.
// Multi-byte encoded input is outside the supported domain.
package stringutil

// Reverse returns the input with byte order inverted, swapping
// symmetrically around the midpoint.
func Reverse(input string) string {
	b := []byte(input)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// ToUpper maps each byte in 'a'..'z' to 'A'..'Z'; everything else
// passes through unchanged.
func ToUpper(input string) string {
	b := []byte(input)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 32
		}
	}
	return string(b)
}

// ToLower maps each byte in 'A'..'Z' to 'a'..'z'; everything else
// passes through unchanged.
func ToLower(input string) string {
	b := []byte(input)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 32
		}
	}
	return string(b)
}
