// Package script parses and evaluates calculator scripts.
//
// A script is plain text with one operation per line:
//
//	add 10.5
//	sub 5.5
//	mul 2
//	div 5
//	clear
//
// Blank lines and lines starting with '#' are ignored. Evaluation
// applies the operations in order to a fresh calculator; a "div 0"
// line leaves the register unchanged, matching calculator.Divide.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bond-kaneko/go-calc-check/calculator"
)

// Op is one parsed script operation.
type Op struct {
	Name    string
	Operand float64
	Line    int
}

// Parse reads operations from r until EOF.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		name := strings.ToLower(fields[0])

		switch name {
		case "clear":
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: clear takes no operand", line)
			}
			ops = append(ops, Op{Name: name, Line: line})
		case "add", "sub", "mul", "div":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: %s takes exactly one operand", line, name)
			}
			operand, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid operand %q: %w", line, fields[1], err)
			}
			ops = append(ops, Op{Name: name, Operand: operand, Line: line})
		default:
			return nil, fmt.Errorf("line %d: unknown operation %q", line, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return ops, nil
}

// ParseFile parses the script at path.
func ParseFile(path string) ([]Op, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Eval applies ops in order to a fresh calculator and returns the
// final register value.
func Eval(ops []Op) float64 {
	calc := calculator.New()
	for _, op := range ops {
		switch op.Name {
		case "add":
			calc.Add(op.Operand)
		case "sub":
			calc.Subtract(op.Operand)
		case "mul":
			calc.Multiply(op.Operand)
		case "div":
			calc.Divide(op.Operand)
		case "clear":
			calc.Clear()
		}
	}
	return calc.Result()
}

// EvalFile parses and evaluates the script at path.
func EvalFile(path string) (float64, error) {
	ops, err := ParseFile(path)
	if err != nil {
		return 0, err
	}
	return Eval(ops), nil
}
