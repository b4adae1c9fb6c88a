package main

import (
	"flag"
	"io"
	"os"

	"github.com/bond-kaneko/go-calc-check/calculator"
	"github.com/bond-kaneko/go-calc-check/checker"
	"github.com/bond-kaneko/go-calc-check/mathops"
	"github.com/bond-kaneko/go-calc-check/stringutil"
)

func main() {
	// Configure command line arguments
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	quietFlag := flag.Bool("q", false, "Only print the summary block")
	flag.Parse()

	var opts []checker.Option
	if *noColorFlag {
		opts = append(opts, checker.WithoutColor())
	}
	if *quietFlag {
		opts = append(opts, checker.Quiet())
	}

	os.Exit(run(os.Stdout, opts...))
}

// run executes the fixed check suite against out and returns the
// process exit code.
func run(out io.Writer, opts ...checker.Option) int {
	r := checker.New(out, opts...)
	r.Header("Calculator Test Suite")

	r.Section("Testing math operations...")
	r.Check("Add(5, 3) = 8", mathops.Add(5, 3) == 8)
	r.Check("Subtract(10, 3) = 7", mathops.Subtract(10, 3) == 7)
	r.Check("Multiply(4, 5) = 20", mathops.Multiply(4, 5) == 20)
	r.Check("Divide(10, 2) = 5.0", mathops.Divide(10.0, 2.0) == 5.0)
	r.Check("Divide(10, 0) returns 0 (safe)", mathops.Divide(10.0, 0.0) == 0)

	r.Section("Testing calculator...")
	calc := calculator.New()
	calc.Add(10.5)
	r.Check("Add(10.5) = 10.5", calc.Result() == 10.5)
	calc.Subtract(5.5)
	r.Check("Subtract(5.5) = 5.0", calc.Result() == 5.0)
	calc.Multiply(2.0)
	r.Check("Multiply(2.0) = 10.0", calc.Result() == 10.0)
	calc.Divide(5.0)
	r.Check("Divide(5.0) = 2.0", calc.Result() == 2.0)
	calc.Clear()
	r.Check("Clear() resets to 0.0", calc.Result() == 0)

	r.Section("Testing string transforms...")
	r.Check(`Reverse("hello") = "olleh"`, stringutil.Reverse("hello") == "olleh")
	r.Check(`ToUpper("hello") = "HELLO"`, stringutil.ToUpper("hello") == "HELLO")
	r.Check(`ToLower("WORLD") = "world"`, stringutil.ToLower("WORLD") == "world")

	r.PrintSummary()
	return r.ExitCode()
}
