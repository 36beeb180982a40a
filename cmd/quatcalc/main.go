// Command quatcalc evaluates quaternion functions on a quaternion literal.
//
// Usage:
//
//	quatcalc [flags] <quaternion> [function ...]
//
// Without function names it prints the results of all known functions.
// A quaternion that starts with a minus sign must follow "--" so it is not
// read as a flag.
//
// Examples:
//
//	quatcalc "1 + 2i - 3j + 4k" exp log sqrt
//	quatcalc -pow 2.5 "0.5 + i" powf
//	quatcalc -format nospace,ones "i + j" sin cos
//	quatcalc -gonum "1 + i + j" exp sin
//	quatcalc -- -4 sqrt
//	quatcalc -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-quat/adapter/gonumquat"
	"github.com/cwbudde/algo-quat/quat"
)

type q64 = quat.Quat[float64]

type params struct {
	pow float64
}

type funcEntry struct {
	name string
	fn   func(q q64, p params) q64
}

func unary(f func(q64) q64) func(q64, params) q64 {
	return func(q q64, _ params) q64 { return f(q) }
}

var registry = []funcEntry{
	{"neg", unary(q64.Neg)},
	{"conj", unary(q64.Conj)},
	{"inv", unary(q64.Inv)},
	{"norm", unary(q64.Norm)},
	{"square", unary(q64.Square)},
	{"exp", unary(quat.Exp[float64])},
	{"log", unary(quat.Ln[float64])},
	{"sqrt", unary(quat.Sqrt[float64])},
	{"powf", func(q q64, p params) q64 { return quat.PowF(q, p.pow) }},
	{"powi", func(q q64, p params) q64 { return quat.PowI(q, int(p.pow)) }},
	{"sin", unary(quat.Sin[float64])},
	{"cos", unary(quat.Cos[float64])},
	{"tan", unary(quat.Tan[float64])},
	{"cot", unary(quat.Cot[float64])},
	{"sec", unary(quat.Sec[float64])},
	{"csc", unary(quat.Csc[float64])},
	{"sinh", unary(quat.Sinh[float64])},
	{"cosh", unary(quat.Cosh[float64])},
	{"tanh", unary(quat.Tanh[float64])},
	{"coth", unary(quat.Coth[float64])},
	{"sech", unary(quat.Sech[float64])},
	{"csch", unary(quat.Csch[float64])},
	{"asin", unary(quat.Asin[float64])},
	{"acos", unary(quat.Acos[float64])},
	{"atan", unary(quat.Atan[float64])},
	{"acot", unary(quat.Acot[float64])},
	{"asec", unary(quat.Asec[float64])},
	{"acsc", unary(quat.Acsc[float64])},
	{"asinh", unary(quat.Asinh[float64])},
	{"acosh", unary(quat.Acosh[float64])},
	{"atanh", unary(quat.Atanh[float64])},
	{"acoth", unary(quat.Acoth[float64])},
	{"asech", unary(quat.Asech[float64])},
	{"acsch", unary(quat.Acsch[float64])},
	{"gamma", unary(quat.Gamma[float64])},
	{"lngamma", unary(quat.LnGamma[float64])},
}

var formatFlags = map[string]quat.Format{
	"spacefirst": quat.FormatSpaceFirst,
	"nospace":    quat.FormatNoSpacing,
	"ones":       quat.FormatShowOnes,
	"real":       quat.FormatExplicitReal,
	"plus":       quat.FormatExplicitPlus,
	"zeros":      quat.FormatShowZeros,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("quatcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	pow := fs.Float64("pow", 2, "exponent for powf and powi")
	all := fs.Bool("all", false, "evaluate all functions")
	list := fs.Bool("list", false, "list available function names")
	format := fs.String("format", "", "comma-separated output flags: "+strings.Join(sortedKeys(formatFlags), ", "))
	compare := fs.Bool("gonum", false, "compare with gonum num/quat where it has the function")
	showCPU := fs.Bool("cpu", false, "print the SIMD features used by the batch kernels")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: quatcalc [flags] <quaternion> [function ...]\n\n")
		fmt.Fprintf(stderr, "Evaluates quaternion functions on a quaternion literal such as \"1 + 2i - 3j + 4k\".\n")
		fmt.Fprintf(stderr, "Without function names or with -all, evaluates every function.\n")
		fmt.Fprintf(stderr, "Put -- before a quaternion that starts with a minus sign.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  quatcalc \"1 + 2i - 3j + 4k\" exp log sqrt\n")
		fmt.Fprintf(stderr, "  quatcalc -pow 2.5 \"0.5 + i\" powf\n")
		fmt.Fprintf(stderr, "  quatcalc -gonum \"1 + i + j\" exp sin\n")
		fmt.Fprintf(stderr, "  quatcalc -- -4 sqrt\n")
		fmt.Fprintf(stderr, "  quatcalc -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if lit := negativeLiteral(args); lit != "" {
			fmt.Fprintf(stderr, "hint: use quatcalc -- %q to pass a negative quaternion\n", lit)
		}

		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	if *showCPU {
		f := cpu.DetectFeatures()
		fmt.Fprintf(stdout, "arch=%s sse2=%t avx2=%t\n", f.Architecture, f.HasSSE2, f.HasAVX2)

		if fs.NArg() == 0 {
			return 0
		}
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	f, err := parseFormat(*format)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	q, err := quat.Parse[float64](fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	names := fs.Args()[1:]
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, stderr)
	if len(entries) == 0 {
		fmt.Fprintf(stderr, "error: no matching functions\n")
		return 1
	}

	if err := printResults(stdout, q, entries, params{pow: *pow}, f, *compare); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// negativeLiteral returns the first argument that starts with a minus sign
// and parses as a quaternion, or "".
func negativeLiteral(args []string) string {
	for _, a := range args {
		if a == "--" {
			break
		}

		if strings.HasPrefix(a, "-") {
			if _, err := quat.Parse[float64](a); err == nil {
				return a
			}
		}
	}

	return ""
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func parseFormat(s string) (quat.Format, error) {
	var f quat.Format

	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		bit, ok := formatFlags[name]
		if !ok {
			return 0, fmt.Errorf("unknown format flag %q", name)
		}

		f = f.With(bit)
	}

	return f, nil
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}

	sort.Strings(names)

	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(names []string, stderr io.Writer) []funcEntry {
	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry

	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}

		result = append(result, e)
	}

	return result
}

func printResults(w io.Writer, q q64, entries []funcEntry, p params, f quat.Format, compare bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Function\tResult\t|Result|"
	rule := "--------\t------\t--------"

	if compare {
		header += "\tgonum |diff|"
		rule += "\t------------"
	}

	if _, err := fmt.Fprintf(tw, "%s\n%s\n", header, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range entries {
		r := e.fn(q, p)
		row := fmt.Sprintf("%s\t%s\t%.6g", e.name, quat.FormatString(r, f), r.Abs())

		if compare {
			diff := "-"
			if g, ok := gonumquat.Functions[e.name]; ok {
				diff = fmt.Sprintf("%.3g", r.DistEuclid(gonumquat.Lift(g)(q)))
			}

			row += "\t" + diff
		}

		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}
