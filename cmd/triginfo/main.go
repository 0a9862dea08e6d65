// Command triginfo prints the measured accuracy of the fast trigonometric
// approximations.
//
// Usage:
//
//	triginfo [flags] [function-name ...]
//
// Without arguments it prints the table for all known functions.
//
// Examples:
//
//	triginfo sin cos
//	triginfo -samples 100001 atan2
//	triginfo -float32 -spur
//	triginfo -cpu
//	triginfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-trig/fasttrig"
	"github.com/cwbudde/algo-trig/measure/accuracy"
	"github.com/cwbudde/algo-trig/measure/spur"
	"github.com/cwbudde/algo-vecmath/cpu"
)

type funcEntry struct {
	name     string
	approx   accuracy.Func
	approx32 func(float32) float32
	exact    accuracy.Func
	lo, hi   float64
	exclude  func(float64) bool

	// tone marks functions that can drive a spur analysis.
	tone bool
}

func nearTanAsymptote(x float64) bool {
	return math.Abs(math.Cos(x)) < 0.05
}

var registry = []funcEntry{
	{
		name: "sin", approx: fasttrig.FastSin[float64], approx32: fasttrig.FastSin[float32], exact: math.Sin,
		lo: -2 * math.Pi, hi: 2 * math.Pi, tone: true,
	},
	{
		name: "cos", approx: fasttrig.FastCos[float64], approx32: fasttrig.FastCos[float32], exact: math.Cos,
		lo: -2 * math.Pi, hi: 2 * math.Pi, tone: true,
	},
	{
		name: "tan", approx: fasttrig.FastTan[float64], approx32: fasttrig.FastTan[float32], exact: math.Tan,
		lo: -2 * math.Pi, hi: 2 * math.Pi, exclude: nearTanAsymptote,
	},
	{
		name: "asin", approx: fasttrig.FastAsin[float64], approx32: fasttrig.FastAsin[float32], exact: math.Asin,
		lo: -1, hi: 1,
	},
	{
		name: "acos", approx: fasttrig.FastAcos[float64], approx32: fasttrig.FastAcos[float32], exact: math.Acos,
		lo: -1, hi: 1,
	},
	{
		name: "atan", approx: fasttrig.FastAtan[float64], approx32: fasttrig.FastAtan[float32], exact: math.Atan,
		lo: -16, hi: 16,
	},
	{
		name: "atan2", approx: atan2OnCircle, approx32: atan2OnCircle32, exact: exactAtan2OnCircle,
		lo: -math.Pi, hi: math.Pi,
	},
}

// The atan2 entries walk the unit circle: x is the angle of the point.
func atan2OnCircle(t float64) float64 {
	return fasttrig.FastAtan2(math.Sin(t), math.Cos(t))
}

func atan2OnCircle32(t float32) float32 {
	s, c := math.Sincos(float64(t))
	return fasttrig.FastAtan2(float32(s), float32(c))
}

func exactAtan2OnCircle(t float64) float64 {
	return math.Atan2(math.Sin(t), math.Cos(t))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("triginfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	samples := fs.Int("samples", 10001, "number of sample points per function")
	use32 := fs.Bool("float32", false, "measure the float32 instantiation")
	showSpur := fs.Bool("spur", false, "append harmonic analysis for sin and cos")
	showCPU := fs.Bool("cpu", false, "print detected SIMD features")
	all := fs.Bool("all", false, "show all functions")
	list := fs.Bool("list", false, "list available function names")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: triginfo [flags] [function-name ...]\n\n")
		fmt.Fprintf(stderr, "Prints the accuracy of the fast trigonometric approximations.\n")
		fmt.Fprintf(stderr, "Without arguments or with -all, prints every function.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  triginfo sin cos\n")
		fmt.Fprintf(stderr, "  triginfo -float32 -spur\n")
		fmt.Fprintf(stderr, "  triginfo -list\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		printList(stdout)
		return 0
	}

	if *showCPU {
		printCPU(stdout)
	}

	names := fs.Args()
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

	if err := printAccuracy(stdout, entries, *samples, *use32); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if *showSpur {
		if err := printSpur(stdout, entries, *use32); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	return 0
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

func printCPU(w io.Writer) {
	f := cpu.DetectFeatures()
	fmt.Fprintf(w, "cpu: arch=%s sse2=%t avx=%t avx2=%t avx512=%t neon=%t\n\n",
		f.Architecture, f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON)
}

func resolveEntries(names []string, stderr io.Writer) []funcEntry {
	byName := make(map[string]funcEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []funcEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		name = strings.TrimPrefix(name, "fast")
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown function %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printAccuracy(w io.Writer, entries []funcEntry, samples int, use32 bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tType\tDomain\tPoints\tMax Abs Err\tRMS Err\tMean Err\tWorst x\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t----\t------\t------\t-----------\t-------\t--------\t-------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	typ := "float64"
	if use32 {
		typ = "float32"
	}

	for _, e := range entries {
		approx := e.approx
		if use32 {
			approx = accuracy.Narrow(e.approx32)
		}

		opts := []accuracy.Option{
			accuracy.WithRange(e.lo, e.hi),
			accuracy.WithSamples(samples),
		}
		if e.exclude != nil {
			opts = append(opts, accuracy.WithExclusion(e.exclude))
		}

		res, err := accuracy.Compare(approx, e.exact, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%s\t[%.4g, %.4g]\t%d\t%.3e\t%.3e\t%+.3e\t%.6f\n",
			e.name,
			typ,
			e.lo, e.hi,
			res.Samples,
			res.MaxAbsError,
			res.RMSError,
			res.MeanError,
			res.WorstInput,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func printSpur(w io.Writer, entries []funcEntry, use32 bool) error {
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("write separator: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Function\tFundamental\tTHD [dB]\tSFDR [dB]\tH2\tH3\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--------\t-----------\t--------\t---------\t--\t--\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, e := range entries {
		if !e.tone {
			continue
		}

		osc := spur.Func(e.approx)
		if use32 {
			osc = spur.Func(accuracy.Narrow(e.approx32))
		}

		res, err := spur.Analyze(osc, spur.Config{})
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}

		h2, h3 := harmonic(res, 0), harmonic(res, 1)
		if _, err := fmt.Fprintf(tw, "%s\t%.9f\t%.1f\t%.1f\t%.2e\t%.2e\n",
			e.name, res.FundamentalLevel, res.THDdB, res.SFDRdB, h2, h3); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}

func harmonic(res spur.Result, i int) float64 {
	if i < len(res.Harmonics) {
		return res.Harmonics[i]
	}
	return 0
}
