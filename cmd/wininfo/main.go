// Command wininfo prints the amplitude correction of the window functions
// used for time-domain transforms.
//
// Usage:
//
//	wininfo [flags] [window-name ...]
//
// Without arguments it prints info for all known window types.
//
// Examples:
//
//	wininfo hann
//	wininfo -size 101 blackman kaiser
//	wininfo -size 101 -beta 13 kaiser
//	wininfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-tdr/dsp/window"
)

type windowEntry struct {
	name    string
	typ     window.Type
	hasBeta bool
	defBeta float64
}

var registry = []windowEntry{
	{"rectangular", window.TypeRectangular, false, 0},
	{"hann", window.TypeHann, false, 0},
	{"hamming", window.TypeHamming, false, 0},
	{"blackman", window.TypeBlackman, false, 0},
	{"kaiser", window.TypeKaiser, true, 6},
}

func main() {
	size := flag.Int("size", 1024, "window length in samples")
	beta := flag.Float64("beta", math.NaN(), "beta parameter for the Kaiser window")
	list := flag.Bool("list", false, "list available window names")
	periodic := flag.Bool("periodic", false, "use periodic (FFT) form instead of symmetric")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wininfo [flags] [window-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the amplitude correction of window functions.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all windows.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wininfo hann blackman\n")
		fmt.Fprintf(os.Stderr, "  wininfo -size 101 -beta 13 kaiser\n")
		fmt.Fprintf(os.Stderr, "  wininfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names, *beta)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching window types\n")
		os.Exit(1)
	}

	var opts []window.Option
	if *periodic {
		opts = append(opts, window.WithPeriodic())
	}

	printTable(entries, *size, opts)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

type resolvedEntry struct {
	windowEntry
	betaOverride float64
}

func resolveEntries(names []string, betaFlag float64) []resolvedEntry {
	byName := make(map[string]windowEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []resolvedEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown window %q (use -list to see available)\n", name)
			continue
		}
		b := e.defBeta
		if e.hasBeta && !math.IsNaN(betaFlag) {
			b = betaFlag
		}
		result = append(result, resolvedEntry{e, b})
	}
	return result
}

func printTable(entries []resolvedEntry, size int, baseOpts []window.Option) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tCorrection\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t----------\n")

	for _, e := range entries {
		opts := append([]window.Option(nil), baseOpts...)
		if e.hasBeta {
			opts = append(opts, window.WithBeta(e.betaOverride))
		}

		meta := window.Info(e.typ)
		corr := window.Correction(e.typ, size, opts...)

		label := e.name
		if e.hasBeta {
			label = fmt.Sprintf("%s (beta=%.2f)", e.name, e.betaOverride)
		}

		gain := "-"
		if !math.IsNaN(meta.CoherentGain) {
			gain = fmt.Sprintf("%.6f", meta.CoherentGain)
		}

		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\n", label, size, gain, corr)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
