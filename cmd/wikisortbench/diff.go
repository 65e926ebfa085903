package main

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/go-cmp/cmp"
	flag "github.com/spf13/pflag"

	"github.com/shibukawa/wikisort"
	"github.com/shibukawa/wikisort/internal/gen"
	"github.com/shibukawa/wikisort/internal/reference"
)

type diffOptions struct {
	dist   string
	n      int
	trials int
}

func parseDiffFlags(cfg Config, args []string) (diffOptions, error) {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	dist := fs.String("dist", cfg.Dist, "distribution name")
	n := fs.Int("n", cfg.N, "number of elements per trial")
	trials := fs.Int("trials", 20, "number of trials to run")
	if err := fs.Parse(args); err != nil {
		return diffOptions{}, err
	}
	return diffOptions{dist: *dist, n: *n, trials: *trials}, nil
}

func compareInt(a, b int) int { return a - b }

func runDiff(cfg Config, args []string) error {
	opts, err := parseDiffFlags(cfg, args)
	if err != nil {
		return err
	}

	for trial := 0; trial < opts.trials; trial++ {
		rng := rand.New(rand.NewSource(int64(trial) + 1))
		input, err := gen.Sample(opts.dist, opts.n, rng)
		if err != nil {
			return fmt.Errorf("%w: %v", errUnknownDistribution, err)
		}

		got := append([]int(nil), input...)
		wikisort.Sort(got, compareInt)
		want := reference.Sort(input, compareInt)

		if diff := cmp.Diff(want, got); diff != "" {
			return fmt.Errorf("%w: trial %d (dist=%s n=%d) value mismatch (-want +got):\n%s",
				errDivergence, trial, opts.dist, opts.n, diff)
		}
		if !multisetEqual(input, got) {
			return fmt.Errorf("%w: trial %d: output is not a permutation of the input", errDivergence, trial)
		}

		if err := checkStability(opts.n, rng); err != nil {
			return fmt.Errorf("%w: trial %d: %v", errDivergence, trial, err)
		}
	}

	fmt.Printf("ok: %d trials, dist=%s n=%d, no divergence from reference\n", opts.trials, opts.dist, opts.n)
	return nil
}

func checkStability(n int, rng *rand.Rand) error {
	keys, err := gen.Sample("small_domain", n, rng)
	if err != nil {
		return err
	}
	a := make([]gen.Keyed, n)
	for i, k := range keys {
		a[i] = gen.Keyed{Key: k, Seq: i}
	}
	wikisort.Sort(a, gen.CompareKeyed)

	lastKey, lastSeq := -1, -1
	for _, v := range a {
		if v.Key < lastKey || (v.Key == lastKey && v.Seq < lastSeq) {
			return fmt.Errorf("stability violated at key=%d seq=%d after key=%d seq=%d", v.Key, v.Seq, lastKey, lastSeq)
		}
		lastKey, lastSeq = v.Key, v.Seq
	}
	return nil
}

func multisetEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ca, cb := append([]int(nil), a...), append([]int(nil), b...)
	sort.Ints(ca)
	sort.Ints(cb)
	for i := range ca {
		if ca[i] != cb[i] {
			return false
		}
	}
	return true
}
