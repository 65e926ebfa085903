package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/shibukawa/wikisort/internal/gen"
)

type genOptions struct {
	dist string
	n    int
	seed int64
}

func parseGenFlags(cfg Config, args []string) (genOptions, error) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	dist := fs.String("dist", cfg.Dist, "distribution name (see internal/gen.Names)")
	n := fs.Int("n", cfg.N, "number of elements to generate")
	seed := fs.Int64("seed", 1, "random seed")
	if err := fs.Parse(args); err != nil {
		return genOptions{}, err
	}
	return genOptions{dist: *dist, n: *n, seed: *seed}, nil
}

func runGen(cfg Config, args []string) error {
	opts, err := parseGenFlags(cfg, args)
	if err != nil {
		return err
	}

	values, err := gen.Sample(opts.dist, opts.n, rand.New(rand.NewSource(opts.seed)))
	if err != nil {
		return fmt.Errorf("%w: %v", errUnknownDistribution, err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
