package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/wikisort/internal/gen"
)

func TestParseGenFlagsDefaultsFromConfig(t *testing.T) {
	cfg := Config{Dist: "uniform", N: 64}
	opts, err := parseGenFlags(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "uniform", opts.dist)
	assert.Equal(t, 64, opts.n)
	assert.Equal(t, int64(1), opts.seed)
}

func TestParseGenFlagsOverridesConfig(t *testing.T) {
	cfg := Config{Dist: "uniform", N: 64}
	opts, err := parseGenFlags(cfg, []string{"--dist", "sawtooth", "--n", "8", "--seed", "7"})
	require.NoError(t, err)
	assert.Equal(t, "sawtooth", opts.dist)
	assert.Equal(t, 8, opts.n)
	assert.Equal(t, int64(7), opts.seed)
}

func TestParseGenFlagsRejectsUnknownFlag(t *testing.T) {
	_, err := parseGenFlags(DefaultConfig(), []string{"--not-a-flag"})
	assert.Error(t, err)
}

func TestRunGenRejectsUnknownDistribution(t *testing.T) {
	cfg := Config{Dist: "not-a-real-distribution", N: 4}
	err := runGen(cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errUnknownDistribution)
}

// every name gen.Names advertises must actually be sampleable, since the
// REPL and CLI both print gen.Names verbatim as valid input.
func TestGenNamesAreAllSampleable(t *testing.T) {
	for _, name := range gen.Names {
		cfg := Config{Dist: name, N: 16}
		assert.NoErrorf(t, runGenDiscardingOutput(cfg), "distribution %q advertised in gen.Names but rejected by runGen", name)
	}
}

func runGenDiscardingOutput(cfg Config) error {
	_, err := gen.Sample(cfg.Dist, cfg.N, rand.New(rand.NewSource(1)))
	return err
}
