package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/cpu"

	"github.com/shibukawa/wikisort"
	"github.com/shibukawa/wikisort/internal/gen"
)

type benchOptions struct {
	dist      string
	sizes     []int
	cacheSize int
	outDir    string
}

type benchResult struct {
	Dist      string        `json:"dist"`
	N         int           `json:"n"`
	CacheSize int           `json:"cache_size"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

type benchReport struct {
	CPU     string        `json:"cpu_features"`
	Results []benchResult `json:"results"`
}

func parseBenchFlags(cfg Config, args []string) (benchOptions, error) {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	dist := fs.String("dist", cfg.Dist, "distribution name")
	sizesStr := fs.String("n", strconv.Itoa(cfg.N), "comma-separated list of input sizes")
	cacheSize := fs.Int("cache-size", cfg.CacheSize, "fixed scratch buffer size passed to SortWithBuffer")
	outDir := fs.String("out-dir", cfg.OutDir, "directory to write the JSON report into")
	if err := fs.Parse(args); err != nil {
		return benchOptions{}, err
	}

	var sizes []int
	for _, part := range strings.Split(*sizesStr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return benchOptions{}, fmt.Errorf("%w: invalid size %q", errConfigInvalid, part)
		}
		sizes = append(sizes, n)
	}
	if len(sizes) == 0 {
		sizes = []int{cfg.N}
	}

	return benchOptions{dist: *dist, sizes: sizes, cacheSize: *cacheSize, outDir: resolveOutDir(*outDir)}, nil
}

func resolveOutDir(d string) string {
	if d == "" {
		return "."
	}
	return d
}

func cpuFeatureLine() string {
	var feats []string
	if cpu.X86.HasAVX2 {
		feats = append(feats, "avx2")
	}
	if cpu.X86.HasAVX {
		feats = append(feats, "avx")
	}
	if cpu.X86.HasSSE42 {
		feats = append(feats, "sse4.2")
	}
	if cpu.ARM64.HasASIMD {
		feats = append(feats, "asimd")
	}
	if len(feats) == 0 {
		return "unknown"
	}
	return strings.Join(feats, ",")
}

func runBench(cfg Config, args []string) error {
	opts, err := parseBenchFlags(cfg, args)
	if err != nil {
		return err
	}

	fmt.Printf("cpu features: %s\n", cpuFeatureLine())

	report := benchReport{CPU: cpuFeatureLine()}
	rng := rand.New(rand.NewSource(1))

	for _, n := range opts.sizes {
		input, err := gen.Sample(opts.dist, n, rng)
		if err != nil {
			return fmt.Errorf("%w: %v", errUnknownDistribution, err)
		}
		a := append([]int(nil), input...)
		scratch := make([]int, opts.cacheSize)

		start := time.Now()
		wikisort.SortWithBuffer(a, compareInt, scratch)
		elapsed := time.Since(start)

		report.Results = append(report.Results, benchResult{
			Dist: opts.dist, N: n, CacheSize: opts.cacheSize, Elapsed: elapsed,
		})
		fmt.Printf("n=%-8d cache=%-6d elapsed=%s\n", n, opts.cacheSize, elapsed)
	}

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	outPath := filepath.Join(opts.outDir, "wikisortbench_report.json")
	if err := atomic.WriteFile(outPath, bytes.NewReader(payload)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Printf("report written to %s\n", outPath)
	return nil
}
