// Package gen supplies gopter generators for the stress distributions
// used to exercise wikisort: uniform random, small-domain, mostly- and
// fully-ascending/descending, all-equal, mostly-equal, sorted-prefix
// with a random suffix, and jittered-near-sorted. It also supplies a
// keyed record type pairing a sort key with a sequence number, for
// checking stability.
package gen

import (
	"fmt"
	"math/rand"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// Keyed pairs a small-domain sort key with the element's original
// position. Sorting by Key alone and then checking Seq is ascending
// within each equal-Key run is how stability is tested.
type Keyed struct {
	Key int
	Seq int
}

// CompareKeyed compares two Keyed values by Key only, so that equal
// keys are ties a stable sort must not reorder.
func CompareKeyed(a, b Keyed) int {
	switch {
	case a.Key < b.Key:
		return -1
	case a.Key > b.Key:
		return 1
	default:
		return 0
	}
}

// Uniform generates slices of unrestricted random ints.
func Uniform() gopter.Gen {
	return gen.SliceOf(gen.Int())
}

// SmallDomain generates slices drawn from a handful of distinct values,
// producing heavy duplication.
func SmallDomain() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 4))
}

// AllEqual generates slices where every element is identical.
func AllEqual() gopter.Gen {
	return gen.SliceOf(gen.Const(0))
}

// MostlyEqual generates slices whose values all lie in the narrow range
// 1000 through 1004, so most values repeat many times.
func MostlyEqual() gopter.Gen {
	return gen.SliceOf(gen.IntRange(1000, 1004))
}

// FullyAscending generates slices that are already sorted ascending, by
// sorting a uniform random slice.
func FullyAscending() gopter.Gen {
	return Uniform().Map(func(v []int) []int {
		return sortedCopy(v, false)
	})
}

// FullyDescending is FullyAscending's mirror.
func FullyDescending() gopter.Gen {
	return Uniform().Map(func(v []int) []int {
		return sortedCopy(v, true)
	})
}

// MostlyAscending starts from a fully-ascending slice and swaps a few
// adjacent pairs to perturb it slightly.
func MostlyAscending() gopter.Gen {
	return FullyAscending().Map(perturb)
}

// MostlyDescending is MostlyAscending's mirror.
func MostlyDescending() gopter.Gen {
	return FullyDescending().Map(perturb)
}

// SortedPrefixRandomSuffix generates a slice whose first half is sorted
// and whose second half is arbitrary.
func SortedPrefixRandomSuffix() gopter.Gen {
	return Uniform().Map(func(v []int) []int {
		out := make([]int, len(v))
		copy(out, v)
		half := len(out) / 2
		prefix := sortedCopy(out[:half], false)
		copy(out[:half], prefix)
		return out
	})
}

// Jittered generates a nearly-sorted slice: fully ascending, then every
// element displaced by at most a small fixed offset from its sorted
// position.
func Jittered() gopter.Gen {
	return FullyAscending().Map(func(v []int) []int {
		out := make([]int, len(v))
		copy(out, v)
		const span = 3
		for i := 0; i+span < len(out); i += span {
			reverseSlice(out[i : i+span])
		}
		return out
	})
}

// KeyedInput generates slices of Keyed values with a small key domain
// and sequence numbers assigned in input order, for stability checks.
func KeyedInput() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 7)).Map(func(keys []int) []Keyed {
		out := make([]Keyed, len(keys))
		for i, k := range keys {
			out[i] = Keyed{Key: k, Seq: i}
		}
		return out
	})
}

func sortedCopy(v []int, descending bool) []int {
	out := make([]int, len(v))
	copy(out, v)
	for i := 1; i < len(out); i++ {
		x := out[i]
		j := i - 1
		for j >= 0 && ((!descending && out[j] > x) || (descending && out[j] < x)) {
			out[j+1] = out[j]
			j--
		}
		out[j+1] = x
	}
	return out
}

func perturb(v []int) []int {
	out := make([]int, len(v))
	copy(out, v)
	for i := 0; i+1 < len(out); i += 7 {
		out[i], out[i+1] = out[i+1], out[i]
	}
	return out
}

func reverseSlice(v []int) {
	for i, j := 0, len(v)-1; i < j; i, j = i+1, j-1 {
		v[i], v[j] = v[j], v[i]
	}
}

// Names lists the distribution names Sample accepts.
var Names = []string{
	"uniform", "small_domain", "all_equal", "mostly_equal",
	"fully_ascending", "fully_descending", "mostly_ascending", "mostly_descending",
	"sorted_prefix_random_suffix", "jittered",
}

// Sample deterministically produces a slice of length n from the named
// distribution using rng, for callers (the CLI harness) that need a
// concrete slice of a specific size rather than a gopter generator.
func Sample(dist string, n int, rng *rand.Rand) ([]int, error) {
	switch dist {
	case "uniform":
		return sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() }), nil
	case "small_domain":
		return sampleFunc(n, rng, func(r *rand.Rand) int { return r.Intn(5) }), nil
	case "all_equal":
		return sampleFunc(n, rng, func(r *rand.Rand) int { return 0 }), nil
	case "mostly_equal":
		return sampleFunc(n, rng, func(r *rand.Rand) int { return 1000 + r.Intn(5) }), nil
	case "fully_ascending":
		v := sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() })
		return sortedCopy(v, false), nil
	case "fully_descending":
		v := sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() })
		return sortedCopy(v, true), nil
	case "mostly_ascending":
		v := sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() })
		return perturb(sortedCopy(v, false)), nil
	case "mostly_descending":
		v := sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() })
		return perturb(sortedCopy(v, true)), nil
	case "sorted_prefix_random_suffix":
		v := sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() })
		half := len(v) / 2
		copy(v[:half], sortedCopy(v[:half], false))
		return v, nil
	case "jittered":
		v := sampleFunc(n, rng, func(r *rand.Rand) int { return r.Int() })
		v = sortedCopy(v, false)
		const span = 3
		for i := 0; i+span < len(v); i += span {
			reverseSlice(v[i : i+span])
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
}

func sampleFunc(n int, rng *rand.Rand, f func(*rand.Rand) int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = f(rng)
	}
	return out
}
