package testutil

import (
	"math/big"
	"slices"
)

// SampleInts returns n evenly spaced integers covering [min, max],
// always including both endpoints. Duplicates are dropped, so narrow
// ranges yield fewer than n values. Spacing is computed with math/big so
// the full int64 range is safe.
func SampleInts(min, max int64, n int) []int64 {
	if min > max {
		return nil
	}
	if n < 2 || min == max {
		return slices.Compact([]int64{min, max})
	}

	lo := big.NewInt(min)
	span := new(big.Int).Sub(big.NewInt(max), lo)
	steps := big.NewInt(int64(n - 1))

	out := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		off := new(big.Int).Mul(span, big.NewInt(int64(i)))
		off.Quo(off, steps)
		out = append(out, off.Add(off, lo).Int64())
	}
	return slices.Compact(out)
}
