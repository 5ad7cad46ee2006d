package util

import (
	"math"

	"golang.org/x/exp/slices"
)

func RoundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

// ReverseG returns a reversed copy of arr, arr itself is left untouched.
func ReverseG[T any](arr []T) []T {
	copyArr := make([]T, len(arr)) // should do on the copy )
	copy(copyArr, arr)
	slices.Reverse(copyArr)
	return copyArr
}

// EqualG reports whether a and b hold the same elements in the same order.
func EqualG[T comparable](a, b []T) bool {
	return slices.Equal(a, b)
}

// FirstN returns at most n leading elements of arr.
func FirstN[T any](arr []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(arr) <= n {
		return arr
	}
	return arr[:n]
}

// LastN returns at most n trailing elements of arr.
func LastN[T any](arr []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(arr) <= n {
		return arr
	}
	return arr[len(arr)-n:]
}

// BitPackUint64 puts the lowest width bits of b at offset in packed.
func BitPackUint64(packed uint64, b uint64, offset, width uint) uint64 {
	mask := bitmask64(width)
	return packed&^(mask<<offset) | (b&mask)<<offset
}

// BitUnpackUint64 reads width bits starting at offset.
func BitUnpackUint64(packed uint64, offset, width uint) uint64 {
	return (packed >> offset) & bitmask64(width)
}

func bitmask64(width uint) uint64 {
	if width >= 64 {
		return math.MaxUint64
	}
	return 1<<width - 1
}
