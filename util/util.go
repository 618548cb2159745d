package util

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Uniq returns a sorted copy of nums with duplicates removed.
func Uniq[A constraints.Ordered](nums []A) []A {
	res := slices.Clone(nums)
	slices.Sort(res)
	return slices.Compact(res)
}

// Difference returns the members of a that are not in b, preserving order.
func Difference[A comparable](a []A, b []A) []A {
	var res []A
	for _, v := range a {
		if !slices.Contains(b, v) {
			res = append(res, v)
		}
	}
	return res
}

// Union returns the sorted, de-duplicated union of a and b.
func Union[A constraints.Ordered](a []A, b []A) []A {
	res := make([]A, 0, len(a)+len(b))
	res = append(res, a...)
	res = append(res, b...)
	return Uniq(res)
}

// Mod is the non-negative remainder of num divided by m.
func Mod[A constraints.Integer](num A, m A) A {
	r := num % m
	if r < 0 {
		r += m
	}
	return r
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Abs[A constraints.Signed](num A) A {
	if num < 0 {
		return -num
	}
	return num
}
