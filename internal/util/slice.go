package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func ContainsString(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}

func sortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

func SortedKeys[T constraints.Ordered, K any](input map[T]K) []T {
	result := make([]T, 0, len(input))
	for k := range input {
		result = append(result, k)
	}
	sortSlice(result)
	return result
}

func UniqueSlice[T comparable](dataSlices ...[]T) []T {
	uniqueMap := map[T]bool{}

	for _, dataSlice := range dataSlices {
		for _, value := range dataSlice {
			uniqueMap[value] = true
		}
	}

	// Slice with the fixed capacity of unique items to optimize memory
	result := make([]T, 0, len(uniqueMap))

	for key := range uniqueMap {
		result = append(result, key)
	}

	return result
}
