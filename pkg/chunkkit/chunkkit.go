// Package chunkkit partitions plain slices.
//
// Every returned sublist is a fresh copy,
// so modifying a chunk never writes through into the input slice.
package chunkkit

import "go.llib.dev/asuna"

// Chunk partitions vs into consecutive sublists of length size.
// The last sublist holds the remainder and may be shorter.
func Chunk[T any](vs []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, asuna.ErrInvalidArgument.F("chunk size must be a positive integer, got %d", size)
	}
	out := make([][]T, 0, len(vs)/size+1)
	for i := 0; i < len(vs); i += size {
		end := min(i+size, len(vs))
		out = append(out, clone(vs[i:end]))
	}
	return out, nil
}

// Split partitions vs into n sublists as evenly as possible.
//
// The lengths differ by at most one, and the first len(vs)%n sublists get the extra item.
// When vs has fewer than n items, only len(vs) sublists are returned.
func Split[T any](vs []T, n int) ([][]T, error) {
	if n <= 0 {
		return nil, asuna.ErrInvalidArgument.F("split count must be a positive integer, got %d", n)
	}
	var (
		quotient  = len(vs) / n
		remainder = len(vs) % n
		count     = min(n, len(vs))
		out       = make([][]T, 0, count)
	)
	for i := 0; i < count; i++ {
		start := i*quotient + min(i, remainder)
		end := (i+1)*quotient + min(i+1, remainder)
		out = append(out, clone(vs[start:end]))
	}
	return out, nil
}

// MultiChunk reads the given lists side by side and builds rows out of them.
//
// Rows are taken at every size-th index position of the FIRST list:
// for i = 0, size, 2*size ... below len(lists[0]),
// the row holds lists[j][i] for each list j, or defaultValue when lists[j] is too short.
// Items of later lists beyond the length of the first list are never read.
//
//	MultiChunk(1, 0, []int{1, 2, 3}, []int{10, 20}) // [[1 10] [2 20] [3 0]]
//	MultiChunk(2, 0, []int{1, 2, 3}, []int{10, 20}) // [[1 10] [3 0]]
func MultiChunk[T any](size int, defaultValue T, lists ...[]T) ([][]T, error) {
	if size <= 0 {
		return nil, asuna.ErrInvalidArgument.F("chunk size must be a positive integer, got %d", size)
	}
	if len(lists) == 0 {
		return nil, asuna.ErrInvalidArgument.F("at least one list is required")
	}
	var out [][]T
	for i := 0; i < len(lists[0]); i += size {
		row := make([]T, 0, len(lists))
		for _, list := range lists {
			if i < len(list) {
				row = append(row, list[i])
			} else {
				row = append(row, defaultValue)
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func clone[T any](vs []T) []T {
	out := make([]T, len(vs))
	copy(out, vs)
	return out
}
