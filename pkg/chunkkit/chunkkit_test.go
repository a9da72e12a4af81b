package chunkkit_test

import (
	"fmt"
	"math"
	"testing"

	"go.llib.dev/asuna"
	"go.llib.dev/asuna/pkg/chunkkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleChunk() {
	chunks, err := chunkkit.Chunk([]int{1, 2, 3, 4, 5}, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(chunks)
	// Output: [[1 2] [3 4] [5]]
}

func ExampleSplit() {
	parts, err := chunkkit.Split([]int{1, 2, 3, 4, 5}, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(parts)
	// Output: [[1 2 3] [4 5]]
}

func ExampleMultiChunk() {
	rows, err := chunkkit.MultiChunk(1, 0, []int{1, 2, 3}, []int{10, 20})
	if err != nil {
		panic(err)
	}
	fmt.Println(rows)
	// Output: [[1 10] [2 20] [3 0]]
}

func concat[T any](chunks [][]T) []T {
	out := []T{}
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func TestChunk(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		vs = testcase.Let(s, func(t *testcase.T) []int {
			out := make([]int, t.Random.IntB(0, 42))
			for i := range out {
				out[i] = t.Random.Int()
			}
			return out
		})
		size = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 10)
		})
	)
	act := func(t *testcase.T) ([][]int, error) {
		return chunkkit.Chunk(vs.Get(t), size.Get(t))
	}

	s.Then("concatenated chunks equal the input", func(t *testcase.T) {
		got, err := act(t)
		assert.Must(t).NoError(err)
		assert.Must(t).Equal(vs.Get(t), concat(got))
	})

	s.Then("every chunk has the chunk size except possibly the last", func(t *testcase.T) {
		got, err := act(t)
		assert.Must(t).NoError(err)
		for i, c := range got {
			if i == len(got)-1 {
				assert.Must(t).True(0 < len(c) && len(c) <= size.Get(t))
				if rem := len(vs.Get(t)) % size.Get(t); rem != 0 {
					assert.Must(t).Equal(rem, len(c))
				}
				continue
			}
			assert.Must(t).Equal(size.Get(t), len(c))
		}
	})

	s.Then("chunks don't share memory with the input", func(t *testcase.T) {
		vs.Set(t, []int{1, 2, 3})
		got, err := act(t)
		assert.Must(t).NoError(err)
		got[0][0] = 42
		assert.Must(t).Equal(1, vs.Get(t)[0])
	})

	s.When("the input is empty", func(s *testcase.Spec) {
		vs.Let(s, func(t *testcase.T) []int { return []int{} })

		s.Then("no chunk is made", func(t *testcase.T) {
			got, err := act(t)
			assert.Must(t).NoError(err)
			assert.Must(t).Empty(got)
		})
	})

	s.When("size is not positive", func(s *testcase.Spec) {
		size.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(-10, 0)
		})

		s.Then("invalid argument error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.Must(t).ErrorIs(asuna.ErrInvalidArgument, err)
		})
	})

	s.When("size is far larger than the input", func(s *testcase.Spec) {
		vs.Let(s, func(t *testcase.T) []int { return []int{1, 2, 3} })
		size.LetValue(s, math.MaxInt)

		s.Then("the whole input is a single chunk", func(t *testcase.T) {
			got, err := act(t)
			assert.Must(t).NoError(err)
			assert.Must(t).Equal([][]int{{1, 2, 3}}, got)
		})
	})
}

func TestSplit(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		vs = testcase.Let(s, func(t *testcase.T) []string {
			out := make([]string, t.Random.IntB(0, 42))
			for i := range out {
				out[i] = t.Random.String()
			}
			return out
		})
		n = testcase.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(1, 10)
		})
	)
	act := func(t *testcase.T) ([][]string, error) {
		return chunkkit.Split(vs.Get(t), n.Get(t))
	}

	s.Then("concatenated parts equal the input", func(t *testcase.T) {
		got, err := act(t)
		assert.Must(t).NoError(err)
		assert.Must(t).Equal(vs.Get(t), concat(got))
	})

	s.Then("part lengths differ by at most one, and the remainder count of parts are the larger ones", func(t *testcase.T) {
		got, err := act(t)
		assert.Must(t).NoError(err)
		assert.Must(t).Equal(min(n.Get(t), len(vs.Get(t))), len(got))
		if len(got) == 0 {
			return
		}
		var (
			small  = len(vs.Get(t)) / n.Get(t)
			larger = 0
		)
		for _, p := range got {
			assert.Must(t).True(len(p) == small || len(p) == small+1)
			if len(p) == small+1 {
				larger++
			}
		}
		assert.Must(t).Equal(len(vs.Get(t))%n.Get(t), larger)
	})

	s.Then("larger parts come first", func(t *testcase.T) {
		got, err := act(t)
		assert.Must(t).NoError(err)
		for i := 1; i < len(got); i++ {
			assert.Must(t).True(len(got[i]) <= len(got[i-1]))
		}
	})

	s.When("there are fewer items than parts", func(s *testcase.Spec) {
		vs.Let(s, func(t *testcase.T) []string { return []string{"a", "b"} })
		n.LetValue(s, 5)

		s.Then("each item gets its own part", func(t *testcase.T) {
			got, err := act(t)
			assert.Must(t).NoError(err)
			assert.Must(t).Equal([][]string{{"a"}, {"b"}}, got)
		})
	})

	s.When("n is not positive", func(s *testcase.Spec) {
		n.Let(s, func(t *testcase.T) int {
			return t.Random.IntB(-10, 0)
		})

		s.Then("invalid argument error is returned", func(t *testcase.T) {
			_, err := act(t)
			assert.Must(t).ErrorIs(asuna.ErrInvalidArgument, err)
		})
	})
}

func TestSplit_smoke(t *testing.T) {
	got, err := chunkkit.Split([]int{1, 2, 3, 4, 5}, 2)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, got)

	got, err = chunkkit.Split([]int{1, 2, 3, 4, 5, 6, 7}, 3)
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {6, 7}}, got)
}

func TestMultiChunk(t *testing.T) {
	t.Run("rows are padded with the default value", func(t *testing.T) {
		got, err := chunkkit.MultiChunk(1, 0, []int{1, 2, 3}, []int{10, 20})
		assert.NoError(t, err)
		assert.Equal(t, [][]int{{1, 10}, {2, 20}, {3, 0}}, got)
	})
	t.Run("rows are taken at every size-th index of the first list", func(t *testing.T) {
		got, err := chunkkit.MultiChunk(2, 0, []int{1, 2, 3}, []int{10, 20})
		assert.NoError(t, err)
		assert.Equal(t, [][]int{{1, 10}, {3, 0}}, got)
	})
	t.Run("the first list drives the row count, longer lists are truncated", func(t *testing.T) {
		got, err := chunkkit.MultiChunk(1, "-", []string{"a"}, []string{"x", "y", "z"})
		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"a", "x"}}, got)
	})
	t.Run("empty first list yields no rows", func(t *testing.T) {
		got, err := chunkkit.MultiChunk(1, 0, []int{}, []int{1, 2})
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
	t.Run("non positive size", func(t *testing.T) {
		_, err := chunkkit.MultiChunk(0, 0, []int{1})
		assert.ErrorIs(t, asuna.ErrInvalidArgument, err)
	})
	t.Run("no lists", func(t *testing.T) {
		_, err := chunkkit.MultiChunk[int](1, 0)
		assert.ErrorIs(t, asuna.ErrInvalidArgument, err)
	})
}
