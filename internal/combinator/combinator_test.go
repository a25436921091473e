package combinator

import (
	"reflect"
	"testing"
)

func collect[T any](seq func(func([]T) bool)) [][]T {
	var out [][]T
	seq(func(v []T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestCombinations_LexicographicOrder(t *testing.T) {
	got := collect(Combinations([]int{1, 2, 3, 4}, 2, struct{}{}, nil))
	want := [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCombinations_KEqualsLength(t *testing.T) {
	got := collect(Combinations([]int{1, 2, 3}, 3, struct{}{}, nil))
	want := [][]int{{1, 2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCombinations_KLargerThanLength(t *testing.T) {
	got := collect(Combinations([]int{1, 2}, 3, struct{}{}, nil))
	if len(got) != 0 {
		t.Errorf("expected no combinations, got %v", got)
	}
}

func TestCombinations_EarlyStop(t *testing.T) {
	n := 0
	for range Combinations([]int{1, 2, 3, 4}, 2, struct{}{}, nil) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2, got %d", n)
	}
}

func TestCombinations_PruneSkipsExtensions(t *testing.T) {
	// Prune any combination whose running sum would exceed 5.
	prune := func(item, acc int) (bool, int) {
		if acc+item > 5 {
			return true, acc
		}
		return false, acc + item
	}
	got := collect(Combinations([]int{1, 2, 3, 4, 5}, 2, 0, prune))
	for _, combo := range got {
		if combo[0]+combo[1] > 5 {
			t.Errorf("combination %v should have been pruned", combo)
		}
	}
	// {4,5} and {5, anything further} must be pruned away, {1,2} kept.
	foundOneTwo := false
	for _, combo := range got {
		if combo[0] == 1 && combo[1] == 2 {
			foundOneTwo = true
		}
		if combo[0] == 4 && combo[1] == 5 {
			t.Error("{4,5} should have been pruned (sum 9 > 5)")
		}
	}
	if !foundOneTwo {
		t.Error("expected {1,2} to survive pruning")
	}
}

func TestIndices(t *testing.T) {
	got := collect(Indices(3, 2))
	want := [][]int{{0, 1}, {0, 2}, {1, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
