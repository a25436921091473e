// Package combinator enumerates fixed-size combinations of a sequence,
// lazily and in lexicographic order over indices into the sequence, with
// an optional greedy pruning hook. The Deducer uses this as its single
// enumeration primitive for naked/hidden/linked rules at every level k.
package combinator

import "iter"

// Prune is called with the candidate item being appended to the current
// partial combination and the accumulator folded over the combination so
// far. If it returns stop=true, that item (and every combination that
// would extend the partial selection with it) is skipped; otherwise newAcc
// is the accumulator for the extensions that include item, while sibling
// branches that do not include item keep acc.
type Prune[T, A any] func(item T, acc A) (stop bool, newAcc A)

// Combinations lazily yields every strictly increasing-index subsequence
// of length k from items, in lexicographic order over indices. If prune
// is non-nil, it is consulted before each item is added to a partial
// combination; a combination whose accumulator trail causes prune to
// report stop=true is skipped, along with all of its extensions.
func Combinations[T, A any](items []T, k int, initAcc A, prune Prune[T, A]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if k <= 0 || k > len(items) {
			return
		}
		current := make([]T, 0, k)
		combine(items, k, 0, current, initAcc, prune, yield)
	}
}

// combine returns false if the caller should stop (yield returned false).
func combine[T, A any](items []T, k, start int, current []T, acc A, prune Prune[T, A], yield func([]T) bool) bool {
	if len(current) == k {
		out := make([]T, len(current))
		copy(out, current)
		return yield(out)
	}

	remaining := k - len(current)
	for i := start; i <= len(items)-remaining; i++ {
		item := items[i]
		nextAcc := acc
		if prune != nil {
			stop, updated := prune(item, acc)
			if stop {
				continue
			}
			nextAcc = updated
		}
		if !combine(items, k, i+1, append(current, item), nextAcc, prune, yield) {
			return false
		}
	}
	return true
}

// Indices enumerates the raw index combinations [0,n) choose k, useful
// when the caller wants positions rather than values.
func Indices(n, k int) iter.Seq[[]int] {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return Combinations[int, struct{}](idx, k, struct{}{}, nil)
}
