package set

import (
	"github.com/corradopav/motion-grammar-kit/value"
)

// ForEach visits every element exactly once, in the backing's iteration
// order. No algorithm may depend on the mutable backing's order.
func (s *Set) ForEach(fn func(value.Value)) {
	s.ForEachUntil(func(v value.Value) bool {
		fn(v)
		return true
	})
}

// ForEachUntil visits elements until fn returns false, reporting whether
// the walk was cut short. Subset and equivalence checks lean on this for
// early exit of their inner scans.
func (s *Set) ForEachUntil(fn func(value.Value) bool) (stopped bool) {
	switch s.backing {
	case Unordered:
		for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
			if !fn(curr.Value()) {
				return true
			}
		}
	case Mutable:
		for _, v := range s.m {
			if !fn(v) {
				return true
			}
		}
	case Ordered:
		cut := false
		s.tree.Ascend(func(v value.Value) bool {
			if !fn(v) {
				cut = true
				return false
			}
			return true
		})
		return cut
	}
	return false
}

// Fold threads an accumulator through the same visiting order ForEach uses.
func Fold[R any](s *Set, initial R, fn func(R, value.Value) R) R {
	acc := initial
	s.ForEach(func(v value.Value) {
		acc = fn(acc, v)
	})
	return acc
}
