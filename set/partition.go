package set

import (
	"github.com/corradopav/motion-grammar-kit/value"
)

// Partition groups the elements of s by rel, first fit: each element in
// iteration order joins the first group whose representative (the group's
// first element) it relates to, or starts a new singleton group. Groups
// come back non-empty on the unordered backing, in creation order.
//
// The grouping is a true partition into equivalence classes only when rel
// is an equivalence relation; that is assumed, not checked. For a
// non-transitive rel the outcome depends on iteration order.
func Partition(s *Set, rel func(a, b value.Value) bool) []*Set {
	var groups []*Set
	s.ForEach(func(v value.Value) {
		for _, g := range groups {
			if rel(g.seq.Head().Value(), v) {
				g.push(v)
				return
			}
		}
		g := newUnordered()
		g.push(v)
		groups = append(groups, g)
	})
	return groups
}
