package set

import (
	"github.com/pkg/errors"

	"github.com/corradopav/motion-grammar-kit/value"
)

// Union returns a set holding every element of s and o. The empty sentinel
// is the identity. Mixing the unordered backing with a richer one folds the
// unordered operand into the richer backing; an ordered operand absorbs a
// mutable one by folding it into the tree. Union is defined for every
// backing pair except ordered operands built with different comparators.
func (s *Set) Union(o *Set) (*Set, error) {
	switch {
	case s.backing == Empty:
		return o, nil
	case o.backing == Empty:
		return s, nil

	case s.backing == Unordered && o.backing == Unordered:
		out := s.copyUnordered()
		for curr := o.seq.Head(); curr != nil; curr = curr.Next() {
			out.pushUnique(curr.Value())
		}
		return out, nil

	case s.backing == Mutable && o.backing == Mutable:
		out := &Set{backing: Mutable, m: copyAggregate(s.m)}
		for k, v := range o.m {
			out.m[k] = v
		}
		return out, nil

	case s.backing == Ordered && o.backing == Ordered:
		if !sameComparator(s.cmp, o.cmp) {
			return nil, errors.Wrap(ErrRepresentationMismatch, "union of ordered sets keyed by different comparators")
		}
		return mergeOrdered(s, o), nil

	case s.backing == Unordered:
		return foldItemsInto(o, s.Items()), nil
	case o.backing == Unordered:
		return foldItemsInto(s, o.Items()), nil

	default: // one ordered, one mutable: the tree absorbs the aggregate
		ord, mut := s, o
		if ord.backing != Ordered {
			ord, mut = o, s
		}
		return foldItemsInto(ord, mut.Items()), nil
	}
}

// Intersect returns the elements common to s and o. The empty sentinel
// absorbs. The ordered/mutable pairing is not defined.
func (s *Set) Intersect(o *Set) (*Set, error) {
	switch {
	case s.backing == Empty || o.backing == Empty:
		return &Set{backing: Empty}, nil

	case s.backing == Unordered && o.backing == Unordered:
		out := newUnordered()
		for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
			if o.Contains(curr.Value()) {
				out.push(curr.Value())
			}
		}
		return out, nil

	case s.backing == Mutable && o.backing == Mutable:
		small, big := s, o
		if len(big.m) < len(small.m) {
			small, big = big, small
		}
		out := newMutable()
		for k, v := range small.m {
			if _, found := big.m[k]; found {
				out.m[k] = v
			}
		}
		return out, nil

	case s.backing == Ordered && o.backing == Ordered:
		if !sameComparator(s.cmp, o.cmp) {
			return nil, errors.Wrap(ErrRepresentationMismatch, "intersection of ordered sets keyed by different comparators")
		}
		out := newOrdered(s.cmp)
		av, bv := s.Items(), o.Items()
		for i, j := 0, 0; i < len(av) && j < len(bv); {
			switch c := s.cmp(av[i], bv[j]); {
			case c < 0:
				i++
			case c > 0:
				j++
			default:
				out.tree.ReplaceOrInsert(av[i])
				i++
				j++
			}
		}
		return out, nil

	case s.backing == Unordered || o.backing == Unordered:
		un, rich := s, o
		if un.backing != Unordered {
			un, rich = o, s
		}
		out := emptyLike(rich)
		for curr := un.seq.Head(); curr != nil; curr = curr.Next() {
			if rich.Contains(curr.Value()) {
				out.insertNative(curr.Value())
			}
		}
		return out, nil

	default:
		return nil, errors.Wrap(ErrRepresentationMismatch, "intersection across ordered and mutable sets is not defined")
	}
}

// Difference returns the elements of s not in o. The ordered/mutable
// pairing is not defined.
func (s *Set) Difference(o *Set) (*Set, error) {
	switch {
	case s.backing == Empty:
		return &Set{backing: Empty}, nil
	case o.backing == Empty:
		return s, nil

	case s.backing == Unordered && o.backing == Unordered:
		out := newUnordered()
		for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
			if !o.Contains(curr.Value()) {
				out.push(curr.Value())
			}
		}
		return out, nil

	case s.backing == Mutable && o.backing == Mutable:
		out := newMutable()
		for k, v := range s.m {
			if _, found := o.m[k]; !found {
				out.m[k] = v
			}
		}
		return out, nil

	case s.backing == Ordered && o.backing == Ordered:
		if !sameComparator(s.cmp, o.cmp) {
			return nil, errors.Wrap(ErrRepresentationMismatch, "difference of ordered sets keyed by different comparators")
		}
		out := newOrdered(s.cmp)
		av, bv := s.Items(), o.Items()
		i, j := 0, 0
		for i < len(av) && j < len(bv) {
			switch c := s.cmp(av[i], bv[j]); {
			case c < 0:
				out.tree.ReplaceOrInsert(av[i])
				i++
			case c > 0:
				j++
			default:
				i++
				j++
			}
		}
		for ; i < len(av); i++ {
			out.tree.ReplaceOrInsert(av[i])
		}
		return out, nil

	case s.backing == Unordered && (o.backing == Mutable || o.backing == Ordered):
		out := emptyLike(o)
		for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
			if !o.Contains(curr.Value()) {
				out.insertNative(curr.Value())
			}
		}
		return out, nil

	case o.backing == Unordered && (s.backing == Mutable || s.backing == Ordered):
		out := emptyLike(s)
		s.ForEach(func(v value.Value) {
			if !o.Contains(v) {
				out.insertNative(v)
			}
		})
		return out, nil

	default:
		return nil, errors.Wrap(ErrRepresentationMismatch, "difference across ordered and mutable sets is not defined")
	}
}

// Subset reports whether every element of s is in o. It is defined for
// same-backing unordered and ordered pairs, and trivially whenever an
// operand is the empty sentinel.
func (s *Set) Subset(o *Set) (bool, error) {
	switch {
	case s.backing == Empty:
		return true, nil
	case o.backing == Empty:
		return s.IsEmpty(), nil

	case s.backing == Unordered && o.backing == Unordered:
		missing := s.ForEachUntil(func(v value.Value) bool {
			return o.Contains(v)
		})
		return !missing, nil

	case s.backing == Ordered && o.backing == Ordered:
		if !sameComparator(s.cmp, o.cmp) {
			return false, errors.Wrap(ErrRepresentationMismatch, "subset of ordered sets keyed by different comparators")
		}
		av, bv := s.Items(), o.Items()
		i, j := 0, 0
		for i < len(av) && j < len(bv) {
			switch c := s.cmp(av[i], bv[j]); {
			case c < 0:
				return false, nil
			case c > 0:
				j++
			default:
				i++
				j++
			}
		}
		return i == len(av), nil

	default:
		return false, errors.Wrap(ErrRepresentationMismatch, "subset is not defined for this backing pair")
	}
}

// Equal reports content equality across backings. Two ordered sets must be
// keyed by the same comparator; any other pair compares by cardinality plus
// membership.
func (s *Set) Equal(o *Set) (bool, error) {
	switch {
	case s.backing == Empty:
		return o.IsEmpty(), nil
	case o.backing == Empty:
		return s.IsEmpty(), nil

	case s.backing == Unordered && o.backing == Unordered:
		forward := !s.ForEachUntil(func(v value.Value) bool { return o.Contains(v) })
		if !forward {
			return false, nil
		}
		backward := !o.ForEachUntil(func(v value.Value) bool { return s.Contains(v) })
		return backward, nil

	case s.backing == Ordered && o.backing == Ordered:
		if !sameComparator(s.cmp, o.cmp) {
			return false, errors.Wrap(ErrRepresentationMismatch, "equality of ordered sets keyed by different comparators")
		}
		if s.Size() != o.Size() {
			return false, nil
		}
		av, bv := s.Items(), o.Items()
		for i := range av {
			if !value.Equal(av[i], bv[i]) {
				return false, nil
			}
		}
		return true, nil

	default:
		if s.Size() != o.Size() {
			return false, nil
		}
		missing := s.ForEachUntil(func(v value.Value) bool {
			return o.Contains(v)
		})
		return !missing, nil
	}
}

// Equivalent reports whether every element of s has some rel-related
// element in o and vice versa. rel is assumed to be an equivalence
// relation; nothing verifies that. Both directions scan pairwise with
// early exit, so keep the operands small.
func (s *Set) Equivalent(o *Set, rel func(a, b value.Value) bool) bool {
	return coveredBy(s, o, rel) && coveredBy(o, s, rel)
}

func coveredBy(from, to *Set, rel func(a, b value.Value) bool) bool {
	unmatched := from.ForEachUntil(func(a value.Value) bool {
		matched := to.ForEachUntil(func(b value.Value) bool {
			return !rel(a, b)
		})
		return matched
	})
	return !unmatched
}

// mergeOrdered is the native ordered union: one sorted merge over both
// ascending item sequences.
func mergeOrdered(a, b *Set) *Set {
	out := newOrdered(a.cmp)
	av, bv := a.Items(), b.Items()
	i, j := 0, 0
	for i < len(av) && j < len(bv) {
		switch c := a.cmp(av[i], bv[j]); {
		case c < 0:
			out.tree.ReplaceOrInsert(av[i])
			i++
		case c > 0:
			out.tree.ReplaceOrInsert(bv[j])
			j++
		default:
			out.tree.ReplaceOrInsert(av[i])
			i++
			j++
		}
	}
	for ; i < len(av); i++ {
		out.tree.ReplaceOrInsert(av[i])
	}
	for ; j < len(bv); j++ {
		out.tree.ReplaceOrInsert(bv[j])
	}
	return out
}

// foldItemsInto copies rich and inserts items one by one, keeping rich's
// backing for the result.
func foldItemsInto(rich *Set, items []value.Value) *Set {
	var out *Set
	switch rich.backing {
	case Mutable:
		out = &Set{backing: Mutable, m: copyAggregate(rich.m)}
	case Ordered:
		out = &Set{backing: Ordered, tree: rich.tree.Clone(), cmp: rich.cmp}
	default:
		out = rich.copyUnordered()
	}
	for _, v := range items {
		out.insertNative(v)
	}
	return out
}

// emptyLike returns a fresh empty set on the same backing as s.
func emptyLike(s *Set) *Set {
	switch s.backing {
	case Mutable:
		return newMutable()
	case Ordered:
		return newOrdered(s.cmp)
	default:
		return newUnordered()
	}
}

// insertNative adds v in place using the backing's own mechanism; callers
// own out exclusively while building it.
func (s *Set) insertNative(v value.Value) {
	switch s.backing {
	case Mutable:
		s.m[value.Key(v)] = v
	case Ordered:
		s.tree.ReplaceOrInsert(v)
	default:
		s.pushUnique(v)
	}
}
