// Package set provides a finite set of symbolic values behind one API with
// three interchangeable physical backings: an insertion-ordered sequence, a
// hash-keyed aggregate, and a balanced tree keyed by a caller comparator.
// Algorithms over states, labels and grammar symbols use the set without
// knowing which backing realizes it.
//
// Everything here is synchronous and unlocked. The sequence and tree
// backings are persistent, so sharing a set across goroutines is safe as
// long as nobody calls DestructiveAdd; serializing access to a mutable set
// is the caller's job.
package set

import (
	"reflect"

	"github.com/denismitr/dll"
	"github.com/google/btree"
	"github.com/pkg/errors"

	"github.com/corradopav/motion-grammar-kit/value"
)

// Comparator is a strict weak ordering over values, consistent with
// structural equality. The contract is the caller's to honor; violations
// are caught only opportunistically.
type Comparator func(a, b value.Value) int

// Backing identifies the physical strategy realizing a Set.
type Backing uint8

const (
	// Empty is the representation-agnostic empty set, a valid operand to
	// every binary operation.
	Empty Backing = iota
	// Unordered keeps an insertion-ordered sequence and deduplicates by
	// structural equality on every insert.
	Unordered
	// Mutable keeps a hash aggregate keyed by the canonical value encoding
	// and supports one destructive operation.
	Mutable
	// Ordered keeps a balanced tree keyed by the carried comparator.
	Ordered
)

const btreeDegree = 32

type Set struct {
	backing Backing

	seq *dll.DoublyLinkedList[value.Value] // Unordered
	n   int                                // Unordered cardinality

	m map[string]value.Value // Mutable

	tree *btree.BTreeG[value.Value] // Ordered
	cmp  Comparator
}

// Make is the representation selector. mutable=true yields an empty hash
// backed set; a comparator (with mutable=false) yields an empty ordered set
// keyed by it; neither yields the empty sentinel. Supplying both is a
// caller error.
func Make(mutable bool, cmp Comparator) (*Set, error) {
	switch {
	case mutable && cmp != nil:
		return nil, errors.Wrap(ErrInvalidConfiguration, "a mutable set cannot carry a comparator")
	case mutable:
		return newMutable(), nil
	case cmp != nil:
		return newOrdered(cmp), nil
	default:
		return &Set{backing: Empty}, nil
	}
}

// Build folds items through insertion into an unordered set, deduplicating
// by structural equality.
func Build(items ...value.Value) *Set {
	s := newUnordered()
	for _, v := range items {
		s.pushUnique(v)
	}
	return s
}

func newUnordered() *Set {
	return &Set{backing: Unordered, seq: dll.New[value.Value]()}
}

func newMutable() *Set {
	return &Set{backing: Mutable, m: make(map[string]value.Value)}
}

func newOrdered(cmp Comparator) *Set {
	less := func(a, b value.Value) bool { return cmp(a, b) < 0 }
	return &Set{backing: Ordered, tree: btree.NewG(btreeDegree, less), cmp: cmp}
}

func (s *Set) Backing() Backing {
	return s.backing
}

// Comparator returns the ordering an ordered set was built with, nil for
// the other backings.
func (s *Set) Comparator() Comparator {
	return s.cmp
}

func (s *Set) Size() int {
	switch s.backing {
	case Unordered:
		return s.n
	case Mutable:
		return len(s.m)
	case Ordered:
		return s.tree.Len()
	default:
		return 0
	}
}

func (s *Set) IsEmpty() bool {
	return s.Size() == 0
}

func (s *Set) IsSingleton() bool {
	return s.Size() == 1
}

func (s *Set) Contains(v value.Value) bool {
	switch s.backing {
	case Unordered:
		for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
			if value.Equal(curr.Value(), v) {
				return true
			}
		}
		return false
	case Mutable:
		_, found := s.m[value.Key(v)]
		return found
	case Ordered:
		return s.tree.Has(v)
	default:
		return false
	}
}

// Add returns a set that also holds v, never mutating the receiver. Adding
// to the empty sentinel yields an unordered set.
func (s *Set) Add(v value.Value) *Set {
	switch s.backing {
	case Unordered:
		out := s.copyUnordered()
		out.pushUnique(v)
		return out
	case Mutable:
		out := &Set{backing: Mutable, m: copyAggregate(s.m)}
		out.m[value.Key(v)] = v
		return out
	case Ordered:
		t := s.tree.Clone()
		t.ReplaceOrInsert(v)
		return &Set{backing: Ordered, tree: t, cmp: s.cmp}
	default:
		return Build(v)
	}
}

// DestructiveAdd inserts v in place and returns the same instance for
// chaining. Only the mutable backing supports it.
func (s *Set) DestructiveAdd(v value.Value) (*Set, error) {
	if s.backing != Mutable {
		return nil, errors.Wrap(ErrUnsupported, "destructive add requires a mutable set")
	}
	s.m[value.Key(v)] = v
	return s, nil
}

// Remove returns a set without v, never mutating the receiver.
func (s *Set) Remove(v value.Value) *Set {
	switch s.backing {
	case Unordered:
		out := newUnordered()
		for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
			if !value.Equal(curr.Value(), v) {
				out.push(curr.Value())
			}
		}
		return out
	case Mutable:
		out := &Set{backing: Mutable, m: copyAggregate(s.m)}
		delete(out.m, value.Key(v))
		return out
	case Ordered:
		t := s.tree.Clone()
		t.Delete(v)
		return &Set{backing: Ordered, tree: t, cmp: s.cmp}
	default:
		return s
	}
}

// Items returns the elements in the backing's iteration order: insertion
// order for unordered sets, key order for ordered ones, unspecified for
// mutable ones.
func (s *Set) Items() []value.Value {
	items := make([]value.Value, 0, s.Size())
	s.ForEach(func(v value.Value) {
		items = append(items, v)
	})
	return items
}

// ToOrdered rebuilds the set on the tree backing keyed by cmp. The items
// are checked for comparator reflexivity on the way in, which catches some
// broken comparators but by no means all.
func (s *Set) ToOrdered(cmp Comparator) (*Set, error) {
	if cmp == nil {
		return nil, errors.Wrap(ErrInvalidConfiguration, "an ordered set requires a comparator")
	}
	return orderedFromItems(cmp, s.Items())
}

// Filter keeps the elements satisfying pred. Defined for the unordered
// backing only.
func (s *Set) Filter(pred func(value.Value) bool) (*Set, error) {
	if s.backing != Unordered {
		return nil, errors.Wrap(ErrUnsupported, "filter requires an unordered set")
	}
	out := newUnordered()
	for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
		if pred(curr.Value()) {
			out.push(curr.Value())
		}
	}
	return out, nil
}

func orderedFromItems(cmp Comparator, items []value.Value) (*Set, error) {
	out := newOrdered(cmp)
	for _, v := range items {
		if cmp(v, v) != 0 {
			return nil, errors.Wrapf(ErrInvalidComparator, "comparator is not reflexive on %s", v)
		}
		out.tree.ReplaceOrInsert(v)
	}
	return out, nil
}

// push appends without a membership scan; for callers that already know v
// is not present.
func (s *Set) push(v value.Value) {
	s.seq.PushTail(dll.NewElement(v))
	s.n++
}

func (s *Set) pushUnique(v value.Value) {
	if !s.Contains(v) {
		s.push(v)
	}
}

func (s *Set) copyUnordered() *Set {
	out := newUnordered()
	for curr := s.seq.Head(); curr != nil; curr = curr.Next() {
		out.push(curr.Value())
	}
	return out
}

func copyAggregate(m map[string]value.Value) map[string]value.Value {
	out := make(map[string]value.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// sameComparator reports whether two ordered sets were built from the same
// comparator function. Function identity is the only comparator equality Go
// offers, so deriving related ordered sets from one shared Comparator value
// is part of the caller contract.
func sameComparator(a, b Comparator) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
