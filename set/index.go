package set

import (
	"github.com/pkg/errors"

	"github.com/corradopav/motion-grammar-kit/internal/omap"
	"github.com/corradopav/motion-grammar-kit/value"
)

// DuplicatePolicy decides what an index does when two elements share a key.
type DuplicatePolicy uint8

const (
	// RejectDuplicates fails the build with ErrDuplicateKey.
	RejectDuplicates DuplicatePolicy = iota
	// CollectList accumulates values in reverse order of insertion.
	CollectList
	// CollectSet accumulates values into an ordered set keyed by the
	// canonical comparator, deduplicated.
	CollectSet
)

// Index groups extracted values under extracted keys.
type Index struct {
	policy DuplicatePolicy
	groups *omap.OMap[*indexGroup]
	keys   *Set
}

type indexGroup struct {
	single value.Value
	list   []value.Value
	sub    *Set
}

// NewIndex scans s in iteration order, grouping valueFn(el) under
// keyFn(el) according to the policy. The distinct keys are collected into
// an unordered set alongside.
func NewIndex(s *Set, keyFn, valueFn func(value.Value) value.Value, policy DuplicatePolicy) (*Index, error) {
	ix := &Index{
		policy: policy,
		groups: omap.New[*indexGroup](),
		keys:   newUnordered(),
	}

	var buildErr error
	s.ForEachUntil(func(el value.Value) bool {
		k, v := keyFn(el), valueFn(el)
		kk := value.Key(k)

		g, found := ix.groups.Get(kk)
		if !found {
			g = &indexGroup{}
			if policy == CollectSet {
				g.sub = newOrdered(Comparator(value.Compare))
			}
			ix.groups.Set(kk, g)
			ix.keys.push(k)
		} else if policy == RejectDuplicates {
			buildErr = errors.Wrapf(ErrDuplicateKey, "key %s", k)
			return false
		}

		switch policy {
		case RejectDuplicates:
			g.single = v
		case CollectList:
			g.list = append([]value.Value{v}, g.list...)
		default:
			g.sub.insertNative(v)
		}
		return true
	})
	if buildErr != nil {
		return nil, buildErr
	}
	return ix, nil
}

// Lookup returns the value(s) accumulated under key, or ErrNotFound. With
// RejectDuplicates the slice holds the single value; with CollectList the
// values come in reverse order of insertion; with CollectSet they come
// deduplicated in canonical comparator order.
func (ix *Index) Lookup(key value.Value) ([]value.Value, error) {
	g, found := ix.groups.Get(value.Key(key))
	if !found {
		return nil, errors.Wrapf(ErrNotFound, "no values indexed under %s", key)
	}
	switch ix.policy {
	case RejectDuplicates:
		return []value.Value{g.single}, nil
	case CollectList:
		out := make([]value.Value, len(g.list))
		copy(out, g.list)
		return out, nil
	default:
		return g.sub.Items(), nil
	}
}

// Keys returns the distinct keys seen, in first-appearance order.
func (ix *Index) Keys() *Set {
	return ix.keys
}

func (ix *Index) Len() int {
	return ix.groups.Len()
}
