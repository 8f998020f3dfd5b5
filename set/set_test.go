package set_test

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corradopav/motion-grammar-kit/set"
	"github.com/corradopav/motion-grammar-kit/value"
)

// one shared comparator value, so ordered sets built from it combine
var byCanonical = set.Comparator(value.Compare)

func mutableOf(t *testing.T, items ...value.Value) *set.Set {
	t.Helper()
	s, err := set.Make(true, nil)
	require.NoError(t, err)
	for _, v := range items {
		_, err := s.DestructiveAdd(v)
		require.NoError(t, err)
	}
	return s
}

func orderedOf(t *testing.T, items ...value.Value) *set.Set {
	t.Helper()
	s, err := set.Make(false, byCanonical)
	require.NoError(t, err)
	for _, v := range items {
		s = s.Add(v)
	}
	return s
}

func sortedStrings(vs []value.Value) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	sort.Strings(out)
	return out
}

func TestMake(t *testing.T) {
	t.Run("neither flag yields the empty sentinel", func(t *testing.T) {
		s, err := set.Make(false, nil)
		require.NoError(t, err)
		assert.Equal(t, set.Empty, s.Backing())
		assert.True(t, s.IsEmpty())
	})

	t.Run("mutable flag yields a hash backed set", func(t *testing.T) {
		s, err := set.Make(true, nil)
		require.NoError(t, err)
		assert.Equal(t, set.Mutable, s.Backing())
	})

	t.Run("comparator yields an ordered set", func(t *testing.T) {
		s, err := set.Make(false, byCanonical)
		require.NoError(t, err)
		assert.Equal(t, set.Ordered, s.Backing())
		assert.NotNil(t, s.Comparator())
	})

	t.Run("both flags is a caller error", func(t *testing.T) {
		_, err := set.Make(true, byCanonical)
		assert.True(t, errors.Is(err, set.ErrInvalidConfiguration))
	})
}

func TestBuild(t *testing.T) {
	t.Run("deduplicates by structural equality", func(t *testing.T) {
		s := set.Build(value.Numbers(1, 2, 2, 3)...)

		assert.Equal(t, set.Unordered, s.Backing())
		assert.Equal(t, 3, s.Size())
		assert.Equal(t, []string{"1", "2", "3"}, sortedStrings(s.Items()))
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		s := set.Build(value.Texts("c", "a", "b", "a")...)
		assert.Equal(t, value.Texts("c", "a", "b"), s.Items())
	})

	t.Run("nested values deduplicate too", func(t *testing.T) {
		p := value.Pair(value.Symbol("q0"), value.Text("x"))
		q := value.Pair(value.Symbol("q0"), value.Text("x"))
		s := set.Build(p, q)
		assert.True(t, s.IsSingleton())
	})
}

func TestSet_Add(t *testing.T) {
	t.Run("never mutates the unordered receiver", func(t *testing.T) {
		a := set.Build(value.Int(1))
		b := a.Add(value.Int(2))

		assert.Equal(t, 1, a.Size())
		assert.Equal(t, 2, b.Size())
		assert.False(t, a.Contains(value.Int(2)))
	})

	t.Run("never mutates the mutable receiver", func(t *testing.T) {
		a := mutableOf(t, value.Int(1))
		b := a.Add(value.Int(2))

		assert.Equal(t, 1, a.Size())
		assert.Equal(t, 2, b.Size())
		assert.Equal(t, set.Mutable, b.Backing())
	})

	t.Run("never mutates the ordered receiver", func(t *testing.T) {
		a := orderedOf(t, value.Int(5))
		b := a.Add(value.Int(1))

		assert.Equal(t, 1, a.Size())
		assert.Equal(t, value.Numbers(1, 5), b.Items())
	})

	t.Run("adding to the sentinel yields an unordered set", func(t *testing.T) {
		empty, err := set.Make(false, nil)
		require.NoError(t, err)
		s := empty.Add(value.Symbol("q0"))
		assert.Equal(t, set.Unordered, s.Backing())
		assert.True(t, s.Contains(value.Symbol("q0")))
	})
}

func TestSet_DestructiveAdd(t *testing.T) {
	t.Run("mutates in place and returns the same instance", func(t *testing.T) {
		s := mutableOf(t)
		got, err := s.DestructiveAdd(value.Int(1))
		require.NoError(t, err)
		assert.Same(t, s, got)
		assert.True(t, s.Contains(value.Int(1)))
	})

	t.Run("chains", func(t *testing.T) {
		s := mutableOf(t)
		s2, err := s.DestructiveAdd(value.Int(1))
		require.NoError(t, err)
		_, err = s2.DestructiveAdd(value.Int(2))
		require.NoError(t, err)
		assert.Equal(t, 2, s.Size())
	})

	t.Run("unsupported on other backings", func(t *testing.T) {
		_, err := set.Build(value.Int(1)).DestructiveAdd(value.Int(2))
		assert.True(t, errors.Is(err, set.ErrUnsupported))

		_, err = orderedOf(t).DestructiveAdd(value.Int(2))
		assert.True(t, errors.Is(err, set.ErrUnsupported))
	})
}

func TestSet_Remove(t *testing.T) {
	t.Run("unordered", func(t *testing.T) {
		a := set.Build(value.Texts("x", "y", "z")...)
		b := a.Remove(value.Text("y"))

		assert.Equal(t, 3, a.Size())
		assert.Equal(t, value.Texts("x", "z"), b.Items())
	})

	t.Run("mutable stays untouched", func(t *testing.T) {
		a := mutableOf(t, value.Int(1), value.Int(2))
		b := a.Remove(value.Int(1))

		assert.Equal(t, 2, a.Size())
		assert.Equal(t, 1, b.Size())
		assert.False(t, b.Contains(value.Int(1)))
	})

	t.Run("ordered", func(t *testing.T) {
		a := orderedOf(t, value.Int(1), value.Int(2), value.Int(3))
		b := a.Remove(value.Int(2))

		assert.Equal(t, value.Numbers(1, 3), b.Items())
		assert.Equal(t, 3, a.Size())
	})

	t.Run("removing a missing item is a no-op", func(t *testing.T) {
		a := set.Build(value.Int(1))
		assert.Equal(t, 1, a.Remove(value.Int(9)).Size())
	})
}

func TestSet_Contains(t *testing.T) {
	nested := value.Pair(value.Symbol("a"), value.List(value.Int(1), value.Int(2)))

	for name, s := range map[string]*set.Set{
		"unordered": set.Build(nested, value.Int(7)),
		"mutable":   mutableOf(t, nested, value.Int(7)),
		"ordered":   orderedOf(t, nested, value.Int(7)),
	} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.Contains(value.Pair(value.Symbol("a"), value.List(value.Int(1), value.Int(2)))))
			assert.True(t, s.Contains(value.Int(7)))
			assert.False(t, s.Contains(value.Int(8)))
		})
	}
}

func TestSet_Filter(t *testing.T) {
	t.Run("unordered keeps matching elements in order", func(t *testing.T) {
		s := set.Build(value.Numbers(1, 2, 3, 4)...)
		even, err := s.Filter(func(v value.Value) bool {
			return int(v.Float64())%2 == 0
		})
		require.NoError(t, err)
		assert.Equal(t, value.Numbers(2, 4), even.Items())
	})

	t.Run("unsupported elsewhere", func(t *testing.T) {
		_, err := mutableOf(t).Filter(func(value.Value) bool { return true })
		assert.True(t, errors.Is(err, set.ErrUnsupported))

		_, err = orderedOf(t).Filter(func(value.Value) bool { return true })
		assert.True(t, errors.Is(err, set.ErrUnsupported))
	})
}

func TestSet_ToOrdered(t *testing.T) {
	t.Run("rebuilds on the tree backing in key order", func(t *testing.T) {
		s := set.Build(value.Numbers(3, 1, 2)...)
		o, err := s.ToOrdered(byCanonical)
		require.NoError(t, err)

		assert.Equal(t, set.Ordered, o.Backing())
		assert.Equal(t, value.Numbers(1, 2, 3), o.Items())
	})

	t.Run("requires a comparator", func(t *testing.T) {
		_, err := set.Build().ToOrdered(nil)
		assert.True(t, errors.Is(err, set.ErrInvalidConfiguration))
	})

	t.Run("catches a non-reflexive comparator", func(t *testing.T) {
		broken := set.Comparator(func(a, b value.Value) int { return 1 })
		_, err := set.Build(value.Int(1)).ToOrdered(broken)
		assert.True(t, errors.Is(err, set.ErrInvalidComparator))
	})
}
