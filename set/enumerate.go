package set

import (
	"github.com/pkg/errors"

	"github.com/corradopav/motion-grammar-kit/internal/omap"
	"github.com/corradopav/motion-grammar-kit/value"
)

// Enumeration assigns each element of a set a unique integer in [0, size)
// in the set's iteration order at the time Enumerate was called.
type Enumeration struct {
	indices *omap.OMap[int]
}

// Enumerate numbers the elements of s. Downstream algorithms use the
// numbering to address matrix rows or bit positions by symbol.
func Enumerate(s *Set) *Enumeration {
	indices := omap.New[int]()
	s.ForEach(func(v value.Value) {
		indices.SetNX(value.Key(v), indices.Len())
	})
	return &Enumeration{indices: indices}
}

// At returns the integer assigned to v, or ErrNotFound.
func (e *Enumeration) At(v value.Value) (int, error) {
	i, found := e.indices.Get(value.Key(v))
	if !found {
		return 0, errors.Wrapf(ErrNotFound, "%s is not enumerated", v)
	}
	return i, nil
}

func (e *Enumeration) Size() int {
	return e.indices.Len()
}
