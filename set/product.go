package set

import (
	"github.com/corradopav/motion-grammar-kit/value"
)

// Product walks the cartesian product of the given sets, invoking visit
// once per tuple. The first set drives the outermost loop and the last set
// varies fastest. visit may be nil. When collect is true the tuples are
// also returned, in the exact visiting order; any empty operand makes the
// product empty.
func Product(sets []*Set, visit func(tuple []value.Value), collect bool) [][]value.Value {
	if len(sets) == 0 {
		return nil
	}

	items := make([][]value.Value, len(sets))
	for i, s := range sets {
		items[i] = s.Items()
		if len(items[i]) == 0 {
			return nil
		}
	}

	var collected [][]value.Value
	tuple := make([]value.Value, len(sets))

	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(sets) {
			cp := make([]value.Value, len(tuple))
			copy(cp, tuple)
			if visit != nil {
				visit(cp)
			}
			if collect {
				collected = append(collected, cp)
			}
			return
		}
		for _, v := range items[depth] {
			tuple[depth] = v
			walk(depth + 1)
		}
	}
	walk(0)

	return collected
}
