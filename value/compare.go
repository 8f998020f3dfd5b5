package value

import "strings"

// Compare is a recursive total order over heterogeneous values, returning a
// negative, zero or positive int (the usual Go ordering convention). It keys
// ordered set backings deterministically.
//
// Rules, applied in order:
//  1. structurally equal values compare equal;
//  2. the absent value (None, or the empty list — the two are one and the
//     same here, as in the lisp tradition) orders before everything else;
//  3. two composites compare element-wise, lexicographically;
//  4. a composite orders after any atom;
//  5. two numbers compare by the sign of their difference;
//  6. a number orders before any non-numeric atom;
//  7. remaining atoms compare by printed text, case-folded; a case-folded
//     tie between distinct atoms resolves to the second argument first.
//
// Rule 7's tie-break is asymmetric: for such pairs Compare(a, b) and
// Compare(b, a) both report greater. Callers whose atoms collide only on
// letter case get an arbitrary but fixed order, not a strict one.
func Compare(a, b Value) int {
	if Equal(a, b) {
		return 0
	}

	aAbsent, bAbsent := absent(a), absent(b)
	switch {
	case aAbsent && bAbsent:
		// nil and () are indistinguishable to the order.
		return 0
	case aAbsent:
		return -1
	case bAbsent:
		return 1
	}

	aList, bList := a.kind == KindList, b.kind == KindList
	switch {
	case aList && bList:
		return compareLists(a.list, b.list)
	case aList:
		return 1
	case bList:
		return -1
	}

	aNum, bNum := a.kind == KindNumber, b.kind == KindNumber
	switch {
	case aNum && bNum:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	case aNum:
		return -1
	case bNum:
		return 1
	}

	fa, fb := strings.ToLower(a.String()), strings.ToLower(b.String())
	if c := strings.Compare(fa, fb); c != 0 {
		return c
	}
	return 1
}

func compareLists(as, bs []Value) int {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		if c := Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	default:
		return 0
	}
}

func absent(v Value) bool {
	return v.kind == KindNone || (v.kind == KindList && len(v.list) == 0)
}
