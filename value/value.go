package value

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindNumber
	KindText
	KindSymbol
	KindList
)

// Value is an immutable symbolic datum: an atom (number, text token,
// identifier) or a nested ordered list of Values. The zero Value is None,
// the absent value.
type Value struct {
	kind Kind
	num  float64
	str  string
	list []Value
}

// None is the absent value.
func None() Value {
	return Value{}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func Int(i int) Value {
	return Value{kind: KindNumber, num: float64(i)}
}

// Text is a quoted token atom.
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Symbol is an identifier atom.
func Symbol(s string) Value {
	return Value{kind: KindSymbol, str: s}
}

// List builds a nested composite value. The items slice is copied.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Pair is a two-element List.
func Pair(a, b Value) Value {
	return Value{kind: KindList, list: []Value{a, b}}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNone() bool {
	return v.kind == KindNone
}

func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

func (v Value) IsList() bool {
	return v.kind == KindList
}

func (v Value) Float64() float64 {
	return v.num
}

// Name returns the text of a Text or Symbol atom, "" otherwise.
func (v Value) Name() string {
	return v.str
}

// Items returns the elements of a List value, nil for atoms.
func (v Value) Items() []Value {
	return v.list
}

// String renders the printed form: numbers in shortest decimal notation,
// atoms as their text, lists parenthesized lisp-style.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return "nil"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText, KindSymbol:
		return v.str
	default:
		var b strings.Builder
		b.WriteByte('(')
		for i, item := range v.list {
			if i != 0 {
				b.WriteByte(' ')
			}
			b.WriteString(item.String())
		}
		b.WriteByte(')')
		return b.String()
	}
}

// Equal reports deep structural equality, independent of any backing
// representation the values may live in.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindNumber:
		return a.num == b.num
	case KindText, KindSymbol:
		return a.str == b.str
	default:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	}
}

// Key returns an unambiguous canonical encoding of v, suitable for keying
// hash aggregates by structural equality. Distinct structures never share
// a key: in particular None and the empty list get distinct keys, even
// though Compare treats the two as one absent value. A hash-keyed set can
// hold both at once where a comparator-keyed one cannot.
func Key(v Value) string {
	var b strings.Builder
	writeKey(&b, v)
	return b.String()
}

func writeKey(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNone:
		b.WriteByte('_')
	case KindNumber:
		b.WriteByte('n')
		b.WriteString(strconv.FormatFloat(v.num, 'g', -1, 64))
	case KindText:
		b.WriteByte('t')
		b.WriteString(strconv.Itoa(len(v.str)))
		b.WriteByte(':')
		b.WriteString(v.str)
	case KindSymbol:
		b.WriteByte('y')
		b.WriteString(strconv.Itoa(len(v.str)))
		b.WriteByte(':')
		b.WriteString(v.str)
	default:
		b.WriteByte('(')
		for _, item := range v.list {
			writeKey(b, item)
		}
		b.WriteByte(')')
	}
}

// Numbers converts native Go numbers into Number values.
func Numbers[N constraints.Integer | constraints.Float](ns ...N) []Value {
	vs := make([]Value, len(ns))
	for i, n := range ns {
		vs[i] = Number(float64(n))
	}
	return vs
}

// Texts converts strings into Text values.
func Texts(ss ...string) []Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = Text(s)
	}
	return vs
}

// Symbols converts strings into Symbol values.
func Symbols(ss ...string) []Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = Symbol(s)
	}
	return vs
}
