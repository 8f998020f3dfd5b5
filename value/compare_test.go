package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corradopav/motion-grammar-kit/value"
)

func TestCompare(t *testing.T) {
	t.Run("reflexive on every shape", func(t *testing.T) {
		vs := []value.Value{
			value.None(),
			value.Int(0),
			value.Number(-2.5),
			value.Text("tok"),
			value.Symbol("q1"),
			value.List(value.Int(1), value.Symbol("a")),
			value.List(value.List(value.Int(1))),
		}
		for _, v := range vs {
			assert.Zero(t, value.Compare(v, v), "compare(%s, %s)", v, v)
		}
	})

	t.Run("antisymmetric on ordered pairs", func(t *testing.T) {
		pairs := [][2]value.Value{
			{value.Int(1), value.Int(2)},
			{value.None(), value.Int(0)},
			{value.Int(9), value.Text("a")},
			{value.Text("a"), value.Text("b")},
			{value.Symbol("x"), value.List(value.Symbol("x"))},
			{value.List(value.Int(1)), value.List(value.Int(2))},
			{value.List(value.Int(1)), value.List(value.Int(1), value.Int(0))},
		}
		for _, p := range pairs {
			assert.Negative(t, value.Compare(p[0], p[1]), "%s vs %s", p[0], p[1])
			assert.Positive(t, value.Compare(p[1], p[0]), "%s vs %s", p[1], p[0])
		}
	})

	t.Run("absent orders before everything", func(t *testing.T) {
		assert.Negative(t, value.Compare(value.None(), value.Int(-100)))
		assert.Negative(t, value.Compare(value.None(), value.Text("")))
		assert.Negative(t, value.Compare(value.List(), value.List(value.Int(0))))
	})

	t.Run("nil and the empty list are the same to the order", func(t *testing.T) {
		assert.Zero(t, value.Compare(value.None(), value.List()))
		assert.Zero(t, value.Compare(value.List(), value.None()))
	})

	t.Run("numbers order before text", func(t *testing.T) {
		assert.Negative(t, value.Compare(value.Int(99), value.Text("0")))
		assert.Positive(t, value.Compare(value.Symbol("0"), value.Int(99)))
	})

	t.Run("composites order after atoms", func(t *testing.T) {
		assert.Positive(t, value.Compare(value.List(value.Int(0)), value.Text("zzz")))
		assert.Positive(t, value.Compare(value.List(value.Int(0)), value.Number(1e9)))
	})

	t.Run("lists compare lexicographically", func(t *testing.T) {
		a := value.List(value.Int(1), value.Int(2))
		b := value.List(value.Int(1), value.Int(3))
		assert.Negative(t, value.Compare(a, b))

		// shorter prefix orders first
		c := value.List(value.Int(1))
		assert.Negative(t, value.Compare(c, a))
	})

	t.Run("case-folded tie resolves to the second argument, both ways", func(t *testing.T) {
		// The historical tie-break is asymmetric and kept that way.
		assert.Positive(t, value.Compare(value.Text("Foo"), value.Text("foo")))
		assert.Positive(t, value.Compare(value.Text("foo"), value.Text("Foo")))
		assert.Positive(t, value.Compare(value.Text("foo"), value.Symbol("foo")))
	})
}
