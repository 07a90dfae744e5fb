// Package num defines the numeric kinds that tuples are generic over.
//
// A kind is a zero-size type whose methods implement the arithmetic of
// one component type. Because a kind carries no state, tuple code uses
// it through its zero value:
//
//	var k K
//	sum := k.Add(a, b)
//
// Kinds that can take a square root also satisfy [Rooter]. Code that
// needs a length, such as normalization, asks for a Rooter in its type
// constraint, so asking for the length of an integer vector is a
// compile error rather than a runtime one.
package num

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the built-in numeric types that can be
// converted into one another with a plain conversion.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Kind is the arithmetic of a numeric component type T.
//
// Implementations never modify their arguments. For pointer types
// every result is a fresh value owned by the caller.
type Kind[T any] interface {
	Zero() T
	One() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Div divides a by b. What happens when b is zero is up to the
	// kind: floats produce an infinity or NaN, everything else
	// panics.
	Div(a, b T) T

	Neg(a T) T
	Abs(a T) T

	// Cmp returns -1, 0 or +1 depending on whether a is less than,
	// equal to, or greater than b in numeric order.
	Cmp(a, b T) int

	// Equal reports whether a and b are the same value under the
	// kind's native equality. For floats that is the bit pattern,
	// not the numeric order used by Cmp.
	Equal(a, b T) bool

	// Valid reports whether a may be used as a component. It is false
	// only for the null value of reference kinds.
	Valid(a T) bool

	// Append appends an encoding of a to b such that values that are
	// Equal encode identically.
	Append(b []byte, a T) []byte

	Format(a T) string
}

// Rooter is a Kind that can take square roots.
type Rooter[T any] interface {
	Kind[T]

	// Sqrt returns the square root of a. It does not guard against a
	// negative argument.
	Sqrt(a T) T
}
