package num

import "math/big"

// BigInt is the kind of arbitrary-precision integers. A nil *big.Int
// is not a valid component. Division truncates toward zero and panics
// if the divisor is zero.
//
// BigInt has no square root: a *big.Int length would have to be
// either truncated or rounded to some precision, and neither is a
// choice this kind can make on the caller's behalf.
type BigInt struct{}

var _ Kind[*big.Int] = BigInt{}

// BigIntOf returns a new *big.Int holding v.
func BigIntOf(v int64) *big.Int {
	return big.NewInt(v)
}

func (BigInt) Zero() *big.Int { return new(big.Int) }
func (BigInt) One() *big.Int  { return big.NewInt(1) }

func (BigInt) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }
func (BigInt) Sub(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }
func (BigInt) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }
func (BigInt) Div(a, b *big.Int) *big.Int { return new(big.Int).Quo(a, b) }
func (BigInt) Neg(a *big.Int) *big.Int    { return new(big.Int).Neg(a) }
func (BigInt) Abs(a *big.Int) *big.Int    { return new(big.Int).Abs(a) }

func (BigInt) Cmp(a, b *big.Int) int    { return a.Cmp(b) }
func (BigInt) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }
func (BigInt) Valid(a *big.Int) bool    { return a != nil }
func (BigInt) Format(a *big.Int) string { return a.String() }

func (BigInt) Append(b []byte, a *big.Int) []byte {
	return a.Append(b, 16)
}
