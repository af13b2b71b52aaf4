// Package fxnum provides a deterministic, signed Q64.64 fixed-point number and
// integer-only implementations of exp, ln, pow and sqrt on it.
// No floating-point arithmetic is used anywhere, so every result is reproducible bit-for-bit.
package fxnum

import (
	"math"

	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/holiman/uint256"
)

// fracBits is the number of fractional bits; raw = value * 2^fracBits.
const fracBits = 64

var (
	ZERO = FxNum{}
	ONE  = FxNum{raw: uint256.Int{0, 1, 0, 0}}
	TWO  = FxNum{raw: uint256.Int{0, 2, 0, 0}}

	// magnitude limits of raw: [-2^127, 2^127-1]
	maxPosMag = uint256.Int{math.MaxUint64, math.MaxInt64, 0, 0}
	maxNegMag = uint256.Int{0, 1 << 63, 0, 0}

	MaxValue = FxNum{raw: maxPosMag}
	MinValue = FxNum{raw: *new(uint256.Int).Neg(&maxNegMag)}
)

// FxNum is a signed fixed-point number with 64 integer and 64 fractional bits.
// raw holds value*2^64 as a 256-bit two's complement integer, always within [-2^127, 2^127-1].
// The zero value is 0.
type FxNum struct {
	raw uint256.Int
}

// FromInt returns v as a FxNum. Every int64 is representable.
func FromInt(v int64) FxNum {
	mag := uint64(v)
	if v < 0 {
		mag = uint64(-v) // -MinInt64 wraps to itself, and uint64 of that is 2^63
	}
	var z FxNum
	z.raw.SetUint64(mag)
	z.raw.Lsh(&z.raw, fracBits)
	if v < 0 {
		z.raw.Neg(&z.raw)
	}
	return z
}

// FromUint returns v as a FxNum. Values of 2^63 and above exceed the integer range.
func FromUint(v uint64) (FxNum, xerrors.XError) {
	if v > math.MaxInt64 {
		return ZERO, xerrors.ErrOverflow.Wrapf("integer %v exceeds fixed-point range", v)
	}
	return FromInt(int64(v)), nil
}

// Frac returns raw/2^64, a non-negative value in [0, 1).
// It is used to declare pre-scaled constants.
func Frac(raw uint64) FxNum {
	return FxNum{raw: uint256.Int{raw, 0, 0, 0}}
}

// ToInt truncates x toward zero.
func (x FxNum) ToInt() int64 {
	mag, neg := x.abs()
	mag.Rsh(&mag, fracBits)
	n := int64(mag.Uint64())
	if neg {
		return -n
	}
	return n
}

func (x FxNum) Add(o FxNum) (FxNum, xerrors.XError) {
	var z uint256.Int
	z.Add(&x.raw, &o.raw)
	ret, xerr := fromSigned(&z)
	if xerr != nil {
		return ZERO, xerr.Wrapf("add: %v + %v", x, o)
	}
	return ret, nil
}

func (x FxNum) Sub(o FxNum) (FxNum, xerrors.XError) {
	var z uint256.Int
	z.Sub(&x.raw, &o.raw)
	ret, xerr := fromSigned(&z)
	if xerr != nil {
		return ZERO, xerr.Wrapf("sub: %v - %v", x, o)
	}
	return ret, nil
}

// Mul returns x*o truncated toward zero.
// The full product of two 128-bit magnitudes fits in 256 bits, so nothing is lost before rescaling.
func (x FxNum) Mul(o FxNum) (FxNum, xerrors.XError) {
	ma, na := x.abs()
	mb, nb := o.abs()

	var p uint256.Int
	p.Mul(&ma, &mb)
	p.Rsh(&p, fracBits)

	ret, xerr := fromMag(&p, na != nb)
	if xerr != nil {
		return ZERO, xerr.Wrapf("mul: %v * %v", x, o)
	}
	return ret, nil
}

// Div returns x/o truncated toward zero.
func (x FxNum) Div(o FxNum) (FxNum, xerrors.XError) {
	if o.IsZero() {
		return ZERO, xerrors.ErrDivisionByZero.Wrapf("div: %v / 0", x)
	}
	ma, na := x.abs()
	mb, nb := o.abs()

	var q uint256.Int
	q.Lsh(&ma, fracBits)
	q.Div(&q, &mb)

	ret, xerr := fromMag(&q, na != nb)
	if xerr != nil {
		return ZERO, xerr.Wrapf("div: %v / %v", x, o)
	}
	return ret, nil
}

// Neg fails only for MinValue, whose negation is not representable.
func (x FxNum) Neg() (FxNum, xerrors.XError) {
	mag, neg := x.abs()
	ret, xerr := fromMag(&mag, !neg)
	if xerr != nil {
		return ZERO, xerr.Wrapf("neg: -(%v)", x)
	}
	return ret, nil
}

func (x FxNum) Sign() int {
	return x.raw.Sign()
}

func (x FxNum) IsZero() bool {
	return x.raw.IsZero()
}

func (x FxNum) Cmp(o FxNum) int {
	switch {
	case x.raw.Slt(&o.raw):
		return -1
	case x.raw.Sgt(&o.raw):
		return 1
	default:
		return 0
	}
}

func (x FxNum) Equal(o FxNum) bool {
	return x.raw.Eq(&o.raw)
}

func (x FxNum) GreaterThan(o FxNum) bool {
	return x.Cmp(o) > 0
}

func (x FxNum) GreaterThanOrEqual(o FxNum) bool {
	return x.Cmp(o) >= 0
}

func (x FxNum) LessThan(o FxNum) bool {
	return x.Cmp(o) < 0
}

func (x FxNum) LessThanOrEqual(o FxNum) bool {
	return x.Cmp(o) <= 0
}

// Min returns the lesser of a and b; on a tie both are identical.
func Min(a, b FxNum) FxNum {
	if b.LessThan(a) {
		return b
	}
	return a
}

func Max(a, b FxNum) FxNum {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

// abs returns the magnitude of x and whether x is negative.
func (x FxNum) abs() (uint256.Int, bool) {
	var mag uint256.Int
	if x.raw.Sign() < 0 {
		mag.Neg(&x.raw)
		return mag, true
	}
	mag.Set(&x.raw)
	return mag, false
}

// fromMag builds a FxNum from a magnitude and a sign, rejecting values outside the range.
func fromMag(mag *uint256.Int, neg bool) (FxNum, xerrors.XError) {
	var z FxNum
	if neg {
		if mag.Gt(&maxNegMag) {
			return ZERO, xerrors.ErrUnderflow
		}
		z.raw.Neg(mag)
		return z, nil
	}
	if mag.Gt(&maxPosMag) {
		return ZERO, xerrors.ErrOverflow
	}
	z.raw.Set(mag)
	return z, nil
}

// fromSigned range-checks a 256-bit two's complement result of add/sub.
func fromSigned(v *uint256.Int) (FxNum, xerrors.XError) {
	if v.Sign() < 0 {
		var mag uint256.Int
		mag.Neg(v)
		return fromMag(&mag, true)
	}
	return fromMag(v, false)
}
