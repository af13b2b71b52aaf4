package fxnum

import (
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/holiman/uint256"
)

// Sqrt returns √x truncated to the last fractional bit.
// √(raw/2^64) * 2^64 == √(raw * 2^64), so the integer square root of the
// up-shifted raw value is the result. x.raw < 2^127 keeps raw*2^64 within 191 bits.
func Sqrt(x FxNum) (FxNum, xerrors.XError) {
	if x.Sign() < 0 {
		return ZERO, xerrors.ErrInvalidArgument.Wrapf("sqrt: input must be >= 0, got %v", x)
	}
	if x.IsZero() {
		return ZERO, nil
	}

	var n uint256.Int
	n.Lsh(&x.raw, fracBits)
	return FxNum{raw: isqrt(&n)}, nil
}

// isqrt returns ⌊√n⌋ by the bit-by-bit method:
// the result is built one bit at a time from the highest power of four not above n,
// subtracting (res + bit) from the remainder whenever it fits.
func isqrt(n *uint256.Int) uint256.Int {
	var rem, res, bit, trial uint256.Int
	if n.IsZero() {
		return res
	}
	rem.Set(n)
	bit.Lsh(uint256.NewInt(1), uint((n.BitLen()-1)&^1))

	for !bit.IsZero() {
		trial.Add(&res, &bit)
		res.Rsh(&res, 1)
		if !rem.Lt(&trial) {
			rem.Sub(&rem, &trial)
			res.Add(&res, &bit)
		}
		bit.Rsh(&bit, 2)
	}
	return res
}
