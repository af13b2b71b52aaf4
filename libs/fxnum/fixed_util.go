package fxnum

import (
	"math"
	"math/big"

	"github.com/beatoz/swoupon-go/types/bytes"
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

const (
	// fixedScaleDigits represents the default scale (7 decimal places) used by robaho/fixed.
	fixedScaleDigits = 7
	rawBytesLen      = 16
)

var (
	// 2^-64 == 5^64 * 10^-64, so raw*5^64 with exponent -64 is the exact decimal value.
	pow5of64  = new(big.Int).Exp(big.NewInt(5), big.NewInt(fracBits), nil)
	fixedUnit = uint256.NewInt(10_000_000) // 10^fixedScaleDigits
	two128    = uint256.Int{0, 0, 1, 0}
)

// FromRaw returns the FxNum whose raw representation is raw, i.e. raw/2^64.
func FromRaw(raw *big.Int) (FxNum, xerrors.XError) {
	mag := new(big.Int).Abs(raw)
	u, overflow := uint256.FromBig(mag)
	if overflow {
		if raw.Sign() < 0 {
			return ZERO, xerrors.ErrUnderflow.Wrapf("raw %v", raw)
		}
		return ZERO, xerrors.ErrOverflow.Wrapf("raw %v", raw)
	}
	ret, xerr := fromMag(u, raw.Sign() < 0)
	if xerr != nil {
		return ZERO, xerr.Wrapf("raw %v", raw)
	}
	return ret, nil
}

// Raw returns value*2^64 as a signed integer.
func (x FxNum) Raw() *big.Int {
	mag, neg := x.abs()
	b := mag.ToBig()
	if neg {
		b.Neg(b)
	}
	return b
}

// RawBytes returns the raw value as a 16-byte big-endian two's complement integer.
func (x FxNum) RawBytes() bytes.HexBytes {
	b32 := x.raw.Bytes32()
	return bytes.HexBytes(b32[32-rawBytesLen:])
}

// FromRawBytes is the inverse of RawBytes.
func FromRawBytes(bz []byte) (FxNum, xerrors.XError) {
	if len(bz) != rawBytesLen {
		return ZERO, xerrors.ErrInvalidArgument.Wrapf("raw bytes length %d, want %d", len(bz), rawBytesLen)
	}
	var z FxNum
	z.raw.SetBytes(bz)
	if bz[0]&0x80 != 0 {
		// sign extension from 128 to 256 bits
		z.raw.Sub(&z.raw, &two128)
	}
	return z, nil
}

// ToDecimal converts x to the exactly equal shopspring/decimal.Decimal.
func (x FxNum) ToDecimal() decimal.Decimal {
	b := x.Raw()
	b.Mul(b, pow5of64)
	return decimal.NewFromBigInt(b, -fracBits)
}

// ToFixed converts x to a robaho/fixed.Fixed, truncating toward zero at 7 decimal places.
// It fails when the magnitude of x does not fit robaho/fixed's int64 backing.
func (x FxNum) ToFixed() (fixed.Fixed, xerrors.XError) {
	mag, neg := x.abs()

	var scaled uint256.Int
	scaled.Mul(&mag, fixedUnit)
	scaled.Rsh(&scaled, fracBits)
	if !scaled.IsUint64() || scaled.Uint64() > math.MaxInt64 {
		return fixed.ZERO, xerrors.ErrOverflow.Wrapf("%v exceeds the range of fixed.Fixed", x)
	}

	n := int64(scaled.Uint64())
	if neg {
		n = -n
	}
	return fixed.NewI(n, fixedScaleDigits), nil
}

// String returns the exact decimal expansion of x.
func (x FxNum) String() string {
	return x.ToDecimal().String()
}

// StringFixed returns x rounded to the given number of decimal places, zero-padded.
func (x FxNum) StringFixed(places int32) string {
	return x.ToDecimal().StringFixed(places)
}
