package fxnum

import (
	"testing"
	"testing/quick"

	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestSqrt(t *testing.T) {
	data := []struct {
		x, out string
	}{
		{"2", "1.41421356237309504880168872420969807856967187537694"},
		{"3", "1.73205080756887729352744634150587236694280525381038"},
		{"10", "3.16227766016837933199889354443271853371955513932522"},
		{"0.5", "0.70710678118654752440084436210484903928483593768847"},
		{"1000000000001", "1000000.00000049999999999987500000000006249999999996094"},
		{"9223372036854775807", "3037000499.97604969228675240303062853507307957852713"},
	}
	for _, rec := range data {
		got, xerr := Sqrt(mustParse(t, rec.x))
		require.NoError(t, xerr)
		requireNearUlps(t, rec.out, got, 1)
	}

	for _, v := range []int64{0, 1, 2, 3, 12, 1 << 20, 3037000499} {
		got, xerr := Sqrt(FromInt(v * v))
		require.NoError(t, xerr)
		require.True(t, got.Equal(FromInt(v)), "sqrt(%v^2) = %v", v, got)
	}
}

func TestSqrtInvalid(t *testing.T) {
	_, xerr := Sqrt(FromInt(-1))
	require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)
	_, xerr = Sqrt(Frac(1).mustNeg(t))
	require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)
}

func TestSqrtFloorProp(t *testing.T) {
	// result r satisfies r^2 <= x < (r+ulp)^2 on raw values
	f := func(hi uint64, lo uint64) bool {
		x := FxNum{raw: uint256.Int{lo, hi >> 1, 0, 0}}
		r, xerr := Sqrt(x)
		if xerr != nil {
			return false
		}
		var n, sq, next uint256.Int
		n.Lsh(&x.raw, fracBits)
		sq.Mul(&r.raw, &r.raw)
		next.AddUint64(&r.raw, 1)
		next.Mul(&next, &next)
		return !n.Lt(&sq) && n.Lt(&next)
	}
	require.NoError(t, quick.Check(f, nil))
}

func (x FxNum) mustNeg(t *testing.T) FxNum {
	r, xerr := x.Neg()
	require.NoError(t, xerr)
	return r
}

func BenchmarkSqrt(b *testing.B) {
	x := FromInt(1_000_001)
	for i := 0; i < b.N; i++ {
		_, _ = Sqrt(x)
	}
}
