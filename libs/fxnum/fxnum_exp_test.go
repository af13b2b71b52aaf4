package fxnum

import (
	"testing"
	"testing/quick"

	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestExp(t *testing.T) {
	data := []struct {
		x, out string
		ulps   int64
	}{
		{"1", "2.71828182845904523536028747135266249775724709369995", 2},
		{"-1", "0.36787944117144232159552377016146086744581113103176", 2},
		{"0.5", "1.64872127070012814684865078781416357165377610071014", 2},
		{"-0.5", "0.60653065971263342360379953499118045344191813548718", 2},
		{"10", "22026.4657948067165169579006452842443663535126185567", 2},
		{"20", "485165195.409790277969106830541540558684638988944847", 2},
		{"-25", "0.000000000013887943864964020594661763746086856910", 2},
		{"-40", "0.00000000000000000424835425529158899532923478285866", 2},
	}
	for _, rec := range data {
		got, xerr := Exp(mustParse(t, rec.x))
		require.NoError(t, xerr)
		requireNearUlps(t, rec.out, got, rec.ulps)
	}

	// near the top of the range only the relative error is meaningful
	got, xerr := Exp(FromInt(43))
	require.NoError(t, xerr)
	requireNearRel(t, "4727839468229346561.47445756274428037081975196238093817", got, "0.000000000000000000000001")
}

func TestExpEdges(t *testing.T) {
	got, xerr := Exp(ZERO)
	require.NoError(t, xerr)
	require.True(t, got.Equal(ONE))

	for _, x := range []string{"-46", "-45.9", "-100", "-9223372036854775808"} {
		got, xerr = Exp(mustParse(t, x))
		require.NoError(t, xerr)
		require.True(t, got.IsZero(), "exp(%v) = %v", x, got)
	}

	for _, x := range []string{"44", "44.1", "1000"} {
		_, xerr = Exp(mustParse(t, x))
		require.ErrorIs(t, xerr, xerrors.ErrOverflow, "exp(%v)", x)
	}
	_, xerr = Exp(MaxValue)
	require.ErrorIs(t, xerr, xerrors.ErrOverflow)
}

func TestExpMonotonic(t *testing.T) {
	prev, xerr := Exp(FromInt(-30))
	require.NoError(t, xerr)
	step := mustParse(t, "0.25")
	x := FromInt(-30)
	for i := 0; i < 280; i++ {
		x, xerr = x.Add(step)
		require.NoError(t, xerr)
		cur, err := Exp(x)
		require.NoError(t, err)
		require.True(t, cur.GreaterThan(prev), "exp(%v) = %v is not above %v", x, cur, prev)
		prev = cur
	}
}

func TestLn(t *testing.T) {
	data := []struct {
		x, out string
		ulps   int64
	}{
		{"2", "0.69314718055994530941723212145817656807550013436026", 2},
		{"0.5", "-0.69314718055994530941723212145817656807550013436026", 2},
		{"3", "1.09861228866810969139524523692252570464749055782275", 2},
		{"10", "2.30258509299404568401799145468436420760110148862877", 2},
		{"1000000", "13.8155105579642741041079487281061462456066089329726", 2},
	}
	for _, rec := range data {
		got, xerr := Ln(mustParse(t, rec.x))
		require.NoError(t, xerr)
		requireNearUlps(t, rec.out, got, rec.ulps)
	}

	got, xerr := Ln(ONE)
	require.NoError(t, xerr)
	require.True(t, got.IsZero())

	// the smallest and the largest positive values
	got, xerr = Ln(Frac(1))
	require.NoError(t, xerr)
	requireNearUlps(t, "-44.3614195558364998027028557733233003568320085990563", got, 2)

	got, xerr = Ln(MaxValue)
	require.NoError(t, xerr)
	requireNearUlps(t, "43.6682723752765544932856236518651237887506309929420", got, 2)
}

func TestLnInvalid(t *testing.T) {
	for _, x := range []FxNum{ZERO, FromInt(-1), MinValue} {
		_, xerr := Ln(x)
		require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)
	}
}

func TestPow(t *testing.T) {
	data := []struct {
		base, exp, out string
	}{
		{"2", "3.5", "11.3137084989847603904135097936975"},
		{"4", "0.5", "2"},
		{"10", "-1", "0.1"},
		{"2", "0.5", "1.41421356237309504880168872420970"},
		{"3", "1.5", "5.19615242270663188058233902451762"},
		{"1.5", "2.5", "2.75567596063107536047194458404412781596169091573875"},
		{"1000", "0.3", "7.94328234724281502065918282836388"},
		{"2", "2", "4"},
	}
	for _, rec := range data {
		got, xerr := Pow(mustParse(t, rec.base), mustParse(t, rec.exp))
		require.NoError(t, xerr)
		requireNearRel(t, rec.out, got, "0.00000000000000001")

		// agrees with shopspring/decimal at 7 digits
		b, err := decimal.NewFromString(rec.base)
		require.NoError(t, err)
		e, err := decimal.NewFromString(rec.exp)
		require.NoError(t, err)
		require.Equal(t, b.Pow(e).Round(7).String(), got.ToDecimal().Round(7).String(),
			"%v^%v", rec.base, rec.exp)
	}

	got, xerr := Pow(ONE, mustParse(t, "5.6789"))
	require.NoError(t, xerr)
	require.True(t, got.Equal(ONE))

	got, xerr = Pow(FromInt(7), ZERO)
	require.NoError(t, xerr)
	require.True(t, got.Equal(ONE))
}

func TestPowErrors(t *testing.T) {
	_, xerr := Pow(ZERO, ONE)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)
	_, xerr = Pow(FromInt(-2), TWO)
	require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)
	_, xerr = Pow(FromInt(10), FromInt(20))
	require.ErrorIs(t, xerr, xerrors.ErrOverflow)
}

func TestPowDeterministicProp(t *testing.T) {
	f := func(b uint32, e uint16) bool {
		if b == 0 {
			return true
		}
		base := Frac(uint64(b) << 32)
		exp := Frac(uint64(e) << 48)
		v1, err1 := Pow(base, exp)
		v2, err2 := Pow(base, exp)
		return err1 == nil && err2 == nil && v1.Equal(v2)
	}
	require.NoError(t, quick.Check(f, nil))
}

func BenchmarkExp(b *testing.B) {
	x := FromInt(-3)
	for i := 0; i < b.N; i++ {
		_, _ = Exp(x)
	}
}

func BenchmarkLn(b *testing.B) {
	x := FromInt(12345)
	for i := 0; i < b.N; i++ {
		_, _ = Ln(x)
	}
}

func BenchmarkPow(b *testing.B) {
	base := FromInt(10001)
	exp := Frac(0x4ccccccccccccccd)
	for i := 0; i < b.N; i++ {
		_, _ = Pow(base, exp)
	}
}

func BenchmarkDecimalPow(b *testing.B) {
	base := decimal.NewFromInt(10001)
	exp := decimal.RequireFromString("0.3")
	for i := 0; i < b.N; i++ {
		_ = base.Pow(exp)
	}
}
