package swoupon

import (
	"testing"

	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var defaultVolumes = []uint64{0, 1, 100, 1000, 10000, 50000, 100000, 500000}

func TestReferenceModel(t *testing.T) {
	f, xerr := ReferenceF(0)
	require.NoError(t, xerr)
	require.True(t, f.Equal(decimal.RequireFromString("0.03")), f.String())

	tr, ti, xerr := ReferenceTRAndTI(0, CurveSqrt)
	require.NoError(t, xerr)
	require.True(t, tr.IsZero())
	require.True(t, ti.IsZero())

	pot, xerr := ReferencePotentialTI(0, CurvePow)
	require.NoError(t, xerr)
	require.True(t, pot.Equal(decimal.NewFromInt(10)))

	// the quoted reward figures come from the 0.3 power curve
	for v, want := range map[uint64]string{1000: "79.457", 10000: "158.494", 500000: "512.497"} {
		_, ti, xerr := ReferenceTRAndTI(v, CurvePow)
		require.NoError(t, xerr)
		require.Equal(t, want, ti.StringFixed(3))
	}
	for v, want := range map[uint64]string{1000: "96.749", 10000: "737.687", 500000: "7071.075"} {
		_, ti, xerr := ReferenceTRAndTI(v, CurveSqrt)
		require.NoError(t, xerr)
		require.Equal(t, want, ti.StringFixed(3))
	}

	// far beyond the decay the factor is exactly c1
	f, xerr = ReferenceF(1 << 40)
	require.NoError(t, xerr)
	require.True(t, f.Equal(decBaseRate))

	_, xerr = ReferencePotentialTI(1, RewardCurve(5))
	require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)
}

func TestCompare(t *testing.T) {
	for _, curve := range []RewardCurve{CurveSqrt, CurvePow} {
		cmp, xerr := Compare(defaultVolumes, curve, decimal.RequireFromString("0.00000001"))
		require.NoError(t, xerr)
		require.Len(t, cmp.Deviations, 4*len(defaultVolumes))
		require.Empty(t, cmp.Failed())
		require.NotNil(t, cmp.Worst)
		require.True(t, cmp.Worst.RelDiff.LessThan(decimal.RequireFromString("0.000000000000001")),
			"worst %s(%d) %s", cmp.Worst.Name, cmp.Worst.Volume, cmp.Worst.RelDiff)
	}
}

func TestCompareToleranceExceeded(t *testing.T) {
	cmp, xerr := Compare([]uint64{1, 1000}, CurveSqrt, decimal.Zero)
	require.ErrorIs(t, xerr, xerrors.ErrToleranceExceeded)
	require.NotNil(t, cmp)
	require.NotEmpty(t, cmp.Failed())
	for _, d := range cmp.Failed() {
		require.True(t, d.RelDiff.IsPositive())
	}

	_, xerr = Compare([]uint64{1}, CurveSqrt, decimal.NewFromInt(-1))
	require.ErrorIs(t, xerr, xerrors.ErrInvalidArgument)

	_, xerr = Compare([]uint64{1 << 63}, CurveSqrt, decimal.Zero)
	require.ErrorIs(t, xerr, xerrors.ErrOverflow)
}

func TestReferenceKeepsDivisionPrecision(t *testing.T) {
	before := decimal.DivisionPrecision
	_, err := Compare(defaultVolumes, CurvePow, decimal.RequireFromString("0.00000001"))
	require.NoError(t, err)
	require.Equal(t, before, decimal.DivisionPrecision)

	// differences below the default 16 places survive
	d := relDiff(decimal.RequireFromString("1.000000000000000001"), decimal.NewFromInt(1))
	require.True(t, d.Equal(decimal.New(1, -18)), d.String())
}
