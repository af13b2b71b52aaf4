package swoupon

import (
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/shopspring/decimal"
)

const (
	// ReferencePrecision is the number of decimal places the reference model keeps.
	ReferencePrecision = 24
	// below this exponent e^x vanishes at ReferencePrecision
	refExpFloor = -60
)

// ReferenceF evaluates F(V) with shopspring/decimal.
// The Reference* functions model the intended real-valued formulas and are used
// to measure the error of the fixed-point pipeline. They are not safe for concurrent use
// because shopspring/decimal caches factorials in a package variable.
func ReferenceF(v uint64) (decimal.Decimal, xerrors.XError) {
	x := decDecayK.Mul(decimal.NewFromUint64(v)).Neg()
	decay := decimal.Zero
	if x.GreaterThan(decimal.NewFromInt(refExpFloor)) {
		e, err := x.ExpTaylor(ReferencePrecision)
		if err != nil {
			return decimal.Zero, xerrors.From(err).Wrapf("reference F(%d)", v)
		}
		decay = e
	}
	return decBaseRate.Add(decDecayRate.Mul(decay)), nil
}

func ReferenceTR(v uint64) (decimal.Decimal, xerrors.XError) {
	f, xerr := ReferenceF(v)
	if xerr != nil {
		return decimal.Zero, xerr
	}
	return f.Mul(decimal.NewFromUint64(v)).DivRound(decDivisor, ReferencePrecision), nil
}

func ReferencePotentialTI(v uint64, curve RewardCurve) (decimal.Decimal, xerrors.XError) {
	var p decimal.Decimal
	switch curve {
	case CurveSqrt:
		p = decSqrtExp
	case CurvePow:
		p = decPowExp
	default:
		return decimal.Zero, xerrors.ErrInvalidArgument.Wrapf("reward curve %d", int(curve))
	}

	base := decimal.NewFromUint64(v).Add(decimal.NewFromInt(1))
	g, err := refPow(base, p)
	if err != nil {
		return decimal.Zero, xerrors.From(err).Wrapf("reference potential_TI(%d)", v)
	}
	return g.DivRound(decDivisor, ReferencePrecision), nil
}

func ReferenceTRAndTI(v uint64, curve RewardCurve) (decimal.Decimal, decimal.Decimal, xerrors.XError) {
	tr, xerr := ReferenceTR(v)
	if xerr != nil {
		return decimal.Zero, decimal.Zero, xerr
	}
	pot, xerr := ReferencePotentialTI(v, curve)
	if xerr != nil {
		return decimal.Zero, decimal.Zero, xerr
	}
	ti := decimal.Min(pot, tr.DivRound(decCapRatio, ReferencePrecision))
	return tr, decimal.Max(decimal.Zero, ti), nil
}

// refPow returns base^p for base >= 1 as exp(p * ln(base)).
// decimal.Pow sizes its precision from the operands, which is too coarse for small bases.
func refPow(base, p decimal.Decimal) (decimal.Decimal, error) {
	if base.Equal(decimal.NewFromInt(1)) {
		return base, nil
	}
	ln, err := base.Ln(ReferencePrecision)
	if err != nil {
		return decimal.Zero, err
	}
	return ln.Mul(p).ExpTaylor(ReferencePrecision)
}
