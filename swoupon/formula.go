// Package swoupon computes the volume-dependent Swoupon cost TR(V) and reward TI(V)
// on deterministic Q64.64 fixed-point numbers.
//
//	F(V)            = 0.01 + 0.02 * exp(-0.00005 * V)
//	TR(V)           = F(V) * V / 0.1
//	potential_TI(V) = sqrt(1 + V) / 0.1
//	TI(V)           = max(0, min(potential_TI(V), TR(V) / 3))
//
// potential_TI deliberately uses a square root where the reward was designed with (1+V)^0.3.
// The designed curve is available as CurvePow through the *With functions.
//
// All functions are pure and safe for concurrent use.
package swoupon

import (
	"github.com/beatoz/swoupon-go/libs/fxnum"
	"github.com/beatoz/swoupon-go/types/xerrors"
)

// CalculateF returns the fee factor F(V) = 0.01 + 0.02 * exp(-0.00005 * V).
func CalculateF(v uint64) (fxnum.FxNum, xerrors.XError) {
	fxV, xerr := fxnum.FromUint(v)
	if xerr != nil {
		return fxnum.ZERO, xerr.Wrapf("F(%d)", v)
	}
	ret, xerr := factor(fxV)
	if xerr != nil {
		return fxnum.ZERO, xerr.Wrapf("F(%d)", v)
	}
	return ret, nil
}

// CalculateTR returns the cost TR(V) = F(V) * V / 0.1.
func CalculateTR(v uint64) (fxnum.FxNum, xerrors.XError) {
	fxV, xerr := fxnum.FromUint(v)
	if xerr != nil {
		return fxnum.ZERO, xerr.Wrapf("TR(%d)", v)
	}
	ret, xerr := cost(fxV)
	if xerr != nil {
		return fxnum.ZERO, xerr.Wrapf("TR(%d)", v)
	}
	return ret, nil
}

// CalculatePotentialTI returns the uncapped reward sqrt(1 + V) / 0.1.
func CalculatePotentialTI(v uint64) (fxnum.FxNum, xerrors.XError) {
	return CalculatePotentialTIWith(v, CurveSqrt)
}

// CalculatePotentialTIWith returns the uncapped reward on the given curve.
func CalculatePotentialTIWith(v uint64, curve RewardCurve) (fxnum.FxNum, xerrors.XError) {
	fxV, xerr := fxnum.FromUint(v)
	if xerr != nil {
		return fxnum.ZERO, xerr.Wrapf("potential_TI(%d)", v)
	}
	ret, xerr := potentialReward(fxV, curve)
	if xerr != nil {
		return fxnum.ZERO, xerr.Wrapf("potential_TI(%d)", v)
	}
	return ret, nil
}

// CalculateTI returns the reward min(potential_TI(V), TR(V) / 3), never below zero.
func CalculateTI(v uint64) (fxnum.FxNum, xerrors.XError) {
	return CalculateTIWith(v, CurveSqrt)
}

// CalculateTIWith returns the capped reward on the given curve.
func CalculateTIWith(v uint64, curve RewardCurve) (fxnum.FxNum, xerrors.XError) {
	_, ti, xerr := CalculateTRAndTIWith(v, curve)
	return ti, xerr
}

// CalculateTRAndTI returns TR(V) and TI(V), computing TR once.
// The pair is identical to the results of CalculateTR and CalculateTI.
func CalculateTRAndTI(v uint64) (tr, ti fxnum.FxNum, xerr xerrors.XError) {
	return CalculateTRAndTIWith(v, CurveSqrt)
}

// CalculateTRAndTIWith returns TR(V) and TI(V) on the given curve, computing TR once.
func CalculateTRAndTIWith(v uint64, curve RewardCurve) (fxnum.FxNum, fxnum.FxNum, xerrors.XError) {
	r, xerr := compute(v, curve)
	if xerr != nil {
		return fxnum.ZERO, fxnum.ZERO, xerr
	}
	return r.TR, r.TI, nil
}

// compute runs the whole pipeline once. Every public entry point that needs TI goes through it,
// so the fused and the separate paths cannot diverge.
func compute(v uint64, curve RewardCurve) (*Result, xerrors.XError) {
	fxV, xerr := fxnum.FromUint(v)
	if xerr != nil {
		return nil, xerr.Wrapf("volume %d", v)
	}

	f, xerr := factor(fxV)
	if xerr != nil {
		return nil, xerr.Wrapf("F(%d)", v)
	}
	tr, xerr := scaleCost(f, fxV)
	if xerr != nil {
		return nil, xerr.Wrapf("TR(%d)", v)
	}
	pot, xerr := potentialReward(fxV, curve)
	if xerr != nil {
		return nil, xerr.Wrapf("potential_TI(%d)", v)
	}
	limit, xerr := tr.Mul(fxCapRatio)
	if xerr != nil {
		return nil, xerr.Wrapf("TI cap(%d)", v)
	}

	return &Result{
		Volume:      v,
		Curve:       curve,
		F:           f,
		TR:          tr,
		PotentialTI: pot,
		TICap:       limit,
		TI:          fxnum.Max(fxnum.ZERO, fxnum.Min(pot, limit)),
		Capped:      pot.GreaterThan(limit),
	}, nil
}

// factor: 0.01 + 0.02 * exp(-k * v)
func factor(v fxnum.FxNum) (fxnum.FxNum, xerrors.XError) {
	kv, xerr := fxDecayK.Mul(v)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	kv, xerr = kv.Neg()
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	decay, xerr := fxnum.Exp(kv)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	decay, xerr = fxDecayRate.Mul(decay)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	return fxBaseRate.Add(decay)
}

func cost(v fxnum.FxNum) (fxnum.FxNum, xerrors.XError) {
	f, xerr := factor(v)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	return scaleCost(f, v)
}

// scaleCost: f * v / d
func scaleCost(f, v fxnum.FxNum) (fxnum.FxNum, xerrors.XError) {
	fv, xerr := f.Mul(v)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	return fv.Div(fxDivisor)
}

// potentialReward: curve(1 + v) / d
func potentialReward(v fxnum.FxNum, curve RewardCurve) (fxnum.FxNum, xerrors.XError) {
	base, xerr := fxnum.ONE.Add(v)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	g, xerr := curve.grow(base)
	if xerr != nil {
		return fxnum.ZERO, xerr
	}
	return g.Div(fxDivisor)
}
