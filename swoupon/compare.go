package swoupon

import (
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/shopspring/decimal"
)

// Deviation is the difference between one fixed-point output and its decimal reference.
type Deviation struct {
	Volume    uint64          `json:"volume" yaml:"volume"`
	Name      string          `json:"name" yaml:"name"`
	Fixed     decimal.Decimal `json:"fixed" yaml:"fixed"`
	Reference decimal.Decimal `json:"reference" yaml:"reference"`
	// RelDiff is |Fixed-Reference|/|Reference|, or |Fixed| when Reference is zero.
	RelDiff  decimal.Decimal `json:"rel_diff" yaml:"relDiff"`
	Exceeded bool            `json:"exceeded" yaml:"exceeded"`
}

type Comparison struct {
	Curve      RewardCurve     `json:"curve" yaml:"curve"`
	Tolerance  decimal.Decimal `json:"tolerance" yaml:"tolerance"`
	Deviations []*Deviation    `json:"deviations" yaml:"deviations"`
	Worst      *Deviation      `json:"worst" yaml:"worst"`
}

// Failed returns the deviations beyond the tolerance.
func (c *Comparison) Failed() []*Deviation {
	var ret []*Deviation
	for _, d := range c.Deviations {
		if d.Exceeded {
			ret = append(ret, d)
		}
	}
	return ret
}

// Compare evaluates F, TR, potential_TI and TI for each volume in fixed point and
// in the decimal reference model.
// The full comparison is returned together with ErrToleranceExceeded when any
// relative difference is above tolerance.
func Compare(volumes []uint64, curve RewardCurve, tolerance decimal.Decimal) (*Comparison, xerrors.XError) {
	if tolerance.IsNegative() {
		return nil, xerrors.ErrInvalidArgument.Wrapf("negative tolerance %v", tolerance)
	}

	cmp := &Comparison{Curve: curve, Tolerance: tolerance}
	for _, v := range volumes {
		r, xerr := compute(v, curve)
		if xerr != nil {
			return nil, xerr
		}
		refF, xerr := ReferenceF(v)
		if xerr != nil {
			return nil, xerr
		}
		refPot, xerr := ReferencePotentialTI(v, curve)
		if xerr != nil {
			return nil, xerr
		}
		refTR, refTI, xerr := ReferenceTRAndTI(v, curve)
		if xerr != nil {
			return nil, xerr
		}

		cmp.add(v, "F", r.F.ToDecimal(), refF)
		cmp.add(v, "TR", r.TR.ToDecimal(), refTR)
		cmp.add(v, "potential_TI", r.PotentialTI.ToDecimal(), refPot)
		cmp.add(v, "TI", r.TI.ToDecimal(), refTI)
	}

	if failed := cmp.Failed(); len(failed) > 0 {
		return cmp, xerrors.ErrToleranceExceeded.Wrapf(
			"%d of %d values, worst %s(%d) rel_diff %s > %s",
			len(failed), len(cmp.Deviations), cmp.Worst.Name, cmp.Worst.Volume, cmp.Worst.RelDiff, tolerance)
	}
	return cmp, nil
}

func (c *Comparison) add(v uint64, name string, fx, ref decimal.Decimal) {
	d := &Deviation{
		Volume:    v,
		Name:      name,
		Fixed:     fx,
		Reference: ref,
		RelDiff:   relDiff(fx, ref),
	}
	d.Exceeded = d.RelDiff.GreaterThan(c.Tolerance)
	c.Deviations = append(c.Deviations, d)
	if c.Worst == nil || d.RelDiff.GreaterThan(c.Worst.RelDiff) {
		c.Worst = d
	}
}

func relDiff(fx, ref decimal.Decimal) decimal.Decimal {
	diff := fx.Sub(ref).Abs()
	if ref.IsZero() {
		return diff
	}
	return diff.DivRound(ref.Abs(), ReferencePrecision)
}
