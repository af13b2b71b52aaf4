package swoupon

import (
	"strings"

	"github.com/beatoz/swoupon-go/libs/fxnum"
	"github.com/beatoz/swoupon-go/types/xerrors"
)

// RewardCurve selects how potential_TI grows with the volume.
type RewardCurve int

const (
	// CurveSqrt is (1+V)^0.5 / 0.1, the curve used by CalculatePotentialTI and CalculateTI.
	CurveSqrt RewardCurve = iota
	// CurvePow is (1+V)^0.3 / 0.1, the curve the reward was originally designed with.
	CurvePow
)

func (c RewardCurve) String() string {
	switch c {
	case CurveSqrt:
		return "sqrt"
	case CurvePow:
		return "pow"
	default:
		return "unknown"
	}
}

func (c RewardCurve) MarshalText() ([]byte, error) {
	if c != CurveSqrt && c != CurvePow {
		return nil, xerrors.ErrInvalidArgument.Wrapf("reward curve %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *RewardCurve) UnmarshalText(text []byte) error {
	r, xerr := ParseRewardCurve(string(text))
	if xerr != nil {
		return xerr
	}
	*c = r
	return nil
}

// ParseRewardCurve accepts "sqrt" and "pow", case-insensitively.
func ParseRewardCurve(s string) (RewardCurve, xerrors.XError) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqrt":
		return CurveSqrt, nil
	case "pow":
		return CurvePow, nil
	default:
		return CurveSqrt, xerrors.ErrInvalidArgument.Wrapf("unknown reward curve %q", s)
	}
}

// grow applies the curve to base = 1+V.
func (c RewardCurve) grow(base fxnum.FxNum) (fxnum.FxNum, xerrors.XError) {
	switch c {
	case CurveSqrt:
		return fxnum.Sqrt(base)
	case CurvePow:
		return fxnum.Pow(base, fxPowExp)
	default:
		return fxnum.ZERO, xerrors.ErrInvalidArgument.Wrapf("reward curve %d", int(c))
	}
}
