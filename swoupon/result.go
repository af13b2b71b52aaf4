package swoupon

import (
	"github.com/beatoz/swoupon-go/libs/fxnum"
	"github.com/beatoz/swoupon-go/libs/jsonx"
	"github.com/beatoz/swoupon-go/types/bytes"
	"github.com/beatoz/swoupon-go/types/xerrors"
)

// Result holds every intermediate of one TR/TI calculation.
type Result struct {
	Volume      uint64
	Curve       RewardCurve
	F           fxnum.FxNum
	TR          fxnum.FxNum
	PotentialTI fxnum.FxNum
	TICap       fxnum.FxNum // TR / 3
	TI          fxnum.FxNum
	// Capped is true when the reward was limited by TICap instead of PotentialTI.
	Capped bool
}

// Calculate computes F, TR, potential_TI, the cap and TI for v on the given curve.
func Calculate(v uint64, curve RewardCurve) (*Result, xerrors.XError) {
	return compute(v, curve)
}

// CalculateAll computes a Result for each volume, stopping at the first failure.
func CalculateAll(volumes []uint64, curve RewardCurve) ([]*Result, xerrors.XError) {
	ret := make([]*Result, len(volumes))
	for i, v := range volumes {
		r, xerr := compute(v, curve)
		if xerr != nil {
			return nil, xerr
		}
		ret[i] = r
	}
	return ret, nil
}

type fxValueJSON struct {
	Value string         `json:"value"`
	Raw   bytes.HexBytes `json:"raw"`
}

func newFxValueJSON(x fxnum.FxNum) fxValueJSON {
	return fxValueJSON{Value: x.String(), Raw: x.RawBytes()}
}

type resultJSON struct {
	Volume      uint64      `json:"volume"`
	Curve       RewardCurve `json:"curve"`
	F           fxValueJSON `json:"f"`
	TR          fxValueJSON `json:"tr"`
	PotentialTI fxValueJSON `json:"potential_ti"`
	TICap       fxValueJSON `json:"ti_cap"`
	TI          fxValueJSON `json:"ti"`
	Capped      bool        `json:"capped"`
}

// MarshalJSON writes each value as its exact decimal expansion together with
// its 16-byte raw representation.
func (r *Result) MarshalJSON() ([]byte, error) {
	return jsonx.Marshal(&resultJSON{
		Volume:      r.Volume,
		Curve:       r.Curve,
		F:           newFxValueJSON(r.F),
		TR:          newFxValueJSON(r.TR),
		PotentialTI: newFxValueJSON(r.PotentialTI),
		TICap:       newFxValueJSON(r.TICap),
		TI:          newFxValueJSON(r.TI),
		Capped:      r.Capped,
	})
}

type fxValueYAML struct {
	Value string `yaml:"value"`
	Raw   string `yaml:"raw"`
}

type resultYAML struct {
	Volume      uint64      `yaml:"volume"`
	Curve       string      `yaml:"curve"`
	F           fxValueYAML `yaml:"f"`
	TR          fxValueYAML `yaml:"tr"`
	PotentialTI fxValueYAML `yaml:"potentialTi"`
	TICap       fxValueYAML `yaml:"tiCap"`
	TI          fxValueYAML `yaml:"ti"`
	Capped      bool        `yaml:"capped"`
}

func newFxValueYAML(x fxnum.FxNum) fxValueYAML {
	return fxValueYAML{Value: x.String(), Raw: x.RawBytes().String()}
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v3.
func (r *Result) MarshalYAML() (interface{}, error) {
	return &resultYAML{
		Volume:      r.Volume,
		Curve:       r.Curve.String(),
		F:           newFxValueYAML(r.F),
		TR:          newFxValueYAML(r.TR),
		PotentialTI: newFxValueYAML(r.PotentialTI),
		TICap:       newFxValueYAML(r.TICap),
		TI:          newFxValueYAML(r.TI),
		Capped:      r.Capped,
	}, nil
}

// UnmarshalJSON restores a Result from the raw representations.
func (r *Result) UnmarshalJSON(bz []byte) error {
	var rj resultJSON
	if err := jsonx.Unmarshal(bz, &rj); err != nil {
		return err
	}

	vals := make([]fxnum.FxNum, 5)
	for i, fj := range []fxValueJSON{rj.F, rj.TR, rj.PotentialTI, rj.TICap, rj.TI} {
		x, xerr := fxnum.FromRawBytes(fj.Raw)
		if xerr != nil {
			return xerr
		}
		vals[i] = x
	}

	*r = Result{
		Volume:      rj.Volume,
		Curve:       rj.Curve,
		F:           vals[0],
		TR:          vals[1],
		PotentialTI: vals[2],
		TICap:       vals[3],
		TI:          vals[4],
		Capped:      rj.Capped,
	}
	return nil
}
