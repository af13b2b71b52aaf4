package commands

import (
	"fmt"
	"io"
	"strings"

	cfg "github.com/beatoz/swoupon-go/cmd/config"
	"github.com/beatoz/swoupon-go/libs/fxnum"
	"github.com/beatoz/swoupon-go/libs/jsonx"
	"gopkg.in/yaml.v3"
)

const displayDigits = 7

// writeReport writes v in the configured output format.
// text renders the plain-text form and is used for cfg.OutputText.
func writeReport(w io.Writer, output string, v interface{}, text func(io.Writer) error) error {
	switch strings.ToLower(output) {
	case cfg.OutputJSON:
		bz, err := jsonx.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(bz))
		return err
	case cfg.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

// fmtValue renders x with 7 decimal places, truncated toward zero.
func fmtValue(x fxnum.FxNum) string {
	f, xerr := x.ToFixed()
	if xerr != nil {
		// beyond fixed.Fixed
		return x.ToDecimal().Truncate(displayDigits).StringFixed(displayDigits)
	}
	return f.StringN(displayDigits)
}
