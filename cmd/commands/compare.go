package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	cfg "github.com/beatoz/swoupon-go/cmd/config"
	"github.com/beatoz/swoupon-go/swoupon"
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/spf13/cobra"
)

// NewCompareCmd returns the command measuring the fixed-point results against the decimal reference.
func NewCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare [volume...]",
		Short: "Compare fixed-point F, TR, potential TI and TI with the decimal reference model",
		RunE: func(cmd *cobra.Command, args []string) error {
			volumes := rootConfig.Volumes
			if len(args) > 0 {
				var err error
				if volumes, err = parseVolumes(args); err != nil {
					return err
				}
			}
			return runCompare(cmd.OutOrStdout(), rootConfig, volumes)
		},
	}
}

func runCompare(w io.Writer, conf *cfg.Config, volumes []uint64) error {
	if len(volumes) == 0 {
		return xerrors.ErrInvalidArgument.Wrapf("no volumes to compare")
	}

	curve := conf.RewardCurve()
	cmp, xerr := swoupon.Compare(volumes, curve, conf.ToleranceDecimal())
	if cmp == nil {
		logger.Error("comparison failed", "curve", curve, "err", xerr)
		return xerr
	}
	for _, d := range cmp.Failed() {
		logger.Error("tolerance exceeded", "volume", d.Volume, "name", d.Name,
			"fixed", d.Fixed, "reference", d.Reference, "relDiff", d.RelDiff)
	}
	if xerr == nil {
		logger.Info("comparison passed", "curve", curve, "values", len(cmp.Deviations), "worst", cmp.Worst.RelDiff)
	}

	if err := writeReport(w, conf.Output, cmp, func(w io.Writer) error {
		return writeComparison(w, cmp)
	}); err != nil {
		return err
	}
	return xerr
}

func writeComparison(w io.Writer, cmp *swoupon.Comparison) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Volume\tValue\tFixed\tReference\tRel. diff\t\t")
	for _, d := range cmp.Deviations {
		mark := ""
		if d.Exceeded {
			mark = "!"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.3e\t%s\t\n",
			d.Volume, d.Name, d.Fixed.StringFixed(displayDigits), d.Reference.StringFixed(displayDigits),
			d.RelDiff.InexactFloat64(), mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\ncurve: %v, tolerance: %v, worst: %s(%d) %v\n",
		cmp.Curve, cmp.Tolerance, cmp.Worst.Name, cmp.Worst.Volume, cmp.Worst.RelDiff)
	return err
}
