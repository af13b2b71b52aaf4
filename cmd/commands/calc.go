package commands

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	cfg "github.com/beatoz/swoupon-go/cmd/config"
	"github.com/beatoz/swoupon-go/swoupon"
	"github.com/beatoz/swoupon-go/types/xerrors"
	"github.com/spf13/cobra"
)

// NewCalcCmd returns the command computing TR and TI for the volumes given as arguments.
func NewCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <volume>...",
		Short: "Calculate the cost (TR) and the reward (TI) of transaction volumes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			volumes, err := parseVolumes(args)
			if err != nil {
				return err
			}
			return runCalc(cmd.OutOrStdout(), rootConfig, volumes)
		},
	}
}

func parseVolumes(args []string) ([]uint64, error) {
	volumes := make([]uint64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, xerrors.ErrInvalidArgument.Wrapf("volume %q: %v", arg, err)
		}
		volumes[i] = v
	}
	return volumes, nil
}

func runCalc(w io.Writer, conf *cfg.Config, volumes []uint64) error {
	curve := conf.RewardCurve()
	rets, xerr := swoupon.CalculateAll(volumes, curve)
	if xerr != nil {
		logger.Error("calculation failed", "curve", curve, "err", xerr)
		return xerr
	}
	for _, r := range rets {
		logger.Debug("calculated", "volume", r.Volume, "curve", r.Curve, "tr", r.TR, "ti", r.TI, "capped", r.Capped)
	}

	return writeReport(w, conf.Output, rets, func(w io.Writer) error {
		return writeResultTable(w, rets)
	})
}

func writeResultTable(w io.Writer, rets []*swoupon.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Volume\tF\tTR\tPotential TI\tTI Cap\tTI\tCapped\t")
	for _, r := range rets {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%v\t\n",
			r.Volume, fmtValue(r.F), fmtValue(r.TR), fmtValue(r.PotentialTI),
			fmtValue(r.TICap), fmtValue(r.TI), r.Capped)
	}
	return tw.Flush()
}
