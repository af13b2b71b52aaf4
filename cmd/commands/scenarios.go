package commands

import (
	"fmt"
	"io"

	cfg "github.com/beatoz/swoupon-go/cmd/config"
	"github.com/beatoz/swoupon-go/swoupon"
	"github.com/spf13/cobra"
)

type scenariosReport struct {
	Curve    swoupon.RewardCurve `json:"curve" yaml:"curve"`
	Results  []*swoupon.Result   `json:"results" yaml:"results"`
	CapCheck *swoupon.Result     `json:"cap_check" yaml:"capCheck"`
}

// NewScenariosCmd returns the command reporting TR and TI of the configured volumes
// and the capping of TI at the cap check volume.
func NewScenariosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios [volume...]",
		Short: "Report TR and TI of the configured volumes and check the TI cap",
		Long: "Report TR and TI of the configured volumes (or of the volumes given as arguments)\n" +
			"and compare the potential TI with the capped TI at `cap_check_volume`.",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := rootConfig
			if len(args) > 0 {
				volumes, err := parseVolumes(args)
				if err != nil {
					return err
				}
				c := *rootConfig
				c.Volumes = volumes
				conf = &c
			}
			return runScenarios(cmd.OutOrStdout(), conf)
		},
	}
}

func runScenarios(w io.Writer, conf *cfg.Config) error {
	curve := conf.RewardCurve()
	rets, xerr := swoupon.CalculateAll(conf.Volumes, curve)
	if xerr != nil {
		logger.Error("scenarios failed", "curve", curve, "err", xerr)
		return xerr
	}
	capCheck, xerr := swoupon.Calculate(conf.CapCheckVolume, curve)
	if xerr != nil {
		logger.Error("cap check failed", "volume", conf.CapCheckVolume, "err", xerr)
		return xerr
	}
	logger.Info("scenarios", "curve", curve, "volumes", len(rets), "capCheckVolume", capCheck.Volume, "capped", capCheck.Capped)

	report := &scenariosReport{Curve: curve, Results: rets, CapCheck: capCheck}
	return writeReport(w, conf.Output, report, func(w io.Writer) error {
		return writeScenarios(w, report)
	})
}

func writeScenarios(w io.Writer, report *scenariosReport) error {
	fmt.Fprintf(w, "Swoupon scenarios (curve: %v)\n\n", report.Curve)
	if err := writeResultTable(w, report.Results); err != nil {
		return err
	}

	r := report.CapCheck
	fmt.Fprintf(w, "\nCap check (V = %d)\n", r.Volume)
	fmt.Fprintf(w, "  TR:           %s\n", fmtValue(r.TR))
	fmt.Fprintf(w, "  Potential TI: %s\n", fmtValue(r.PotentialTI))
	fmt.Fprintf(w, "  TI Cap:       %s\n", fmtValue(r.TICap))
	fmt.Fprintf(w, "  Final TI:     %s\n", fmtValue(r.TI))
	_, err := fmt.Fprintf(w, "  Capped:       %v\n", r.Capped)
	return err
}
