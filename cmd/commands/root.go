package commands

import (
	"fmt"
	"os"

	cfg "github.com/beatoz/swoupon-go/cmd/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/cli"
	tmflags "github.com/tendermint/tendermint/libs/cli/flags"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	rootConfig = cfg.DefaultConfig()
	logger     = log.NewTMLogger(log.NewSyncWriter(os.Stderr))
)

func init() {
	registerFlagsRootCmd(RootCmd)
}

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().String("log_level", rootConfig.LogLevel, "log level (e.g. \"info\", \"calc:debug,*:error\")")
	cmd.PersistentFlags().String("log_format", rootConfig.LogFormat, "log format: plain | json")
	cmd.PersistentFlags().String("curve", rootConfig.Curve, "reward curve of potential_TI: sqrt | pow")
	cmd.PersistentFlags().StringP("output", "o", rootConfig.Output, "report format: text | json | yaml")
	cmd.PersistentFlags().String("tolerance", rootConfig.Tolerance, "largest accepted relative difference from the decimal reference")
	cmd.PersistentFlags().Uint64("cap_check_volume", rootConfig.CapCheckVolume, "volume whose potential and capped TI are reported by `scenarios`")
}

// ParseConfig retrieves the configuration from the config file, the environment and the flags,
// ensures that the root exists and validates the result.
func ParseConfig() (*cfg.Config, error) {
	conf := cfg.DefaultConfig()
	if err := viper.Unmarshal(conf); err != nil {
		return nil, err
	}
	conf.SetRoot(conf.RootDir)
	if xerr := cfg.EnsureRoot(conf.RootDir); xerr != nil {
		return nil, xerr
	}
	if xerr := conf.ValidateBasic(); xerr != nil {
		return nil, fmt.Errorf("error in config file: %w", xerr)
	}
	return conf, nil
}

// RootCmd is the root command of swoupon.
var RootCmd = &cobra.Command{
	Use:   "swoupon",
	Short: "Deterministic fixed-point calculator of the Swoupon cost (TR) and reward (TI)",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}

		rootConfig, err = ParseConfig()
		if err != nil {
			return err
		}

		if rootConfig.LogFormat == cfg.LogFormatJSON {
			logger = log.NewTMJSONLogger(log.NewSyncWriter(os.Stderr))
		}

		logger, err = tmflags.ParseLogLevel(rootConfig.LogLevel, logger, cfg.DefaultLogLevel)
		if err != nil {
			return err
		}

		if viper.GetBool(cli.TraceFlag) {
			logger = log.NewTracingLogger(logger)
		}

		logger = logger.With("module", "main")
		return nil
	},
}
