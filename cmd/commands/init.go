package commands

import (
	cfg "github.com/beatoz/swoupon-go/cmd/config"
	"github.com/spf13/cobra"
	tmos "github.com/tendermint/tendermint/libs/os"
)

var overwriteConfig bool

// NewInitFilesCmd returns the command writing the current configuration to $SWOUPONHOME/config/config.toml.
func NewInitFilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the configuration file of swoupon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return InitFilesWith(rootConfig, overwriteConfig)
		},
	}
	cmd.Flags().BoolVar(
		&overwriteConfig,
		"overwrite",
		false,
		"replace an existing config file")
	return cmd
}

func InitFilesWith(config *cfg.Config, overwrite bool) error {
	path := config.ConfigFile()
	if tmos.FileExists(path) && !overwrite {
		logger.Info("Found config file", "path", path)
		return nil
	}
	if xerr := cfg.WriteConfigFile(path, config, overwrite); xerr != nil {
		return xerr
	}
	logger.Info("Generated config file", "path", path)
	return nil
}
