package main

import (
	"path/filepath"

	"github.com/beatoz/swoupon-go/cmd/commands"
	"github.com/beatoz/swoupon-go/libs"
	"github.com/tendermint/tendermint/libs/cli"
)

func main() {
	commands.RootCmd.AddCommand(
		commands.NewInitFilesCmd(),
		commands.NewCalcCmd(),
		commands.NewScenariosCmd(),
		commands.NewCompareCmd(),
		commands.VersionCmd,
	)

	executor := cli.PrepareBaseCmd(commands.RootCmd, "SWOUPON", filepath.Join(libs.GetHome(), ".swoupon"))
	if err := executor.Execute(); err != nil {
		panic(err)
	}
}
