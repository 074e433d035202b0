package main

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/forms"
	"github.com/CavemanTechandGamming/FS25-Engine-and-Transmission-Config-Tool/pkg/preset"
)

func main() {
	store := preset.NewStore()

	root := &cobra.Command{
		Use:   "fs25-config",
		Short: "Generate FS25 engine and transmission XML configs",
		Long: "Generates Farming Simulator 25 motor configuration XML from engine and\n" +
			"transmission specs: torque curves, gear ratios, and complete motorConfigurations\n" +
			"documents ready to paste into a mod's vehicle XML.",
		Run: func(cmd *cobra.Command, args []string) {
			forms.NewSession(store).Run()
		},
	}

	root.AddCommand(
		newEngineCmd(),
		newTransmissionCmd(),
		newCombinedCmd(),
		newCurveCmd(),
		newGearsCmd(),
		newPresetsCmd(),
		newCompareCmd(),
		newServeCmd(store),
	)

	if err := root.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
