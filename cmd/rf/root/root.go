package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ryoumen0412/RollForge/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "rf",
	Short:         "RollForge — D&D 5e character roster and roll helper for DMs",
	Long:          "RollForge stores player character sheets (stats, class, proficiencies, portrait) and totals ability-check rolls from a manually entered die result.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newCreateCmd(),
		newListCmd(),
		newShowCmd(),
		newSetCmd(),
		newRollCmd(),
		newRmCmd(),
		newExportCmd(),
		newImportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
