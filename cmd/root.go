package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rusifikator",
	Short: "Sort mod localization files and collect them for translation",
	Long: `rusifikator prepares Minecraft mod localizations for translation.

It runs an interactive menu with two operations:
  1) Unpack a mod archive (.jar), sort the chosen language file by key and
     copy the mod's lang/ folders to unarchived_mods/<instance>/mods/<mod>/assets
  2) Sort an existing JSON localization file in place

Language codes are resolved through language_mapping.json in the working
directory, for example:

  {"ru": "ru_ru.json", "uk": "uk_ua.json"}

Settings can be overridden in rusifikator.yaml or with RUSIFIKATOR_* variables.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./rusifikator.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print debug information")
}
