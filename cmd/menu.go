package cmd

import (
	"fmt"
	"io"

	"github.com/rusifikator/internal/config"
	"github.com/rusifikator/pkg/menu"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), verbose || cfg.Verbose)
	logger.Debug("configuration loaded",
		"mapping", cfg.MappingFile,
		"output", cfg.OutputDir,
		"marker", cfg.InstanceMarker,
	)

	in := menu.NewLineInput(cmd.InOrStdin(), cmd.OutOrStdout())
	ctrl := menu.New(in, cmd.OutOrStdout(), menu.Options{
		MappingFile:    cfg.MappingFile,
		OutputDir:      cfg.OutputDir,
		InstanceMarker: cfg.InstanceMarker,
		AssetsDir:      cfg.AssetsDir,
		KeepDir:        cfg.KeepDir,
		Extension:      cfg.Extension,
		Logger:         logger,
	})

	return ctrl.Run(cmd.Context())
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
