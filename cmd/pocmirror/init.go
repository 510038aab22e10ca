package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pocmirror/internal/cli/output"
	"pocmirror/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with the default layout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(settingsPath); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", settingsPath)
		}

		s := config.Default()
		if err := s.Save(settingsPath); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}

		output.Success("Settings saved to %s\n", settingsPath)
		output.List("  ", []string{
			"catalog:    " + s.Catalog,
			"source_dir: " + s.SourceDir,
			"output_dir: " + s.OutputDir,
		})
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing settings file")
	rootCmd.AddCommand(initCmd)
}
