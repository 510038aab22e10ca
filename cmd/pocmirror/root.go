package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"pocmirror/internal/cli/output"
	"pocmirror/internal/config"
	"pocmirror/internal/log"
	"pocmirror/internal/publish"
	"pocmirror/internal/state"
)

var (
	settingsPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "pocmirror [catalog]",
	Short: "pocmirror - build a static mirror of a publication archive",
	Long: `pocmirror reads an issue catalog (config.json by default), hashes every
referenced file under files/, and writes public/index.html together with
copies of the files under public/files/.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", config.DefaultPath, "Settings file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every build step")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(verifyCmd)
}

// loadSettings reads the settings file and configures logging from it.
func loadSettings() (*config.Settings, error) {
	s, err := config.Load(settingsPath)
	if err != nil {
		return nil, err
	}
	if verbose {
		s.LogLevel = "debug"
	}
	if err := log.Setup(os.Stderr, log.Options{Level: s.LogLevel, Format: s.LogFormat}); err != nil {
		return nil, err
	}
	return s, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	catalogPath := s.Catalog
	if len(args) == 1 {
		catalogPath = args[0]
	}

	res, err := publish.Build(cmd.Context(), publish.Options{
		CatalogPath: catalogPath,
		SourceDir:   s.SourceDir,
		OutputDir:   s.OutputDir,
		Title:       s.Title,
		WriteSum:    s.WriteSum,
		LockPath:    state.LockFile,
	})
	if err != nil {
		return err
	}

	log.Info("build complete", "years", res.Years, "issues", res.Issues, "files", res.Files)
	output.Success("Wrote %s (%d issues, %d files)\n", res.IndexPath, res.Issues, res.Files)
	if res.SumPath != "" {
		output.Info("Ledger: %s\n", res.SumPath)
	}
	return nil
}
