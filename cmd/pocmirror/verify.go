package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pocmirror/internal/cli/output"
	"pocmirror/internal/diff"
	"pocmirror/internal/state"
)

var verifyAll bool

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Re-hash a published mirror and compare it with its ledger",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		dir := s.OutputDir
		if len(args) == 1 {
			dir = args[0]
		}

		sumPath := filepath.Join(dir, state.SumFile)
		sum, err := state.LoadSum(sumPath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("no ledger at %s; build with write_sum enabled first", sumPath)
			}
			return err
		}

		items, err := diff.Check(sum, os.DirFS(filepath.Join(dir, state.FilesDir)))
		if err != nil {
			return err
		}

		if verifyAll {
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{string(item.Status), item.Path, item.Reason})
			}
			output.Table([]string{"Status", "File", "Reason"}, rows, nil)
		}
		diff.PrintSummary(items)

		if !diff.Clean(items) {
			return fmt.Errorf("%s does not match %s", dir, sumPath)
		}
		output.Success("All %d files match the ledger\n", len(items))
		return nil
	},
}

func init() {
	verifyCmd.Flags().BoolVar(&verifyAll, "all", false, "List every file, not only problems")
}
