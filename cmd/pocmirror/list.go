package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"pocmirror/internal/catalog"
	"pocmirror/internal/cli/output"
)

var listCmd = &cobra.Command{
	Use:   "list [catalog]",
	Short: "Show the catalog grouped the way the index renders it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		path := s.Catalog
		if len(args) == 1 {
			path = args[0]
		}

		c, err := catalog.Load(path)
		if err != nil {
			return err
		}
		mirror := catalog.Transform(c)

		output.Table(
			[]string{"Year", "Volume", "Month", "Description", "Files"},
			listRows(mirror),
			[]output.Align{output.AlignRight, output.AlignRight},
		)
		output.Info("%d issues in %d year groups\n", mirror.IssueCount(), len(mirror.Years))
		return nil
	},
}

func listRows(m catalog.Mirror) [][]string {
	var rows [][]string
	for _, y := range m.Years {
		for _, issue := range y.Issues {
			names := make([]string, 0, len(issue.Files))
			for _, f := range issue.Files {
				names = append(names, f.Name())
			}
			rows = append(rows, []string{
				fmt.Sprint(y.Year),
				fmt.Sprintf("0x%02d", issue.Volume),
				issue.Month.String(),
				issue.Description,
				strings.Join(names, ", "),
			})
		}
	}
	return rows
}
