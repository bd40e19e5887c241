package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/exoplaneteu/exoplaneteu/pkg/table"
)

// describeCommand creates the describe command.
func (c *CLI) describeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "describe [NAME...]",
		Short: "Summarize numeric columns",
		Long: `Print count, missing entries, mean, standard deviation, minimum and
maximum of numeric columns. Without arguments every numeric column is
summarized.`,
		ValidArgsFunction: c.completeColumns,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			t, err := c.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			t.ToNumeric(true)

			names := args
			if len(names) == 0 {
				names = t.FloatColumns()
			}
			summaries := make([]table.Summary, 0, len(names))
			for _, name := range names {
				s, err := t.Describe(name)
				if err != nil {
					return err
				}
				summaries = append(summaries, s)
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return writeStructured(out, output, summaries)
			}
			if len(summaries) == 0 {
				printWarning(out, "No numeric columns")
				return nil
			}
			fmt.Fprintln(out, renderSummaries(summaries))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

// headerRow is the row index lipgloss/table passes to StyleFunc for headers.
const headerRow = -1

// renderSummaries draws the statistics as a table.
func renderSummaries(summaries []table.Summary) string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			formatCount(s.Count),
			formatCount(s.NaN),
			formatFloat(s.Mean),
			formatFloat(s.Std),
			formatFloat(s.Min),
			formatFloat(s.Max),
		})
	}

	return lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Column", "Count", "NaN", "Mean", "Std", "Min", "Max").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return styleHeader
			case col == 0:
				return StyleValue
			default:
				return StyleNumber
			}
		}).
		Render()
}
