package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exoplaneteu/exoplaneteu/pkg/errors"
	"github.com/exoplaneteu/exoplaneteu/pkg/table"
)

type columnInfo struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
	NaN  int    `json:"nan" yaml:"nan"`
}

// columnsCommand creates the columns command.
func (c *CLI) columnsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the catalog's column names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			t, err := c.loadTable(cmd.Context())
			if err != nil {
				return err
			}

			infos := make([]columnInfo, 0, len(t.Columns()))
			for _, name := range t.Columns() {
				col, err := t.GetColumn(name)
				if err != nil {
					return err
				}
				infos = append(infos, columnInfo{Name: name, Kind: col.Kind().String(), NaN: col.NaNCount()})
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return writeStructured(out, output, infos)
			}
			width := 0
			for _, info := range infos {
				width = max(width, len(info.Name))
			}
			for _, info := range infos {
				line := StyleValue.Render(fmt.Sprintf("%-*s", width, info.Name)) + "  " + StyleDim.Render(info.Kind)
				if info.NaN > 0 {
					line += StyleDim.Render(fmt.Sprintf("  (%s missing)", formatCount(info.NaN)))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

// columnCommand creates the column command.
func (c *CLI) columnCommand() *cobra.Command {
	var (
		output string
		noNaN  bool
	)

	cmd := &cobra.Command{
		Use:   "column NAME",
		Short: "Print one column",
		Long: `Print one column of the catalog, one value per line.

A name ending in "_nonan" (for example "mass_nonan") selects the column
without its missing entries, as does --nonan.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeColumns,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := errors.ValidateColumnName(name); err != nil {
				return err
			}
			if err := validateOutput(output); err != nil {
				return err
			}
			t, err := c.loadTable(cmd.Context())
			if err != nil {
				return err
			}

			var col table.Column
			if noNaN {
				col, err = t.GetColumnWithoutNaN(name)
			} else {
				col, err = t.Get(name)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return writeStructured(out, output, col.Values())
			}
			for _, v := range col.Values() {
				fmt.Fprintln(out, v.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&noNaN, "nonan", false, "drop missing (NaN) entries")
	return cmd
}

// rowCommand creates the row command.
func (c *CLI) rowCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "row INDEX",
		Short: "Print one planet record by its zero-based index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "row index %q is not an integer", args[0])
			}
			if err := validateOutput(output); err != nil {
				return err
			}
			t, err := c.loadTable(cmd.Context())
			if err != nil {
				return err
			}
			row, err := t.GetRow(i)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != outputText {
				return writeStructured(out, output, row)
			}
			for j, name := range row.Names() {
				printKeyValue(out, name, row.Values()[j].String())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text, json or yaml")
	return cmd
}

// completeColumns completes column names from the cached catalog without
// touching the network.
func (c *CLI) completeColumns(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cat, err := c.newCatalog(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	t, err := cat.Read(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range t.Columns() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
