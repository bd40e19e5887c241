package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the cached catalog",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheAgeCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the cached catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			_, ok, err := st.Stat()
			if err != nil {
				return err
			}
			if !ok {
				printInfo(out, "Cache is empty")
				return nil
			}
			if err := st.Remove(); err != nil {
				return err
			}

			printSuccess(out, "Removed cached catalog")
			printDetail(out, "Directory: %s", st.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), st.Dir())
			return nil
		},
	}
}

// cacheAgeCommand creates the "cache age" subcommand.
func (c *CLI) cacheAgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "age",
		Short: "Show the cached catalog's age and freshness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.newCatalog(cmd.Context())
			if err != nil {
				return err
			}
			status, err := cat.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !status.Exists {
				printInfo(out, "No cached catalog")
				printDetail(out, "%s", status.Path)
				return nil
			}
			printKeyValue(out, "Path", status.Path)
			printKeyValue(out, "Modified", status.ModTime.Format(time.DateTime))
			printKeyValue(out, "Age", formatDays(status.AgeDays))
			printKeyValue(out, "Max age", formatDays(cat.Policy().MaxAgeDays))
			printKeyValue(out, "Status", statusLabel(status.Decision))
			return nil
		},
	}
}
