package cli

import (
	"github.com/spf13/cobra"

	"github.com/exoplaneteu/exoplaneteu/pkg/catalog"
)

// getCommand creates the get command: freshness check, download if needed,
// parse, and print a summary.
func (c *CLI) getCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Load the catalog, downloading it when missing or stale",
		Long: `Load the exoplanet.eu catalog from the local cache.

The catalog is downloaded when there is no cached copy or when the copy is
older than the configured number of days (5 by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}
			t, err := readCatalog(ctx, cat, refresh)
			if err != nil {
				return err
			}
			status, err := cat.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "%s", t)
			printKeyValue(out, "Planets", formatCount(t.RowCount()))
			printKeyValue(out, "Columns", formatCount(len(t.Columns())))
			printKeyValue(out, "Numeric", formatCount(len(t.FloatColumns())))
			printKeyValue(out, "Age", formatDays(status.AgeDays))
			printDetail(out, "%s", status.Path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "download even if the cached copy is recent")
	return cmd
}

// downloadCommand creates the download command.
func (c *CLI) downloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "download",
		Short: "Download the catalog regardless of the cached copy's age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := c.newCatalog(ctx)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			stop := startSpinner(ctx, "Downloading exoplanet.eu catalog...")
			err = cat.Refresh(ctx)
			stop()
			if err != nil {
				return err
			}
			prog.done("Download complete")

			info, _, err := cat.Store().Stat()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Downloaded exoplanet.eu catalog")
			printKeyValue(out, "Size", formatCount(int(info.Size()))+" bytes")
			printDetail(out, "%s", cat.Store().ArtifactPath())
			return nil
		},
	}
}

// statusLabel renders a freshness decision.
func statusLabel(d catalog.Decision) string {
	if d == catalog.Fresh {
		return styleFresh.Render(d.String())
	}
	return styleStale.Render(d.String())
}
