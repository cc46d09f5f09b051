package cmd

import (
	"context"
	"io"

	"DCThemer/internal/logger"
	"DCThemer/internal/scheme"
	"DCThemer/internal/strutil"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
)

// descriptionWidth caps catalog descriptions in list output.
const descriptionWidth = 60

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the complete schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.list(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (a *app) list(ctx context.Context, out io.Writer) error {
	cfg, err := a.config(ctx)
	if err != nil {
		return err
	}
	dir := cfg.SchemesDir()

	names, listErr := scheme.List(dir, extensions(cfg))
	if listErr != nil && names == nil {
		return listErr
	}

	catalog, err := scheme.LoadCatalog(dir)
	if err != nil {
		logger.Warn(ctx, "%s", err.Error())
		catalog = scheme.Catalog{}
	}

	if len(names) == 0 {
		logger.Notice(ctx, "No schemes found in '{{_Folder_}}%s{{|-|}}'", dir)
	} else {
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, strutil.Limit(catalog.Describe(name), descriptionWidth)})
		}
		renderSchemes(out, rows)
	}

	// Incomplete schemes do not hide the complete ones.
	if listErr != nil {
		logger.Warn(ctx, "%s", listErr.Error())
	}
	return nil
}

// renderSchemes prints a table on a terminal and aligned plain lines
// otherwise, so the output stays easy to pipe.
func renderSchemes(out io.Writer, rows [][]string) {
	if isTerminal(out) {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("SCHEME", "DESCRIPTION").
			Rows(rows...)
		printLine(out, "%s", t.String())
		return
	}
	for _, line := range strutil.Columns(rows, 2) {
		printLine(out, "%s", line)
	}
}
