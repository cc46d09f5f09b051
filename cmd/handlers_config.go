package cmd

import (
	"DCThemer/internal/format"
	"DCThemer/internal/logger"

	"github.com/spf13/cobra"
)

func newConfigCommand(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the user configuration file",
	}

	c.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Create the default configuration file if it is missing",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.config(cmd.Context())
				if err != nil {
					return err
				}
				logger.Notice(cmd.Context(), "Configuration file: '{{_File_}}%s{{|-|}}'", cfg.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the configuration file",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := a.config(cmd.Context())
				if err != nil {
					return err
				}
				doc, err := format.ReadJSON(cfg.Path())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(doc.Bytes())
				return err
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the location of the configuration file",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				printLine(cmd.OutOrStdout(), "%s", a.configPath())
			},
		},
	)
	return c
}
