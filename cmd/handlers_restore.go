package cmd

import (
	"context"
	"io"
	"time"

	"DCThemer/internal/apperr"
	"DCThemer/internal/logger"
	"DCThemer/internal/paths"
	"DCThemer/internal/state"
	"DCThemer/internal/strutil"
	"DCThemer/internal/target"

	"github.com/spf13/cobra"
)

func newRestoreCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Copy the .backup of each configuration file back over it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.restore(cmd.Context())
		},
	}
}

func (a *app) restore(ctx context.Context) error {
	cfg, err := a.config(ctx)
	if err != nil {
		return err
	}
	p := cfg.DoubleCommander.ConfigPaths

	restored := 0
	for _, tmpl := range []string{p.CFG, p.JSON, p.XML} {
		path, err := target.Resolve(tmpl)
		if err != nil {
			return err
		}
		if !target.HasBackup(path) {
			logger.Warn(ctx, "No backup of '{{_File_}}%s{{|-|}}'", path)
			continue
		}
		if err := target.Restore(path); err != nil {
			return err
		}
		logger.Notice(ctx, "Restored '{{_File_}}%s{{|-|}}'", path)
		restored++
	}

	if restored == 0 {
		return apperr.New(apperr.KindNotFound, "", "No backups to restore")
	}
	return nil
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last applied scheme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd.OutOrStdout(), paths.GetStateFilePath())
		},
	}
}

func printStatus(out io.Writer, statePath string) error {
	r, err := state.Load(statePath)
	if err != nil {
		return err
	}
	if r == nil {
		printLine(out, "No scheme has been applied yet.")
		return nil
	}

	rows := [][]string{
		{"Scheme:", r.Scheme},
		{"Schemes dir:", r.SchemeDir},
		{"Applied:", r.AppliedAt.Local().Format(time.DateTime)},
		{"Dark mode forced:", onOff(r.DarkMode)},
		{"Backup:", onOff(r.Backup)},
	}
	for _, path := range r.Targets.Paths() {
		label := "no backup"
		if target.HasBackup(path) {
			label = "backup available"
		}
		rows = append(rows, []string{"Target:", path + " (" + label + ")"})
	}
	for _, line := range strutil.Columns(rows, 1) {
		printLine(out, "%s", line)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
