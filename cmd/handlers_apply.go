package cmd

import (
	"context"
	"io"
	"time"

	"DCThemer/internal/logger"
	"DCThemer/internal/paths"
	"DCThemer/internal/scheme"
	"DCThemer/internal/state"
	"DCThemer/internal/target"

	"github.com/spf13/cobra"
)

func newApplyCommand(a *app) *cobra.Command {
	var f applyFlags
	c := &cobra.Command{
		Use:   "apply <scheme>",
		Short: "Apply a scheme to the Double Commander configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := a.options(ctx, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("dark-mode") {
				opts.DarkMode = f.DarkMode
			}
			if cmd.Flags().Changed("backup") {
				opts.Backup = f.Backup
			}
			if f.NoBackup {
				opts.Backup = false
			}
			return applyScheme(ctx, opts)
		},
	}
	f.register(c.Flags())
	c.MarkFlagsMutuallyExclusive("backup", "no-backup")
	return c
}

// applyScheme verifies, applies and records opts. A version mismatch is
// reported and the apply continues.
func applyScheme(ctx context.Context, opts scheme.Options) error {
	s := scheme.New(opts)

	w, err := s.Verify(ctx)
	if err != nil {
		return err
	}
	if w != nil {
		logger.Warn(ctx, "%s", w.String())
	}

	if err := s.Apply(ctx); err != nil {
		return err
	}
	logger.Notice(ctx, "Scheme '{{_Scheme_}}%s{{|-|}}' applied successfully.", opts.Name)

	if err := recordApply(opts); err != nil {
		logger.Warn(ctx, "%s", err.Error())
	}
	return nil
}

func recordApply(opts scheme.Options) error {
	r := state.Record{
		Scheme:    opts.Name,
		SchemeDir: opts.Dir,
		AppliedAt: time.Now().UTC().Truncate(time.Second),
		DarkMode:  opts.DarkMode,
		Backup:    opts.Backup,
	}
	var err error
	if r.Targets.CFG, err = target.Resolve(opts.Targets.CFG); err != nil {
		return err
	}
	if r.Targets.JSON, err = target.Resolve(opts.Targets.JSON); err != nil {
		return err
	}
	if r.Targets.XML, err = target.Resolve(opts.Targets.XML); err != nil {
		return err
	}
	return state.Save(paths.GetStateFilePath(), r)
}

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <scheme>",
		Short: "Compare the xml configuration version of a scheme and the live file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := a.options(ctx, args[0])
			if err != nil {
				return err
			}
			w, err := scheme.New(opts).Verify(ctx)
			if err != nil {
				return err
			}
			if w != nil {
				logger.Warn(ctx, "%s", w.String())
				return nil
			}
			logger.Notice(ctx, "Scheme '{{_Scheme_}}%s{{|-|}}' matches the configuration version.", opts.Name)
			return nil
		},
	}
}

func newDiffCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <scheme>",
		Short: "Show what applying a scheme would change, without writing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts, err := a.options(ctx, args[0])
			if err != nil {
				return err
			}
			changes, err := scheme.New(opts).Preview(ctx)
			if err != nil {
				return err
			}
			printChanges(cmd.OutOrStdout(), changes)
			return nil
		},
	}
}

func printChanges(out io.Writer, changes []scheme.Change) {
	for _, c := range changes {
		if !c.Changed() {
			printLine(out, "{{_File_}}%s{{|-|}}: no changes", c.Path)
			continue
		}
		printLine(out, "{{_DiffDel_}}--- %s{{|-|}}", c.Path)
		printLine(out, "{{_DiffAdd_}}+++ %s{{|-|}}", c.Path)
		for _, line := range lineDiff(c.Before, c.After, 2) {
			printLine(out, "%s", line)
		}
	}
}
