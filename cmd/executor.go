package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"DCThemer/internal/apperr"
	"DCThemer/internal/config"
	"DCThemer/internal/console"
	"DCThemer/internal/constants"
	"DCThemer/internal/logger"
	"DCThemer/internal/paths"
	"DCThemer/internal/scheme"
	"DCThemer/internal/version"
)

// defaultExtensions is used when the configuration lists none.
var defaultExtensions = []string{constants.ExtCFG, constants.ExtJSON, constants.ExtXML}

// app is the state shared by the commands of one invocation.
type app struct {
	flags globalFlags
	cfg   *config.Config
}

// Execute runs the command line args and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	return execute(ctx, args, os.Stdout)
}

func execute(ctx context.Context, args []string, out io.Writer) int {
	root := NewRootCommand(&app{})
	root.SetArgs(args)
	root.SetOut(out)

	if err := root.ExecuteContext(ctx); err != nil {
		logger.Error(ctx, "%s", err.Error())
		return 1
	}
	return 0
}

// configPath returns the --config value or the default location.
func (a *app) configPath() string {
	if a.flags.ConfigPath != "" {
		return a.flags.ConfigPath
	}
	return paths.GetConfigFilePath()
}

// config bootstraps the user configuration once per invocation.
func (a *app) config(ctx context.Context) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	cfg, err := config.Bootstrap(ctx, a.configPath())
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

func extensions(cfg *config.Config) []string {
	if len(cfg.Schemes.Extensions) == 0 {
		return defaultExtensions
	}
	return cfg.Schemes.Extensions
}

// options builds the merge options for name from the configuration. The
// scheme must be complete; other incomplete schemes are only reported.
func (a *app) options(ctx context.Context, name string) (scheme.Options, error) {
	cfg, err := a.config(ctx)
	if err != nil {
		return scheme.Options{}, err
	}
	dir := cfg.SchemesDir()

	names, err := scheme.List(dir, extensions(cfg))
	if !slices.Contains(names, name) {
		if err != nil {
			return scheme.Options{}, err
		}
		return scheme.Options{}, apperr.New(apperr.KindNotFound, dir, "Scheme '%s' not found in the schemes dir", name)
	}
	if err != nil {
		logger.Warn(ctx, "%s", err.Error())
	}

	dc := cfg.DoubleCommander
	return scheme.Options{
		Name: name,
		Dir:  dir,
		Targets: scheme.Targets{
			CFG:  dc.ConfigPaths.CFG,
			JSON: dc.ConfigPaths.JSON,
			XML:  dc.ConfigPaths.XML,
		},
		Backup:   dc.BackupConfigs,
		DarkMode: dc.AutoDarkMode,
		XMLTags:  cfg.Schemes.XMLTags,
	}, nil
}

// printLine writes a line with colour tags rendered for w.
func printLine(w io.Writer, format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	if isTerminal(w) {
		text = console.Parse(text)
	} else {
		text = console.Strip(text)
	}
	fmt.Fprintln(w, text)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && console.IsTerminal(f)
}

func versionLine() string {
	return fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}] (commit %s, built %s)",
		version.ApplicationName, version.Version, version.Commit, version.BuildDate)
}
