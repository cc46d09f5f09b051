package cmd

import (
	"DCThemer/internal/logger"

	"github.com/spf13/pflag"
)

// globalFlags are accepted by every command.
type globalFlags struct {
	ConfigPath string
	Verbose    bool
	Debug      bool
}

func (g *globalFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&g.ConfigPath, "config", "", "User configuration file (default: XDG config dir)")
	fs.BoolVarP(&g.Verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&g.Debug, "debug", "x", false, "Debug output")
}

// applyLogLevel raises the console level for -v and -x.
func (g *globalFlags) applyLogLevel() {
	switch {
	case g.Debug:
		logger.SetLevel(logger.LevelDebug)
	case g.Verbose:
		logger.SetLevel(logger.LevelInfo)
	}
}

// applyFlags modify a single apply run.
type applyFlags struct {
	DarkMode bool
	Backup   bool
	NoBackup bool
}

func (f *applyFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.DarkMode, "dark-mode", false, "Force DarkMode=1 (default: doubleCommander.autoDarkMode)")
	fs.BoolVar(&f.Backup, "backup", false, "Back up each file before writing it (default: doubleCommander.backupConfigs)")
	fs.BoolVar(&f.NoBackup, "no-backup", false, "Do not back up the configuration files")
}
