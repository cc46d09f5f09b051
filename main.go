package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"DCThemer/cmd"
	"DCThemer/internal/console"
	"DCThemer/internal/logger"
	"DCThemer/internal/paths"
	"DCThemer/internal/version"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger(paths.GetLogFilePath()))
	ctx := context.Background()

	// Defer cleanup to ensure it runs even if we return early
	defer cleanup(ctx)

	exitCode = cmd.Execute(ctx, os.Args[1:])
	if exitCode != 0 {
		fmt.Fprintln(os.Stderr, console.Parse(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} did not finish running successfully.", version.ApplicationName)))
	}
	return exitCode
}

func cleanup(ctx context.Context) {
	logger.Debug(ctx, "Cleaning up...")
	logger.Cleanup()
}
