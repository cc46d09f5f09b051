package cmd

import (
	"fmt"

	"DCThemer/internal/console"
	"DCThemer/internal/version"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree for one invocation.
func NewRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   version.CommandName,
		Short: "Apply colour schemes to Double Commander",
		Long: fmt.Sprintf("%s applies a named scheme to Double Commander's doublecmd.cfg,\n"+
			"colors.json and doublecmd.xml, keeping everything the scheme does not define.\n\n"+
			"Schemes are sets of <name>.cfg, <name>.json and <name>.xml files in the\n"+
			"schemes directory configured in %s.", version.ApplicationName, "dc-themer.json"),
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.flags.applyLogLevel()
		},
	}
	root.SetVersionTemplate(console.Strip(versionLine()) + "\n")
	a.flags.register(root.PersistentFlags())

	root.AddCommand(
		newListCommand(a),
		newApplyCommand(a),
		newVerifyCommand(a),
		newDiffCommand(a),
		newRestoreCommand(a),
		newStatusCommand(a),
		newConfigCommand(a),
	)
	return root
}
