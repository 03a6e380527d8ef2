package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/termfold/ttyprompt/pkg/console"
	"github.com/termfold/ttyprompt/pkg/global"
)

// NewRootCommand builds the ttyprompt command tree.
func NewRootCommand() (*cobra.Command, error) {
	rootCmd := cobra.Command{
		Use:     "ttyprompt",
		Short:   "Read lines from the controlling terminal, even when stdio is redirected",
		Version: fmt.Sprintf("%s (built %s)", global.Version, global.BuildTime),
		// Errors are printed by cmd/ttyprompt/main.go
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if global.Verbose {
				console.SetLevel(console.DebugLevel)
			}
			if !console.IsTerminal(os.Stderr.Fd()) {
				console.SetColor(false)
			}
			cmd.SilenceUsage = true
		},
		SilenceErrors: true,
	}
	setPersistentFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newAskCommand(),
		newFormCommand(),
	)

	return &rootCmd, nil
}

func setPersistentFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&global.Verbose, "verbose", "v", false, "Verbose output")
}
