// Churnform is a terminal front end for a customer churn prediction service.
//
// It edits a customer profile in a full-screen form, sends it to the
// service's /predict_with_explain endpoint and shows the churn probability,
// the predicted label and the per-feature explanation.
//
// Usage:
//
//	churnform [command] [flags]
//
// Running without arguments launches the interactive form.
// See 'churnform --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/churnlens/churnform/internal/logging"
	"github.com/churnlens/churnform/internal/ui"
	"github.com/churnlens/churnform/internal/version"
)

func main() {
	err := rootCmd.Execute()
	logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "churnform",
	Short: "Customer churn prediction form",
	Long: `A terminal form for a customer churn prediction service.

Edit a customer's demographics, services and billing, submit the profile
and read the churn probability, label and top explanations.

If no command is specified, the interactive form will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runForm,
}

var versionVerbose bool

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Show build details")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if versionVerbose {
			ui.NewPrinter(cmd.OutOrStdout()).PrintHeader("churnform", version.Details())
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "churnform %s\n", version.Full())
	},
}
