// Package cli wires the ethakka commands together. Each subcommand is a
// thin layer over internal/project; validation happens in PreRunE so the
// orchestrator only ever sees well-formed options.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anandhu-here/ethakka/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "ethakka",
	Short: "Scaffold NestJS-style TypeScript backends",
	Long: `ethakka generates NestJS-convention TypeScript projects and grows them
over time: resources with controller/service/entity triads, JWT auth,
and database backends, all registered in src/app.module.ts for you.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build metadata",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ethakka %s\n", version.GetFullVersion())
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("ethakka %s\n", version.GetFullVersion()))
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(versionCmd)
}
