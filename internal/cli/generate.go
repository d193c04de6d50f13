package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anandhu-here/ethakka/internal/naming"
	"github.com/anandhu-here/ethakka/internal/scaffold"
	"github.com/anandhu-here/ethakka/internal/strategy"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"g"},
	Short:   "Generate code in an existing project",
}

var generateResourceCmd = &cobra.Command{
	Use:     "resource <name>...",
	Aliases: []string{"res"},
	Short:   "Generate one or more resources",
	Long: `Generate a module, controller, service, and entity for each named
resource and register it in src/app.module.ts. The project's recorded
database and CRUD settings apply automatically.`,
	Example: `  ethakka generate resource invoices
  ethakka g res invoices products`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateResourceArgs,
	RunE:    runGenerateResource,
}

func init() {
	generateResourceCmd.Flags().BoolP("force", "f", false, "overwrite existing resource files")
	generateCmd.AddCommand(generateResourceCmd)
}

func validateResourceArgs(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		if err := naming.ValidateToken(name); err != nil {
			return fmt.Errorf("resource name %q: %w", name, err)
		}
	}
	return nil
}

func runGenerateResource(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	catalog, err := scaffold.NewCatalog()
	if err != nil {
		return err
	}
	registry, err := strategy.NewRegistry(catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	gen := buildGenerator(catalog, registry, out, isInteractive(), force)

	result, err := gen.AddResource(cmd.Context(), ".", args, addOpts(cmd))
	if err != nil {
		return err
	}

	printResult(out, result, "Resources generated", []kvPair{
		{key: "Files", value: fmt.Sprintf("%d", len(result.CreatedFiles))},
	})
	return nil
}
