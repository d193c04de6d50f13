package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anandhu-here/ethakka/internal/project"
	"github.com/anandhu-here/ethakka/internal/scaffold"
	"github.com/anandhu-here/ethakka/internal/strategy"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a capability to an existing project",
}

var addAuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Add JWT authentication",
	Long: `Add a JWT authentication unit (auth module, controller, service,
guard, and DTOs) plus the reserved user resource it depends on. Fails if
the project already has authentication enabled.`,
	Args: cobra.NoArgs,
	RunE: runAddAuth,
}

var addDatabaseCmd = &cobra.Command{
	Use:   "database <strategy>",
	Short: "Add a database backend",
	Long: `Wire a persistence backend into the project: the database module,
environment configuration, and npm dependencies. Resources generated
before this keep their in-memory services until regenerated.`,
	Example: `  ethakka add database mongodb`,
	Args:    cobra.ExactArgs(1),
	RunE:    runAddDatabase,
}

func init() {
	for _, c := range []*cobra.Command{addAuthCmd, addDatabaseCmd} {
		c.Flags().Bool("skip-install", false, "skip npm dependency installation")
		c.Flags().BoolP("force", "f", false, "overwrite existing files")
	}
	addCmd.AddCommand(addAuthCmd)
	addCmd.AddCommand(addDatabaseCmd)
}

// addOpts reads the shared flags of the add and generate subcommands.
func addOpts(cmd *cobra.Command) project.AddOptions {
	skipInstall, _ := cmd.Flags().GetBool("skip-install")
	force, _ := cmd.Flags().GetBool("force")
	return project.AddOptions{SkipInstall: skipInstall, Force: force}
}

func runAddAuth(cmd *cobra.Command, args []string) error {
	catalog, err := scaffold.NewCatalog()
	if err != nil {
		return err
	}
	registry, err := strategy.NewRegistry(catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := addOpts(cmd)
	gen := buildGenerator(catalog, registry, out, isInteractive(), opts.Force)

	result, err := gen.AddAuth(cmd.Context(), ".", opts)
	if err != nil {
		return err
	}

	printResult(out, result, "Authentication added", []kvPair{
		{key: "Files", value: fmt.Sprintf("%d", len(result.CreatedFiles))},
	})
	fmt.Fprint(out, renderMarkdown("\n## Next steps\n\n1. Replace the JWT secrets in `.env` before deploying\n"))
	return nil
}

func runAddDatabase(cmd *cobra.Command, args []string) error {
	catalog, err := scaffold.NewCatalog()
	if err != nil {
		return err
	}
	registry, err := strategy.NewRegistry(catalog)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := addOpts(cmd)
	gen := buildGenerator(catalog, registry, out, isInteractive(), opts.Force)

	result, err := gen.AddDatabase(cmd.Context(), ".", args[0], opts)
	if err != nil {
		return err
	}

	printResult(out, result, fmt.Sprintf("Database %s added", args[0]), []kvPair{
		{key: "Files", value: fmt.Sprintf("%d", len(result.CreatedFiles))},
	})
	return nil
}
