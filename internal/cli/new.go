package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anandhu-here/ethakka/internal/cli/wizard"
	"github.com/anandhu-here/ethakka/internal/naming"
	"github.com/anandhu-here/ethakka/internal/project"
	"github.com/anandhu-here/ethakka/internal/scaffold"
	"github.com/anandhu-here/ethakka/internal/strategy"
	"github.com/anandhu-here/ethakka/internal/ui"
	"github.com/anandhu-here/ethakka/pkg/version"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Create a new project",
	Long: `Create a new NestJS-convention project skeleton.

When run in a terminal without a project name, an interactive wizard asks
for the name, database backend, authentication, CRUD mode, and initial
resources. Flags override wizard answers and allow fully non-interactive
use.`,
	Example: `  ethakka new shop-api
  ethakka new shop-api --database mongodb --auth --resources invoices,products
  ethakka new shop-api --yes --skip-install`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	newCmd.Flags().StringP("database", "d", "", "persistence strategy (mongodb)")
	newCmd.Flags().Bool("auth", false, "generate the JWT authentication unit")
	newCmd.Flags().Bool("crud", true, "generate CRUD operations for resources")
	newCmd.Flags().StringSliceP("resources", "r", nil, "resource names to generate up front")
	newCmd.Flags().Bool("skip-install", false, "skip npm dependency installation")
	newCmd.Flags().BoolP("force", "f", false, "overwrite an existing target directory")
	newCmd.Flags().BoolP("yes", "y", false, "answer yes to all prompts (non-interactive)")
}

func validateNewFlags(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := naming.ValidateToken(args[0]); err != nil {
			return fmt.Errorf("project name %q: %w", args[0], err)
		}
	}
	resources, _ := cmd.Flags().GetStringSlice("resources")
	for _, r := range resources {
		if err := naming.ValidateToken(r); err != nil {
			return fmt.Errorf("resource name %q: %w", r, err)
		}
	}
	return nil
}

func runNew(cmd *cobra.Command, args []string) error {
	assumeYes, _ := cmd.Flags().GetBool("yes")
	interactive := isInteractive() && !assumeYes

	opts := project.Options{Root: "."}
	if len(args) == 1 {
		opts.Name = args[0]
	}
	opts.Database, _ = cmd.Flags().GetString("database")
	opts.WithAuth, _ = cmd.Flags().GetBool("auth")
	opts.Crud, _ = cmd.Flags().GetBool("crud")
	opts.Resources, _ = cmd.Flags().GetStringSlice("resources")
	opts.SkipInstall, _ = cmd.Flags().GetBool("skip-install")
	opts.Force, _ = cmd.Flags().GetBool("force")
	if strings.EqualFold(opts.Database, "memory") {
		opts.Database = ""
	}

	catalog, err := scaffold.NewCatalog()
	if err != nil {
		return err
	}
	registry, err := strategy.NewRegistry(catalog)
	if err != nil {
		return err
	}

	PrintBanner(version.GetVersion())

	// Without a name on the command line the wizard collects everything;
	// explicitly set flags still win over wizard answers.
	if opts.Name == "" {
		if !interactive {
			return fmt.Errorf("project name required in non-interactive mode")
		}
		answers, err := wizard.Run(wizard.DefaultQuestions("my-api", registry.Keys()))
		if err != nil {
			return err
		}
		opts.Name = answers.ProjectName
		if !cmd.Flags().Changed("database") {
			opts.Database = answers.Database
		}
		if !cmd.Flags().Changed("auth") {
			opts.WithAuth = answers.WithAuth
		}
		if !cmd.Flags().Changed("crud") {
			opts.Crud = answers.Crud
		}
		if !cmd.Flags().Changed("resources") {
			opts.Resources = answers.Resources
		}
	}

	// The spinner owns the screen while it runs; process output is
	// discarded in interactive mode and streamed otherwise.
	out := cmd.OutOrStdout()
	processOut := out
	if interactive {
		processOut = nil
	}
	gen := buildGenerator(catalog, registry, processOut, interactive, assumeYes)

	spin := ui.NewSpinner(fmt.Sprintf("Scaffolding %s", opts.Name), interactive, out)
	result, err := gen.NewProject(cmd.Context(), opts)
	spin.Stop()
	if err != nil {
		return err
	}

	printResult(out, result, fmt.Sprintf("Project %s created", opts.Name), []kvPair{
		{key: "Location", value: result.ProjectRoot},
		{key: "Database", value: databaseLabel(opts.Database)},
		{key: "Auth", value: yesNo(opts.WithAuth)},
		{key: "Files", value: fmt.Sprintf("%d", len(result.CreatedFiles))},
	})
	fmt.Fprint(out, renderMarkdown(nextStepsMarkdown(opts)))
	return nil
}

func databaseLabel(key string) string {
	if key == "" {
		return "in-memory"
	}
	return key
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func printResult(out io.Writer, result *project.Result, title string, pairs []kvPair) {
	fmt.Fprintln(out, renderSuccessCard(title, renderKeyValueLines(pairs)))
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "%s %s\n", symWarning(), cliWarn.Render(w))
	}
}

func nextStepsMarkdown(opts project.Options) string {
	var b strings.Builder
	b.WriteString("\n## Next steps\n\n")
	fmt.Fprintf(&b, "1. `cd %s`\n", opts.Name)
	step := 2
	if opts.SkipInstall {
		fmt.Fprintf(&b, "%d. `npm install`\n", step)
		step++
	}
	if opts.Database != "" {
		fmt.Fprintf(&b, "%d. Review the connection settings in `.env`\n", step)
		step++
	}
	if opts.WithAuth {
		fmt.Fprintf(&b, "%d. Replace the JWT secrets in `.env` before deploying\n", step)
		step++
	}
	fmt.Fprintf(&b, "%d. `npm run start:dev`\n", step)
	return b.String()
}
