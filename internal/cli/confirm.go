package cli

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/anandhu-here/ethakka/internal/project"
	"github.com/anandhu-here/ethakka/internal/scaffold"
	"github.com/anandhu-here/ethakka/internal/strategy"
)

// huhConfirmer asks overwrite questions through an interactive prompt.
type huhConfirmer struct{}

func (huhConfirmer) Confirm(prompt string) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(prompt).
			Affirmative("Yes").
			Negative("No").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// isInteractive reports whether stdin and stdout are attached to a terminal.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// buildGenerator assembles a project generator with real collaborators.
// assumeYes answers every confirmation without prompting; processOut
// receives streamed output from spawned package-manager processes.
func buildGenerator(catalog *scaffold.Catalog, registry *strategy.Registry, processOut io.Writer, interactive, assumeYes bool) *project.Generator {
	var confirm project.Confirmer
	switch {
	case assumeYes:
		confirm = project.NewAutoConfirmer(true)
	case interactive:
		confirm = huhConfirmer{}
	default:
		confirm = project.NewAutoConfirmer(false)
	}

	return project.NewGenerator(
		catalog,
		registry,
		project.NewOSFilesystem(),
		project.NewExecRunner(processOut),
		confirm,
		nil,
	)
}
