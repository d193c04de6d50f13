package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run executes the wizard and returns the collected result. Each question
// runs as its own independent huh.Form so conditional questions can inspect
// the answers given so far.
func Run(questions []Question) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &Result{}

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(result) {
			continue
		}

		form := huh.NewForm(buildQuestionGroup(q, result))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// buildQuestionGroup creates a huh.Group for a single question.
func buildQuestionGroup(q *Question, result *Result) *huh.Group {
	var field huh.Field

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, result)
	case QuestionTypeInput:
		field = buildInputField(q, result)
	case QuestionTypeConfirm:
		field = buildConfirmField(q, result)
	}

	return huh.NewGroup(field)
}

// buildSelectField creates a huh.Select field for a select-type question.
func buildSelectField(q *Question, result *Result) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, result)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *Result) *huh.Input {
	value := q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	qID := q.ID
	required := q.Required
	defVal := q.Default
	validate := q.Validate
	inp = inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" && defVal != "" {
			v = defVal
		}
		if required && v == "" {
			return errors.New("a value is required")
		}
		if v != "" && validate != nil {
			if err := validate(v); err != nil {
				return err
			}
		}
		saveAnswer(qID, v, result)
		return nil
	})

	return inp
}

// buildConfirmField creates a huh.Confirm field for a yes/no question.
func buildConfirmField(q *Question, result *Result) *huh.Confirm {
	value := q.Default == "yes"

	conf := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	conf.Validate(func(val bool) error {
		answer := "no"
		if val {
			answer = "yes"
		}
		saveAnswer(q.ID, answer, result)
		return nil
	})

	return conf
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *Result) {
	switch id {
	case "project_name":
		result.ProjectName = value
	case "database":
		if value == "none" {
			value = ""
		}
		result.Database = value
	case "auth":
		result.WithAuth = value == "yes"
	case "crud":
		result.Crud = value == "yes"
	case "resources":
		result.Resources = SplitResourceList(value)
	}
}

// SplitResourceList parses a comma- or space-separated resource list.
func SplitResourceList(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' '
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
