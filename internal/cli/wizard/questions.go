package wizard

import (
	"fmt"

	"github.com/anandhu-here/ethakka/internal/naming"
)

// DefaultQuestions returns the question set for project creation.
// strategies is the list of valid persistence keys from the registry.
func DefaultQuestions(defaultName string, strategies []string) []Question {
	if defaultName == "" {
		defaultName = "my-app"
	}

	dbOptions := []Option{
		{Label: "None", Value: "none", Desc: "in-memory services only"},
	}
	for _, key := range strategies {
		if key == "memory" {
			continue
		}
		dbOptions = append(dbOptions, Option{Label: key, Value: key})
	}

	return []Question{
		{
			ID:          "project_name",
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Lowercase letters, digits, '-' and '_' only.",
			Default:     defaultName,
			Required:    true,
			Validate:    naming.ValidateToken,
		},
		{
			ID:          "database",
			Type:        QuestionTypeSelect,
			Title:       "Database",
			Description: "Persistence backend for generated services.",
			Options:     dbOptions,
			Default:     "none",
			Required:    true,
		},
		{
			ID:          "auth",
			Type:        QuestionTypeConfirm,
			Title:       "Add JWT authentication?",
			Description: "Generates an auth module and a reserved user resource.",
			Default:     "no",
		},
		{
			ID:          "crud",
			Type:        QuestionTypeConfirm,
			Title:       "Generate CRUD operations?",
			Description: "Create, list, get, update, and delete endpoints per resource.",
			Default:     "yes",
		},
		{
			ID:          "resources",
			Type:        QuestionTypeInput,
			Title:       "Initial resources",
			Description: "Comma-separated resource names, e.g. \"invoices, categories\". Leave empty for none.",
			Validate:    validateResourceList,
		},
	}
}

func validateResourceList(value string) error {
	for _, token := range SplitResourceList(value) {
		if err := naming.ValidateToken(token); err != nil {
			return fmt.Errorf("%q: %w", token, err)
		}
	}
	return nil
}
