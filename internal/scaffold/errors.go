package scaffold

import "errors"

// Sentinel errors for the scaffold package.
var (
	// ErrTemplateNotFound indicates a template name missing from the embedded set.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates template data lacked a referenced key.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates a template directive survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded template token")
)
