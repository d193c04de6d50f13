// Package project orchestrates the scaffolding workflows: create-project,
// create-unit, add-auth, and add-persistence. It sequences the naming,
// rendering, and patching layers and talks to the outside world only through
// the narrow collaborator interfaces in this package.
package project

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the project package.
var (
	// ErrTargetExists indicates the target path already exists and no
	// overwrite confirmation was obtained.
	ErrTargetExists = errors.New("target already exists")

	// ErrAborted indicates the user declined to proceed.
	ErrAborted = errors.New("aborted by user")

	// ErrAuthEnabled indicates auth was already added to the project.
	ErrAuthEnabled = errors.New("authentication is already enabled")

	// ErrDatabaseConfigured indicates a persistence backend is already set.
	ErrDatabaseConfigured = errors.New("a database is already configured")
)

// ProcessError reports a failed external command. It is fatal to the
// enclosing workflow step; files written by earlier steps are not rolled
// back.
type ProcessError struct {
	Step    string   // workflow step that ran the command
	Command []string // command and arguments
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("%s: command %q failed: %v", e.Step, strings.Join(e.Command, " "), e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }
