package project

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/anandhu-here/ethakka/internal/defs"
)

// Filesystem is the narrow file access contract the orchestrator depends
// on. The core never assumes atomicity across multiple calls.
type Filesystem interface {
	Exists(path string) bool
	Read(path string) ([]byte, error)
	Write(path string, content []byte) error
	EnsureDir(path string) error
	RemoveTree(path string) error
}

// ProcessRunner executes an external command in a working directory,
// blocking until it finishes. A non-nil error is fatal to the enclosing
// workflow step.
type ProcessRunner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// Confirmer resolves overwrite conflicts with an explicit yes/no answer.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// osFilesystem implements Filesystem on the host filesystem.
type osFilesystem struct{}

// NewOSFilesystem returns the host-backed Filesystem.
func NewOSFilesystem() Filesystem {
	return osFilesystem{}
}

func (osFilesystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (osFilesystem) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (osFilesystem) Write(path string, content []byte) error {
	return os.WriteFile(path, content, defs.FilePerm)
}

func (osFilesystem) EnsureDir(path string) error {
	return os.MkdirAll(path, defs.DirPerm)
}

func (osFilesystem) RemoveTree(path string) error {
	return os.RemoveAll(path)
}

// execRunner implements ProcessRunner via os/exec, streaming output to a
// writer.
type execRunner struct {
	out io.Writer
}

// NewExecRunner returns a ProcessRunner that streams command output to out.
// A nil out discards output.
func NewExecRunner(out io.Writer) ProcessRunner {
	if out == nil {
		out = io.Discard
	}
	return &execRunner{out: out}
}

func (r *execRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.out
	cmd.Stderr = r.out
	return cmd.Run()
}

// autoConfirmer answers every confirmation with a fixed value. Used for
// --force / --yes modes and in tests.
type autoConfirmer struct {
	answer bool
}

// NewAutoConfirmer returns a Confirmer with a fixed answer.
func NewAutoConfirmer(answer bool) Confirmer {
	return autoConfirmer{answer: answer}
}

func (c autoConfirmer) Confirm(string) (bool, error) {
	return c.answer, nil
}
