package activate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/contextguard/contextguard/internal/platform"
)

// ErrScriptNotFound is returned when the activation script does not exist.
var ErrScriptNotFound = errors.New("activation script not found")

// ExecError reports an activation script that could not be started or that
// exited with a non-zero status.
type ExecError struct {
	Path string
	// ExitCode is the script's exit status, or -1 if it never started.
	ExitCode int
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing activation script: %v", e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Activator invokes a single activation script.
type Activator struct {
	ScriptPath string
	// Stdin, Stdout and Stderr can be set for testing; defaults to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an Activator for the script at scriptPath.
func New(scriptPath string) *Activator {
	return &Activator{ScriptPath: scriptPath}
}

// Run executes the script with args and waits for it to finish.
func (a *Activator) Run(ctx context.Context, args []string) error {
	if _, err := os.Stat(a.ScriptPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w at %s", ErrScriptNotFound, a.ScriptPath)
		}
		return &ExecError{Path: a.ScriptPath, ExitCode: -1, Err: err}
	}

	if !platform.IsExecutable(a.ScriptPath) {
		return &ExecError{
			Path:     a.ScriptPath,
			ExitCode: -1,
			Err:      fmt.Errorf("%s is not an executable file", a.ScriptPath),
		}
	}

	cmd := exec.CommandContext(ctx, a.ScriptPath, args...)
	cmd.Stdin = a.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = a.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = a.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		execErr := &ExecError{Path: a.ScriptPath, ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return execErr
	}
	return nil
}
