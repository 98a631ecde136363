// Package netconvert runs SUMO's netconvert tool to compile plain node and
// edge files into a simulator-ready network.
package netconvert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/specialistvlad/ringgen/internal/ctxlog"
)

const (
	// DefaultBinary is looked up on PATH when nothing else is configured.
	DefaultBinary = "netconvert"
	// BinaryEnv overrides the binary name or path.
	BinaryEnv = "RINGGEN_NETCONVERT"
	// SUMOHomeEnv points at a SUMO installation whose bin folder is searched
	// when the binary is not on PATH.
	SUMOHomeEnv = "SUMO_HOME"
)

// Job names the files of one compilation.
type Job struct {
	EdgeFile   string
	NodeFile   string
	OutputFile string
}

// Runner invokes netconvert as a subprocess.
type Runner struct {
	// Binary is a command name searched on PATH or a path to the executable.
	Binary string
	// SUMOHome is the fallback installation directory; empty disables it.
	SUMOHome string
	// ExtraArgs are appended after the input and output options.
	ExtraArgs []string
	Stdout    io.Writer
	Stderr    io.Writer
}

// NewRunner returns a Runner configured from the environment.
func NewRunner(stdout, stderr io.Writer) *Runner {
	binary := os.Getenv(BinaryEnv)
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{
		Binary:   binary,
		SUMOHome: os.Getenv(SUMOHomeEnv),
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Args returns the command line arguments for a job, without the binary.
func (r *Runner) Args(job Job) []string {
	args := []string{"-e", job.EdgeFile, "-n", job.NodeFile, "-o", job.OutputFile}
	return append(args, r.ExtraArgs...)
}

// LookPath resolves the executable, falling back to $SUMO_HOME/bin.
func (r *Runner) LookPath() (string, error) {
	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err == nil {
		return path, nil
	}
	if r.SUMOHome != "" && filepath.Base(binary) == binary {
		candidate := filepath.Join(r.SUMOHome, "bin", binary)
		if fallback, ferr := exec.LookPath(candidate); ferr == nil {
			return fallback, nil
		}
	}
	return "", err
}

// Compile runs netconvert for the job and waits for it to finish. A tool that
// cannot be started yields a *LaunchError, a nonzero exit an *ExitStatusError.
func (r *Runner) Compile(ctx context.Context, job Job) error {
	logger := ctxlog.FromContext(ctx)

	path, err := r.LookPath()
	if err != nil {
		return &LaunchError{Binary: r.Binary, Err: err}
	}

	args := r.Args(job)
	logger.Debug("Launching netconvert.", "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitStatusError{Code: exitErr.ExitCode(), Err: err}
		}
		return &LaunchError{Binary: path, Err: err}
	}

	logger.Debug("netconvert finished.", "output", job.OutputFile)
	return nil
}

// LaunchError reports that the tool could not be started.
type LaunchError struct {
	Binary string
	Err    error
}

// Hint is the remediation shown to users when netconvert cannot be started.
const Hint = "Error in launching SUMO netconvert, is the SUMO bin folder present in your system PATH?"

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// ExitStatusError reports that the tool ran and exited with a nonzero status.
type ExitStatusError struct {
	Code int
	Err  error
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("netconvert exited with status %d", e.Code)
}

func (e *ExitStatusError) Unwrap() error { return e.Err }
