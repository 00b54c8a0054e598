package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts the external OS commands used by the probes so
// that platform behavior can be exercised without the real binaries.
type CommandRunner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
	LookPath(name string) (string, error)
}

type systemRunner struct{}

func (systemRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (systemRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// SystemRunner executes commands on the host.
var SystemRunner CommandRunner = systemRunner{}

type commandFunc func(ctx context.Context, timeout time.Duration, name string, args ...string) (*ScanOutput, error)

// ScanOutput is the verbatim capture of one scanner subprocess run.
type ScanOutput struct {
	Cmdline  string
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// runCommand executes name with args under a wall-clock timeout, capturing
// stdout and stderr separately. The capture is returned even on failure so
// the run log can be written for postmortem. A fired timeout kills the
// subprocess and classifies as ErrTimeout; a non-zero exit as ErrToolExit.
func runCommand(ctx context.Context, timeout time.Duration, name string, args ...string) (*ScanOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := &ScanOutput{
		Cmdline: name + " " + strings.Join(args, " "),
		Stdout:  stdout.Bytes(),
		Stderr:  stderr.Bytes(),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return out, fmt.Errorf("%s: after %s: %w", name, timeout, ErrTimeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()

			return out, fmt.Errorf("%s: exit code %d: %w", name, out.ExitCode, ErrToolExit)
		}

		return out, fmt.Errorf("could not run %s: %w", name, err)
	}

	return out, nil
}
