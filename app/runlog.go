package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const timestampLayout = "20060102_150405"

// RunLog persists one plaintext log file per audit run: the invoked
// command line, captured stdout/stderr and any failure. It is written
// before the output is interpreted, so a parse or execution failure
// still leaves a trace. Files are append-only artifacts; a same-second
// rerun overwrites, which is accepted.
type RunLog struct {
	dir  string
	tool string
}

func NewRunLog(dir, tool string) *RunLog {
	return &RunLog{
		dir:  dir,
		tool: tool,
	}
}

func (l *RunLog) Write(run *AuditRun) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create log directory: %w", err)
	}

	path := filepath.Join(
		l.dir,
		fmt.Sprintf("%s_audit_%s.log", l.tool, run.StartedAt.Format(timestampLayout)),
	)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Running %s audit on: %s\n", l.tool, run.Target)
	fmt.Fprintf(&sb, "Command: %s\n\n", run.Cmdline)
	sb.Write(run.Stdout)
	sb.Write(run.Stderr)

	if run.Failure != "" {
		fmt.Fprintf(&sb, "\nError: %s\n", run.Failure)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("could not write %s: %w", path, err)
	}

	return path, nil
}

// Append adds a trailing note to an existing run log, used for errors
// discovered after the log was first written (e.g. unparseable output).
func (l *RunLog) Append(path, note string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not append to %s: %w", path, err)
	}
	defer file.Close()

	_, err = fmt.Fprintf(file, "\nError: %s\n", note)

	return err
}
