package app

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Scanner runs the external accessibility scanner. CheckInstalled is a
// lightweight health probe; Scan captures the subprocess output verbatim
// and returns it even on failure so the run log stays diagnosable.
type Scanner interface {
	CheckInstalled(ctx context.Context) error
	Scan(ctx context.Context, target string) (*ScanOutput, error)
}

// AxeScanner invokes the axe-core CLI.
type AxeScanner struct {
	binary  string
	timeout time.Duration
	run     CommandRunner
	execute commandFunc
	log     *log.Logger
}

func NewAxeScanner(binary string, timeout time.Duration, run CommandRunner, logger *log.Logger) *AxeScanner {
	return &AxeScanner{
		binary:  binary,
		timeout: timeout,
		run:     run,
		execute: runCommand,
		log:     logger,
	}
}

func (s *AxeScanner) CheckInstalled(ctx context.Context) error {
	if _, err := s.run.LookPath(s.binary); err != nil {
		return fmt.Errorf("%q: %w", s.binary, ErrToolMissing)
	}

	if _, err := s.run.Output(ctx, s.binary, "--version"); err != nil {
		return fmt.Errorf("%s --version failed: %w", s.binary, ErrToolMissing)
	}

	return nil
}

func (s *AxeScanner) Scan(ctx context.Context, target string) (*ScanOutput, error) {
	s.log.Debugf("running %s against %s (timeout %s)", s.binary, target, s.timeout)

	return s.execute(ctx, s.timeout, s.binary, target, "--stdout", "--no-reporter")
}
