package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// Locations npm drops global binaries into when they are not on PATH.
var lighthouseFallbackDirs = []string{
	"/usr/local/bin",
	"/usr/bin",
	"/opt/homebrew/bin",
}

// LighthouseRunner drives a lighthouse audit. Unlike axe, lighthouse
// writes its own HTML report; this runner only locates the binary, bounds
// the run, persists the run log and opens the finished report.
type LighthouseRunner struct {
	run        CommandRunner
	execute    commandFunc
	runLog     *RunLog
	reportsDir string
	timeout    time.Duration
	open       FileOpener
	log        *log.Logger
}

func NewLighthouseRunner(
	run CommandRunner,
	runLog *RunLog,
	reportsDir string,
	timeout time.Duration,
	open FileOpener,
	logger *log.Logger,
) *LighthouseRunner {
	return &LighthouseRunner{
		run:        run,
		execute:    runCommand,
		runLog:     runLog,
		reportsDir: reportsDir,
		timeout:    timeout,
		open:       open,
		log:        logger,
	}
}

// Run audits target and leaves the report at
// lighthouse_<domain>_<timestamp>.html in the reports directory.
func (l *LighthouseRunner) Run(ctx context.Context, target string) error {
	binary, err := l.locateBinary()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(l.reportsDir, 0o755); err != nil {
		return fmt.Errorf("could not create report directory: %w", err)
	}

	run := &AuditRun{
		Target:    target,
		StartedAt: time.Now(),
	}

	reportPath := filepath.Join(
		l.reportsDir,
		fmt.Sprintf("lighthouse_%s_%s.html", Domain(target), run.StartedAt.Format(timestampLayout)),
	)

	l.log.Infof("running lighthouse against %s (timeout %s)", target, l.timeout)

	out, runErr := l.execute(ctx, l.timeout, binary,
		target,
		"--quiet",
		"--chrome-flags=--headless",
		"--output=html",
		"--output-path", reportPath,
		"--only-categories=accessibility,best-practices,performance,seo",
	)
	if out != nil {
		run.Cmdline = out.Cmdline
		run.Stdout = out.Stdout
		run.Stderr = out.Stderr
		run.ExitCode = out.ExitCode
	}

	if runErr != nil {
		run.Failure = runErr.Error()
	}

	logPath, logErr := l.runLog.Write(run)
	if logErr != nil {
		l.log.WithError(logErr).Warn("could not write run log")
	} else {
		l.log.Infof("run log: %s", logPath)
	}

	if runErr != nil {
		return withLogPath(runErr, logPath)
	}

	l.log.Infof("report written to %s", reportPath)

	if err := l.open(reportPath); err != nil {
		l.log.WithError(err).Debug("could not open report")
	}

	return nil
}

func (l *LighthouseRunner) locateBinary() (string, error) {
	if path, err := l.run.LookPath("lighthouse"); err == nil {
		return path, nil
	}

	home, err := os.UserHomeDir()
	dirs := lighthouseFallbackDirs
	if err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".npm-global", "bin"),
			filepath.Join(home, ".nvm", "current", "bin"),
		)
	}

	for _, dir := range dirs {
		candidate := filepath.Join(dir, "lighthouse")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("lighthouse: %w", ErrToolMissing)
}
