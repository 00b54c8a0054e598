package app

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// App drives one audit run: health-check the scanner, run it, persist the
// run log, parse the output and render the terminal summary plus the HTML
// report. One App instance owns exactly one run; nothing is shared across
// invocations.
type App struct {
	scanner  Scanner
	runLog   *RunLog
	report   *HTMLReport
	terminal *TerminalRenderer
	open     FileOpener
	log      *log.Logger
}

func NewApp(
	scanner Scanner,
	runLog *RunLog,
	report *HTMLReport,
	terminal *TerminalRenderer,
	open FileOpener,
	logger *log.Logger,
) *App {
	return &App{
		scanner:  scanner,
		runLog:   runLog,
		report:   report,
		terminal: terminal,
		open:     open,
		log:      logger,
	}
}

// Run executes the audit pipeline against a normalized target URL.
// Timeout, execution and parse failures are terminal; a report write or
// open failure is logged and the run still succeeds, since the terminal
// summary was already rendered and the run log exists.
func (a *App) Run(ctx context.Context, target string) error {
	if err := a.scanner.CheckInstalled(ctx); err != nil {
		return err
	}

	run := &AuditRun{
		Target:    target,
		StartedAt: time.Now(),
	}

	out, scanErr := a.scanner.Scan(ctx, target)
	if out != nil {
		run.Cmdline = out.Cmdline
		run.Stdout = out.Stdout
		run.Stderr = out.Stderr
		run.ExitCode = out.ExitCode
	}

	if scanErr != nil {
		run.Failure = scanErr.Error()
	}

	// The log is written before the output is interpreted so that a
	// failed parse still leaves a diagnosable trace.
	logPath, logErr := a.runLog.Write(run)
	if logErr != nil {
		a.log.WithError(logErr).Warn("could not write run log")
	} else {
		a.log.Infof("run log: %s", logPath)
	}

	if scanErr != nil {
		return withLogPath(scanErr, logPath)
	}

	result, err := ParseResult(run.Stdout)
	if err != nil {
		if logPath != "" {
			if appendErr := a.runLog.Append(logPath, err.Error()); appendErr != nil {
				a.log.WithError(appendErr).Warn("could not update run log")
			}
		}

		return withLogPath(err, logPath)
	}

	a.terminal.Render(result)

	reportPath, err := a.report.Write(target, result, run.StartedAt)
	if err != nil {
		// Non-fatal: the terminal summary and the run log already exist.
		a.log.WithError(err).Error("could not write HTML report")

		return nil
	}

	a.log.Infof("report written to %s", reportPath)

	if err := a.open(reportPath); err != nil {
		a.log.WithError(err).Debug("could not open report")
	}

	return nil
}

func withLogPath(err error, logPath string) error {
	if logPath == "" {
		return err
	}

	return &LoggedError{LogPath: logPath, Err: err}
}
