package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"a11yaudit/app"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd runs the axe-core audit when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "a11yaudit [URL]",
	Short: "run an axe-core accessibility audit against a URL",
	Long: `Run an axe-core accessibility audit against a URL.

The URL may be passed as an argument; without one, the active browser
window and then the clipboard are probed. Results are summarized in the
terminal and written to a standalone HTML report.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runAxe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)

		if hint := app.Remediation(err); hint != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", hint)
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(lighthouseCmd)
	rootCmd.AddCommand(validateCmd)
}

func runAxe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := app.NewConfig()
	if err != nil {
		return err
	}

	target, err := resolveTarget(cmd.Context(), logger, args)
	if err != nil {
		return err
	}

	logger.Infof("auditing %s", target)

	a := app.NewApp(
		app.NewAxeScanner("axe", cfg.AxeTimeout, app.SystemRunner, logger),
		app.NewRunLog(cfg.AxeLogsDir, "axe"),
		app.NewHTMLReport(cfg.AxeReportsDir),
		app.NewTerminalRenderer(os.Stdout),
		app.OpenWithDefaultApp,
		logger,
	)

	return a.Run(cmd.Context(), target)
}

func newLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func resolveTarget(ctx context.Context, logger *log.Logger, args []string) (string, error) {
	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}

	resolver := app.NewResolver(
		logger,
		app.NewBrowserProbe(runtime.GOOS, app.SystemRunner, logger).Probe(),
		app.NewClipboardProbe(runtime.GOOS, app.SystemRunner, logger).Probe(),
	)

	return resolver.Resolve(ctx, explicit)
}
