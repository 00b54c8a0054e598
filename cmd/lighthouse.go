package cmd

import (
	"a11yaudit/app"

	"github.com/spf13/cobra"
)

var lighthouseCmd = &cobra.Command{
	Use:   "lighthouse [URL]",
	Short: "run a lighthouse audit against a URL",
	Long: `Run a lighthouse audit against a URL.

Lighthouse renders its own HTML report; the report is written to the
lighthouse reports directory and opened on success.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLighthouse,
}

func runLighthouse(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := app.NewConfig()
	if err != nil {
		return err
	}

	target, err := resolveTarget(cmd.Context(), logger, args)
	if err != nil {
		return err
	}

	runner := app.NewLighthouseRunner(
		app.SystemRunner,
		app.NewRunLog(cfg.LighthouseLogsDir, "lighthouse"),
		cfg.LighthouseReportsDir,
		cfg.LighthouseTimeout,
		app.OpenWithDefaultApp,
		logger,
	)

	return runner.Run(cmd.Context(), target)
}
