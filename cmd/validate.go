package cmd

import (
	"fmt"
	"net/http"
	"os"

	"a11yaudit/app"

	"github.com/spf13/cobra"
)

// Cap on individual messages echoed to the terminal; the validator page
// opened afterwards has the full list.
const maxValidatorMessages = 20

var validateCmd = &cobra.Command{
	Use:   "validate [URL]",
	Short: "check a page with the W3C Nu HTML validator",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	target, err := resolveTarget(cmd.Context(), logger, args)
	if err != nil {
		return err
	}

	logger.Infof("validating %s", target)

	validator := app.NewNuValidator(http.DefaultClient, logger)

	summary, err := validator.Check(cmd.Context(), target)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== W3C HTML Validation Results ===\n\n")
	fmt.Printf("❌ Errors: %d\n", summary.Errors)
	fmt.Printf("⚠️  Warnings: %d\n", summary.Warnings)
	fmt.Printf("ℹ️  Info: %d\n\n", summary.Info)

	for i, msg := range summary.Messages {
		if i == maxValidatorMessages {
			fmt.Printf("... and %d more\n", len(summary.Messages)-maxValidatorMessages)

			break
		}

		fmt.Printf("[%s] %s\n", messageLabel(msg), msg.Message)
	}

	if err := app.OpenWithDefaultApp(validator.PageURL(target)); err != nil {
		logger.WithError(err).Debug("could not open validator page")
	} else {
		fmt.Fprintf(os.Stderr, "Opening W3C HTML Validator for: %s\n", target)
	}

	return nil
}

func messageLabel(msg app.NuMessage) string {
	if msg.Type == "info" && msg.SubType == "warning" {
		return "warning"
	}

	return msg.Type
}
