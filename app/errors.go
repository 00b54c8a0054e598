package app

import (
	"errors"
	"fmt"
)

var (
	ErrNoURL       = errors.New("no URL found in argument, browser window, or clipboard")
	ErrToolMissing = errors.New("scanner binary not found")
	ErrTimeout     = errors.New("scanner timed out")
	ErrToolExit    = errors.New("scanner exited with an error")
	ErrParse       = errors.New("could not parse scanner output")
)

// LoggedError carries the run log written for a failed run alongside the
// failure itself, so the error handler can point the user at the capture.
type LoggedError struct {
	LogPath string
	Err     error
}

func (e *LoggedError) Error() string { return e.Err.Error() }

func (e *LoggedError) Unwrap() error { return e.Err }

const urlHint = `Please either:
1. Provide a URL as a command line argument
2. Have an active browser window with the URL
3. Copy a URL to your clipboard`

const installHint = `The audit tools are npm packages and require Node.js:
1. Visit https://nodejs.org and install Node.js
2. Run: npm install -g @axe-core/cli   (for axe audits)
   or:  npm install -g lighthouse      (for lighthouse audits)
3. Re-run the audit`

// Remediation returns user-facing guidance for terminal failures,
// or "" when there is nothing actionable to suggest.
func Remediation(err error) string {
	switch {
	case errors.Is(err, ErrNoURL):
		return urlHint
	case errors.Is(err, ErrToolMissing):
		return installHint
	case errors.Is(err, ErrTimeout):
		return "The page may be slow or unreachable. Check your connection and re-run the audit."
	case errors.Is(err, ErrToolExit), errors.Is(err, ErrParse):
		var logged *LoggedError
		if errors.As(err, &logged) {
			return fmt.Sprintf("The scanner output was captured in the run log:\n  %s", logged.LogPath)
		}

		return "Check the run log for the captured scanner output."
	}

	return ""
}
