package app

import (
	"os/exec"
	"runtime"
)

// FileOpener hands a file or URL to the OS default handler. Callers treat
// it as fire-and-forget; a failure never fails the run.
type FileOpener func(target string) error

// OpenWithDefaultApp launches the platform's opener without waiting for
// it to finish.
func OpenWithDefaultApp(target string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	return cmd.Start()
}
