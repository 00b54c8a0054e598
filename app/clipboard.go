package app

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"
)

type clipboardCommand struct {
	name string
	args []string
}

// ClipboardProbe reads the current clipboard text through the platform's
// paste command. Like the browser probe it never fails, only yields "".
type ClipboardProbe struct {
	goos string
	run  CommandRunner
	log  *log.Logger
}

func NewClipboardProbe(goos string, run CommandRunner, logger *log.Logger) *ClipboardProbe {
	return &ClipboardProbe{
		goos: goos,
		run:  run,
		log:  logger,
	}
}

func (c *ClipboardProbe) Probe() Probe {
	return Probe{Name: "clipboard", Lookup: c.Text}
}

func (c *ClipboardProbe) Text(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	for _, cmd := range c.commands() {
		out, err := c.run.Output(ctx, cmd.name, cmd.args...)
		if err != nil {
			c.log.Debugf("%s: %v", cmd.name, err)

			continue
		}

		if text := strings.TrimSpace(string(out)); text != "" {
			return text
		}
	}

	return ""
}

func (c *ClipboardProbe) commands() []clipboardCommand {
	switch c.goos {
	case "darwin":
		return []clipboardCommand{{name: "pbpaste"}}
	case "windows":
		return []clipboardCommand{
			{name: "powershell", args: []string{"-NoProfile", "-Command", "Get-Clipboard"}},
		}
	default:
		return []clipboardCommand{
			{name: "xclip", args: []string{"-selection", "clipboard", "-o"}},
			{name: "xsel", args: []string{"--clipboard", "--output"}},
			{name: "wl-paste", args: []string{"--no-newline"}},
		}
	}
}
