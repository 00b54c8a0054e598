package app

import (
	"context"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Probes must not stall resolution: a hung helper (an osascript
// permission prompt, a wedged display server) is cut off and treated as
// "no result".
const probeTimeout = 3 * time.Second

// AppleScript snippets asking each browser for its frontmost tab. Each is
// tried in turn; a browser that is not frontmost produces empty output.
var appleScripts = []string{
	`tell application "Google Chrome"
	if frontmost then
		get URL of active tab of front window
	end if
end tell`,
	`tell application "Safari"
	if frontmost then
		get URL of current tab of front window
	end if
end tell`,
	`tell application "Firefox"
	if frontmost then
		get URL of active tab of front window
	end if
end tell`,
}

// Window titles embed the page URL only in some browser configurations, so
// the title-based probes frequently yield nothing. That is fine: the
// resolver falls through to the clipboard.
var titleURLPattern = regexp.MustCompile(`https?://[^\s]+`)

const windowsTitleScript = `Add-Type @"
using System;
using System.Runtime.InteropServices;
public class Win32 {
	[DllImport("user32.dll")]
	public static extern IntPtr GetForegroundWindow();
	[DllImport("user32.dll")]
	public static extern int GetWindowText(IntPtr hWnd, System.Text.StringBuilder text, int count);
}
"@
$window = [Win32]::GetForegroundWindow()
$buffer = New-Object System.Text.StringBuilder(512)
[Win32]::GetWindowText($window, $buffer, $buffer.Capacity) | Out-Null
$buffer.ToString()`

// BrowserProbe reads the URL of the active browser window. Every failure
// mode (missing helper binary, automation permission denied, no browser
// frontmost) degrades to "no result"; nothing escapes this layer.
type BrowserProbe struct {
	goos string
	run  CommandRunner
	log  *log.Logger
}

func NewBrowserProbe(goos string, run CommandRunner, logger *log.Logger) *BrowserProbe {
	return &BrowserProbe{
		goos: goos,
		run:  run,
		log:  logger,
	}
}

func (b *BrowserProbe) Probe() Probe {
	return Probe{Name: "active browser window", Lookup: b.ActiveURL}
}

func (b *BrowserProbe) ActiveURL(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	switch b.goos {
	case "darwin":
		return b.fromAppleScript(ctx)
	case "windows":
		return b.fromForegroundTitle(ctx)
	case "linux":
		return b.fromWindowManager(ctx)
	}

	return ""
}

func (b *BrowserProbe) fromAppleScript(ctx context.Context) string {
	for _, script := range appleScripts {
		out, err := b.run.Output(ctx, "osascript", "-e", script)
		if err != nil {
			b.log.Debugf("osascript: %v", err)

			continue
		}

		if url := strings.TrimSpace(string(out)); url != "" {
			return url
		}
	}

	return ""
}

func (b *BrowserProbe) fromForegroundTitle(ctx context.Context) string {
	out, err := b.run.Output(ctx, "powershell", "-NoProfile", "-Command", windowsTitleScript)
	if err != nil {
		b.log.Debugf("powershell: %v", err)

		return ""
	}

	return extractURLFromTitle(string(out))
}

func (b *BrowserProbe) fromWindowManager(ctx context.Context) string {
	windowID, err := b.run.Output(ctx, "xdotool", "getactivewindow")
	if err != nil {
		b.log.Debugf("xdotool getactivewindow: %v", err)

		return ""
	}

	title, err := b.run.Output(ctx, "xdotool", "getwindowname", strings.TrimSpace(string(windowID)))
	if err != nil {
		b.log.Debugf("xdotool getwindowname: %v", err)

		return ""
	}

	return extractURLFromTitle(string(title))
}

func extractURLFromTitle(title string) string {
	match := titleURLPattern.FindString(title)

	return strings.TrimRight(match, "-– ")
}
