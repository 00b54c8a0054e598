package app_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"a11yaudit/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult() *app.AuditResult {
	return &app.AuditResult{
		Violations: []app.Finding{
			{
				Impact:  "critical",
				Help:    "X",
				HelpURL: "https://dequeuniversity.com/rules/axe/color-contrast",
				Tags:    []string{"wcag2aa", "cat.color"},
				Nodes: []app.ElementMatch{
					{HTML: `<img src=x onerror=alert(1)>`, FailureSummary: "Fix contrast"},
				},
			},
		},
		Passes: make([]app.Finding, 5),
	}
}

func TestHTMLReport_Write(t *testing.T) {
	dir := t.TempDir()
	startedAt := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

	path, err := app.NewHTMLReport(dir).Write("https://example.com/page", testResult(), startedAt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "axe_example.com_20240301_123045.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	rendered := string(content)

	assert.Equal(t, 1, strings.Count(rendered, `class="issue impact-critical"`))
	assert.Contains(t, rendered, "<p>5 checks</p>")
	assert.Contains(t, rendered, "X")
	assert.Contains(t, rendered, "wcag2aa")
	assert.Contains(t, rendered, "Fix contrast")
	assert.NotContains(t, rendered, "<h2>Needs Review</h2>")
}

// Markup reported by the scanner must be escaped, never embedded raw.
func TestHTMLReport_EscapesScannedMarkup(t *testing.T) {
	dir := t.TempDir()

	path, err := app.NewHTMLReport(dir).Write("https://example.com", testResult(), time.Now())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	rendered := string(content)

	assert.NotContains(t, rendered, `<img src=x onerror=alert(1)>`)
	assert.Contains(t, rendered, "&lt;img src=x onerror=alert(1)&gt;")
}

func TestHTMLReport_WriteIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	startedAt := time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)
	report := app.NewHTMLReport(dir)

	path, err := report.Write("https://example.com", testResult(), startedAt)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	// A same-second rerun lands on the same filename and overwrites.
	path2, err := report.Write("https://example.com", testResult(), startedAt)
	require.NoError(t, err)
	assert.Equal(t, path, path2)

	second, err := os.ReadFile(path2)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestHTMLReport_UnknownImpactClass(t *testing.T) {
	dir := t.TempDir()
	result := &app.AuditResult{
		Incomplete: []app.Finding{{Description: "needs human judgement"}},
	}

	path, err := app.NewHTMLReport(dir).Write("https://example.com", result, time.Now())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), `class="issue impact-unknown"`)
	assert.Contains(t, string(content), "<h2>Needs Review</h2>")
}
