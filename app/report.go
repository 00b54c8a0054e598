package app

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"
)

// reportTemplate renders the standalone HTML report. Raw markup coming
// back from the scanner (ElementMatch.HTML) goes through the template's
// contextual escaping, so the report never executes scanned content.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Axe Accessibility Audit Report</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            max-width: 1200px;
            margin: 0 auto;
            padding: 20px;
            background: #f5f5f5;
        }
        .container {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        h1 {
            color: #2c3e50;
            border-bottom: 2px solid #eee;
            padding-bottom: 10px;
        }
        .target { color: #6c757d; }
        .summary {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin: 20px 0;
        }
        .summary-item {
            padding: 15px;
            border-radius: 6px;
            text-align: center;
        }
        .passes { background: #d4edda; color: #155724; }
        .incomplete { background: #fff3cd; color: #856404; }
        .violations { background: #f8d7da; color: #721c24; }
        .issue-section {
            margin: 30px 0;
            padding: 20px;
            border-radius: 6px;
            background: white;
        }
        .issue {
            border: 1px solid #ddd;
            margin: 10px 0;
            padding: 15px;
            border-radius: 4px;
        }
        .impact-critical { border-left: 5px solid #dc3545; }
        .impact-serious { border-left: 5px solid #fd7e14; }
        .impact-moderate { border-left: 5px solid #ffc107; }
        .impact-minor { border-left: 5px solid #17a2b8; }
        .impact-unknown { border-left: 5px solid #6c757d; }
        .tag {
            display: inline-block;
            padding: 2px 8px;
            margin: 2px;
            background: #e9ecef;
            border-radius: 12px;
            font-size: 0.9em;
        }
        .node {
            background: #f8f9fa;
            border-radius: 4px;
            padding: 8px;
            margin: 6px 0;
            font-size: 0.9em;
        }
        .node code { word-break: break-all; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Axe Accessibility Audit Report</h1>
        <p class="target">{{.Target}} &mdash; {{.GeneratedAt}}</p>
        <div class="summary">
            <div class="summary-item passes">
                <h2>✅ Passed</h2>
                <p>{{len .Result.Passes}} checks</p>
            </div>
            <div class="summary-item incomplete">
                <h2>⚠️ Needs Review</h2>
                <p>{{len .Result.Incomplete}} checks</p>
            </div>
            <div class="summary-item violations">
                <h2>❌ Violations</h2>
                <p>{{len .Result.Violations}} checks</p>
            </div>
        </div>
{{if .Result.Violations}}
        <div class="issue-section">
            <h2>Violations</h2>
{{range .Result.Violations}}{{template "issue" .}}{{end}}
        </div>
{{end}}
{{if .Result.Incomplete}}
        <div class="issue-section">
            <h2>Needs Review</h2>
{{range .Result.Incomplete}}{{template "issue" .}}{{end}}
        </div>
{{end}}
    </div>
</body>
</html>
{{define "issue"}}
            <div class="issue impact-{{.ImpactLevel}}">
                <h3>{{.Title}}</h3>
                <p><strong>Impact:</strong> {{.ImpactLevel}}</p>
{{if .HelpURL}}                <p><a href="{{.HelpURL}}">{{.HelpURL}}</a></p>
{{end}}                <div class="tags">
{{range .Tags}}                    <span class="tag">{{.}}</span>
{{end}}                </div>
{{range .Nodes}}                <div class="node">
                    <code>{{.HTML}}</code>
{{if .FailureSummary}}                    <p>{{.FailureSummary}}</p>
{{end}}                </div>
{{end}}            </div>
{{end}}`))

type reportData struct {
	Target      string
	GeneratedAt string
	Result      *AuditResult
}

// HTMLReport writes one standalone report file per successful run, named
// after the target's domain and the run timestamp.
type HTMLReport struct {
	dir string
}

func NewHTMLReport(dir string) *HTMLReport {
	return &HTMLReport{dir: dir}
}

func (r *HTMLReport) Write(target string, result *AuditResult, startedAt time.Time) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create report directory: %w", err)
	}

	path := filepath.Join(
		r.dir,
		fmt.Sprintf("axe_%s_%s.html", Domain(target), startedAt.Format(timestampLayout)),
	)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create %s: %w", path, err)
	}
	defer file.Close()

	data := reportData{
		Target:      target,
		GeneratedAt: startedAt.Format("2006-01-02 15:04:05"),
		Result:      result,
	}

	if err := reportTemplate.Execute(file, data); err != nil {
		return "", fmt.Errorf("could not render %s: %w", path, err)
	}

	return path, nil
}
