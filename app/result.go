package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Finding is one reported accessibility check from the scanner, either
// failed (violation), undecided (incomplete) or passed.
type Finding struct {
	ID          string         `json:"id,omitempty"`
	Impact      string         `json:"impact,omitempty"`
	Description string         `json:"description,omitempty"`
	Help        string         `json:"help,omitempty"`
	HelpURL     string         `json:"helpUrl,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Nodes       []ElementMatch `json:"nodes,omitempty"`
}

// ElementMatch is node-level detail for a finding: the offending markup
// and the scanner's explanation of what failed.
type ElementMatch struct {
	HTML           string `json:"html,omitempty"`
	FailureSummary string `json:"failureSummary,omitempty"`
}

// AuditResult is the parsed scanner output for one target.
type AuditResult struct {
	Violations []Finding `json:"violations"`
	Incomplete []Finding `json:"incomplete"`
	Passes     []Finding `json:"passes"`
}

// AuditRun is one execution instance. It is assembled while the scanner
// runs and is not modified after the subprocess exits.
type AuditRun struct {
	Target    string
	StartedAt time.Time
	Cmdline   string
	Stdout    []byte
	Stderr    []byte
	ExitCode  int
	Failure   string
}

// ParseResult decodes scanner stdout. axe-core emits either a single
// result object or a one-element array containing it; both normalize to
// one AuditResult. Anything else is ErrParse.
func ParseResult(stdout []byte) (*AuditResult, error) {
	trimmed := bytes.TrimSpace(stdout)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty scanner output: %w", ErrParse)
	}

	if trimmed[0] == '[' {
		var results []AuditResult
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrParse)
		}

		if len(results) == 0 {
			return nil, fmt.Errorf("empty result list: %w", ErrParse)
		}

		return &results[0], nil
	}

	var result AuditResult
	if err := json.Unmarshal(trimmed, &result); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrParse)
	}

	return &result, nil
}

// Title prefers the scanner's short help text over the rule description.
func (f Finding) Title() string {
	if f.Help != "" {
		return f.Help
	}

	if f.Description != "" {
		return f.Description
	}

	return "No description"
}

// ImpactLevel maps the scanner's impact onto the known severity set.
func (f Finding) ImpactLevel() string {
	switch f.Impact {
	case "critical", "serious", "moderate", "minor":
		return f.Impact
	}

	return "unknown"
}

// JoinedTags renders the category tag set for display.
func (f Finding) JoinedTags() string {
	return strings.Join(f.Tags, ", ")
}

// Domain extracts the host part of a target URL for report filenames.
func Domain(target string) string {
	if parsed, err := url.Parse(target); err == nil && parsed.Host != "" {
		return parsed.Host
	}

	trimmed := strings.TrimPrefix(strings.TrimPrefix(target, "https://"), "http://")

	return strings.SplitN(trimmed, "/", 2)[0]
}
