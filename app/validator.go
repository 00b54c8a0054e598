package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	log "github.com/sirupsen/logrus"
)

const nuCheckerEndpoint = "https://validator.w3.org/nu/"

// NuMessage is one message from the W3C Nu HTML checker.
type NuMessage struct {
	Type    string `json:"type"`
	SubType string `json:"subType"`
	Message string `json:"message"`
	Extract string `json:"extract"`
}

type nuResponse struct {
	Messages []NuMessage `json:"messages"`
}

// ValidationSummary aggregates the checker's messages for one target.
type ValidationSummary struct {
	Target   string
	Errors   int
	Warnings int
	Info     int
	Messages []NuMessage
}

// NuValidator queries the W3C Nu checker's JSON API.
type NuValidator struct {
	endpoint string
	client   *http.Client
	log      *log.Logger
}

func NewNuValidator(client *http.Client, logger *log.Logger) *NuValidator {
	return &NuValidator{
		endpoint: nuCheckerEndpoint,
		client:   client,
		log:      logger,
	}
}

// Check fetches the validation result for target.
func (v *NuValidator) Check(ctx context.Context, target string) (*ValidationSummary, error) {
	checkURL := fmt.Sprintf("%s?doc=%s&out=json", v.endpoint, url.QueryEscape(target))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, checkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create validator request: %w", err)
	}

	// The Nu checker rejects requests without a User-Agent.
	req.Header.Set("User-Agent", "a11yaudit")

	res, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("validator request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("validator returned status %d", res.StatusCode)
	}

	var body nuResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrParse)
	}

	summary := ValidationSummary{
		Target:   target,
		Messages: body.Messages,
	}

	for _, msg := range body.Messages {
		switch {
		case msg.Type == "error":
			summary.Errors++
		case msg.Type == "info" && msg.SubType == "warning":
			summary.Warnings++
		default:
			summary.Info++
		}
	}

	return &summary, nil
}

// PageURL is the human-readable validator page for target.
func (v *NuValidator) PageURL(target string) string {
	return fmt.Sprintf("%s?doc=%s", v.endpoint, url.QueryEscape(target))
}
