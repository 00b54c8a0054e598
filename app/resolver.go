package app

import (
	"context"
	"fmt"
	"strings"

	valid "github.com/asaskevich/govalidator"
	log "github.com/sirupsen/logrus"
)

// Probe is a best-effort lookup for an ambient URL source. Lookup returns
// "" when the source has nothing to offer; it never returns an error.
type Probe struct {
	Name   string
	Lookup func(ctx context.Context) string
}

// Resolver picks a target URL from an explicit argument or, failing that,
// from an ordered list of probes evaluated lazily until one yields a value.
type Resolver struct {
	probes []Probe
	log    *log.Logger
}

func NewResolver(logger *log.Logger, probes ...Probe) *Resolver {
	return &Resolver{
		probes: probes,
		log:    logger,
	}
}

// Resolve returns the audit target. An explicit argument always wins and is
// taken verbatim; probe candidates must additionally pass a lexical prefix
// check before being accepted. The selected URL is normalized exactly once,
// after selection. Exhausting every source yields ErrNoURL.
func (r *Resolver) Resolve(ctx context.Context, explicit string) (string, error) {
	selected := strings.TrimSpace(explicit)

	if selected == "" {
		for _, probe := range r.probes {
			candidate := strings.TrimSpace(probe.Lookup(ctx))
			if candidate == "" {
				r.log.Debugf("%s: no URL", probe.Name)

				continue
			}

			if !LooksLikeURL(candidate) {
				r.log.Debugf("%s: %q does not look like a URL", probe.Name, candidate)

				continue
			}

			r.log.Infof("found URL in %s: %s", probe.Name, candidate)
			selected = candidate

			break
		}
	}

	if selected == "" {
		return "", ErrNoURL
	}

	normalized := EnsureScheme(selected)
	if !valid.IsRequestURL(normalized) {
		return "", fmt.Errorf("%q is not a valid URL: %w", selected, ErrNoURL)
	}

	return normalized, nil
}

// LooksLikeURL is the lightweight prefix check applied to probe candidates.
func LooksLikeURL(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "www.")
}

// EnsureScheme defaults schemeless input to https.
func EnsureScheme(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}

	return "https://" + url
}
