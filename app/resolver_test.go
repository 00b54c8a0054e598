package app_test

import (
	"context"
	"io"
	"testing"

	"a11yaudit/app"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func quietLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(io.Discard)

	return logger
}

func constProbe(name, value string) app.Probe {
	return app.Probe{
		Name:   name,
		Lookup: func(context.Context) string { return value },
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		browser   string
		clipboard string
		want      string
		wantErr   error
	}{
		{
			name:      "explicit argument wins over both probes",
			explicit:  "https://arg.example.com",
			browser:   "https://browser.example.com",
			clipboard: "https://clipboard.example.com",
			want:      "https://arg.example.com",
		},
		{
			name:      "browser wins over clipboard",
			browser:   "https://browser.example.com",
			clipboard: "https://clipboard.example.com",
			want:      "https://browser.example.com",
		},
		{
			name:      "clipboard used when browser yields nothing",
			clipboard: "https://clipboard.example.com",
			want:      "https://clipboard.example.com",
		},
		{
			name:      "non-URL browser candidate falls through to clipboard",
			browser:   "Some Window Title",
			clipboard: "www.example.com",
			want:      "https://www.example.com",
		},
		{
			name:     "schemeless explicit argument defaults to https",
			explicit: "example.com/page",
			want:     "https://example.com/page",
		},
		{
			name:     "explicit http scheme kept",
			explicit: "http://example.com",
			want:     "http://example.com",
		},
		{
			name:    "all sources empty",
			wantErr: app.ErrNoURL,
		},
		{
			name:      "non-URL clipboard candidate rejected",
			clipboard: "hello world",
			wantErr:   app.ErrNoURL,
		},
		{
			name:     "unparseable explicit argument rejected",
			explicit: "not a url",
			wantErr:  app.ErrNoURL,
		},
	}

	for i := range tests {
		tt := tests[i]
		t.Run(tt.name, func(t *testing.T) {
			resolver := app.NewResolver(
				quietLogger(),
				constProbe("active browser window", tt.browser),
				constProbe("clipboard", tt.clipboard),
			)

			got, err := resolver.Resolve(context.Background(), tt.explicit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ProbesAreLazy(t *testing.T) {
	clipboardCalled := false

	resolver := app.NewResolver(
		quietLogger(),
		constProbe("active browser window", "https://browser.example.com"),
		app.Probe{
			Name: "clipboard",
			Lookup: func(context.Context) string {
				clipboardCalled = true

				return "https://clipboard.example.com"
			},
		},
	)

	got, err := resolver.Resolve(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, "https://browser.example.com", got)
	assert.False(t, clipboardCalled)
}

func TestEnsureScheme(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "example.com", want: "https://example.com"},
		{in: "www.example.com", want: "https://www.example.com"},
		{in: "http://example.com", want: "http://example.com"},
		{in: "https://example.com", want: "https://example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, app.EnsureScheme(tt.in))
	}
}

func TestLooksLikeURL(t *testing.T) {
	assert.True(t, app.LooksLikeURL("http://example.com"))
	assert.True(t, app.LooksLikeURL("https://example.com"))
	assert.True(t, app.LooksLikeURL("www.example.com"))
	assert.False(t, app.LooksLikeURL("example.com"))
	assert.False(t, app.LooksLikeURL("ftp://example.com"))
	assert.False(t, app.LooksLikeURL(""))
}
