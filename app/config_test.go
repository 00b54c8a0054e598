package app_test

import (
	"path/filepath"
	"testing"
	"time"

	"a11yaudit/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("AXE_REPORTS_DIR", "")
	t.Setenv("AXE_TIMEOUT_SECONDS", "")
	t.Setenv("LIGHTHOUSE_REPORTS_DIR", "")
	t.Setenv("LIGHTHOUSE_TIMEOUT_SECONDS", "")

	cfg, err := app.NewConfig()
	require.NoError(t, err)

	assert.Contains(t, cfg.AxeReportsDir, "axe_reports")
	assert.Equal(t, filepath.Join(cfg.AxeReportsDir, "logs"), cfg.AxeLogsDir)
	assert.Equal(t, 30*time.Second, cfg.AxeTimeout)
	assert.Contains(t, cfg.LighthouseReportsDir, "lighthouse_reports")
	assert.Equal(t, 120*time.Second, cfg.LighthouseTimeout)
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("AXE_REPORTS_DIR", "/tmp/reports")
	t.Setenv("AXE_TIMEOUT_SECONDS", "5")
	t.Setenv("LIGHTHOUSE_TIMEOUT_SECONDS", "300")

	cfg, err := app.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.AxeReportsDir)
	assert.Equal(t, filepath.Join("/tmp/reports", "logs"), cfg.AxeLogsDir)
	assert.Equal(t, 5*time.Second, cfg.AxeTimeout)
	assert.Equal(t, 300*time.Second, cfg.LighthouseTimeout)
}

func TestNewConfig_InvalidTimeout(t *testing.T) {
	tests := []string{"abc", "-1", "0"}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			t.Setenv("AXE_TIMEOUT_SECONDS", value)

			_, err := app.NewConfig()
			assert.Error(t, err)
		})
	}
}
