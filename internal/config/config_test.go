package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"INSURADMIN_DATA_DIR", "INSURADMIN_POLICYHOLDERS_FILE", "INSURADMIN_PRODUCTS_FILE",
		"INSURADMIN_PAYMENTS_FILE", "INSURADMIN_REPORT_FILE", "LOG_LEVEL", "LOG_FORMAT", "LOG_INCLUDE_CALLER",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join("data", "policyholder_data.json"), cfg.Storage.PolicyholdersPath())
	assert.Equal(t, filepath.Join("data", "product_data.json"), cfg.Storage.ProductsPath())
	assert.Equal(t, filepath.Join("data", "payment_data.json"), cfg.Storage.PaymentsPath())
	assert.Equal(t, filepath.Join("data", "Policy_holder_details.txt"), cfg.Storage.ReportPath())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.False(t, cfg.Logging.IncludeCaller)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "elsewhere", "payments.json")

	t.Setenv("INSURADMIN_DATA_DIR", dir)
	t.Setenv("INSURADMIN_POLICYHOLDERS_FILE", "holders.json")
	t.Setenv("INSURADMIN_PAYMENTS_FILE", abs)
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_INCLUDE_CALLER", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "holders.json"), cfg.Storage.PolicyholdersPath())
	assert.Equal(t, abs, cfg.Storage.PaymentsPath())
	assert.True(t, cfg.Logging.IncludeCaller)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})

	t.Run("unparsable bool falls back", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "")
		t.Setenv("LOG_INCLUDE_CALLER", "sometimes")
		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Logging.IncludeCaller)
	})
}
