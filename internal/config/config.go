package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config aggregates application configuration values.
type Config struct {
	Storage StorageConfig
	Logging LoggingConfig
}

// StorageConfig locates the backing files of the three collections and the report output.
type StorageConfig struct {
	DataDir           string
	PolicyholdersFile string
	ProductsFile      string
	PaymentsFile      string
	ReportFile        string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultDataDir           = "./data"
	defaultPolicyholdersFile = "policyholder_data.json"
	defaultProductsFile      = "product_data.json"
	defaultPaymentsFile      = "payment_data.json"
	defaultReportFile        = "Policy_holder_details.txt"
	defaultLoggingLevel      = "info"
	defaultLoggingFormat     = "text"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			DataDir:           valueOrDefault("INSURADMIN_DATA_DIR", defaultDataDir),
			PolicyholdersFile: valueOrDefault("INSURADMIN_POLICYHOLDERS_FILE", defaultPolicyholdersFile),
			ProductsFile:      valueOrDefault("INSURADMIN_PRODUCTS_FILE", defaultProductsFile),
			PaymentsFile:      valueOrDefault("INSURADMIN_PAYMENTS_FILE", defaultPaymentsFile),
			ReportFile:        valueOrDefault("INSURADMIN_REPORT_FILE", defaultReportFile),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	switch strings.ToLower(cfg.Logging.Format) {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("invalid LOG_FORMAT %q: must be text or json", cfg.Logging.Format)
	}

	return cfg, nil
}

// PolicyholdersPath returns the full path of the policyholder collection.
func (s StorageConfig) PolicyholdersPath() string {
	return s.resolve(s.PolicyholdersFile)
}

// ProductsPath returns the full path of the product collection.
func (s StorageConfig) ProductsPath() string {
	return s.resolve(s.ProductsFile)
}

// PaymentsPath returns the full path of the payment collection.
func (s StorageConfig) PaymentsPath() string {
	return s.resolve(s.PaymentsFile)
}

// ReportPath returns the full path of the text report that "save report" overwrites.
func (s StorageConfig) ReportPath() string {
	return s.resolve(s.ReportFile)
}

// Absolute file names are used as given.
func (s StorageConfig) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.DataDir, name)
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
