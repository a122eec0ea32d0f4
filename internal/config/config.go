package config

import (
	"os"

	"github.com/joho/godotenv"

	"goeda/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Report ReportConfig
	Server ServerConfig
}

// DataConfig holds dataset input settings
type DataConfig struct {
	// InputFile is the CSV or XLSX file holding the transaction data.
	InputFile string
	// Sheet selects the worksheet for XLSX inputs; empty means first sheet.
	Sheet string
}

// ReportConfig holds report output settings
type ReportConfig struct {
	// OutDir is where figures and text reports are written.
	OutDir string
}

// ServerConfig holds report viewer settings
type ServerConfig struct {
	Port string
}

// Overrides carries caller-supplied settings, typically from command-line
// flags. Non-empty fields win over the environment.
type Overrides struct {
	InputFile string
	OutDir    string
}

// Load reads configuration from the environment, after sourcing a .env file
// when one is present, then applies any overrides.
func Load(o Overrides) (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		Data: DataConfig{
			InputFile: os.Getenv("GOEDA_INPUT"),
			Sheet:     os.Getenv("GOEDA_SHEET"),
		},
		Report: ReportConfig{
			OutDir: getEnvOrDefault("GOEDA_OUT_DIR", "eda-report"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("GOEDA_SERVER_PORT", "8085"),
		},
	}
	if o.InputFile != "" {
		cfg.Data.InputFile = o.InputFile
	}
	if o.OutDir != "" {
		cfg.Report.OutDir = o.OutDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.Data.InputFile == "" {
		return errors.ConfigInvalid("GOEDA_INPUT must point at a CSV or XLSX file")
	}
	if c.Report.OutDir == "" {
		return errors.ConfigInvalid("GOEDA_OUT_DIR must not be empty")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
