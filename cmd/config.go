package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"

	"github.com/etnz/analytics/agent"
	"github.com/etnz/analytics/loader"
	"github.com/etnz/analytics/report"
	"github.com/joho/godotenv"
)

// Environment variables read by pad.
const (
	EnvData         = "PAD_DATA"
	EnvAsOf         = "PAD_ASOF"
	EnvRiskFreeRate = "PAD_RISK_FREE_RATE"
	EnvReference    = "PAD_REFERENCE"
	EnvVaRAlpha     = "PAD_VAR_ALPHA"
	EnvTolerance    = "PAD_TOLERANCE"
	EnvCurrency     = "PAD_CURRENCY"
	EnvLogLevel     = "PAD_LOG_LEVEL"
	EnvModel        = "PAD_MODEL"
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvJSONDates    = "PAD_JSON_DATES"
	EnvJSONValues   = "PAD_JSON_VALUES"
)

// Config of the application.
type Config struct {
	DataDir  string
	LogLevel string
	Model    string
	APIKey   string
	report.Settings
}

// LoadConfig reads the configuration from the environment, after loading
// the given .env files (".env" by default). Missing files are ignored and
// variables already set are not overridden.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("could not load %q: %w", f, err)
		}
	}

	d := report.DefaultSettings()
	cfg := Config{
		DataDir:  getEnv(EnvData, "data"),
		LogLevel: getEnv(EnvLogLevel, "warn"),
		Model:    getEnv(EnvModel, agent.DefaultModel),
		APIKey:   getEnv(EnvAPIKey, ""),
		Settings: report.Settings{
			Reference: getEnv(EnvReference, d.Reference),
			Currency:  getEnv(EnvCurrency, d.Currency),
			JSON:      loader.JSONPaths{
				Dates:  getEnv(EnvJSONDates, d.JSON.Dates),
				Values: getEnv(EnvJSONValues, d.JSON.Values),
			},
		},
	}

	var err error
	if cfg.RiskFreeRate, err = getEnvFloat(EnvRiskFreeRate, d.RiskFreeRate); err != nil {
		return Config{}, err
	}
	if cfg.VaRAlpha, err = getEnvFloat(EnvVaRAlpha, d.VaRAlpha); err != nil {
		return Config{}, err
	}
	if cfg.VaRAlpha <= 0 || cfg.VaRAlpha >= 1 {
		return Config{}, fmt.Errorf("%s must be within (0, 1), got %v", EnvVaRAlpha, cfg.VaRAlpha)
	}
	if cfg.Tolerance, err = getEnvFloat(EnvTolerance, d.Tolerance); err != nil {
		return Config{}, err
	}
	if cfg.Tolerance < 0 || math.IsNaN(cfg.Tolerance) {
		return Config{}, fmt.Errorf("%s must not be negative, got %v", EnvTolerance, cfg.Tolerance)
	}
	if s := os.Getenv(EnvAsOf); s != "" {
		if cfg.AsOf, err = loader.ParseDate(s); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvAsOf, err)
		}
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: invalid number %q", key, value)
	}
	return f, nil
}
