package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Runtime holds process settings read from the environment
type Runtime struct {
	TablesPath       string        `envconfig:"TABLES_PATH"`
	LogFormat        string        `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	Addr             string        `envconfig:"ADDR" default:":8080"`
	ReadTimeout      time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout     time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	BatchConcurrency int           `envconfig:"BATCH_CONCURRENCY" default:"4"`
}

// LoadRuntime reads FRENCHTAX_* environment variables
func LoadRuntime() (*Runtime, error) {
	var rt Runtime
	if err := envconfig.Process("frenchtax", &rt); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if rt.BatchConcurrency < 1 {
		return nil, fmt.Errorf("FRENCHTAX_BATCH_CONCURRENCY must be at least 1, got %d", rt.BatchConcurrency)
	}
	return &rt, nil
}
