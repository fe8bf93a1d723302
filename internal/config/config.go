package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Report  Report
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"pacp-coder"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type HTTP struct {
	ListenAddress   string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxUploadBytes  int64         `env:"HTTP_MAX_UPLOAD_BYTES" envDefault:"33554432"`
	LogFieldMaxLen  int           `env:"HTTP_LOG_FIELD_MAX_LEN" envDefault:"2048"`
}

type Probe struct {
	ListenAddress string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	ListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":9090"`
}

// Report controls the lifetime of built reports and the operator
// overlay applied on top of the default exclusion set.
type Report struct {
	TTL           time.Duration `env:"REPORT_TTL" envDefault:"1h"`
	StatsInterval time.Duration `env:"REPORT_STATS_INTERVAL" envDefault:"1m"`
	ExcludeAdd    string        `env:"REPORT_EXCLUDE_ADD"`
	ExcludeRemove string        `env:"REPORT_EXCLUDE_REMOVE"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
