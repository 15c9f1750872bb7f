package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const Prefix = "TRANSFERS"

type API struct {
	BaseURL        string            `envconfig:"BASE_URL" default:"http://localhost:8080"`
	Timeout        time.Duration     `envconfig:"TIMEOUT" default:"30s"`
	Headers        map[string]string `envconfig:"HEADERS"`
	SnakeCaseQuery bool              `envconfig:"SNAKE_CASE_QUERY" default:"true"`
}

type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

type Sandbox struct {
	Addr string `envconfig:"ADDR" default:":8080"`
}

type App struct {
	API     API     `envconfig:"API"`
	Log     Log     `envconfig:"LOG"`
	Sandbox Sandbox `envconfig:"SANDBOX"`
}

// Load reads the first env file that exists, then the process environment.
// Variables already set in the environment win over file values.
func Load(logger *slog.Logger, envFiles ...string) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("env file not loaded", "path", path, "error", err)
			continue
		}
		logger.Debug("env file loaded", "path", path)
		break
	}

	var cfg App
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}

	logger.Debug("config loaded",
		"api_base_url", cfg.API.BaseURL,
		"api_timeout", cfg.API.Timeout,
		"api_headers", maskHeaders(cfg.API.Headers),
		"api_snake_case_query", cfg.API.SnakeCaseQuery,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
		"sandbox_addr", cfg.Sandbox.Addr,
	)

	return &cfg, nil
}

func maskHeaders(headers map[string]string) string {
	parts := make([]string, 0, len(headers))
	for k, v := range headers {
		parts = append(parts, k+":"+maskValue(v))
	}
	return strings.Join(parts, ",")
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
