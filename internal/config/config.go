package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/cx-tal-miterani/flightselect/internal/models"
	"github.com/cx-tal-miterani/flightselect/internal/provider"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultPort         = "8080"
	DefaultTemporalHost = "localhost:7233"
)

// Config is the process configuration shared by the server and the worker
type Config struct {
	Port string

	AviationStack provider.Config

	TemporalHost      string
	TemporalTaskQueue string

	DatabaseURL string

	Location *time.Location

	LogLevel  slog.Level
	LogFormat string

	CORSOrigins []string
}

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_PORT", DefaultPort)
	v.SetDefault("AVIATION_STACK_API_KEY", "")
	v.SetDefault("AVIATION_STACK_BASE_URL", provider.DefaultBaseURL)
	v.SetDefault("AVIATION_STACK_TIMEOUT", provider.DefaultTimeout)
	v.SetDefault("AVIATION_STACK_RATE_PER_MINUTE", 0)
	v.SetDefault("TEMPORAL_HOST", "")
	v.SetDefault("TEMPORAL_TASK_QUEUE", models.DefaultTaskQueue)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("APP_TIMEZONE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("CORS_ORIGINS", "*")
}

func fromViper(v *viper.Viper) (*Config, error) {
	loc := time.Local
	if tz := v.GetString("APP_TIMEZONE"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
		}
		loc = l
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	format := strings.ToLower(v.GetString("LOG_FORMAT"))
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", format)
	}

	rate := v.GetInt("AVIATION_STACK_RATE_PER_MINUTE")
	if rate < 0 {
		return nil, fmt.Errorf("invalid AVIATION_STACK_RATE_PER_MINUTE %d", rate)
	}

	var origins []string
	for _, o := range strings.Split(v.GetString("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Port: v.GetString("API_PORT"),
		AviationStack: provider.Config{
			APIKey:            v.GetString("AVIATION_STACK_API_KEY"),
			BaseURL:           v.GetString("AVIATION_STACK_BASE_URL"),
			Timeout:           v.GetDuration("AVIATION_STACK_TIMEOUT"),
			RequestsPerMinute: rate,
		},
		TemporalHost:      v.GetString("TEMPORAL_HOST"),
		TemporalTaskQueue: v.GetString("TEMPORAL_TASK_QUEUE"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		Location:          loc,
		LogLevel:          level,
		LogFormat:         format,
		CORSOrigins:       origins,
	}, nil
}

// NewLogger builds the process logger.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
