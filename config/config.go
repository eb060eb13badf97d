// Copyright 2026 The httpc Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/net/http/httpguts"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HTTPC"

// ErrInvalid is wrapped by every error returned from Config.Validate.
var ErrInvalid = errors.New("httpc/config: invalid configuration")

// Throttle configures the token bucket rate limiter.
type Throttle struct {
	RPS   int `mapstructure:"rps" validate:"gte=0"`
	Burst int `mapstructure:"burst" validate:"required_with=RPS,gte=0"`
}

// Config holds the settings from which a Client is built.
type Config struct {
	CookieStore     bool     `mapstructure:"cookie_store"`
	UserAgent       string   `mapstructure:"user_agent" validate:"omitempty,header_value"`
	RequestIDHeader string   `mapstructure:"request_id_header" validate:"omitempty,header_name"`
	Throttle        Throttle `mapstructure:"throttle"`
	LogLevel        string   `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Tracing         bool     `mapstructure:"tracing"`
}

var defaults = map[string]interface{}{
	"cookie_store":      false,
	"user_agent":        "",
	"request_id_header": "",
	"throttle.rps":      0,
	"throttle.burst":    0,
	"log_level":         "info",
	"tracing":           false,
}

// LoaderConfig holds the optional file locations used by Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets a config file to read. Any format supported by
// viper may be used; the format is taken from the file extension.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets a .env file to load into the environment before
// environment variables are read. Variables already set in the
// environment are not overridden.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads the configuration and validates it.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("httpc/config: reading %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			return nil, fmt.Errorf("httpc/config: loading %s: %w", lc.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("httpc/config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("header_name", func(fl validator.FieldLevel) bool {
			return httpguts.ValidHeaderFieldName(fl.Field().String())
		})
		_ = validate.RegisterValidation("header_value", func(fl validator.FieldLevel) bool {
			return httpguts.ValidHeaderFieldValue(fl.Field().String())
		})
	})
	return validate
}

// Validate checks every field of c. The returned error wraps
// ErrInvalid and lists each offending field.
func (c *Config) Validate() error {
	err := getValidator().Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}
