package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for YAML input. Pointers distinguish "absent" from zero values
// so a partial file only overrides what it names.
type fileConfig struct {
	Port     *string `yaml:"port"`
	Provider *string `yaml:"provider"`
	Upstream struct {
		URL     *string        `yaml:"url"`
		Timeout *time.Duration `yaml:"timeout"`
	} `yaml:"upstream"`
	Metrics struct {
		Enabled      *bool   `yaml:"enabled"`
		Port         *string `yaml:"port"`
		OtlpEndpoint *string `yaml:"otlp_endpoint"`
		ServiceName  *string `yaml:"service_name"`
		OtlpInsecure *bool   `yaml:"otlp_insecure"`
	} `yaml:"metrics"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Log struct {
		Level  *string `yaml:"level"`
		Format *string `yaml:"format"`
	} `yaml:"log"`
}

// LoadFile reads defaults, then the YAML file at path, then environment overrides.
func LoadFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return applyEnv(fc.merge(Defaults())), nil
}

func (fc fileConfig) merge(cfg Config) Config {
	setString(&cfg.Port, fc.Port)
	setString(&cfg.Provider, fc.Provider)
	setString(&cfg.Upstream.URL, fc.Upstream.URL)
	if fc.Upstream.Timeout != nil && *fc.Upstream.Timeout > 0 {
		cfg.Upstream.Timeout = *fc.Upstream.Timeout
	}
	setBool(&cfg.Metrics.Enabled, fc.Metrics.Enabled)
	setString(&cfg.Metrics.Port, fc.Metrics.Port)
	setString(&cfg.Metrics.OtlpEndpoint, fc.Metrics.OtlpEndpoint)
	setString(&cfg.Metrics.ServiceName, fc.Metrics.ServiceName)
	setBool(&cfg.Metrics.OtlpInsecure, fc.Metrics.OtlpInsecure)
	if len(fc.CORS.AllowedOrigins) > 0 {
		cfg.CORS.AllowedOrigins = fc.CORS.AllowedOrigins
	}
	setString(&cfg.Log.Level, fc.Log.Level)
	setString(&cfg.Log.Format, fc.Log.Format)
	return cfg
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
