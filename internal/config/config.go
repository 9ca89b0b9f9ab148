package config

import (
	"github.com/spf13/viper"
)

type APIConfig struct {
	// Domain is the suffix of every tenant base URL: https://{schema}.{domain}.
	Domain         string `mapstructure:"domain"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

type TenantConfig struct {
	Schema       string `mapstructure:"schema"`
	AccessToken  string `mapstructure:"accessToken"`
	RefreshToken string `mapstructure:"refreshToken"`
}

type CacheConfig struct {
	// Path of the local sqlite shadow file. Empty disables shadow persistence.
	Path string `mapstructure:"path"`
}

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Tenant TenantConfig `mapstructure:"tenant"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

// Load reads config.yaml from path and overlays environment variables. A
// missing file is fine; env-only configurations are common in CI.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	v.BindEnv("api.domain", "FASTRA_DOMAIN")
	v.BindEnv("api.timeoutSeconds", "FASTRA_TIMEOUT_SECONDS")
	v.BindEnv("tenant.schema", "FASTRA_TENANT_SCHEMA")
	v.BindEnv("tenant.accessToken", "FASTRA_ACCESS_TOKEN")
	v.BindEnv("tenant.refreshToken", "FASTRA_REFRESH_TOKEN")
	v.BindEnv("cache.path", "FASTRA_CACHE_PATH")

	v.SetDefault("api.domain", "fastrasuites.com")
	v.SetDefault("api.timeoutSeconds", 30)
	v.SetDefault("cache.path", "procure-cache.db")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
