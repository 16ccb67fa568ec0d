package main

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`

	DBHost     string `mapstructure:"POSTGRES_HOST"`
	DBPort     string `mapstructure:"POSTGRES_PORT"`
	DBUser     string `mapstructure:"POSTGRES_USER"`
	DBPassword string `mapstructure:"POSTGRES_PASSWORD"`
	DBName     string `mapstructure:"POSTGRES_DB"`

	AccessLogFile  string   `mapstructure:"ACCESS_LOG_FILE"`
	TrustedOrigins []string `mapstructure:"TRUSTED_ORIGINS"`

	RateLimitRPS     float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int     `mapstructure:"RATE_LIMIT_BURST"`
	RateLimitEnabled bool    `mapstructure:"RATE_LIMIT_ENABLED"`
}

func setDefaults() {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", "5432")
	viper.SetDefault("POSTGRES_USER", "root")
	viper.SetDefault("POSTGRES_PASSWORD", "mypassword")
	viper.SetDefault("POSTGRES_DB", "mydb")
	viper.SetDefault("ACCESS_LOG_FILE", "log.txt")
	viper.SetDefault("TRUSTED_ORIGINS", "")
	viper.SetDefault("RATE_LIMIT_RPS", 25)
	viper.SetDefault("RATE_LIMIT_BURST", 50)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)
}

// loadConfig reads path as an env file when it exists and falls back to the
// defaults and process environment otherwise.
func loadConfig(path string) (*Config, error) {
	viper.Reset()
	setDefaults()
	viper.AutomaticEnv()

	viper.SetConfigFile(path)
	viper.SetConfigType("env")
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
