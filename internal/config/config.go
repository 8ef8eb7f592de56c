package config

import (
	"time"
)

type (
	Config struct {
		App                App      `json:"app" mapstructure:"app"`
		Postgres           Postgres `json:"postgres" mapstructure:"postgres"`
		Redis              Redis    `json:"redis" mapstructure:"redis"`
		NewRelicLicenseKey string   `json:"new_relic_license_key" mapstructure:"new_relic_license_key"`

		Matching           MatchingConfig           `json:"matching" mapstructure:"matching"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff" mapstructure:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env" mapstructure:"env"`
		HTTPPort        int           `json:"http_port" mapstructure:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout" mapstructure:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout" mapstructure:"graceful_timeout"`
		Name            string        `json:"name" mapstructure:"name"`
		LogLevel        string        `json:"log_level" mapstructure:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write" mapstructure:"write"`
		Read  Database `json:"read" mapstructure:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host" mapstructure:"db_host"`
		DbPort            string `json:"db_port" mapstructure:"db_port"`
		DbUser            string `json:"db_user" mapstructure:"db_user"`
		DbPass            string `json:"db_pass" mapstructure:"db_pass"`
		DbName            string `json:"db_name" mapstructure:"db_name"`
		DbSchema          string `json:"db_schema" mapstructure:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections" mapstructure:"max_open_connections"`
		MaxIdleConnection int    `json:"maxIdleConnections" mapstructure:"max_idle_connections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime" mapstructure:"conn_max_lifetime"`
	}

	Redis struct {
		Host     string `json:"host" mapstructure:"host"`
		Port     string `json:"port" mapstructure:"port"`
		Password string `json:"password" mapstructure:"password"`
		Db       int    `json:"db" mapstructure:"db"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries" mapstructure:"max_retries"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time" mapstructure:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier" mapstructure:"backoff_multiplier"`
	}

	// MatchingConfig tunes the candidate matcher and the auto-match batch
	// job. Zero values fall back to the engine defaults.
	MatchingConfig struct {
		// MinConfidence is the auto-match acceptance floor. Default 0.95.
		MinConfidence float64 `json:"min_confidence" mapstructure:"min_confidence"`

		// SuggestionLimit caps the candidate list. Default 20.
		SuggestionLimit int `json:"suggestion_limit" mapstructure:"suggestion_limit"`

		// JobConcurrency bounds parallel facilities in the batch job. Default 4.
		JobConcurrency int `json:"job_concurrency" mapstructure:"job_concurrency"`
	}
)
