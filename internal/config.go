package internal

import "time"

type Config struct {
	BufferSize      int           `env:"BUFFER_SIZE,required=true"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,required=true"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,required=true"`
	HealthInterval  time.Duration `env:"HEALTH_INTERVAL,required=true"`
	LimitMessages   *int          `env:"LIMIT_MESSAGES"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	Port           int    `env:"PORT,required=true"`

	// Empty RedisAddr selects the in-process transport.
	RedisAddr string `env:"REDIS_ADDR"`

	AssetSigningKey string        `env:"ASSET_SIGNING_KEY,required=true"`
	AssetBaseURL    string        `env:"ASSET_BASE_URL,required=true"`
	AssetURLTTL     time.Duration `env:"ASSET_URL_TTL,required=true"`
}
