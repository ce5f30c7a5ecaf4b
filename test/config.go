package test

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the tunable timings of the integration scenario so a slow
// CI machine can stretch them without touching the test.
type Config struct {
	BufferSize      int           `envconfig:"TEST_BUFFER_SIZE" default:"64"`
	SinkTimeout     time.Duration `envconfig:"TEST_SINK_TIMEOUT" default:"1s"`
	RestartInterval time.Duration `envconfig:"TEST_RESTART_INTERVAL" default:"200ms"`
	WaitTimeout     time.Duration `envconfig:"TEST_WAIT_TIMEOUT" default:"2s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
