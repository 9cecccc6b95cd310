package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates a configuration struct from environment variables using
// `env` field tags. The default .env file, if present in the working
// directory, is loaded once per process before the first parse.
//
//	type Config struct {
//	    LogLevel  string `env:"PROPKIT_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"PROPKIT_LOG_FORMAT" envDefault:"text"`
//	}
func Load[T any]() (T, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is Load that panics on failure, for configuration the process
// cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}
