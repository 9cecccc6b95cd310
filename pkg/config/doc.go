// Package config loads CLI configuration from environment variables. It
// wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the default
// .env file is read once per process, then the environment is parsed into a
// struct by `env` field tags.
//
//	type Config struct {
//	    LogLevel  string `env:"PROPKIT_LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"PROPKIT_LOG_FORMAT" envDefault:"text"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Parsing failures wrap ErrParsingConfig and are detectable with errors.Is.
package config
