package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrNoSource = errors.New(
	"error getting document source: one of SW_DATA_URL, SW_DATA_DB or SW_DATA_DIR must be specified",
)

// SourceKind identifies where the dashboard documents are read from.
type SourceKind string

const (
	SourceURL SourceKind = "url"
	SourceDB  SourceKind = "sqlite"
	SourceDir SourceKind = "dir"
)

type Config struct {
	Env     string // Env is the current environment: local, development, production.
	LogFile string // LogFile is an optional rotated log file, stdout only when empty.
	Source  Source
	HTTP    HTTP
	Tg      Telegram
}

type Source struct {
	Kind     SourceKind
	Location string        // Location is a base URL, a database path or a directory.
	Timeout  time.Duration // Timeout bounds loading of all three documents.
}

type HTTP struct {
	Addr string
	Mode string // Mode is the gin mode: debug, release, test.
}

type Telegram struct {
	Token   string        // Token is an unique telegram bot token, the bot is disabled when empty.
	Timeout time.Duration // Timeout is a poller timeout duration.
}

// MustLoad loads the configuration from an optional .env file and environment
// variables and returns a Config struct.
func MustLoad() *Config {
	// A missing .env is fine, the environment may already be populated.
	_ = godotenv.Load()

	// Automatically binds environment variables to config keys
	viper.SetEnvPrefix("SW")
	viper.AutomaticEnv()

	// optional args
	viper.SetDefault("ENV", "production")
	viper.SetDefault("FETCH_TIMEOUT", "15s")
	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("HTTP_MODE", "release")
	viper.SetDefault("TELEGRAM_TIMEOUT", "15s")

	src, ok := resolveSource()
	if !ok {
		panic(ErrNoSource)
	}
	src.Timeout = viper.GetDuration("FETCH_TIMEOUT")

	return &Config{
		Env:     viper.GetString("ENV"),
		LogFile: viper.GetString("LOG_FILE"),
		Source:  src,
		HTTP: HTTP{
			Addr: viper.GetString("HTTP_ADDR"),
			Mode: viper.GetString("HTTP_MODE"),
		},
		Tg: Telegram{
			Token:   viper.GetString("TELEGRAM_TOKEN"),
			Timeout: viper.GetDuration("TELEGRAM_TIMEOUT"),
		},
	}
}

// resolveSource picks the first configured source: URL, then database, then directory.
func resolveSource() (Source, bool) {
	candidates := []struct {
		key  string
		kind SourceKind
	}{
		{"DATA_URL", SourceURL},
		{"DATA_DB", SourceDB},
		{"DATA_DIR", SourceDir},
	}

	for _, c := range candidates {
		if v := viper.GetString(c.key); v != "" {
			return Source{Kind: c.kind, Location: v}, true
		}
	}

	return Source{}, false
}
