package config

import (
	"os"
	"time"
)

// Settings is the materialized portfolio configuration.
type Settings struct {
	DBPath            string
	DefaultPassword   string
	TokenSecret       []byte
	ClientDescriptor  string
	SessionTimeout    time.Duration
	HeartbeatInterval time.Duration
	PollInterval      time.Duration
	MaxLoginAttempts  int
	LockoutDuration   time.Duration
}

// Load installs the portfolio defaults and materializes Settings. Values are
// overridable via .env or the process environment.
func Load(app *Config) Settings {
	app.Add("portfolio", map[string]any{
		"db_path":            app.Env("PORTFOLIO_DB_PATH", "portfolio.db"),
		"default_password":   app.Env("PORTFOLIO_DEFAULT_PASSWORD", "eclipse-2024"),
		"token_secret":       app.Env("PORTFOLIO_TOKEN_SECRET", "0cc703726a512a2ba17e3b1fd6d89f3a"),
		"client_descriptor":  app.Env("PORTFOLIO_CLIENT_DESCRIPTOR", defaultClientDescriptor()),
		"session_timeout":    app.Env("PORTFOLIO_SESSION_TIMEOUT", "8h"),
		"heartbeat_interval": app.Env("PORTFOLIO_HEARTBEAT_INTERVAL", "5m"),
		"poll_interval":      app.Env("PORTFOLIO_POLL_INTERVAL", "1s"),
		"max_login_attempts": app.Env("PORTFOLIO_MAX_LOGIN_ATTEMPTS", 5),
		"lockout_duration":   app.Env("PORTFOLIO_LOCKOUT_DURATION", "15m"),
	})

	return Settings{
		DBPath:            app.GetString("portfolio.db_path"),
		DefaultPassword:   app.GetString("portfolio.default_password"),
		TokenSecret:       []byte(app.GetString("portfolio.token_secret")),
		ClientDescriptor:  app.GetString("portfolio.client_descriptor"),
		SessionTimeout:    app.GetDuration("portfolio.session_timeout", "8h"),
		HeartbeatInterval: app.GetDuration("portfolio.heartbeat_interval", "5m"),
		PollInterval:      app.GetDuration("portfolio.poll_interval", "1s"),
		MaxLoginAttempts:  app.GetInt("portfolio.max_login_attempts", 5),
		LockoutDuration:   app.GetDuration("portfolio.lockout_duration", "15m"),
	}
}

func defaultClientDescriptor() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "local"
	}
	return host + " (go-cli)"
}
