package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rickgao/coinboard/internal/model"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release or test, got %q", c.Server.Mode)
	}

	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must be >= 0")
	}

	if c.Dashboard.FetchTimeout < 0 {
		return errors.New("dashboard.fetch_timeout must be >= 0")
	}
	if _, ok := model.ParseErrorPolicy(c.Dashboard.OnError); !ok {
		return fmt.Errorf("dashboard.on_error must be keep_rows or clear_rows, got %q", c.Dashboard.OnError)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	return nil
}

// ErrorPolicy returns the parsed dashboard.on_error value.
func (c *Config) ErrorPolicy() model.ErrorPolicy {
	p, _ := model.ParseErrorPolicy(c.Dashboard.OnError)
	return p
}
