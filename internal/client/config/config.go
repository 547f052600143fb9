package config

import "time"

// Config holds runtime settings for the BlogSpace CLI.
//
// Fields:
//   - APIBaseURL: base address of the remote API; every request target is
//     derived from it, there is no per-page host.
//   - TokenFile: path of the persisted credential token file.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	APIBaseURL     string
	TokenFile      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.TokenFile = "session.json"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
