package server

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/zephyrtronium/scicalc"
	"gopkg.in/yaml.v2"
)

// Config is the server's configuration.
type Config struct {
	ListenAddress string `yaml:"address,omitempty"`
	DebugMode     bool   `yaml:"debug-mode,omitempty"`

	// Logging names a profile in LoggingOptions, which maps logger names
	// to levels.
	Logging        string                       `yaml:"logging,omitempty"`
	LoggingOptions map[string]map[string]string `yaml:"logging-options,omitempty"`

	ShutdownTimeout string `yaml:"shutdown-timeout,omitempty"`

	// HistoryLimit is the number of history entries kept per session.
	// Zero means no limit.
	HistoryLimit int `yaml:"history-limit,omitempty"`

	// evaluation defaults
	Degrees         bool `yaml:"degrees,omitempty"`
	RightAssocPow   bool `yaml:"right-assoc-pow,omitempty"`
	LenientBrackets bool `yaml:"lenient-brackets,omitempty"`
}

// default configuration values
const (
	DefaultListenAddress   = ":8765"
	DefaultShutdownTimeout = "5s"
	DefaultHistoryLimit    = 100
)

// ParseConfig reads server configuration from YML file. An empty file name
// is ignored.
func (s *Server) ParseConfig(fileName string) error {
	if len(fileName) == 0 {
		return nil // OK
	}

	buf, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("failed to read configuration from %q: %s", fileName, err)
	}

	return s.parseConfigData(buf, fileName)
}

func (s *Server) parseConfigData(buf []byte, fileName string) error {
	if err := yaml.Unmarshal(buf, &s.Config); err != nil {
		return fmt.Errorf("failed to parse configuration from %q: %s", fileName, err)
	}
	return nil // OK
}

// get graceful shutdown timeout
func (cfg *Config) getShutdownTimeout() (time.Duration, error) {
	if len(cfg.ShutdownTimeout) == 0 {
		return time.ParseDuration(DefaultShutdownTimeout)
	}
	d, err := time.ParseDuration(cfg.ShutdownTimeout)
	if err != nil {
		return 0, fmt.Errorf("failed to parse shutdown timeout: %s", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("shutdown timeout %s is negative", d)
	}
	return d, nil
}

// get evaluation options
func (cfg *Config) options() []scicalc.Option {
	var opts []scicalc.Option
	if cfg.RightAssocPow {
		opts = append(opts, scicalc.RightAssociativePow())
	}
	if cfg.LenientBrackets {
		opts = append(opts, scicalc.LenientBrackets())
	}
	return opts
}
