package cliconfig

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/bft-labs/concordlog/internal/domain"
)

// Endpoint styles accepted by EndpointStyle.
const (
	StyleBrowser = "browser"
	StyleServer  = "server"
)

// Config holds CLI configuration for concordlog.
type Config struct {
	ConsoleType string
	APIKey      string

	EndpointHost  string
	EndpointPath  string
	EndpointStyle string

	ClientType string
	DeviceType string
	OS         string

	SessionID     string
	ProjectNumber string

	BatchMode     bool
	FlushInterval time.Duration
	HTTPTimeout   time.Duration
	Gzip          bool

	EventsFile string
	FromStart  bool

	LogLevel    string
	LogFile     string
	MetricsAddr string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		EndpointStyle: StyleBrowser,
		ClientType:    string(domain.ClientTypeJS),
		BatchMode:     true,
		FlushInterval: 10 * time.Second,
		HTTPTimeout:   15 * time.Second,
		LogLevel:      "info",
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.ConsoleType == "" {
		return fmt.Errorf("%w: console-type is required", domain.ErrInvalidConfig)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%w: api-key is required", domain.ErrInvalidConfig)
	}

	switch c.EndpointStyle {
	case "":
		c.EndpointStyle = StyleBrowser
	case StyleBrowser, StyleServer:
	default:
		return fmt.Errorf("%w: endpoint-style must be %q or %q, got %q",
			domain.ErrInvalidConfig, StyleBrowser, StyleServer, c.EndpointStyle)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", domain.ErrInvalidConfig)
	}

	if _, err := c.ClientInfo(); err != nil {
		return err
	}
	return nil
}

// ClientInfo builds the client description from ClientType, DeviceType
// and OS. A DESKTOP client without an OS reports the host's GOOS when
// it is one of the known systems.
func (c *Config) ClientInfo() (domain.ClientInfo, error) {
	if c.ClientType == "" {
		return domain.DefaultClientInfo(), nil
	}
	ct, err := domain.ParseClientType(c.ClientType)
	if err != nil {
		return domain.ClientInfo{}, err
	}

	info := domain.ClientInfo{ClientType: ct}
	switch ct {
	case domain.ClientTypeJS:
		if c.DeviceType != "" {
			dt, err := domain.ParseDeviceType(c.DeviceType)
			if err != nil {
				return domain.ClientInfo{}, err
			}
			info.JSClientInfo = &domain.JSClientInfo{DeviceType: dt}
		}
	case domain.ClientTypeDesktop:
		if c.OS != "" {
			osType, err := domain.ParseOsType(c.OS)
			if err != nil {
				return domain.ClientInfo{}, err
			}
			info.DesktopClientInfo = &domain.DesktopClientInfo{OS: osType}
		} else if osType, err := domain.ParseOsType(runtime.GOOS); err == nil {
			info.DesktopClientInfo = &domain.DesktopClientInfo{OS: osType}
		}
	}
	return info, nil
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.APIKey != "" {
		c.APIKey = "*****"
	}
	return c
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
