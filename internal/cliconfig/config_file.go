package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	ConsoleType   string `toml:"console_type"`
	APIKey        string `toml:"api_key"`
	EndpointHost  string `toml:"endpoint_host"`
	EndpointPath  string `toml:"endpoint_path"`
	EndpointStyle string `toml:"endpoint_style"`
	ClientType    string `toml:"client_type"`
	DeviceType    string `toml:"device_type"`
	OS            string `toml:"os"`
	SessionID     string `toml:"session_id"`
	ProjectNumber string `toml:"project_number"`
	BatchMode     *bool  `toml:"batch_mode"`
	FlushInterval string `toml:"flush_interval"`
	HTTPTimeout   string `toml:"http_timeout"`
	Gzip          *bool  `toml:"gzip"`
	EventsFile    string `toml:"events_file"`
	FromStart     *bool  `toml:"from_start"`
	LogLevel      string `toml:"log_level"`
	LogFile       string `toml:"log_file"`
	MetricsAddr   string `toml:"metrics_addr"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.concordlog/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".concordlog", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("console-type", fc.ConsoleType, &cfg.ConsoleType)
	s.setString("api-key", fc.APIKey, &cfg.APIKey)
	s.setString("endpoint-host", fc.EndpointHost, &cfg.EndpointHost)
	s.setString("endpoint-path", fc.EndpointPath, &cfg.EndpointPath)
	s.setString("endpoint-style", fc.EndpointStyle, &cfg.EndpointStyle)
	s.setString("client-type", fc.ClientType, &cfg.ClientType)
	s.setString("device-type", fc.DeviceType, &cfg.DeviceType)
	s.setString("os", fc.OS, &cfg.OS)
	s.setString("session-id", fc.SessionID, &cfg.SessionID)
	s.setString("project-number", fc.ProjectNumber, &cfg.ProjectNumber)
	s.setString("events-file", fc.EventsFile, &cfg.EventsFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setString("metrics-addr", fc.MetricsAddr, &cfg.MetricsAddr)

	if err := s.setDuration("flush-interval", fc.FlushInterval, &cfg.FlushInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBool("batch", fc.BatchMode, &cfg.BatchMode)
	s.setBool("gzip", fc.Gzip, &cfg.Gzip)
	s.setBool("from-start", fc.FromStart, &cfg.FromStart)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
