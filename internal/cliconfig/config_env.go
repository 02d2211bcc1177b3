package cliconfig

import "os"

// EnvPrefix prefixes every environment variable read by ApplyEnvConfig.
const EnvPrefix = "CONCORDLOG_"

// ApplyEnvConfig applies configuration from environment variables (CONCORDLOG_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)
	env := func(name string) string { return os.Getenv(EnvPrefix + name) }

	s.setString("console-type", env("CONSOLE_TYPE"), &cfg.ConsoleType)
	s.setString("api-key", env("API_KEY"), &cfg.APIKey)
	s.setString("endpoint-host", env("ENDPOINT_HOST"), &cfg.EndpointHost)
	s.setString("endpoint-path", env("ENDPOINT_PATH"), &cfg.EndpointPath)
	s.setString("endpoint-style", env("ENDPOINT_STYLE"), &cfg.EndpointStyle)
	s.setString("client-type", env("CLIENT_TYPE"), &cfg.ClientType)
	s.setString("device-type", env("DEVICE_TYPE"), &cfg.DeviceType)
	s.setString("os", env("OS"), &cfg.OS)
	s.setString("session-id", env("SESSION_ID"), &cfg.SessionID)
	s.setString("project-number", env("PROJECT_NUMBER"), &cfg.ProjectNumber)
	s.setString("events-file", env("EVENTS_FILE"), &cfg.EventsFile)
	s.setString("log-level", env("LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-file", env("LOG_FILE"), &cfg.LogFile)
	s.setString("metrics-addr", env("METRICS_ADDR"), &cfg.MetricsAddr)

	if err := s.setDuration("flush-interval", env("FLUSH_INTERVAL"), &cfg.FlushInterval); err != nil {
		return err
	}
	if err := s.setDuration("timeout", env("HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	if err := s.setBoolFromString("batch", env("BATCH_MODE"), &cfg.BatchMode); err != nil {
		return err
	}
	if err := s.setBoolFromString("gzip", env("GZIP"), &cfg.Gzip); err != nil {
		return err
	}
	if err := s.setBoolFromString("from-start", env("FROM_START"), &cfg.FromStart); err != nil {
		return err
	}

	return nil
}
