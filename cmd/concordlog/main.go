package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/concordlog/internal/cliconfig"
	"github.com/bft-labs/concordlog/pkg/log"
)

const helpDescription = `
Send console analytics events and survey responses to the Concord logging
endpoint.

Events are posted as JSON batches. Delivery is best effort: failed sends are
logged and dropped. Configure via file ($HOME/.concordlog/config.toml),
CONCORDLOG_* environment variables, or flags, in increasing precedence.
`

var exampleUsage = strings.TrimSpace(`
  concordlog event --console-type my-console --api-key <key> --type ui --name open
  concordlog survey --console-type my-console --api-key <key> response.yaml
  concordlog ship --config $HOME/.concordlog/config.toml --events-file /var/log/app/events.jsonl
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries the resolved configuration and logger into subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	logger  log.Logger
}

func main() {
	a := &app{cfg: cliconfig.DefaultConfig(), logger: log.NewZerologAdapter()}

	root := &cobra.Command{
		Use:           "concordlog",
		Short:         "Send console analytics events to the Concord logging endpoint",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || strings.HasPrefix(cmd.CommandPath(), "concordlog completion") {
				return nil
			}
			return a.loadConfig(cmd)
		},
	}

	a.bindFlags(root.PersistentFlags())

	root.AddCommand(
		newEventCmd(a),
		newSurveyCmd(a),
		newShipCmd(a),
	)

	if err := root.Execute(); err != nil {
		a.logger.Error("concordlog", log.Err(err))
		os.Exit(1)
	}
}

func (a *app) bindFlags(fs *pflag.FlagSet) {
	cfg := &a.cfg

	fs.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.concordlog/config.toml)")
	fs.StringVar(&cfg.ConsoleType, "console-type", cfg.ConsoleType, "console type stamped on every event")
	fs.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "API key for the logging endpoint")

	fs.StringVar(&cfg.EndpointStyle, "endpoint-style", cfg.EndpointStyle, "endpoint URL style: browser or server")
	fs.StringVar(&cfg.EndpointHost, "endpoint-host", cfg.EndpointHost, "endpoint hostname (override only for testing)")
	fs.StringVar(&cfg.EndpointPath, "endpoint-path", cfg.EndpointPath, "endpoint path (override only for testing)")
	for _, name := range []string{"endpoint-host", "endpoint-path"} {
		if err := fs.MarkHidden(name); err != nil {
			a.logger.Info("failed to hide flag", log.String("flag", name), log.Err(err))
		}
	}

	fs.StringVar(&cfg.ClientType, "client-type", cfg.ClientType, "client type: JS or DESKTOP")
	fs.StringVar(&cfg.DeviceType, "device-type", cfg.DeviceType, "JS device type: UNKNOWN, MOBILE, DESKTOP, TABLET, GOOGLE_HOME")
	fs.StringVar(&cfg.OS, "os", cfg.OS, "DESKTOP operating system: mac, windows, linux (default: detected)")

	fs.StringVar(&cfg.SessionID, "session-id", cfg.SessionID, "session id for events that carry none (default: random)")
	fs.StringVar(&cfg.ProjectNumber, "project-number", cfg.ProjectNumber, "project number for events that carry none")

	fs.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout")
	fs.BoolVar(&cfg.Gzip, "gzip", cfg.Gzip, "gzip request bodies")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write JSON logs to a rotating file instead of stderr")
}

// loadConfig applies file, environment and flag values, in that order of
// increasing precedence, then validates the result.
func (a *app) loadConfig(cmd *cobra.Command) error {
	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	logger, err := log.New(log.Options{Level: a.cfg.LogLevel, File: a.cfg.LogFile})
	if err != nil {
		return err
	}
	a.logger = logger

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger.Debug("configuration", log.Any("config", a.cfg.Redacted()))
	return nil
}
