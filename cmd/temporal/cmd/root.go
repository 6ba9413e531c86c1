package cmd

import (
	"errors"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/temporal/core/config"
	mdwerror "github.com/msto63/temporal/core/error"
	mdwerrors "github.com/msto63/temporal/core/errors"
	"github.com/msto63/temporal/core/log"
	"github.com/msto63/temporal/utils/timex"
)

var (
	cfgFile    string
	zoneName   string
	nowFlag    string
	outputFlag string
	verbose    bool
)

// session is the state resolved once per invocation before a command runs.
type session struct {
	settings config.Settings
	logger   *log.Logger
	zone     *time.Location
	clock    timex.Clock
	timer    *log.Timer
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "temporal",
	Short: "Local date-time conversions in UTC",
	Long: `temporal normalizes instants, epoch milliseconds and zoned values
into zone-less UTC date-times and answers questions about them.

Date-times are written as 2019-10-01T05:05:05, "2019-10-01 05:05:05",
2019-10-01T05:05 or 2019-10-01. Instants carry an offset:
2019-10-01T07:05:05+02:00.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the CLI. The returned error has already been logged.
func Execute() error {
	current = nil
	err := rootCmd.Execute()
	if err != nil {
		logger := log.GetDefault().WithOutput(rootCmd.ErrOrStderr())
		if current != nil {
			logger = current.logger
		}
		logger.LogError(err)
	}
	if current != nil && current.timer != nil {
		current.timer.Stop()
	}
	return err
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitCode()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./temporal.toml or the user config dir)")
	rootCmd.PersistentFlags().StringVar(&zoneName, "zone", "", "fallback zone for values without one (overrides time.default_zone)")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "pin the clock to an RFC 3339 instant")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: text, json or plain")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputFlag != "" {
		cfg.Set(config.KeyOutputFormat, outputFlag)
	}

	settings, err := config.SettingsFrom(cfg)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd, settings)
	if err != nil {
		return err
	}
	log.SetDefault(logger)

	s := &session{settings: settings, logger: logger, clock: timex.SystemClock{}}
	current = s

	name := settings.DefaultZone
	if zoneName != "" {
		name = zoneName
	}
	if s.zone, err = timex.LoadLocation(name); err != nil {
		return err
	}

	if nowFlag != "" {
		pinned, err := timex.ParseInstant(nowFlag)
		if err != nil {
			return err
		}
		s.clock = timex.FixedClock(pinned)
	}

	logger.Debug("session ready", log.Fields{
		"config": cfg.FilePath(),
		"zone":   s.zone.String(),
		"output": settings.OutputFormat,
	})
	s.timer = logger.StartTimer(cmd.Name())
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		options := config.DefaultDiscoveryOptions()
		options.Defaults = config.Defaults()
		return config.Discover(options)
	}
	return config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "TEMPORAL",
		Defaults:  config.Defaults(),
	})
}

func newLogger(cmd *cobra.Command, settings config.Settings) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := log.ParseFormat(settings.LogFormat)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "temporal",
	}).WithCorrelationID(uuid.NewString()).WithField("command", cmd.Name())
	if verbose {
		logger = logger.WithLevel(log.LevelDebug)
	}
	return logger, nil
}

// parseDateTime reads a positional date-time. "-" stands for an absent
// value when allowAbsent is set.
func parseDateTime(value string, allowAbsent bool) (timex.LocalDateTime, error) {
	if allowAbsent && value == "-" {
		return timex.LocalDateTime{}, nil
	}
	return timex.Parse(value)
}

// parseInstantOrLocal reads an RFC 3339 instant, or a local date-time
// interpreted in the session zone.
func parseInstantOrLocal(value string) (time.Time, error) {
	if t, err := timex.ParseInstant(value); err == nil {
		return t, nil
	}
	dt, err := timex.Parse(value)
	if err != nil {
		return time.Time{}, mdwerrors.InvalidFormat(mdwerrors.ModuleCLI, "parseInstant", value, time.RFC3339+" or 2006-01-02T15:04:05")
	}
	return dt.In(current.zone), nil
}

func argError(cmd *cobra.Command, err error) error {
	var coreErr *mdwerror.Error
	if errors.As(err, &coreErr) {
		return coreErr.WithDetail("command", cmd.Name())
	}
	return err
}
