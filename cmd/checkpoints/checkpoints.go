// Package checkpoints implements the checkpoints command line tool.
package checkpoints

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/cmd"
	"github.com/Skryptex/SKX-EDIT/config"
	"github.com/Skryptex/SKX-EDIT/log"
)

// Logger names.
const (
	AppLogger        = "app"
	CheckpointLogger = "checkpoint"
	SyncLogger       = "sync"
	MetricsLogger    = "metrics"
)

type app struct {
	conf       config.Config
	configPath string
	vip        *viper.Viper
	fs         afero.Fs
	flag       checkpoint.Flag
	logger     *zap.Logger
}

// GetCommand returns the root command operating on the OS filesystem.
func GetCommand() *cobra.Command {
	return newCommand(afero.NewOsFs())
}

func newCommand(fs afero.Fs) *cobra.Command {
	a := &app{
		conf:   config.DefaultConfig(),
		fs:     fs,
		logger: log.NewNop(),
	}
	var configPath *string
	c := &cobra.Command{
		Use:           "checkpoints",
		Short:         "inspect block checkpoints and estimate verification progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return a.configure(c, *configPath)
		},
	}
	configPath = cmd.AddFlags(c.PersistentFlags(), &a.conf)

	c.AddCommand(
		a.listCmd(),
		a.checkCmd(),
		a.estimateCmd(),
		a.lastCmd(),
		a.exportCmd(),
		a.verifyCmd(),
		a.watchCmd(),
		versionCmd(),
	)
	return c
}

func (a *app) configure(c *cobra.Command, configPath string) error {
	// config file and preset are applied first, flags given on the command
	// line override both
	changed := map[string]string{}
	c.Flags().Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	a.configPath = configPath
	a.vip = viper.New()
	a.vip.SetFs(a.fs)
	if err := cmd.LoadConfig(&a.conf, a.conf.Preset, configPath, a.vip); err != nil {
		return err
	}
	for name, value := range changed {
		if err := c.Flags().Set(name, value); err != nil {
			return log.ErrBadFlags(fmt.Errorf("flag %s: %w", name, err))
		}
	}

	if f := c.Flags().Lookup("checkpoints"); f != nil {
		if err := a.vip.BindPFlag(config.CheckpointsEnabledKey, f); err != nil {
			return log.ErrBadFlags(err)
		}
	}
	a.flag = config.NewViperFlag(a.vip, a.conf.Checkpoints.Enabled)

	switch a.conf.Logging.Encoder {
	case config.JSONLogEncoder:
		log.JSONLog(true)
	case config.ConsoleLogEncoder:
		log.JSONLog(false)
	default:
		return log.ErrBadFlags(fmt.Errorf("unknown log encoder %q", a.conf.Logging.Encoder))
	}
	logger, err := a.newLogger(AppLogger, a.conf.Logging.AppLoggerLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) newLogger(name, level string) (*zap.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("%s logger: %w", name, err)
	}
	return log.NewWithLevel(name, lvl), nil
}

func (a *app) selector() (*checkpoint.Selector, error) {
	selector, err := checkpoint.NewSelector(a.conf.Checkpoints.Network)
	if err != nil {
		return nil, log.ErrBadFlags(err)
	}
	return selector, nil
}

func (a *app) checker(selector *checkpoint.Selector) (*checkpoint.Checker, error) {
	logger, err := a.newLogger(CheckpointLogger, a.conf.Logging.CheckpointLoggerLevel)
	if err != nil {
		return nil, err
	}
	return checkpoint.NewChecker(selector,
		checkpoint.WithLogger(logger),
		checkpoint.WithFlag(a.flag),
	), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Args:  cobra.NoArgs,
		Run: func(c *cobra.Command, args []string) {
			fmt.Fprint(c.OutOrStdout(), cmd.Version)
			if cmd.Commit != "" {
				fmt.Fprintf(c.OutOrStdout(), "+%s+%s", cmd.Commit, cmd.Branch)
			}
			fmt.Fprintln(c.OutOrStdout())
		},
	}
}
