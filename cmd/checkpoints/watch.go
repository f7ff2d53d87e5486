package checkpoints

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Skryptex/SKX-EDIT/blockindex"
	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/metrics"
	"github.com/Skryptex/SKX-EDIT/syncer"
)

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <headers.json>",
		Short: "Periodically report verification progress of the highest known header",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			selector, err := a.selector()
			if err != nil {
				return err
			}
			checker, err := a.checker(selector)
			if err != nil {
				return err
			}
			idx, err := blockindex.Load(a.fs, args[0], a.conf.BlockIndexSize)
			if err != nil {
				return err
			}
			syncLogger, err := a.newLogger(SyncLogger, a.conf.Logging.SyncLoggerLevel)
			if err != nil {
				return err
			}
			reporter := syncer.NewReporter(idx, checker,
				checkpoint.NewEstimator(selector),
				syncer.WithLogger(syncLogger),
				syncer.WithConfig(a.conf.Sync),
			)

			ctx, cancel := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if a.configPath != "" {
				// reloads refresh the enforcement switch, see config.ViperFlag
				a.vip.WatchConfig()
			}

			eg, ctx := errgroup.WithContext(ctx)
			if a.conf.CollectMetrics {
				metricsLogger, err := a.newLogger(MetricsLogger, a.conf.Logging.MetricsLoggerLevel)
				if err != nil {
					return err
				}
				srv, err := metrics.NewServer(a.conf.MetricsAddress, metricsLogger)
				if err != nil {
					return err
				}
				eg.Go(func() error {
					return srv.Run(ctx)
				})
			}
			eg.Go(func() error {
				return reporter.Run(ctx)
			})
			a.logger.Info("watching verification progress",
				zap.String("network", selector.Active().Network()),
				zap.Int("headers", idx.Len()),
			)
			if err := eg.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "%.6f\n", reporter.Progress())
			return nil
		},
	}
}
