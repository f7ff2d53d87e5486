package syncer

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./reporter.go

// chainTip returns the header of the best known block, if any.
type chainTip interface {
	Tip() (*types.BlockHeader, bool)
}

type Config struct {
	// ReportInterval is how often progress is recomputed and logged.
	ReportInterval time.Duration `mapstructure:"report-interval"`
}

func DefaultConfig() Config {
	return Config{
		ReportInterval: 10 * time.Second,
	}
}

type Opt func(*Reporter)

func WithLogger(logger *zap.Logger) Opt {
	return func(r *Reporter) {
		r.logger = logger
	}
}

func WithClock(clock clockwork.Clock) Opt {
	return func(r *Reporter) {
		r.clock = clock
	}
}

func WithConfig(cfg Config) Opt {
	return func(r *Reporter) {
		r.cfg = cfg
	}
}

// Reporter periodically estimates verification progress of the chain tip.
type Reporter struct {
	logger    *zap.Logger
	cfg       Config
	clock     clockwork.Clock
	tip       chainTip
	checker   *checkpoint.Checker
	estimator *checkpoint.Estimator

	// float64 bits of the last reported progress
	progress atomic.Uint64
}

func NewReporter(
	tip chainTip,
	checker *checkpoint.Checker,
	estimator *checkpoint.Estimator,
	opts ...Opt,
) *Reporter {
	r := &Reporter{
		logger:    zap.NewNop(),
		cfg:       DefaultConfig(),
		clock:     clockwork.NewRealClock(),
		tip:       tip,
		checker:   checker,
		estimator: estimator,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Progress returns the value computed by the last Report.
func (r *Reporter) Progress() float64 {
	return math.Float64frombits(r.progress.Load())
}

// Report computes progress at the current tip, records it and returns it.
func (r *Reporter) Report() float64 {
	start := r.clock.Now()
	defer func() { reportDuration.Observe(r.clock.Since(start).Seconds()) }()

	header, ok := r.tip.Tip()
	if !ok {
		header = nil
	}
	progress := r.estimator.GuessVerificationProgress(header)
	r.progress.Store(math.Float64bits(progress))
	verificationProgress.Set(progress)

	total := r.checker.TotalBlocksEstimate()
	totalBlocksEstimate.Set(float64(total))

	if header == nil {
		reportNoTip.Inc()
		r.logger.Debug("no chain tip to estimate progress for")
		return progress
	}
	reportOK.Inc()
	tipHeight.Set(float64(header.Height))
	r.logger.Info("verification progress",
		zap.Object("tip", header),
		zap.Float64("progress", progress),
		zap.Uint64("total_blocks_estimate", total),
	)
	return progress
}

// Run reports once immediately and then every ReportInterval until ctx is
// canceled.
func (r *Reporter) Run(ctx context.Context) error {
	r.logger.Debug("starting progress reporter", zap.Duration("interval", r.cfg.ReportInterval))
	defer r.logger.Debug("progress reporter terminated")
	r.Report()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.clock.After(r.cfg.ReportInterval):
			r.Report()
		}
	}
}
