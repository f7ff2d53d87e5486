package checkpoint

import (
	"github.com/jonboulle/clockwork"

	"github.com/Skryptex/SKX-EDIT/common/types"
)

// SigcheckVerificationFactor is how many times more expensive a transaction
// after the last checkpoint is to verify than one before it. It can't be
// accurate for every system: reindexing from a fast disk with a slow CPU is
// closer to 20, downloading over a slow network with a fast CPU close to 1.
const SigcheckVerificationFactor = 5.0

const secondsPerDay = 86400.0

type EstimatorOpt func(*Estimator)

func WithClock(clock clockwork.Clock) EstimatorOpt {
	return func(e *Estimator) {
		e.clock = clock
	}
}

// Estimator guesses initial verification progress from transaction counts.
type Estimator struct {
	clock    clockwork.Clock
	selector *Selector
}

func NewEstimator(selector *Selector, opts ...EstimatorOpt) *Estimator {
	e := &Estimator{
		clock:    clockwork.NewRealClock(),
		selector: selector,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GuessVerificationProgress returns the fraction of verification work done at
// block. Work is 1 per transaction up to the last checkpoint and
// SigcheckVerificationFactor per transaction after it; the remaining work is
// extrapolated from the registry's transaction rate.
//
// A nil block is 0. The result is not clamped and may slightly exceed 1 when
// the extrapolation undershoots. If no work is estimated at all the result
// is 1: nothing is left to do.
func (e *Estimator) GuessVerificationProgress(block *types.BlockHeader) float64 {
	if block == nil {
		return 0.0
	}
	now := e.clock.Now().Unix()
	r := e.selector.Active()
	lastTxs := r.LastCheckpointTxs()

	var before, after float64
	if block.ChainTxCount <= lastTxs {
		cheapBefore := float64(block.ChainTxCount)
		cheapAfter := float64(lastTxs - block.ChainTxCount)
		expensiveAfter := float64(now-r.LastCheckpointTime()) / secondsPerDay * r.TxsPerDay()
		before = cheapBefore
		after = cheapAfter + expensiveAfter*SigcheckVerificationFactor
	} else {
		cheapBefore := float64(lastTxs)
		expensiveBefore := float64(block.ChainTxCount - lastTxs)
		expensiveAfter := float64(now-block.Time) / secondsPerDay * r.TxsPerDay()
		before = cheapBefore + expensiveBefore*SigcheckVerificationFactor
		after = expensiveAfter * SigcheckVerificationFactor
	}
	total := before + after
	// also reached when a future block time cancels out the work done
	if total == 0 {
		return 1.0
	}
	return before / total
}
