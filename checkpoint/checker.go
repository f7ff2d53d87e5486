package checkpoint

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Skryptex/SKX-EDIT/common/types"
)

// ErrCheckpointMismatch is returned by Verify when a block contradicts a checkpoint.
var ErrCheckpointMismatch = errors.New("block does not match checkpoint")

type Opt func(*Checker)

func WithLogger(logger *zap.Logger) Opt {
	return func(c *Checker) {
		c.logger = logger
	}
}

// WithFlag sets the source of the enabled switch. Defaults to always enabled.
func WithFlag(flag Flag) Opt {
	return func(c *Checker) {
		c.flag = flag
	}
}

// Checker validates blocks against the active registry.
type Checker struct {
	logger   *zap.Logger
	flag     Flag
	selector *Selector
}

func NewChecker(selector *Selector, opts ...Opt) *Checker {
	c := &Checker{
		logger:   zap.NewNop(),
		flag:     StaticFlag(true),
		selector: selector,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enabled reports whether checkpoints are enforced right now.
func (c *Checker) Enabled() bool {
	return c.flag.Enabled()
}

// CheckBlock returns false iff a checkpoint exists at height and its id differs
// from id. Callers must reject a chain containing such a block.
func (c *Checker) CheckBlock(height uint64, id types.Hash32) bool {
	if !c.Enabled() {
		checkDisabled.Inc()
		return true
	}
	expected, ok := c.selector.Active().Lookup(height)
	if !ok {
		checkUnconstrained.Inc()
		return true
	}
	if expected != id {
		checkMismatch.Inc()
		c.logger.Warn("block contradicts checkpoint",
			zap.Uint64("height", height),
			zap.Stringer("expected", expected),
			zap.Stringer("got", id),
		)
		return false
	}
	checkOK.Inc()
	return true
}

// Verify is CheckBlock for callers that propagate errors.
func (c *Checker) Verify(header *types.BlockHeader) error {
	if c.CheckBlock(header.Height, header.ID) {
		return nil
	}
	expected, _ := c.selector.Active().Lookup(header.Height)
	return fmt.Errorf("%w: block %s at height %d, checkpoint %s",
		ErrCheckpointMismatch, header.ID, header.Height, expected)
}

// TotalBlocksEstimate returns the height of the highest checkpoint, or 0 if
// checkpoints are disabled or none exist. Only meant as a UI hint.
func (c *Checker) TotalBlocksEstimate() uint64 {
	if !c.Enabled() {
		return 0
	}
	highest, ok := c.selector.Active().Highest()
	if !ok {
		return 0
	}
	return highest.Height
}

// LastReached returns the node of the highest checkpoint present in index.
// Entries are visited from the highest height down, so the first hit is the
// answer. The index is only read.
func LastReached[N any](c *Checker, index BlockIndex[N]) (N, bool) {
	var none N
	if !c.Enabled() {
		return none, false
	}
	entries := c.selector.Active().entries
	for i := len(entries) - 1; i >= 0; i-- {
		if node, ok := index.Get(entries[i].ID); ok {
			return node, true
		}
	}
	return none, false
}
