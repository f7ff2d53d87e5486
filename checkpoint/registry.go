package checkpoint

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/Skryptex/SKX-EDIT/common/types"
)

var (
	ErrDuplicateHeight    = errors.New("duplicate checkpoint height")
	ErrUnsortedHeights    = errors.New("checkpoint heights are not ascending")
	ErrInvalidCalibration = errors.New("invalid calibration")
)

// Entry is a manually vetted block at a given height.
type Entry struct {
	Height uint64       `json:"height"`
	ID     types.Hash32 `json:"id"`
}

// Calibration describes the last checkpointed block and the expected rate of
// transactions after it. All fields should describe the block of the highest
// entry; nothing verifies that, data authors keep it consistent.
type Calibration struct {
	// LastCheckpointTime is the unix timestamp (seconds) of the last checkpoint.
	LastCheckpointTime int64 `json:"lastCheckpointTime"`
	// LastCheckpointTxs is the cumulative transaction count at the last checkpoint.
	LastCheckpointTxs uint64 `json:"lastCheckpointTxs"`
	// TxsPerDay is the estimated number of transactions per day after the last checkpoint.
	TxsPerDay float64 `json:"txsPerDay"`
}

// Registry is an immutable, ascending table of checkpoints for one network.
type Registry struct {
	network     string
	entries     []Entry
	calibration Calibration
}

// NewRegistry copies entries and validates that heights are unique and ascending.
func NewRegistry(network string, entries []Entry, calibration Calibration) (*Registry, error) {
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1].Height, entries[i].Height
		switch {
		case cur == prev:
			return nil, fmt.Errorf("%w: %d", ErrDuplicateHeight, cur)
		case cur < prev:
			return nil, fmt.Errorf("%w: %d after %d", ErrUnsortedHeights, cur, prev)
		}
	}
	if math.IsNaN(calibration.TxsPerDay) || math.IsInf(calibration.TxsPerDay, 0) || calibration.TxsPerDay < 0 {
		return nil, fmt.Errorf("%w: txs per day %v", ErrInvalidCalibration, calibration.TxsPerDay)
	}
	return &Registry{
		network:     network,
		entries:     slices.Clone(entries),
		calibration: calibration,
	}, nil
}

// MustNewRegistry is like NewRegistry but panics on invalid data.
func MustNewRegistry(network string, entries []Entry, calibration Calibration) *Registry {
	r, err := NewRegistry(network, entries, calibration)
	if err != nil {
		panic(fmt.Sprintf("checkpoints for %s: %v", network, err))
	}
	return r
}

// Network returns the name of the network the registry belongs to.
func (r *Registry) Network() string {
	return r.network
}

// Entries returns a copy of the checkpoints sorted by ascending height.
func (r *Registry) Entries() []Entry {
	return slices.Clone(r.entries)
}

// Len returns the number of checkpoints.
func (r *Registry) Len() int {
	return len(r.entries)
}

func (r *Registry) Calibration() Calibration {
	return r.calibration
}

func (r *Registry) LastCheckpointTime() int64 {
	return r.calibration.LastCheckpointTime
}

func (r *Registry) LastCheckpointTxs() uint64 {
	return r.calibration.LastCheckpointTxs
}

func (r *Registry) TxsPerDay() float64 {
	return r.calibration.TxsPerDay
}

// Lookup returns the checkpointed id at height, if any.
func (r *Registry) Lookup(height uint64) (types.Hash32, bool) {
	i, found := slices.BinarySearchFunc(r.entries, height, func(e Entry, h uint64) int {
		return cmp.Compare(e.Height, h)
	})
	if !found {
		return types.EmptyHash32, false
	}
	return r.entries[i].ID, true
}

// Highest returns the checkpoint with the largest height.
func (r *Registry) Highest() (Entry, bool) {
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}
