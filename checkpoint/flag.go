package checkpoint

import (
	"github.com/Skryptex/SKX-EDIT/common/types"
)

// StaticFlag is a Flag with a fixed value.
type StaticFlag bool

func (f StaticFlag) Enabled() bool {
	return bool(f)
}

// MapIndex adapts a plain map to BlockIndex.
type MapIndex[N any] map[types.Hash32]N

func (m MapIndex[N]) Get(id types.Hash32) (N, bool) {
	n, ok := m[id]
	return n, ok
}

// Config is the checkpoints section of the node configuration.
type Config struct {
	// Enabled turns checkpoint enforcement on. When off every block passes the
	// check and no checkpoint is reported as reached.
	Enabled bool `mapstructure:"enabled"`
	// Network selects the builtin checkpoint data set.
	Network string `mapstructure:"network"`
}

func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Network: MainNetwork,
	}
}
