package checkpoint

import "github.com/Skryptex/SKX-EDIT/common/types"

//go:generate mockgen -typed -package=checkpoint -destination=./mocks.go -source=./interface.go

// Flag reports whether checkpoint enforcement is enabled. It is consulted on
// every call, implementations must not cache a stale value.
type Flag interface {
	Enabled() bool
}

// BlockIndex resolves block ids to caller-owned block nodes.
type BlockIndex[N any] interface {
	Get(id types.Hash32) (N, bool)
}
