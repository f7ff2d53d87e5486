package checkpoint

import (
	"embed"
	"errors"
	"fmt"
	"maps"
	"slices"
)

const (
	MainNetwork = "main"
	TestNetwork = "test"
)

var ErrUnknownNetwork = errors.New("unknown network")

//go:embed data/*.json
var dataFS embed.FS

// builtin registries, keyed by network name. Built once at init; invalid data
// aborts the process.
var builtin = map[string]*Registry{
	MainNetwork: mustLoadBuiltin(MainNetwork),
	TestNetwork: mustLoadBuiltin(TestNetwork),
}

func mustLoadBuiltin(network string) *Registry {
	data, err := dataFS.ReadFile("data/" + network + ".json")
	if err != nil {
		panic(fmt.Sprintf("read builtin checkpoints for %s: %v", network, err))
	}
	r, err := Decode(data)
	if err != nil {
		panic(fmt.Sprintf("builtin checkpoints for %s: %v", network, err))
	}
	if r.Network() != network {
		panic(fmt.Sprintf("builtin checkpoints for %s are labeled %s", network, r.Network()))
	}
	return r
}

// Networks returns the names of networks with builtin checkpoints.
func Networks() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Builtin returns the registry compiled into the binary for network.
func Builtin(network string) (*Registry, error) {
	r, ok := builtin[network]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
	return r, nil
}

// Selector holds the registry of the network the process runs on. It is
// resolved once at startup and never changes afterwards.
type Selector struct {
	registry *Registry
}

// NewSelector selects the builtin registry for network.
func NewSelector(network string) (*Selector, error) {
	r, err := Builtin(network)
	if err != nil {
		return nil, err
	}
	return &Selector{registry: r}, nil
}

// NewSelectorFromRegistry selects an explicitly constructed registry.
func NewSelectorFromRegistry(r *Registry) *Selector {
	if r == nil {
		panic("checkpoint: nil registry")
	}
	return &Selector{registry: r}
}

// Active returns the selected registry.
//
// The selector must be built with NewSelector or NewSelectorFromRegistry;
// calling Active on a zero or nil Selector panics.
func (s *Selector) Active() *Registry {
	if s == nil || s.registry == nil {
		panic("checkpoint: selector used before initialization")
	}
	return s.registry
}
