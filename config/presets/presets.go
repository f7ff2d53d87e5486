package presets

import (
	"maps"
	"slices"

	"github.com/Skryptex/SKX-EDIT/config"
	"github.com/Skryptex/SKX-EDIT/log"
)

var presets = map[string]config.Config{}

func register(name string, conf config.Config) {
	if _, exist := presets[name]; exist {
		panic("preset " + name + " already registered")
	}
	conf.Preset = name
	presets[name] = conf
}

// Options returns the names of registered presets.
func Options() []string {
	return slices.Sorted(maps.Keys(presets))
}

// Get returns a copy of the preset registered under name.
func Get(name string) (config.Config, error) {
	conf, exist := presets[name]
	if !exist {
		return config.Config{}, log.ErrUnknownPreset(name, Options())
	}
	return conf, nil
}
