package config

import (
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// CheckpointsEnabledKey is the viper key of the checkpoint enforcement switch.
const CheckpointsEnabledKey = "checkpoints.enabled"

// ViperFlag is the checkpoint switch backed by viper. The value is refreshed
// whenever viper reloads a watched config file, and Enabled never touches
// viper itself, so it is safe to call concurrently with a reload.
type ViperFlag struct {
	vip     *viper.Viper
	enabled atomic.Bool
}

// NewViperFlag uses enabled as the default when no other source sets the key.
// It must be called before vip.WatchConfig.
func NewViperFlag(vip *viper.Viper, enabled bool) *ViperFlag {
	vip.SetDefault(CheckpointsEnabledKey, enabled)
	f := &ViperFlag{vip: vip}
	f.enabled.Store(vip.GetBool(CheckpointsEnabledKey))
	vip.OnConfigChange(func(fsnotify.Event) {
		f.enabled.Store(f.vip.GetBool(CheckpointsEnabledKey))
	})
	return f
}

func (f *ViperFlag) Enabled() bool {
	return f.enabled.Load()
}
