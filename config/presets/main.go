package presets

import (
	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/config"
)

func init() {
	register(checkpoint.MainNetwork, mainnet())
}

func mainnet() config.Config {
	conf := config.DefaultConfig()
	conf.Checkpoints.Enabled = true
	conf.Checkpoints.Network = checkpoint.MainNetwork
	return conf
}
