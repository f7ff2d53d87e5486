package presets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/log"
)

func TestPresets(t *testing.T) {
	require.Equal(t, checkpoint.Networks(), Options())
	for _, name := range Options() {
		t.Run(name, func(t *testing.T) {
			conf, err := Get(name)
			require.NoError(t, err)
			require.Equal(t, name, conf.Preset)
			require.Equal(t, name, conf.Checkpoints.Network)
			require.True(t, conf.Checkpoints.Enabled)

			_, err = checkpoint.NewSelector(conf.Checkpoints.Network)
			require.NoError(t, err)
		})
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := Get("regtest")
	var fatal *log.FatalError
	require.ErrorAs(t, err, &fatal)
	require.Contains(t, err.Error(), "regtest")
}
