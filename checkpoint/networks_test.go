package checkpoint_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/common/types"
)

func TestBuiltin(t *testing.T) {
	require.Equal(t, []string{checkpoint.MainNetwork, checkpoint.TestNetwork}, checkpoint.Networks())

	main, err := checkpoint.Builtin(checkpoint.MainNetwork)
	require.NoError(t, err)
	require.Equal(t, 10, main.Len())
	highest, ok := main.Highest()
	require.True(t, ok)
	require.Equal(t, uint64(5000), highest.Height)
	require.Equal(t,
		types.MustHexToHash32("0xe3ab9fc546bd6e694cba091d089c0797565c26b25463a6653b2a3cbfae4b698c"),
		highest.ID,
	)
	genesis, ok := main.Lookup(0)
	require.True(t, ok)
	require.Equal(t,
		types.MustHexToHash32("0xae1717d30616a6d18e0c87d7a6a3ff17bc8b85147aef8bf60bf0f7177a5bc097"),
		genesis,
	)

	test, err := checkpoint.Builtin(checkpoint.TestNetwork)
	require.NoError(t, err)
	require.Equal(t, checkpoint.Calibration{}, test.Calibration())
	require.Equal(t, main.Entries(), test.Entries())
}

func TestSelector(t *testing.T) {
	t.Run("unknown network", func(t *testing.T) {
		s, err := checkpoint.NewSelector("regtest")
		require.ErrorIs(t, err, checkpoint.ErrUnknownNetwork)
		require.Nil(t, s)
	})
	t.Run("builtin", func(t *testing.T) {
		s, err := checkpoint.NewSelector(checkpoint.TestNetwork)
		require.NoError(t, err)
		require.Equal(t, checkpoint.TestNetwork, s.Active().Network())
	})
	t.Run("explicit registry", func(t *testing.T) {
		r := checkpoint.MustNewRegistry("unit", nil, checkpoint.Calibration{})
		require.Same(t, r, checkpoint.NewSelectorFromRegistry(r).Active())
	})
	t.Run("uninitialized", func(t *testing.T) {
		require.Panics(t, func() { (&checkpoint.Selector{}).Active() })
		var s *checkpoint.Selector
		require.Panics(t, func() { s.Active() })
		require.Panics(t, func() { checkpoint.NewSelectorFromRegistry(nil) })
	})
}
