package blockindex

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/Skryptex/SKX-EDIT/common/types"
)

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	const genesis = "0xae1717d30616a6d18e0c87d7a6a3ff17bc8b85147aef8bf60bf0f7177a5bc097"
	require.NoError(t, afero.WriteFile(fs, "headers.json", []byte(`[
  {"height": 0, "id": "`+genesis+`", "chainTx": 1, "time": 1600000000},
  {"height": 1, "id": "0x0100000000000000000000000000000000000000000000000000000000000000", "chainTx": 3, "time": 1600000060}
]`), 0o600))

	idx, err := Load(fs, "headers.json", 10)
	require.NoError(t, err)
	require.Equal(t, 2, idx.Len())

	header, ok := idx.Get(types.MustHexToHash32(genesis))
	require.True(t, ok)
	require.Equal(t, uint64(1), header.ChainTxCount)

	tip, ok := idx.Tip()
	require.True(t, ok)
	require.Equal(t, uint64(1), tip.Height)
	require.Equal(t, int64(1_600_000_060), tip.Time)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := Load(fs, "missing.json", 10)
	require.ErrorContains(t, err, "missing.json")

	for name, content := range map[string]string{
		"object.json": `{"height": 1}`,
		"badid.json":  `[{"height": 1, "id": "0x01"}]`,
		"null.json":   `[null]`,
	} {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o600))
		_, err := Load(fs, name, 10)
		require.ErrorContains(t, err, name)
	}
}
