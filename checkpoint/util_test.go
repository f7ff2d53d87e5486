package checkpoint_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
)

const validFile = `{
  "version": "https://skryptex.org/checkpoints.schema.json.1.0",
  "network": "unit",
  "lastCheckpointTime": 1600000000,
  "lastCheckpointTxs": 100,
  "txsPerDay": 50,
  "checkpoints": [
    {"height": 0, "id": "0xae1717d30616a6d18e0c87d7a6a3ff17bc8b85147aef8bf60bf0f7177a5bc097"},
    {"height": 10, "id": "0x5136b7b1c97bb8c8e35d8b2d9d69fea0f1b9dc35e99656ba9e28dec0700978f9"}
  ]
}`

func TestValidateSchema(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		data  string
		valid bool
	}{
		{desc: "valid", data: validFile, valid: true},
		{desc: "not json", data: "{"},
		{
			desc: "wrong version",
			data: strings.Replace(validFile, "schema.json.1.0", "schema.json.0.1", 1),
		},
		{
			desc: "missing calibration",
			data: strings.Replace(validFile, `"txsPerDay": 50,`, "", 1),
		},
		{
			desc: "negative rate",
			data: strings.Replace(validFile, `"txsPerDay": 50`, `"txsPerDay": -50`, 1),
		},
		{
			desc: "short id",
			data: strings.Replace(validFile, "c097", "c0", 1),
		},
		{
			desc: "unknown field",
			data: strings.Replace(validFile, `"network": "unit",`, `"network": "unit", "extra": 1,`, 1),
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			err := checkpoint.ValidateSchema([]byte(tc.data))
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	r, err := checkpoint.Decode([]byte(validFile))
	require.NoError(t, err)
	require.Equal(t, "unit", r.Network())
	require.Equal(t, 2, r.Len())
	require.Equal(t, checkpoint.Calibration{
		LastCheckpointTime: 1_600_000_000,
		LastCheckpointTxs:  100,
		TxsPerDay:          50,
	}, r.Calibration())

	// schema accepts it, registry invariants don't
	dup := strings.Replace(validFile, `"height": 10`, `"height": 0`, 1)
	_, err = checkpoint.Decode([]byte(dup))
	require.ErrorIs(t, err, checkpoint.ErrDuplicateHeight)
}

func TestExportLoad(t *testing.T) {
	for _, network := range checkpoint.Networks() {
		t.Run(network, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := filepath.Join("data", "nested", network+".json")
			r, err := checkpoint.Builtin(network)
			require.NoError(t, err)

			require.NoError(t, checkpoint.Export(fs, path, r))
			loaded, err := checkpoint.LoadFile(fs, path)
			require.NoError(t, err)
			require.Equal(t, r.Network(), loaded.Network())
			require.Equal(t, r.Calibration(), loaded.Calibration())
			if diff := cmp.Diff(r.Entries(), loaded.Entries()); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}

			files, err := afero.ReadDir(fs, filepath.Dir(path))
			require.NoError(t, err)
			require.Len(t, files, 1, "temporary file left behind")
		})
	}
}

func TestExportEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	r := checkpoint.MustNewRegistry("empty", nil, checkpoint.Calibration{})
	require.NoError(t, checkpoint.Export(fs, "empty.json", r))

	data, err := afero.ReadFile(fs, "empty.json")
	require.NoError(t, err)
	require.NoError(t, checkpoint.ValidateSchema(data))

	loaded, err := checkpoint.LoadFile(fs, "empty.json")
	require.NoError(t, err)
	require.Zero(t, loaded.Len())
}

func TestLoadFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := checkpoint.LoadFile(fs, "missing.json")
	require.ErrorContains(t, err, "missing.json")

	require.NoError(t, afero.WriteFile(fs, "bad.json", []byte(`{"version": "x"}`), 0o600))
	_, err = checkpoint.LoadFile(fs, "bad.json")
	require.ErrorContains(t, err, "bad.json")
}
