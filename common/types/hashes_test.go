package types

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Skryptex/SKX-EDIT/common/util"
)

const genesisHex = "0xae1717d30616a6d18e0c87d7a6a3ff17bc8b85147aef8bf60bf0f7177a5bc097"

func TestHexToHash32(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		input string
		err   error
	}{
		{desc: "prefixed", input: genesisHex},
		{desc: "no prefix", input: genesisHex[2:]},
		{desc: "upper prefix", input: "0X" + genesisHex[2:]},
		{desc: "empty", input: "", err: util.ErrEmptyInput},
		{desc: "odd", input: genesisHex[:len(genesisHex)-1], err: util.ErrOddLength},
		{desc: "short", input: genesisHex[:len(genesisHex)-2], err: util.ErrWrongSize},
		{desc: "syntax", input: "0x" + "zz" + genesisHex[4:], err: util.ErrSyntax},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			h, err := HexToHash32(tc.input)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Equal(t, EmptyHash32, h)
				return
			}
			require.NoError(t, err)
			require.Equal(t, genesisHex, h.Hex())
		})
	}
}

func TestHash32Text(t *testing.T) {
	h := MustHexToHash32(genesisHex)
	require.Equal(t, genesisHex, h.String())
	require.Equal(t, genesisHex, fmt.Sprintf("%v", h))
	require.Equal(t, genesisHex[2:], fmt.Sprintf("%x", h))
	require.Equal(t, "ae1717d306", h.ShortString())

	header := BlockHeader{Height: 10, ID: h, ChainTxCount: 7, Time: 1_600_000_000}
	data, err := json.Marshal(&header)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"height":10,"id":"`+genesisHex+`","chainTx":7,"time":1600000000}`,
		string(data),
	)

	var decoded BlockHeader
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, header, decoded)
}

func TestMustHexToHash32Panics(t *testing.T) {
	require.Panics(t, func() { MustHexToHash32("0x01") })
}
