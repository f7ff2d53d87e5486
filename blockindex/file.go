package blockindex

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/Skryptex/SKX-EDIT/common/types"
)

// Load reads a JSON array of block headers from path into a new index.
func Load(fs afero.Fs, path string, size int) (*Index, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read headers %s: %w", path, err)
	}
	var headers []*types.BlockHeader
	if err := json.Unmarshal(data, &headers); err != nil {
		return nil, fmt.Errorf("decode headers %s: %w", path, err)
	}
	idx, err := New(size)
	if err != nil {
		return nil, err
	}
	for i, header := range headers {
		if header == nil {
			return nil, fmt.Errorf("decode headers %s: null header at %d", path, i)
		}
		idx.Add(header)
	}
	return idx, nil
}
