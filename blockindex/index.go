// Package blockindex keeps a bounded in-memory index of block headers by id.
package blockindex

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Skryptex/SKX-EDIT/common/types"
)

const DefaultSize = 100_000

// Index maps block ids to headers. Least recently used headers are evicted
// once size is reached. The tip is the highest header ever added and
// survives eviction.
type Index struct {
	cache *lru.Cache[types.Hash32, *types.BlockHeader]

	mu  sync.Mutex
	tip *types.BlockHeader
}

func New(size int) (*Index, error) {
	cache, err := lru.New[types.Hash32, *types.BlockHeader](size)
	if err != nil {
		return nil, fmt.Errorf("create block index: %w", err)
	}
	return &Index{cache: cache}, nil
}

// Add inserts header, replacing any header with the same id.
func (idx *Index) Add(header *types.BlockHeader) {
	idx.cache.Add(header.ID, header)

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.tip == nil || header.Height > idx.tip.Height {
		idx.tip = header
	}
}

// Get looks up a header without marking it as recently used.
func (idx *Index) Get(id types.Hash32) (*types.BlockHeader, bool) {
	return idx.cache.Peek(id)
}

func (idx *Index) Len() int {
	return idx.cache.Len()
}

// Tip returns the highest header added so far.
func (idx *Index) Tip() (*types.BlockHeader, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.tip, idx.tip != nil
}
