package types

import (
	"time"

	"go.uber.org/zap/zapcore"
)

// BlockHeader is the minimal view of a block that checkpoint validation and
// progress estimation need. It is produced by the chain index and treated as
// read-only.
type BlockHeader struct {
	Height uint64 `json:"height"`
	ID     Hash32 `json:"id"`
	// ChainTxCount is the number of transactions in all blocks from genesis up to
	// and including this one.
	ChainTxCount uint64 `json:"chainTx"`
	// Time is the block timestamp in unix seconds.
	Time int64 `json:"time"`
}

// Timestamp returns the block time as time.Time.
func (b *BlockHeader) Timestamp() time.Time {
	return time.Unix(b.Time, 0)
}

// MarshalLogObject implements logging interface.
func (b *BlockHeader) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("height", b.Height)
	encoder.AddString("id", b.ID.ShortString())
	encoder.AddUint64("chain_tx", b.ChainTxCount)
	encoder.AddTime("time", b.Timestamp())
	return nil
}
