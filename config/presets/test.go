package presets

import (
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/Skryptex/SKX-EDIT/checkpoint"
	"github.com/Skryptex/SKX-EDIT/config"
)

func init() {
	register(checkpoint.TestNetwork, testnet())
}

func testnet() config.Config {
	conf := config.DefaultConfig()
	conf.Checkpoints.Network = checkpoint.TestNetwork
	conf.Sync.ReportInterval = time.Second
	conf.Logging.CheckpointLoggerLevel = zapcore.DebugLevel.String()
	conf.Logging.SyncLoggerLevel = zapcore.DebugLevel.String()
	return conf
}
