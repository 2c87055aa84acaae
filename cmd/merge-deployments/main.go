package main

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crossliquid/contract-tools/internal/config"
	"github.com/crossliquid/contract-tools/internal/merger"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("🚀 Merging chain deployments",
		zap.String("broadcast_dir", cfg.BroadcastDir),
		zap.String("output", cfg.OutputPath))

	if err := merger.Run(cfg, logger); err != nil {
		logger.Fatal("Merge failed", zap.Error(err))
	}

	logger.Info("✅ Merge complete")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
