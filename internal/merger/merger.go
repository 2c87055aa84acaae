package merger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/crossliquid/contract-tools/internal/broadcast"
	"github.com/crossliquid/contract-tools/internal/config"
	"github.com/crossliquid/contract-tools/internal/contracts"
	"github.com/crossliquid/contract-tools/internal/tsgen"
)

// Run executes one merge pass: collect every chain's deployment record from
// the broadcast tree, then render and write the generated source file.
// Collection completes before anything is written, so a failed pass leaves
// the output file untouched. The first error aborts the run.
func Run(cfg *config.Config, logger *zap.Logger) error {
	switch cfg.SortChains {
	case "", config.SortLexical, config.SortNumeric:
	default:
		return fmt.Errorf("unknown sort_chains mode %q", cfg.SortChains)
	}

	set, err := broadcast.Collect(cfg.BroadcastDir, cfg.DeploymentFile, cfg.SkipChains)
	if err != nil {
		return err
	}

	if cfg.SortChains == config.SortNumeric {
		set.SortNumeric()
	}

	for _, entry := range set.Entries() {
		addrs := contracts.Addresses(entry.Record)
		logger.Info("Collected deployment",
			zap.String("chain", entry.ChainID),
			zap.Int("contracts", len(addrs)))
		for name, addr := range addrs {
			logger.Debug("Deployed contract",
				zap.String("chain", entry.ChainID),
				zap.String("name", name),
				zap.String("address", addr))
		}
	}

	body, err := tsgen.Render(set)
	if err != nil {
		return err
	}
	if err := tsgen.Write(cfg.OutputPath, body); err != nil {
		return err
	}

	logger.Info("Deployment table written",
		zap.Int("chains", set.Len()),
		zap.String("output", cfg.OutputPath))
	return nil
}
