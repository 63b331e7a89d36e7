package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"
)

// analysisStoreOf returns the configured history store, or nil when tracking is off.
func analysisStoreOf(mgr contract.StoreManager) contract.AnalysisStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetAnalysisStore()
}

// beginTracking opens a history run when a store is configured and records its ID in the context.
// Failures are logged and never abort the analysis.
func beginTracking(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) context.Context {
	store := analysisStoreOf(mgr)
	if store == nil {
		return ctx
	}
	configParams := map[string]any{
		"samples":    cfg.Samples,
		"start":      cfg.Start,
		"end":        cfg.End,
		"dpi":        cfg.DPI,
		"output_dir": cfg.OutputDir,
	}
	analysisID, err := store.BeginAnalysis(time.Now(), DomainFromConfig(cfg).Schema(), configParams)
	if err != nil {
		contract.LogWarn("Analysis tracking initialization failed", err)
		return ctx
	}
	if analysisID > 0 {
		ctx = withRunID(ctx, analysisID)
	}
	return ctx
}

// finishTracking records per-signal weights and closes the run started by beginTracking.
func finishTracking(ctx context.Context, mgr contract.StoreManager, result *schema.AnalysisResult) {
	store := analysisStoreOf(mgr)
	analysisID, ok := runIDFrom(ctx)
	if store == nil || !ok || result == nil {
		return
	}
	for _, s := range result.Signals {
		if err := store.RecordSignalWeight(analysisID, s); err != nil {
			logTrackingError("RecordSignalWeight", string(s.Name), err)
		}
	}
	if err := store.EndAnalysis(analysisID, time.Now(), result.TotalWeight); err != nil {
		contract.LogWarn("Failed to finalize analysis tracking", err)
	}
}

// logTrackingError logs database tracking errors to stderr without disrupting analysis.
func logTrackingError(operation, signal string, err error) {
	contract.LogWarn(fmt.Sprintf("Analysis tracking failed for %s on %s", operation, signal), err)
}
