// Package core has core logic for signal generation, weighting and the analysis pipeline.
package core

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/internal/figure"
	"github.com/huangsam/chakra/internal/outwriter"
	"github.com/huangsam/chakra/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// renderStage is one chart of the full pipeline.
type renderStage struct {
	icon   string
	msg    string
	file   string
	render func(in *figure.Input, path string, opts figure.Options) error
}

var renderStages = []renderStage{
	{"🎨", "Generating individual chakra plots...", schema.IndividualPlotsFile, figure.RenderIndividual},
	{"📈", "Generating combined overview analysis...", schema.CombinedAnalysisFile, figure.RenderCombined},
	{"🤖", "Generating AI decision flow visualization...", schema.DecisionFlowFile, figure.RenderDecisionFlow},
}

// ExecuteAnalysis runs the full pipeline: signals, weights, the three charts and the console summary.
// The output directory is checked before anything is computed and is never created.
func ExecuteAnalysis(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if err := figure.CheckOutputDir(cfg.OutputDir); err != nil {
		return err
	}
	if err := DomainFromConfig(cfg).Validate(); err != nil {
		return err
	}
	if !quietHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}

	ctx = beginTracking(ctx, cfg, mgr)
	analyzer, result, err := runStages(ctx, cfg)
	if err != nil {
		return err
	}

	input, err := BuildFigureInput(analyzer)
	if err != nil {
		return err
	}
	opts := figure.Options{DPI: cfg.DPI}
	artifacts := make([]schema.ChartArtifact, 0, len(renderStages))
	for _, stage := range renderStages {
		if err := ctx.Err(); err != nil {
			return err
		}
		outwriter.LogProgress(cfg, stage.icon, stage.msg)
		path := filepath.Join(cfg.OutputDir, stage.file)
		if err := stage.render(input, path, opts); err != nil {
			return fmt.Errorf("failed to render %s: %w", stage.file, err)
		}
		artifact, err := figure.Artifact(path)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, artifact)
	}

	finishTracking(ctx, mgr, result)
	if err := outwriter.WriteSummary(result, cfg, time.Since(start)); err != nil {
		return err
	}
	outwriter.LogCompletion(cfg, artifacts)
	return nil
}

// ExecuteSummary runs signal generation and weighting and prints the summary without charts.
func ExecuteSummary(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if err := DomainFromConfig(cfg).Validate(); err != nil {
		return err
	}
	if cfg.Output != schema.TextOut {
		ctx = withQuietHeader(ctx)
	}
	if !quietHeader(ctx) {
		outwriter.LogAnalysisHeader(cfg)
	}

	ctx = beginTracking(ctx, cfg, mgr)
	_, result, err := runStages(ctx, cfg)
	if err != nil {
		return err
	}
	finishTracking(ctx, mgr, result)
	return outwriter.WriteSummary(result, cfg, time.Since(start))
}

// ExecuteExport writes the time vector and every signal in the configured export format.
func ExecuteExport(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	analyzer, err := NewAnalyzer(DomainFromConfig(cfg))
	if err != nil {
		return err
	}
	if err := analyzer.ComputeActivations(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	series, err := analyzer.Series()
	if err != nil {
		return err
	}
	return outwriter.WriteSignals(series, cfg)
}

// ExecutePresets prints every named preset with its balance metrics.
func ExecutePresets(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	reports, err := PresetReports()
	if err != nil {
		return err
	}
	return outwriter.WritePresets(reports, cfg)
}

// Analyze computes signals and weights for a domain. It is the entry point for
// callers that do not need charts or console output.
func Analyze(ctx context.Context, domain TimeDomain) (*Analyzer, *schema.AnalysisResult, error) {
	analyzer, err := NewAnalyzer(domain)
	if err != nil {
		return nil, nil, err
	}
	if err := analyzer.ComputeActivations(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	result, err := analyzer.Run()
	if err != nil {
		return nil, nil, err
	}
	return analyzer, result, nil
}

// runStages runs signal generation and weight derivation with progress messages.
func runStages(ctx context.Context, cfg *contract.Config) (*Analyzer, *schema.AnalysisResult, error) {
	analyzer, err := NewAnalyzer(DomainFromConfig(cfg))
	if err != nil {
		return nil, nil, err
	}

	if !quietHeader(ctx) {
		outwriter.LogProgress(cfg, "📊", "Computing chakra activation functions E_k'(t)...")
	}
	if err := analyzer.ComputeActivations(); err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if !quietHeader(ctx) {
		outwriter.LogProgress(cfg, "⚖️ ", "Computing influence weights α_k...")
	}
	if err := analyzer.ComputeWeights(); err != nil {
		return nil, nil, fmt.Errorf("cannot derive influences: %w", err)
	}
	result, err := analyzer.Result()
	if err != nil {
		return nil, nil, err
	}
	return analyzer, result, nil
}

// BuildFigureInput gathers everything the renderers consume from a computed analyzer.
func BuildFigureInput(a *Analyzer) (*figure.Input, error) {
	series, err := a.Series()
	if err != nil {
		return nil, err
	}
	influences := a.Influences()
	if influences == nil {
		return nil, fmt.Errorf("%w: weights", ErrNotComputed)
	}
	energy, err := a.CumulativeEnergy()
	if err != nil {
		return nil, err
	}
	decision, err := NewDecisionFlow(influences)
	if err != nil {
		return nil, err
	}
	signals := make([][]float64, len(series))
	for i, s := range series {
		signals[i] = s.Values
	}
	return &figure.Input{
		Time:             a.Time(),
		Signals:          signals,
		Influences:       influences,
		CumulativeEnergy: energy,
		Decision:         decision,
	}, nil
}

// GetInfluenceResults computes the influence result for cfg's domain without
// charts or console output, tracking the run when a store is configured.
func GetInfluenceResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.AnalysisResult, error) {
	domain := DomainFromConfig(cfg)
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	ctx = beginTracking(ctx, cfg, mgr)
	_, result, err := Analyze(ctx, domain)
	if err != nil {
		return nil, err
	}
	finishTracking(ctx, mgr, result)
	return result, nil
}
