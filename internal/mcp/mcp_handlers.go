package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/chakra/core"
	"github.com/huangsam/chakra/internal/contract"
	"github.com/huangsam/chakra/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// influencesResponse is the compute_influences payload.
type influencesResponse struct {
	*schema.AnalysisResult
	DominantSummary string `json:"dominant_summary"`
}

// signalResponse is the get_signal payload.
type signalResponse struct {
	Name    schema.SignalName `json:"name"`
	Display string            `json:"display"`
	Stride  int               `json:"stride"`
	Time    []float64         `json:"t"`
	Values  []float64         `json:"values"`
}

// domainConfig overlays the optional domain arguments on the base config.
func (h *toolHandler) domainConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if n := request.GetInt("samples", 0); n != 0 {
		cfg.Samples = n
	}
	cfg.Start = request.GetFloat("start", cfg.Start)
	cfg.End = request.GetFloat("end", cfg.End)
	return cfg
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleComputeInfluences(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.domainConfig(request)

	result, err := core.GetInfluenceResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	return jsonResult(influencesResponse{
		AnalysisResult:  result,
		DominantSummary: schema.FormatDominant(result.Balance.Dominant, result.Signals),
	})
}

func (h *toolHandler) handleGetSignal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("name", "")
	name, ok := schema.ParseSignalName(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown signal %q", raw)), nil
	}
	stride := request.GetInt("stride", 1)
	if stride < 1 {
		return mcp.NewToolResultError(fmt.Sprintf("stride must be at least 1 (received %d)", stride)), nil
	}

	cfg := h.domainConfig(request)
	analyzer, err := core.NewAnalyzer(core.DomainFromConfig(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid domain: %v", err)), nil
	}
	if err := analyzer.ComputeActivations(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("signal generation failed: %v", err)), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values, _ := analyzer.Signal(name)
	t := analyzer.Time()
	resp := signalResponse{
		Name:    name,
		Display: schema.MustInfo(name).Display,
		Stride:  stride,
	}
	for i := 0; i < len(t); i += stride {
		resp.Time = append(resp.Time, t[i])
		resp.Values = append(resp.Values, values[i])
	}
	return jsonResult(resp)
}

func (h *toolHandler) handleListPresets(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reports, err := core.PresetReports()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to evaluate presets: %v", err)), nil
	}
	return jsonResult(reports)
}
