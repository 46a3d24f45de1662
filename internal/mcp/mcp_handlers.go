package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pulsegen/pulsegen/core"
	"github.com/pulsegen/pulsegen/internal/contract"
	"github.com/pulsegen/pulsegen/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// applyStreamOverrides copies stream-shaping parameters from the request onto
// a cloned config.
func (h *toolHandler) applyStreamOverrides(cfg *contract.Config, request mcp.CallToolRequest) {
	if d := request.GetInt("duration", 0); d > 0 {
		cfg.DurationSeconds = d
	}
	if s := request.GetInt("sampling", 0); s > 0 {
		cfg.SamplingSeconds = s
	}
	if r := request.GetInt("resting_bpm", 0); r > 0 {
		cfg.RestingBpm = r
	}
	if m := request.GetInt("max_bpm", 0); m > 0 {
		cfg.MaxBpm = m
	}
	if v := request.GetFloat("interval_intensity", -1); v >= 0 {
		cfg.IntervalIntensity = v
	}
	if v := request.GetFloat("dropout", -1); v >= 0 {
		cfg.Dropout = v
	}
	if s := request.GetInt("seed", 0); s != 0 {
		cfg.Seed = int64(s)
	}
}

func (h *toolHandler) handleSynthesizeStream(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	h.applyStreamOverrides(cfg, request)

	if cfg.RestingBpm >= cfg.MaxBpm {
		return mcp.NewToolResultError(fmt.Sprintf("resting bpm (%d) must be below max bpm (%d)", cfg.RestingBpm, cfg.MaxBpm)), nil
	}

	params := schema.StreamParams{
		DurationSeconds:    cfg.DurationSeconds,
		SamplingSeconds:    cfg.SamplingSeconds,
		RestingBpm:         cfg.RestingBpm,
		MaxBpm:             cfg.MaxBpm,
		IntervalIntensity:  cfg.IntervalIntensity,
		DropoutProbability: cfg.Dropout,
	}
	stream := core.SynthesizeStream(params, rand.New(rand.NewSource(cfg.Seed)))

	jsonData, _ := json.MarshalIndent(stream, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handlePreviewActivity(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	h.applyStreamOverrides(cfg, request)

	athlete := int64(request.GetInt("athlete", 0))
	if athlete <= 0 {
		athlete = cfg.PreviewAthlete
	}
	if athlete <= 0 {
		return mcp.NewToolResultError("athlete must be a positive integer"), nil
	}
	sequence := request.GetInt("sequence", 1)
	if sequence < 1 {
		return mcp.NewToolResultError("sequence must be at least 1"), nil
	}

	rec := core.GenerateActivity(cfg, athlete, sequence)
	jsonData, _ := json.MarshalIndent(rec, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGenerateActivities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	h.applyStreamOverrides(cfg, request)

	if a := request.GetString("athletes", ""); a != "" {
		athletes, err := contract.ParseAthletes(a)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid athletes: %v", err)), nil
		}
		cfg.Athletes = athletes
	}
	if c := request.GetInt("count", 0); c > 0 {
		cfg.Count = min(c, contract.MaxCount)
	}

	records := core.GenerateBatch(ctx, cfg)
	summaries := make([]schema.ActivitySummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary)
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleStoreStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.mgr == nil {
		return mcp.NewToolResultError("run tracking is not configured"), nil
	}
	store := h.mgr.GetActivityStore()
	if store == nil {
		return mcp.NewToolResultError("run tracking is not configured"), nil
	}

	status, err := store.GetStatus()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("status query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(status, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
