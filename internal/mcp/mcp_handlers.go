package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/whiskerlabs/litterlog/core"
	"github.com/whiskerlabs/litterlog/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.CacheManager
}

// requestConfig applies per-request overrides shared by all tools.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) *contract.Config {
	cfg := h.baseCfg.Clone()
	if serial := request.GetString("robot_serial", ""); serial != "" {
		cfg.RobotSerial = serial
	}
	if limit := request.GetInt("limit", 0); limit > 0 && limit <= contract.MaxHistoryLimit {
		cfg.HistoryLimit = limit
	}
	if request.GetBool("offline", false) {
		cfg.Offline = true
	}
	return cfg
}

func (h *toolHandler) handleGetReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)
	if name := request.GetString("cat_name", ""); name != "" {
		cfg.CatName = name
	}

	activity, err := core.LoadActivity(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity load failed: %v", err)), nil
	}

	report := core.BuildDocument(activity, cfg, time.Now())
	jsonData, _ := json.MarshalIndent(report, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetVisits(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	activity, err := core.LoadActivity(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity load failed: %v", err)), nil
	}

	summary := core.ReduceActivity(activity.Events)
	jsonData, _ := json.MarshalIndent(summary.Visits, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPersonality(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.requestConfig(request)

	activity, err := core.LoadActivity(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("activity load failed: %v", err)), nil
	}

	summary := core.ReduceActivity(activity.Events)
	stats := core.BuildStats(summary, cfg.Location)
	traits := core.PersonalityTraits(stats)
	jsonData, _ := json.MarshalIndent(traits, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}
