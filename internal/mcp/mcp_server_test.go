package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whiskerlabs/litterlog/internal/contract"
	"github.com/whiskerlabs/litterlog/internal/iocache"
	mcp_internal "github.com/whiskerlabs/litterlog/internal/mcp"
	"github.com/whiskerlabs/litterlog/schema"
)

// writeActivityFile writes a newest-first raw event dump for the file source.
func writeActivityFile(t *testing.T) string {
	t.Helper()
	events := []schema.RawEvent{
		{Timestamp: time.Date(2025, 6, 1, 8, 5, 0, 0, time.UTC), Action: "CLEAN_CYCLE_COMPLETE"},
		{Timestamp: time.Date(2025, 6, 1, 8, 1, 0, 0, time.UTC), Action: "Pet Weight Recorded: 11.5 lbs"},
		{Timestamp: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), Action: "CAT_DETECTED"},
	}
	data, err := json.Marshal(events)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "activity.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		CatName:      "Whiskers",
		RobotName:    "Dusty",
		Location:     time.UTC,
		Source:       schema.FileSource,
		InputFile:    writeActivityFile(t),
		HistoryLimit: contract.DefaultHistoryLimit,
	}
}

// noStoreManager returns a manager whose stores are disabled.
func noStoreManager() contract.CacheManager {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetActivityStore").Return(nil)
	mgr.On("GetRunsStore").Return(nil)
	return mgr
}

func TestMCPServerTools(t *testing.T) {
	s := mcp_internal.NewMCPServer(testConfig(t), noStoreManager())
	ctx := context.Background()

	t.Run("get_report", func(t *testing.T) {
		tool := s.GetTool("get_report")
		require.NotNil(t, tool, "Tool get_report should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "get_report",
				Arguments: map[string]any{"cat_name": "Mochi"},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		var report schema.Report
		require.NoError(t, json.Unmarshal([]byte(text), &report))
		assert.Equal(t, "Mochi", report.CatName)
		assert.Equal(t, 1, report.TotalVisits)
	})

	t.Run("get_visits", func(t *testing.T) {
		tool := s.GetTool("get_visits")
		require.NotNil(t, tool, "Tool get_visits should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_visits"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		var visits []schema.Visit
		require.NoError(t, json.Unmarshal([]byte(text), &visits))
		require.Len(t, visits, 1)
		require.NotNil(t, visits[0].WeightLbs)
		assert.InDelta(t, 11.5, *visits[0].WeightLbs, 1e-9)
	})

	t.Run("get_personality", func(t *testing.T) {
		tool := s.GetTool("get_personality")
		require.NotNil(t, tool, "Tool get_personality should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_personality"},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		require.False(t, res.IsError)

		text := res.Content[0].(mcp.TextContent).Text
		var traits []string
		require.NoError(t, json.Unmarshal([]byte(text), &traits))
		assert.Contains(t, traits, schema.TraitEarlyBird, "An 8 AM visit lands in the morning bucket")
	})

	t.Run("load failure surfaces as tool error", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.InputFile = filepath.Join(t.TempDir(), "missing.json")
		broken := mcp_internal.NewMCPServer(cfg, noStoreManager())

		tool := broken.GetTool("get_visits")
		require.NotNil(t, tool)

		res, err := tool.Handler(ctx, mcp.CallToolRequest{
			Params: mcp.CallToolParams{Name: "get_visits"},
		})
		require.NoError(t, err, "Tool logic failures should not be raw errors")
		assert.True(t, res.IsError)
	})
}
