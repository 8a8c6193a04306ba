// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akaru-cli/akaru/internal/config"
)

func newTestContext(t *testing.T) *ToolContext {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	return NewToolContext(cfg)
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func TestNoteToolLifecycle(t *testing.T) {
	tc := newTestContext(t)
	handler := NoteHandler(tc)
	ctx := context.Background()

	result, err := handler(ctx, callRequest(map[string]interface{}{
		"action": "add",
		"text":   "read the raft paper",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "Note #1 saved.", resultText(result))

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "list",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(result), "read the raft paper")

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "delete",
		"id":     float64(1),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "Note #1 deleted.", resultText(result))

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "list",
	}))
	require.NoError(t, err)
	assert.Equal(t, "No notes yet.", resultText(result))
}

func TestNoteToolRejectsEmptyText(t *testing.T) {
	tc := newTestContext(t)
	handler := NoteHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "add",
		"text":   "   ",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "text is required")
}

func TestNoteToolUnknownAction(t *testing.T) {
	tc := newTestContext(t)
	handler := NoteHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "archive",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "unknown action: archive", resultText(result))
}

func TestNoteToolMissingAction(t *testing.T) {
	tc := newTestContext(t)
	handler := NoteHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestTaskToolLifecycle(t *testing.T) {
	tc := newTestContext(t)
	handler := TaskHandler(tc)
	ctx := context.Background()

	result, err := handler(ctx, callRequest(map[string]interface{}{
		"action": "add",
		"text":   "ship the release",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "Task #1 added.", resultText(result))

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "list",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(result), "#1 [ ] ship the release")

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "complete",
		"id":     float64(1),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "Task #1 'ship the release' done.", resultText(result))

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "list",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(result), "#1 [x] ship the release")

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "delete",
		"id":     float64(1),
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, "Task #1 deleted.", resultText(result))
}

func TestTaskToolCompleteNotFound(t *testing.T) {
	tc := newTestContext(t)
	handler := TaskHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "complete",
		"id":     float64(99),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "task not found: 99")
}

func TestTaskToolRequiresID(t *testing.T) {
	tc := newTestContext(t)
	handler := TaskHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "delete",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "id is required")
}

func TestMoodToolCheckin(t *testing.T) {
	tc := newTestContext(t)
	handler := MoodHandler(tc)
	ctx := context.Background()

	result, err := handler(ctx, callRequest(map[string]interface{}{
		"action": "checkin",
		"mood":   float64(4),
		"energy": float64(3),
		"note":   "solid day",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(result), "mood 4/5, energy 3/5")

	result, err = handler(ctx, callRequest(map[string]interface{}{
		"action": "history",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(result), "mood 4/5")
	assert.Contains(t, resultText(result), `"solid day"`)
}

func TestMoodToolCheckinOutOfRange(t *testing.T) {
	tc := newTestContext(t)
	handler := MoodHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "checkin",
		"mood":   float64(7),
		"energy": float64(3),
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "mood must be between 1 and 5")

	assert.Empty(t, tc.Journal.Entries())
}

func TestMoodToolHistoryEmpty(t *testing.T) {
	tc := newTestContext(t)
	handler := MoodHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "history",
	}))
	require.NoError(t, err)
	assert.Equal(t, "No mood check-ins yet.", resultText(result))
}

func TestMoodToolReport(t *testing.T) {
	tc := newTestContext(t)
	handler := MoodHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"action": "report",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(result), "[ MOOD")
}

func TestInsightToolFullMode(t *testing.T) {
	tc := newTestContext(t)
	handler := InsightHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(result)
	assert.Contains(t, text, "AKARU INSIGHT")
	assert.Contains(t, text, "[ MEMORY ]")
	assert.Contains(t, text, "[ STREAK ]")
}

func TestInsightToolRejectsUnknownMode(t *testing.T) {
	tc := newTestContext(t)
	handler := InsightHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"mode": "quarterly",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(result), "unknown insight mode: quarterly")
}

func TestInsightToolExport(t *testing.T) {
	tc := newTestContext(t)
	handler := InsightHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"mode":   "short",
		"export": "txt",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Contains(t, resultText(result), "Exported to ")

	result, err = handler(context.Background(), callRequest(map[string]interface{}{
		"export": "pdf",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "unknown export format: pdf", resultText(result))
}

func TestSearchTool(t *testing.T) {
	tc := newTestContext(t)
	_, err := tc.Ledger.AddNote("refactor the parser")
	require.NoError(t, err)
	_, err = tc.Ledger.AddTask("write parser tests")
	require.NoError(t, err)

	handler := SearchHandler(tc)
	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"query": "parser",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	text := resultText(result)
	assert.Contains(t, text, "note #1: refactor the parser")
	assert.Contains(t, text, "task #1 [ ]: write parser tests")
	assert.Contains(t, text, "2 results.")
}

func TestSearchToolNoResults(t *testing.T) {
	tc := newTestContext(t)
	handler := SearchHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{
		"query": "quantum",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	assert.Equal(t, `No results for "quantum".`, resultText(result))
}

func TestSearchToolRequiresQuery(t *testing.T) {
	tc := newTestContext(t)
	handler := SearchHandler(tc)

	result, err := handler(context.Background(), callRequest(map[string]interface{}{}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
