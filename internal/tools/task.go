// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// NewTaskTool creates the akaru_task tool definition.
func NewTaskTool() mcp.Tool {
	return mcp.NewTool("akaru_task",
		mcp.WithDescription("Manage tasks. Actions: 'add' creates a task, 'list' shows all tasks, 'complete' marks one done by id, 'delete' removes one by id."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("One of: add, list, complete, delete"),
		),
		mcp.WithString("text",
			mcp.Description("Task text, required for 'add'"),
		),
		mcp.WithNumber("id",
			mcp.Description("Task id, required for 'complete' and 'delete'"),
		),
	)
}

// TaskHandler handles the akaru_task tool.
func TaskHandler(tc *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action, err := request.RequireString("action")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		switch action {
		case "add":
			text := strings.TrimSpace(request.GetString("text", ""))
			if text == "" {
				return mcp.NewToolResultError("text is required for action 'add'"), nil
			}
			task, err := tc.Ledger.AddTask(text)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to add task: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Task #%d added.", task.ID)), nil

		case "list":
			tasks := tc.Ledger.Tasks()
			if len(tasks) == 0 {
				return mcp.NewToolResultText("No tasks yet."), nil
			}
			var b strings.Builder
			for _, t := range tasks {
				status := "[ ]"
				if t.Done {
					status = "[x]"
				}
				fmt.Fprintf(&b, "#%d %s %s\n", t.ID, status, t.Text)
			}
			return mcp.NewToolResultText(b.String()), nil

		case "complete":
			id := int(request.GetFloat("id", 0))
			if id <= 0 {
				return mcp.NewToolResultError("id is required for action 'complete'"), nil
			}
			task, err := tc.Ledger.CompleteTask(id)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to complete task: %v", err)), nil
			}
			if task == nil {
				return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", id)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Task #%d '%s' done.", id, task.Text)), nil

		case "delete":
			id := int(request.GetFloat("id", 0))
			if id <= 0 {
				return mcp.NewToolResultError("id is required for action 'delete'"), nil
			}
			deleted, err := tc.Ledger.DeleteTask(id)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to delete task: %v", err)), nil
			}
			if !deleted {
				return mcp.NewToolResultError(fmt.Sprintf("task not found: %d", id)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Task #%d deleted.", id)), nil

		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown action: %s", action)), nil
		}
	}
}
