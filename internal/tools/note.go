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

// NewNoteTool creates the akaru_note tool definition.
func NewNoteTool() mcp.Tool {
	return mcp.NewTool("akaru_note",
		mcp.WithDescription("Manage journal notes. Actions: 'add' saves a new note, 'list' shows all notes, 'delete' removes one by id."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("One of: add, list, delete"),
		),
		mcp.WithString("text",
			mcp.Description("Note text, required for 'add'"),
		),
		mcp.WithNumber("id",
			mcp.Description("Note id, required for 'delete'"),
		),
	)
}

// NoteHandler handles the akaru_note tool.
func NoteHandler(tc *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
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
			note, err := tc.Ledger.AddNote(text)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to save note: %v", err)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Note #%d saved.", note.ID)), nil

		case "list":
			notes := tc.Ledger.Notes()
			if len(notes) == 0 {
				return mcp.NewToolResultText("No notes yet."), nil
			}
			var b strings.Builder
			for _, n := range notes {
				fmt.Fprintf(&b, "#%d [%s] %s\n", n.ID, n.CreatedAt.Format("2006-01-02"), n.Text)
			}
			return mcp.NewToolResultText(b.String()), nil

		case "delete":
			id := int(request.GetFloat("id", 0))
			if id <= 0 {
				return mcp.NewToolResultError("id is required for action 'delete'"), nil
			}
			deleted, err := tc.Ledger.DeleteNote(id)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to delete note: %v", err)), nil
			}
			if !deleted {
				return mcp.NewToolResultError(fmt.Sprintf("note not found: %d", id)), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Note #%d deleted.", id)), nil

		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown action: %s", action)), nil
		}
	}
}
