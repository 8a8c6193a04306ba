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

// NewSearchTool creates the akaru_search tool definition.
func NewSearchTool() mcp.Tool {
	return mcp.NewTool("akaru_search",
		mcp.WithDescription("Search notes and tasks by keyword, case-insensitive."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keyword to look for"),
		),
	)
}

// SearchHandler handles the akaru_search tool.
func SearchHandler(tc *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		matches := tc.Ledger.Search(query)
		if len(matches) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No results for %q.", query)), nil
		}

		var b strings.Builder
		for _, m := range matches {
			if m.Kind == "note" {
				fmt.Fprintf(&b, "note #%d: %s\n", m.ID, m.Text)
				continue
			}
			status := "[ ]"
			if m.Done {
				status = "[x]"
			}
			fmt.Fprintf(&b, "task #%d %s: %s\n", m.ID, status, m.Text)
		}
		fmt.Fprintf(&b, "%d results.", len(matches))
		return mcp.NewToolResultText(b.String()), nil
	}
}
