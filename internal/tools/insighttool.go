// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/akaru-cli/akaru/internal/insight"
)

// NewInsightTool creates the akaru_insight tool definition.
func NewInsightTool() mcp.Tool {
	return mcp.NewTool("akaru_insight",
		mcp.WithDescription("Generate an insight report over memory, streak, mood, activity hours and topics. Optionally export it to a file."),
		mcp.WithString("mode",
			mcp.Description("Report mode: full, short, streak or mood. Default full."),
		),
		mcp.WithString("export",
			mcp.Description("Optional export format: txt, log, json or yaml."),
		),
	)
}

// InsightHandler handles the akaru_insight tool.
func InsightHandler(tc *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mode := request.GetString("mode", insight.ModeFull)

		content, err := tc.Reporter.Generate(mode)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if format := request.GetString("export", ""); format != "" {
			path, err := tc.Reporter.Export(content, format)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("%s\n\nExported to %s", content, path)), nil
		}

		return mcp.NewToolResultText(content), nil
	}
}
