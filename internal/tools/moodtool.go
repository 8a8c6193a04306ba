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

// NewMoodTool creates the akaru_mood tool definition.
func NewMoodTool() mcp.Tool {
	return mcp.NewTool("akaru_mood",
		mcp.WithDescription("Mood journal. Actions: 'checkin' records mood and energy (1-5 each), 'history' lists recent check-ins, 'report' summarizes the mood window."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("One of: checkin, history, report"),
		),
		mcp.WithNumber("mood",
			mcp.Description("Mood level 1-5, required for 'checkin'"),
		),
		mcp.WithNumber("energy",
			mcp.Description("Energy level 1-5, required for 'checkin'"),
		),
		mcp.WithString("note",
			mcp.Description("Optional short note for 'checkin'"),
		),
		mcp.WithNumber("days",
			mcp.Description("Window in days for 'report', default 7"),
		),
	)
}

// MoodHandler handles the akaru_mood tool.
func MoodHandler(tc *ToolContext) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(c context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		action, err := request.RequireString("action")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		switch action {
		case "checkin":
			moodVal := int(request.GetFloat("mood", 0))
			energyVal := int(request.GetFloat("energy", 0))
			note := request.GetString("note", "")
			entry, err := tc.Journal.Record(moodVal, energyVal, note)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Check-in saved for %s: mood %d/5, energy %d/5.",
				entry.Date, entry.Mood, entry.Energy)), nil

		case "history":
			entries := tc.Journal.Recent(7)
			if len(entries) == 0 {
				return mcp.NewToolResultText("No mood check-ins yet."), nil
			}
			var b strings.Builder
			for _, e := range entries {
				fmt.Fprintf(&b, "%s  mood %d/5  energy %d/5", e.Date, e.Mood, e.Energy)
				if e.Note != "" {
					fmt.Fprintf(&b, "  %q", e.Note)
				}
				b.WriteString("\n")
			}
			return mcp.NewToolResultText(b.String()), nil

		case "report":
			days := int(request.GetFloat("days", 7))
			if days < 1 {
				days = 7
			}
			return mcp.NewToolResultText(tc.Reporter.MoodReport(days)), nil

		default:
			return mcp.NewToolResultError(fmt.Sprintf("unknown action: %s", action)), nil
		}
	}
}
