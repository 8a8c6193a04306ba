// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package tools exposes the assistant's operations as MCP tools so an
// agent can drive the journal over stdio.
package tools

import (
	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/insight"
	"github.com/akaru-cli/akaru/internal/ledger"
	"github.com/akaru-cli/akaru/internal/mood"
	"github.com/akaru-cli/akaru/internal/tiered"
)

// ToolContext holds the open stores shared by all tool handlers.
type ToolContext struct {
	Cfg      *config.Config
	Ledger   *ledger.Ledger
	Journal  *mood.Journal
	Logs     *activity.Log
	TM       *tiered.Manager
	Reporter *insight.Reporter
}

// NewToolContext opens every store under the configured data directory
// and wires the reporter on top of them.
func NewToolContext(cfg *config.Config) *ToolContext {
	led := ledger.Open(cfg.LedgerFile())
	journal := mood.OpenJournal(cfg.MoodFile())
	logs := activity.Open(cfg.LogFile(), cfg.Memory.MaxLogs)
	tm := tiered.NewManager(cfg.ShortTermFile(), cfg.LongTermFile(), tiered.Limits{
		ShortTermMax: cfg.Memory.ShortTermMax,
		LongTermMax:  cfg.Memory.LongTermMax,
		MoodLogMax:   cfg.Memory.MoodLogMax,
	})

	return &ToolContext{
		Cfg:      cfg,
		Ledger:   led,
		Journal:  journal,
		Logs:     logs,
		TM:       tm,
		Reporter: insight.NewReporter(cfg, tm, led, logs),
	}
}
