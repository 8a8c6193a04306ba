// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package display renders the terminal UI. The renderer is constructed
// with an explicit color switch so nothing toggles process-global state.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/analytics"
	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/ledger"
	"github.com/akaru-cli/akaru/internal/mood"
	"github.com/akaru-cli/akaru/internal/session"
)

// Application identity shown in the banner
const (
	AppName = "AKARU"
	Version = "2.1.0"
	Tagline = "Shadow Assistant Engine"
)

const width = 58

// Renderer writes formatted output to a single writer.
type Renderer struct {
	out io.Writer

	cyan    *color.Color
	green   *color.Color
	red     *color.Color
	yellow  *color.Color
	gray    *color.Color
	magenta *color.Color
	white   *color.Color

	boldCyan    *color.Color
	boldRed     *color.Color
	boldGreen   *color.Color
	boldYellow  *color.Color
	boldMagenta *color.Color
	boldWhite   *color.Color
}

// NewRenderer builds a renderer writing to out. Colors are emitted only
// when enabled is true, regardless of the terminal.
func NewRenderer(out io.Writer, enabled bool) *Renderer {
	r := &Renderer{
		out:         out,
		cyan:        color.New(color.FgHiCyan),
		green:       color.New(color.FgHiGreen),
		red:         color.New(color.FgHiRed),
		yellow:      color.New(color.FgHiYellow),
		gray:        color.New(color.FgHiBlack),
		magenta:     color.New(color.FgHiMagenta),
		white:       color.New(color.FgHiWhite),
		boldCyan:    color.New(color.FgHiCyan, color.Bold),
		boldRed:     color.New(color.FgHiRed, color.Bold),
		boldGreen:   color.New(color.FgHiGreen, color.Bold),
		boldYellow:  color.New(color.FgHiYellow, color.Bold),
		boldMagenta: color.New(color.FgHiMagenta, color.Bold),
		boldWhite:   color.New(color.FgHiWhite, color.Bold),
	}
	all := []*color.Color{
		r.cyan, r.green, r.red, r.yellow, r.gray, r.magenta, r.white,
		r.boldCyan, r.boldRed, r.boldGreen, r.boldYellow, r.boldMagenta, r.boldWhite,
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Sep prints a horizontal separator line.
func (r *Renderer) Sep() {
	fmt.Fprintln(r.out, r.gray.Sprint(strings.Repeat("─", width)))
}

// Blank prints an empty line.
func (r *Renderer) Blank() {
	fmt.Fprintln(r.out)
}

// Header prints a titled section divider.
func (r *Renderer) Header(title string) {
	line := r.cyan.Sprint(strings.Repeat("─", width))
	fmt.Fprintln(r.out, line)
	fmt.Fprintf(r.out, "  %s\n", r.boldCyan.Sprint(title))
	fmt.Fprintln(r.out, line)
}

// Info prints an aligned label/value pair.
func (r *Renderer) Info(label, value string) {
	fmt.Fprintf(r.out, "  %s %s\n", r.gray.Sprintf("%-24s", label), r.white.Sprint(value))
}

// OK prints a success line.
func (r *Renderer) OK(msg string) {
	fmt.Fprintln(r.out, r.green.Sprintf("  ✓  %s", msg))
}

// Err prints a failure line.
func (r *Renderer) Err(msg string) {
	fmt.Fprintln(r.out, r.red.Sprintf("  ✗  %s", msg))
}

// Warn prints a warning line.
func (r *Renderer) Warn(msg string) {
	fmt.Fprintln(r.out, r.yellow.Sprintf("  ⚠  %s", msg))
}

// Dim prints a muted line.
func (r *Renderer) Dim(msg string) {
	fmt.Fprintln(r.out, r.gray.Sprintf("  –  %s", msg))
}

// Line prints a plain indented line.
func (r *Renderer) Line(format string, args ...any) {
	fmt.Fprintf(r.out, "  "+format+"\n", args...)
}

// Prompt prints an inline prompt without a trailing newline.
func (r *Renderer) Prompt(msg string) {
	fmt.Fprint(r.out, r.cyan.Sprintf("  %s", msg))
}

// Clear wipes the terminal screen.
func (r *Renderer) Clear() {
	fmt.Fprint(r.out, "\x1b[2J\x1b[H")
}

// Banner prints the startup banner with user, goal and time.
func (r *Renderer) Banner(cfg *config.Config, now time.Time) {
	goal := cfg.Goal
	if r := []rune(goal); len(r) > 48 {
		goal = string(r[:46]) + ".."
	}

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.cyan.Sprint("  ╔═══════════════════════════════════╗"))
	fmt.Fprintf(r.out, "%s%s%s\n", r.cyan.Sprint("  ║  "), r.boldCyan.Sprint(center(AppName, 33)), r.cyan.Sprint("║"))
	fmt.Fprintf(r.out, "%s%s%s\n", r.cyan.Sprint("  ║  "), r.gray.Sprint(center(Tagline, 33)), r.cyan.Sprint("║"))
	fmt.Fprintf(r.out, "%s%s%s\n", r.cyan.Sprint("  ║  "), r.gray.Sprint(center("v"+Version, 33)), r.cyan.Sprint("║"))
	fmt.Fprintln(r.out, r.cyan.Sprint("  ╚═══════════════════════════════════╝"))
	r.Blank()
	fmt.Fprintf(r.out, "  %s %s\n", r.gray.Sprint("User :"), r.boldWhite.Sprint(cfg.Username))
	fmt.Fprintf(r.out, "  %s %s\n", r.gray.Sprint("Goal :"), r.yellow.Sprint(goal))
	fmt.Fprintf(r.out, "  %s %s\n", r.gray.Sprint("Time :"), r.gray.Sprint(now.Format("02 Jan 2006, 15:04")))
	r.Sep()
	fmt.Fprintf(r.out, "  %s – command list  |  %s – quit\n", r.green.Sprint("help"), r.red.Sprint("exit"))
	r.Sep()
	r.Blank()
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-len(s)-left)
}

// Greeting prints the contextual session greeting.
func (r *Renderer) Greeting(ctx session.Context, cfg *config.Config, now time.Time) {
	var salutation string
	switch h := now.Hour(); {
	case h < 5:
		salutation = "Still up late"
	case h < 11:
		salutation = "Good morning"
	case h < 15:
		salutation = "Good afternoon"
	case h < 18:
		salutation = "Good evening"
	default:
		salutation = "Good night"
	}
	fmt.Fprintf(r.out, "  %s\n", r.boldWhite.Sprintf("%s, %s.", salutation, cfg.Username))

	if ctx.StreakDays >= 3 {
		fmt.Fprintln(r.out, r.yellow.Sprintf("  🔥 %d-day streak. Keep it going.", ctx.StreakDays))
	}
	if ctx.SessionCount <= 1 {
		fmt.Fprintln(r.out, r.gray.Sprint("  First session. System ready."))
	} else if ctx.LastActiveAt != nil {
		diff := now.Sub(*ctx.LastActiveAt)
		if days := int(diff.Hours() / 24); days >= 1 {
			fmt.Fprintln(r.out, r.gray.Sprintf("  Last active %d days ago. Time to get back on track.", days))
		} else {
			fmt.Fprintln(r.out, r.gray.Sprintf("  Last active %d hours ago.", int(diff.Hours())))
		}
	}
	r.Blank()
}

// ScoreBar prints the productivity score with a 20-cell bar and its
// breakdown.
func (r *Renderer) ScoreBar(s analytics.Score) {
	filled := s.Total / 5
	bar := r.green.Sprint(strings.Repeat("█", filled)) + r.gray.Sprint(strings.Repeat("░", 20-filled))

	label := r.boldRed
	if s.Total >= 70 {
		label = r.boldGreen
	} else if s.Total >= 40 {
		label = r.boldYellow
	}
	fmt.Fprintf(r.out, "  %s  %s  %s\n", r.gray.Sprint("Score"), bar, label.Sprintf("%d/100", s.Total))
	r.Blank()
	r.Info("Tasks done", fmt.Sprintf("%d/%d (%d pts)", s.DoneTasks, s.TotalTasks, s.TaskScore))
	r.Info("Notes this week", fmt.Sprintf("%d notes (%d pts)", s.NotesWeek, s.NoteScore))
	r.Info("Active streak", fmt.Sprintf("%d days (%d pts)", s.StreakDays, s.StreakScore))
}

// Notes prints the note listing.
func (r *Renderer) Notes(notes []ledger.Note, showTimestamps bool) {
	if len(notes) == 0 {
		r.Dim("No notes yet.")
		return
	}
	r.Header("NOTES")
	for _, n := range notes {
		ts := ""
		if showTimestamps {
			ts = r.gray.Sprintf(" %s", n.CreatedAt.Format("2006-01-02"))
		}
		fmt.Fprintf(r.out, "  %s  %s%s\n", r.boldMagenta.Sprintf("#%d", n.ID), n.Text, ts)
	}
	r.Sep()
}

// Tasks prints pending tasks first, done tasks after.
func (r *Renderer) Tasks(tasks []ledger.Task, showTimestamps bool) {
	if len(tasks) == 0 {
		r.Dim("No tasks yet.")
		return
	}
	r.Header("TASKS")
	var pending, done int
	for _, t := range tasks {
		if t.Done {
			done++
			continue
		}
		pending++
		ts := ""
		if showTimestamps {
			ts = r.gray.Sprintf(" %s", t.CreatedAt.Format("2006-01-02"))
		}
		fmt.Fprintf(r.out, "  %s %s %s%s\n", r.boldYellow.Sprintf("#%d", t.ID), r.gray.Sprint("[ ]"), t.Text, ts)
	}
	for _, t := range tasks {
		if !t.Done {
			continue
		}
		fmt.Fprintf(r.out, "  %s %s %s\n", r.gray.Sprintf("#%d", t.ID), r.green.Sprint("[✓]"), r.gray.Sprint(t.Text))
	}
	r.Blank()
	r.Dim(fmt.Sprintf("%d active · %d done", pending, done))
	r.Sep()
}

// MoodHistory prints recent mood check-ins, most recent last.
func (r *Renderer) MoodHistory(entries []mood.Entry) {
	if len(entries) == 0 {
		r.Dim("No mood check-ins yet.")
		return
	}
	r.Header("MOOD HISTORY")
	for _, e := range entries {
		note := ""
		if e.Note != "" {
			note = r.gray.Sprintf("  %s", e.Note)
		}
		fmt.Fprintf(r.out, "  %s  mood %s/5  energy %s/5%s\n",
			r.gray.Sprint(e.Date), r.yellow.Sprintf("%d", e.Mood), r.cyan.Sprintf("%d", e.Energy), note)
	}
	r.Sep()
}

// LogTail prints the most recent activity log entries.
func (r *Renderer) LogTail(entries []activity.Entry, n int) {
	if len(entries) == 0 {
		r.Dim("Log is empty.")
		return
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	r.Header(fmt.Sprintf("ACTIVITY LOG (last %d)", n))
	for _, e := range entries {
		status := r.red.Sprint("ERR")
		if e.OK {
			status = r.green.Sprint("OK")
		}
		intent := e.Intent
		if intent == "" {
			intent = "?"
		}
		fmt.Fprintf(r.out, "  %s  [%s]  %s\n", r.gray.Sprint(e.T.Format("2006-01-02 15:04")), status, r.yellow.Sprint(intent))
	}
	r.Sep()
}

// SearchResults prints ledger search matches and the hit count.
func (r *Renderer) SearchResults(query string, matches []ledger.Match) {
	r.Header(fmt.Sprintf("SEARCH: '%s'", query))
	for _, m := range matches {
		if m.Kind == "note" {
			fmt.Fprintf(r.out, "  %s #%d: %s\n", r.magenta.Sprint("Note"), m.ID, m.Text)
			continue
		}
		status := r.gray.Sprint("[ ]")
		if m.Done {
			status = r.green.Sprint("[✓]")
		}
		fmt.Fprintf(r.out, "  %s #%d %s: %s\n", r.yellow.Sprint("Task"), m.ID, status, m.Text)
	}
	r.Sep()
	if len(matches) == 0 {
		r.Dim(fmt.Sprintf("No results for '%s'.", query))
	} else {
		r.OK(fmt.Sprintf("%d results found.", len(matches)))
	}
}
