// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package insight composes the text reports built from the analytics
// layer and exports them to the exports directory or the insights log.
package insight

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/analytics"
	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/ledger"
	"github.com/akaru-cli/akaru/internal/tiered"
)

// Report modes
const (
	ModeFull   = "full"
	ModeShort  = "short"
	ModeStreak = "streak"
	ModeMood   = "mood"
)

// Export formats
const (
	FormatTxt  = "txt"
	FormatLog  = "log"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const stampLayout = "02 Jan 2006, 15:04"

// Reporter generates insight reports over the persisted collections.
type Reporter struct {
	cfg  *config.Config
	tm   *tiered.Manager
	led  *ledger.Ledger
	logs *activity.Log
}

// NewReporter wires a reporter over the open stores.
func NewReporter(cfg *config.Config, tm *tiered.Manager, led *ledger.Ledger, logs *activity.Log) *Reporter {
	return &Reporter{cfg: cfg, tm: tm, led: led, logs: logs}
}

// Generate refreshes the tiered memory and composes the report for the
// given mode. Unknown modes are rejected.
func (r *Reporter) Generate(mode string) (string, error) {
	return r.GenerateAt(mode, time.Now())
}

// GenerateAt is Generate evaluated at a fixed time, for tests.
func (r *Reporter) GenerateAt(mode string, now time.Time) (string, error) {
	switch mode {
	case ModeFull, ModeShort, ModeStreak, ModeMood:
	default:
		return "", fmt.Errorf("unknown insight mode: %s", mode)
	}

	// Refresh before reading so the report sees current data
	if _, err := r.tm.SyncFromMain(r.cfg.MainHistoryFile()); err != nil {
		return "", fmt.Errorf("failed to sync memory: %w", err)
	}
	if _, err := r.tm.UpdateStreakAt(now); err != nil {
		return "", fmt.Errorf("failed to update streak: %w", err)
	}
	if r.tm.Stats().ShortFull {
		if _, err := r.tm.Promote(); err != nil {
			return "", fmt.Errorf("failed to promote memory: %w", err)
		}
	}

	stats := r.tm.Stats()
	short := r.tm.LoadShort()
	long := r.tm.LoadLong()
	moodW := analytics.MoodAnalysis(short, long, 7, now)
	streak := r.tm.StatusAt(now)
	pattern := analytics.ActivityPattern(r.logs.Entries())
	topics := analytics.TopicFrequency(short, long, 5)
	weekly := analytics.WeeklySummary(short, long, now)
	suggestions := analytics.GenerateSuggestions(stats, moodW, streak, pattern, topics)

	var b strings.Builder
	sep := strings.Repeat("=", 50)
	fmt.Fprintf(&b, "%s\n  AKARU INSIGHT\n  %s\n%s\n", sep, now.Format(stampLayout), sep)

	if mode == ModeFull || mode == ModeShort {
		b.WriteString("\n[ MEMORY ]\n")
		fmt.Fprintf(&b, "  Total interactions : %d\n", stats.Total)
		fmt.Fprintf(&b, "  - Short-term       : %d\n", stats.ShortCount)
		fmt.Fprintf(&b, "  - Long-term        : %d\n", stats.LongCount)
		if n := len(short.History); n > 0 {
			fmt.Fprintf(&b, "  Last active        : %s\n", short.History[n-1].Time.Format(stampLayout))
		}
	}

	if mode == ModeFull || mode == ModeStreak {
		b.WriteString("\n[ STREAK ]\n")
		fmt.Fprintf(&b, "  Current streak : %d days\n", streak.Current)
		fmt.Fprintf(&b, "  Best streak    : %d days\n", streak.Best)
		fmt.Fprintf(&b, "  Status         : %s\n", strings.ToUpper(streak.State))
		if streak.LastDate != "" {
			fmt.Fprintf(&b, "  Last active    : %s\n", streak.LastDate)
		}
		if streak.GapDays > 0 {
			fmt.Fprintf(&b, "  Inactive gap   : %d days\n", streak.GapDays)
		}
		if streak.Warning != "" {
			fmt.Fprintf(&b, "  ⚠ WARNING: %s\n", streak.Warning)
		}
	}

	if mode == ModeFull || mode == ModeMood {
		b.WriteString("\n[ MOOD (last 7 days) ]\n")
		if len(moodW.Distribution) > 0 {
			for _, label := range moodOrder(moodW) {
				count := moodW.Distribution[label]
				bar := strings.Repeat("▪", min(count, 20))
				fmt.Fprintf(&b, "  %-10s %s (%dx)\n", label, bar, count)
			}
		} else {
			b.WriteString("  No mood data yet.\n")
		}
		fmt.Fprintf(&b, "  Dominant : %s\n", orDash(moodW.Dominant))
		fmt.Fprintf(&b, "  Trend    : %s\n", moodW.Trend)
	}

	if mode == ModeFull {
		b.WriteString("\n[ ACTIVE HOURS ]\n")
		if pattern != nil {
			fmt.Fprintf(&b, "  Peak hour : %02d:00 (%s)\n", pattern.PeakHour, pattern.Label)
			writeHourChart(&b, pattern.Histogram)
		} else {
			b.WriteString("  No activity data yet.\n")
		}

		b.WriteString("\n[ TOP TOPICS ]\n")
		if len(topics) > 0 {
			for _, tc := range topics {
				bar := strings.Repeat("▪", min(tc.Count, 20))
				fmt.Fprintf(&b, "  %-14s %s (%dx)\n", tc.Topic, bar, tc.Count)
			}
		} else {
			b.WriteString("  No topic data yet.\n")
		}

		b.WriteString("\n[ WEEKLY SUMMARY ]\n")
		writeWeekly(&b, weekly)
	}

	b.WriteString("\n[ SUGGESTIONS ]\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "  → %s\n", s)
	}
	fmt.Fprintf(&b, "\n%s", sep)

	return b.String(), nil
}

func moodOrder(w analytics.MoodWindow) []string {
	firstSeen := make(map[string]int, len(w.Distribution))
	order := make([]string, 0, len(w.Distribution))
	for i, e := range w.Raw {
		if _, ok := firstSeen[e.Mood]; !ok {
			firstSeen[e.Mood] = i
			order = append(order, e.Mood)
		}
	}
	// Raw can be empty when the window came from elsewhere; fall back
	// to a sorted scan so the listing stays deterministic
	if len(order) == 0 {
		for label := range w.Distribution {
			order = append(order, label)
		}
		sort.Strings(order)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return w.Distribution[order[i]] > w.Distribution[order[j]]
	})
	return order
}

func writeHourChart(b *strings.Builder, hist map[int]int) {
	if len(hist) == 0 {
		return
	}
	maxVal := 1
	hours := make([]int, 0, len(hist))
	for h, c := range hist {
		hours = append(hours, h)
		if c > maxVal {
			maxVal = c
		}
	}
	sort.Ints(hours)
	b.WriteString("  Per-hour distribution:\n")
	for _, h := range hours {
		count := hist[h]
		filled := count * 15 / maxVal
		bar := strings.Repeat("█", filled) + strings.Repeat("░", 15-filled)
		fmt.Fprintf(b, "    %02d:00  %s %d\n", h, bar, count)
	}
}

func writeWeekly(b *strings.Builder, w analytics.Weekly) {
	if w.Interactions == 0 {
		b.WriteString("  No activity in the last 7 days.\n")
		return
	}
	fmt.Fprintf(b, "  Interactions  : %d\n", w.Interactions)
	fmt.Fprintf(b, "  Active days   : %d/7\n", w.ActiveDays)
	if len(w.TopTopics) > 0 {
		parts := make([]string, 0, len(w.TopTopics))
		for _, tc := range w.TopTopics {
			parts = append(parts, fmt.Sprintf("%s (%dx)", tc.Topic, tc.Count))
		}
		fmt.Fprintf(b, "  Top topics    : %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(b, "  Dominant mood : %s\n", orDash(w.DominantMood))
	if w.Pattern != nil {
		fmt.Fprintf(b, "  Peak hour     : %02d:00 (%s)\n", w.Pattern.PeakHour, w.Pattern.Label)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

type exportDoc struct {
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`
	Report      string `json:"report" yaml:"report"`
}

// Export writes the report in the given format and returns the path of
// the file it wrote. txt/json/yaml create a timestamped file in the
// exports directory, log appends to the insights log.
func (r *Reporter) Export(content, format string) (string, error) {
	return r.ExportAt(content, format, time.Now())
}

// ExportAt is Export evaluated at a fixed time, for tests.
func (r *Reporter) ExportAt(content, format string, now time.Time) (string, error) {
	stamp := now.Format("20060102_150405")

	switch format {
	case FormatTxt:
		path := filepath.Join(r.cfg.ExportDir(), fmt.Sprintf("insight_%s.txt", stamp))
		return path, writeExport(path, []byte(content))
	case FormatLog:
		path := r.cfg.InsightLogFile()
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return "", fmt.Errorf("failed to open insights log: %w", err)
		}
		defer f.Close()
		if _, err := f.WriteString(content + "\n\n"); err != nil {
			return "", fmt.Errorf("failed to append insight: %w", err)
		}
		return path, nil
	case FormatJSON:
		doc := exportDoc{GeneratedAt: now.Format(time.RFC3339), Report: content}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode insight: %w", err)
		}
		path := filepath.Join(r.cfg.ExportDir(), fmt.Sprintf("insight_%s.json", stamp))
		return path, writeExport(path, append(data, '\n'))
	case FormatYAML:
		doc := exportDoc{GeneratedAt: now.Format(time.RFC3339), Report: content}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("failed to encode insight: %w", err)
		}
		path := filepath.Join(r.cfg.ExportDir(), fmt.Sprintf("insight_%s.yaml", stamp))
		return path, writeExport(path, data)
	default:
		return "", fmt.Errorf("unknown export format: %s", format)
	}
}

func writeExport(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// AutoLog generates a short insight and appends it to the insights log.
// Meant to be called from the scheduler.
func (r *Reporter) AutoLog() (string, error) {
	content, err := r.Generate(ModeShort)
	if err != nil {
		return "", err
	}
	return r.Export(content, FormatLog)
}

// StreakReport is the quick streak-only report.
func (r *Reporter) StreakReport() (string, error) {
	return r.StreakReportAt(time.Now())
}

// StreakReportAt is StreakReport evaluated at a fixed time, for tests.
func (r *Reporter) StreakReportAt(now time.Time) (string, error) {
	if _, err := r.tm.UpdateStreakAt(now); err != nil {
		return "", fmt.Errorf("failed to update streak: %w", err)
	}
	streak := r.tm.StatusAt(now)

	var b strings.Builder
	b.WriteString("[ STREAK REPORT ]\n")
	fmt.Fprintf(&b, "  Streak : %d days (best: %d)\n", streak.Current, streak.Best)
	fmt.Fprintf(&b, "  Status : %s", strings.ToUpper(streak.State))
	if streak.Warning != "" {
		fmt.Fprintf(&b, "\n  ⚠ %s", streak.Warning)
	}
	return b.String(), nil
}

// MoodReport is the quick mood-only report over the last `days` days.
func (r *Reporter) MoodReport(days int) string {
	return r.MoodReportAt(days, time.Now())
}

// MoodReportAt is MoodReport evaluated at a fixed time, for tests.
func (r *Reporter) MoodReportAt(days int, now time.Time) string {
	moodW := analytics.MoodAnalysis(r.tm.LoadShort(), r.tm.LoadLong(), days, now)

	var b strings.Builder
	fmt.Fprintf(&b, "[ MOOD REPORT (last %d days) ]\n", days)
	if len(moodW.Distribution) > 0 {
		for _, label := range moodOrder(moodW) {
			fmt.Fprintf(&b, "  %-10s: %dx\n", label, moodW.Distribution[label])
		}
	} else {
		b.WriteString("  No mood data yet.\n")
	}
	fmt.Fprintf(&b, "  Dominant : %s\n", orDash(moodW.Dominant))
	fmt.Fprintf(&b, "  Trend    : %s", moodW.Trend)
	return b.String()
}
