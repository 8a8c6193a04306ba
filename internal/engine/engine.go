// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package engine

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/analytics"
	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/display"
	"github.com/akaru-cli/akaru/internal/gitlog"
	"github.com/akaru-cli/akaru/internal/ledger"
	"github.com/akaru-cli/akaru/internal/mood"
	"github.com/akaru-cli/akaru/internal/session"
)

// Doctrine lines shown by the doktrin command
var Doctrine = []string{
	"Consistency beats comfort",
	"Long-term goals beat impulses",
	"The system does not bow to emotion",
}

type moodLabel struct {
	icon  string
	label string
}

var moodLabels = map[int]moodLabel{
	1: {"💀", "Wrecked"},
	2: {"😓", "Heavy"},
	3: {"😐", "Neutral"},
	4: {"😊", "Okay"},
	5: {"🔥", "Fired up"},
}

var energyLabels = map[int]moodLabel{
	1: {"🪫", "Empty"},
	2: {"🔋", "Low"},
	3: {"⚡", "Medium"},
	4: {"💪", "High"},
	5: {"🚀", "Full throttle"},
}

// Engine executes routed intents against the open stores.
type Engine struct {
	cfg      *config.Config
	rend     *display.Renderer
	led      *ledger.Ledger
	journal  *mood.Journal
	logs     *activity.Log
	sessions *session.Manager
	snaps    *gitlog.Snapshotter
	in       *bufio.Reader
	formats  gitlog.MessageFormats
}

// New wires an engine. snaps may be nil when git snapshots are
// disabled; in is the interactive input source for prompts.
func New(cfg *config.Config, rend *display.Renderer, led *ledger.Ledger, journal *mood.Journal,
	logs *activity.Log, sessions *session.Manager,
	snaps *gitlog.Snapshotter, in io.Reader) *Engine {
	return &Engine{
		cfg:      cfg,
		rend:     rend,
		led:      led,
		journal:  journal,
		logs:     logs,
		sessions: sessions,
		snaps:    snaps,
		in:       bufio.NewReader(in),
	}
}

// Handle runs the full per-command cycle for one input line: goal
// guard, execution, activity log, session context and bridge history.
func (e *Engine) Handle(line string) {
	e.HandleAt(line, time.Now())
}

// HandleAt is Handle with a fixed timestamp, for tests.
func (e *Engine) HandleAt(line string, now time.Time) {
	intent := Route(line)

	if (intent == IntentNote || intent == IntentTaskAdd) && ViolatesGoal(line, e.cfg.LazyKeywords) {
		e.rend.Warn("Held back: that clashes with the active goal.")
		if err := e.logs.AppendAt(now, intent, false, "goal_violation"); err != nil {
			log.Printf("failed to log goal violation: %v", err)
		}
		return
	}

	e.Execute(intent, line)

	if err := e.logs.AppendAt(now, intent, true, ""); err != nil {
		log.Printf("failed to append activity log: %v", err)
	}
	if err := e.sessions.TouchAt(now, intent, ""); err != nil {
		log.Printf("failed to update session context: %v", err)
	}
	if err := e.RecordInteractionAt(line, now); err != nil {
		log.Printf("failed to record interaction: %v", err)
	}
}

// Execute runs one intent. Rendering goes through the renderer; the
// method never returns an error because user mistakes are reported on
// screen, not propagated.
func (e *Engine) Execute(intent, text string) {
	t := strings.TrimSpace(text)

	switch intent {
	case IntentNote:
		e.addNote(t)
	case IntentViewNotes:
		e.rend.Notes(e.led.Notes(), e.cfg.ShowTimestamps)
	case IntentDelNote:
		e.deleteNote(t)
	case IntentTaskAdd:
		e.addTask(t)
	case IntentViewTasks:
		e.rend.Tasks(e.led.Tasks(), e.cfg.ShowTimestamps)
	case IntentTaskDone:
		e.completeTask(t)
	case IntentDelTask:
		e.deleteTask(t)
	case IntentMoodCheckin:
		e.moodCheckin()
	case IntentViewMood:
		e.rend.MoodHistory(e.journal.Recent(7))
	case IntentSummaryDay:
		e.dailySummary(time.Now())
	case IntentSummaryWeek:
		e.weeklySummary(time.Now())
	case IntentAnalyze:
		e.analyze(time.Now())
	case IntentStatus:
		e.status(time.Now())
	case IntentViewLog:
		e.rend.LogTail(e.logs.Entries(), 10)
	case IntentDoctrine:
		e.rend.Header("AKARU DOCTRINE")
		for i, d := range Doctrine {
			e.rend.Line("%d.  %s", i+1, d)
		}
		e.rend.Sep()
	case IntentGoal:
		e.rend.Header("ACTIVE GOAL")
		e.rend.Line("%s", e.cfg.Goal)
		e.rend.Sep()
	case IntentSetGoal:
		e.setGoal(t)
	case IntentSetName:
		e.setName(t)
	case IntentConfig:
		e.showConfig()
	case IntentSearch:
		e.search(t)
	case IntentClear:
		e.rend.Clear()
		e.rend.Banner(e.cfg, time.Now())
	case IntentExport:
		e.exportData(time.Now())
	case IntentResetLog:
		e.resetLog()
	case IntentHelp:
		e.printHelp()
	default:
		e.rend.Dim("Unknown command. Type 'help'.")
	}
}

func payload(text string, words int) string {
	fields := strings.SplitN(strings.TrimSpace(text), " ", words+1)
	if len(fields) <= words {
		return ""
	}
	return strings.TrimSpace(fields[words])
}

// truncate shortens s to at most max characters, never splitting a
// multi-byte rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func lastNumber(text string) (int, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (e *Engine) snapshot(message string) {
	if e.snaps == nil {
		return
	}
	if _, err := e.snaps.Snapshot(message); err != nil {
		log.Printf("snapshot failed: %v", err)
	}
}

func (e *Engine) addNote(t string) {
	body := payload(t, 1)
	if body == "" {
		e.rend.Err("Note text must not be empty.")
		return
	}
	note, err := e.led.AddNote(body)
	if err != nil {
		e.rend.Err(fmt.Sprintf("Failed to save note: %v", err))
		return
	}
	if err := e.sessions.Touch(IntentNote, body); err != nil {
		log.Printf("failed to update session context: %v", err)
	}
	e.rend.OK(fmt.Sprintf("Note #%d saved.", note.ID))
	e.snapshot(e.formats.Note("record", note.ID))
}

func (e *Engine) deleteNote(t string) {
	num, ok := lastNumber(t)
	if !ok {
		e.rend.Err("Format: hapus catatan <number>")
		return
	}
	if e.cfg.StrictMode && !e.confirm("Delete this note? (y/N): ") {
		e.rend.Dim("Cancelled.")
		return
	}
	deleted, err := e.led.DeleteNote(num)
	if err != nil {
		e.rend.Err(fmt.Sprintf("Failed to delete note: %v", err))
		return
	}
	if !deleted {
		e.rend.Err("Note not found.")
		return
	}
	e.rend.OK(fmt.Sprintf("Note #%d deleted.", num))
	e.snapshot(e.formats.Note("delete", num))
}

func (e *Engine) addTask(t string) {
	body := payload(t, 1)
	if body == "" {
		e.rend.Err("Task text must not be empty.")
		return
	}
	task, err := e.led.AddTask(body)
	if err != nil {
		e.rend.Err(fmt.Sprintf("Failed to add task: %v", err))
		return
	}
	e.rend.OK(fmt.Sprintf("Task #%d added.", task.ID))
	e.snapshot(e.formats.Task("add", task.ID))
}

func (e *Engine) completeTask(t string) {
	num, ok := lastNumber(t)
	if !ok {
		e.rend.Err("Format: selesai <number>")
		return
	}
	task, err := e.led.CompleteTask(num)
	if err != nil {
		e.rend.Err(fmt.Sprintf("Failed to complete task: %v", err))
		return
	}
	if task == nil {
		e.rend.Err("Task not found.")
		return
	}
	e.rend.OK(fmt.Sprintf("Task #%d '%s' done! 🎉", num, truncate(task.Text, 40)))
	e.snapshot(e.formats.Task("complete", num))
}

func (e *Engine) deleteTask(t string) {
	num, ok := lastNumber(t)
	if !ok {
		e.rend.Err("Format: hapus tugas <number>")
		return
	}
	if e.cfg.StrictMode && !e.confirm("Delete this task? (y/N): ") {
		e.rend.Dim("Cancelled.")
		return
	}
	deleted, err := e.led.DeleteTask(num)
	if err != nil {
		e.rend.Err(fmt.Sprintf("Failed to delete task: %v", err))
		return
	}
	if !deleted {
		e.rend.Err("Task not found.")
		return
	}
	e.rend.OK(fmt.Sprintf("Task #%d deleted.", num))
	e.snapshot(e.formats.Task("delete", num))
}

func (e *Engine) moodCheckin() {
	e.rend.Header("MOOD & ENERGY CHECK-IN")
	e.rend.Line("Current mood (1-5):")
	for i := 1; i <= 5; i++ {
		e.rend.Line("  %d  %s  %s", i, moodLabels[i].icon, moodLabels[i].label)
	}
	e.rend.Blank()

	moodVal, ok := e.readScale("Pick mood [1-5]: ")
	if !ok {
		e.rend.Err("Invalid input, mood check-in cancelled.")
		return
	}

	e.rend.Blank()
	e.rend.Line("Current energy (1-5):")
	for i := 1; i <= 5; i++ {
		e.rend.Line("  %d  %s  %s", i, energyLabels[i].icon, energyLabels[i].label)
	}
	e.rend.Blank()

	energyVal, ok := e.readScale("Pick energy [1-5]: ")
	if !ok {
		e.rend.Err("Invalid input, mood check-in cancelled.")
		return
	}

	note := e.readLine("Short note (optional, Enter to skip): ")

	entry, err := e.journal.Record(moodVal, energyVal, note)
	if err != nil {
		e.rend.Err(fmt.Sprintf("Failed to record mood: %v", err))
		return
	}
	e.rend.Blank()
	e.rend.OK(fmt.Sprintf("Mood %s %s  ·  Energy %s %s — saved.",
		moodLabels[moodVal].icon, moodLabels[moodVal].label,
		energyLabels[energyVal].icon, energyLabels[energyVal].label))
	e.snapshot(e.formats.MoodCheckin(entry.Date))
}

func (e *Engine) readScale(prompt string) (int, bool) {
	raw := e.readLine(prompt)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 5 {
		return 0, false
	}
	return n, true
}

func (e *Engine) readLine(prompt string) string {
	line, _ := e.ReadLine(prompt)
	return line
}

// ReadLine prompts on the renderer and reads one trimmed line from the
// interactive input. The error is non-nil only when no data was read,
// io.EOF included.
func (e *Engine) ReadLine(prompt string) (string, error) {
	e.rend.Prompt(prompt)
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (e *Engine) confirm(prompt string) bool {
	ans := strings.ToLower(e.readLine("⚠  " + prompt))
	return ans == "y" || ans == "ya" || ans == "yes"
}

func (e *Engine) dailySummary(now time.Time) {
	today := now.Format("2006-01-02")

	var notesToday []ledger.Note
	for _, n := range e.led.Notes() {
		if n.CreatedAt.Format("2006-01-02") == today {
			notesToday = append(notesToday, n)
		}
	}
	tasks := e.led.Tasks()
	var doneToday, addedToday, pending []ledger.Task
	for _, t := range tasks {
		if t.Done && t.CompletedAt != nil && t.CompletedAt.Format("2006-01-02") == today {
			doneToday = append(doneToday, t)
		}
		if t.CreatedAt.Format("2006-01-02") == today {
			addedToday = append(addedToday, t)
		}
		if !t.Done {
			pending = append(pending, t)
		}
	}

	e.rend.Header(fmt.Sprintf("DAILY SUMMARY – %s", today))

	var moodToday []mood.Entry
	for _, m := range e.journal.Entries() {
		if m.Date == today {
			moodToday = append(moodToday, m)
		}
	}
	if len(moodToday) > 0 {
		last := moodToday[len(moodToday)-1]
		e.rend.Line("Today's condition: Mood %s %d  Energy %s %d",
			moodLabels[last.Mood].icon, last.Mood, energyLabels[last.Energy].icon, last.Energy)
		if last.Note != "" {
			e.rend.Line("→ %s", last.Note)
		}
	} else {
		e.rend.Line("Mood: no check-in today yet")
	}
	e.rend.Blank()

	e.rend.Line("Notes today:  (%d)", len(notesToday))
	if len(notesToday) > 0 {
		for _, n := range notesToday {
			e.rend.Line("%s  %s", n.CreatedAt.Format("15:04"), n.Text)
		}
	} else {
		e.rend.Dim("No notes today.")
	}
	e.rend.Blank()

	e.rend.Line("Tasks done today:  (%d)", len(doneToday))
	if len(doneToday) > 0 {
		for _, t := range doneToday {
			e.rend.Line("✓  %s", t.Text)
		}
	} else {
		e.rend.Dim("No tasks finished yet.")
	}
	e.rend.Blank()

	if len(addedToday) > 0 {
		e.rend.Line("Tasks added today:  (%d)", len(addedToday))
		for _, t := range addedToday {
			e.rend.Line("+  %s", t.Text)
		}
		e.rend.Blank()
	}

	e.rend.Line("Pending tasks:  (%d)", len(pending))
	for i, t := range pending {
		if i >= 5 {
			e.rend.Line("  ... and %d more", len(pending)-5)
			break
		}
		e.rend.Line("·  %s", t.Text)
	}

	e.rend.Blank()
	ctx := e.sessions.Context()
	e.rend.Line("Active streak: %d days  ·  %d sessions total", ctx.StreakDays, ctx.SessionCount)
	e.rend.Sep()
}

func (e *Engine) weeklySummary(now time.Time) {
	today := now.Format("2006-01-02")
	weekAgo := now.AddDate(0, 0, -7).Format("2006-01-02")

	var notesWeek int
	perDay := make(map[string]int)
	for _, n := range e.led.Notes() {
		d := n.CreatedAt.Format("2006-01-02")
		if d >= weekAgo {
			notesWeek++
			perDay[d]++
		}
	}

	var doneWeek []ledger.Task
	var addedWeek, pending int
	for _, t := range e.led.Tasks() {
		if t.Done && t.CompletedAt != nil && t.CompletedAt.Format("2006-01-02") >= weekAgo {
			doneWeek = append(doneWeek, t)
		}
		if t.CreatedAt.Format("2006-01-02") >= weekAgo {
			addedWeek++
		}
		if !t.Done {
			pending++
		}
	}

	var moodSum, energySum, moodCount int
	for _, m := range e.journal.Entries() {
		if m.Date >= weekAgo {
			moodSum += m.Mood
			energySum += m.Energy
			moodCount++
		}
	}

	activeDays := make(map[string]bool)
	for _, l := range e.logs.Entries() {
		d := l.T.Format("2006-01-02")
		if d >= weekAgo {
			activeDays[d] = true
		}
	}

	e.rend.Header(fmt.Sprintf("WEEKLY SUMMARY  (%s → %s)", weekAgo, today))
	e.rend.Info("Active days", fmt.Sprintf("%d / 7 days", len(activeDays)))
	e.rend.Info("Total notes", strconv.Itoa(notesWeek))
	e.rend.Info("Tasks completed", strconv.Itoa(len(doneWeek)))
	e.rend.Info("Tasks added", strconv.Itoa(addedWeek))
	e.rend.Info("Tasks remaining", strconv.Itoa(pending))

	if moodCount > 0 {
		e.rend.Blank()
		e.rend.Info("Average mood", fmt.Sprintf("%.1f / 5", float64(moodSum)/float64(moodCount)))
		e.rend.Info("Average energy", fmt.Sprintf("%.1f / 5", float64(energySum)/float64(moodCount)))
	}

	if len(perDay) > 0 {
		busiestDay := ""
		for d, c := range perDay {
			if busiestDay == "" || c > perDay[busiestDay] || (c == perDay[busiestDay] && d < busiestDay) {
				busiestDay = d
			}
		}
		e.rend.Blank()
		e.rend.Info("Most productive day", fmt.Sprintf("%s  (%d notes)", busiestDay, perDay[busiestDay]))
	}

	if len(doneWeek) > 0 {
		e.rend.Blank()
		e.rend.Line("Tasks finished this week:")
		for i, t := range doneWeek {
			if i >= 6 {
				e.rend.Line("  ... and %d more", len(doneWeek)-6)
				break
			}
			e.rend.Line("✓  %s", truncate(t.Text, 50))
		}
	}

	e.rend.Blank()
	e.rend.Line("Current streak: %d days", e.sessions.Context().StreakDays)
	e.rend.Sep()
}

func (e *Engine) analyze(now time.Time) {
	doc := ledger.Document{Notes: e.led.Notes(), Tasks: e.led.Tasks()}
	logs := e.logs.Entries()
	score := analytics.ProductivityScore(doc, logs, now)

	e.rend.Header("PRODUCTIVITY ANALYSIS")
	e.rend.ScoreBar(score)

	if pattern := analytics.ActivityPattern(logs); pattern != nil {
		e.rend.Blank()
		e.rend.Info("Peak hour", fmt.Sprintf("%02d:00 (%s)", pattern.PeakHour, pattern.Label))
	}

	if dist := analytics.IntentDistribution(logs, 5); len(dist) > 0 {
		e.rend.Blank()
		e.rend.Line("Most frequent actions:")
		for _, ic := range dist {
			bar := strings.Repeat("▪", min(ic.Count, 20))
			e.rend.Line("  %-16s %s %d", ic.Intent, bar, ic.Count)
		}
	}

	corr := analytics.MoodVsProductivity(e.journal.Entries(), logs)
	if corr != nil && corr.ActiveAvg != nil && corr.InactiveAvg != nil {
		e.rend.Blank()
		e.rend.Info("Mood on active days", fmt.Sprintf("%.1f / 5", *corr.ActiveAvg))
		e.rend.Info("Mood on inactive days", fmt.Sprintf("%.1f / 5", *corr.InactiveAvg))
	}
	e.rend.Sep()
}

func (e *Engine) status(now time.Time) {
	doc := ledger.Document{Notes: e.led.Notes(), Tasks: e.led.Tasks()}
	score := analytics.ProductivityScore(doc, e.logs.Entries(), now)
	ctx := e.sessions.Context()

	var activeTasks, doneTasks int
	for _, t := range doc.Tasks {
		if t.Done {
			doneTasks++
		} else {
			activeTasks++
		}
	}

	e.rend.Header("SYSTEM STATUS")
	e.rend.Info("User", e.cfg.Username)
	e.rend.Info("Session number", strconv.Itoa(ctx.SessionCount))
	e.rend.Info("Active streak", fmt.Sprintf("%d days", ctx.StreakDays))
	e.rend.Blank()
	e.rend.Info("Total notes", strconv.Itoa(len(doc.Notes)))
	e.rend.Info("Active tasks", strconv.Itoa(activeTasks))
	e.rend.Info("Done tasks", strconv.Itoa(doneTasks))
	e.rend.Blank()
	e.rend.Info("Productivity", fmt.Sprintf("%d/100", score.Total))
	if stats := e.journal.Stats(); stats != nil {
		e.rend.Info("Last mood", fmt.Sprintf("%d/5  Energy %d/5", stats.LastMood, stats.LastEnergy))
	}
	if ctx.LastNote != "" {
		e.rend.Blank()
		e.rend.Info("Last note", truncate(ctx.LastNote, 40))
	}
	if e.snaps != nil {
		if msgs, err := e.snaps.History(3); err == nil && len(msgs) > 0 {
			e.rend.Blank()
			e.rend.Line("Recent snapshots:")
			for _, m := range msgs {
				e.rend.Line("·  %s", strings.TrimSpace(m))
			}
		}
	}
	e.rend.Sep()
}

func (e *Engine) setGoal(t string) {
	body := payload(t, 2)
	if body == "" {
		e.rend.Err("Goal must not be empty.")
		return
	}
	e.cfg.Goal = body
	if err := e.cfg.Save(); err != nil {
		e.rend.Err(fmt.Sprintf("Failed to save config: %v", err))
		return
	}
	e.rend.OK("Goal updated.")
}

func (e *Engine) setName(t string) {
	name := payload(t, 2)
	if name == "" {
		e.rend.Err("Name must not be empty.")
		return
	}
	e.cfg.Username = name
	if err := e.cfg.Save(); err != nil {
		e.rend.Err(fmt.Sprintf("Failed to save config: %v", err))
		return
	}
	e.rend.OK(fmt.Sprintf("Username → '%s'", name))
}

func (e *Engine) showConfig() {
	e.rend.Header("CONFIGURATION")
	e.rend.Info("username", e.cfg.Username)
	e.rend.Info("goal", e.cfg.Goal)
	e.rend.Info("data_dir", e.cfg.DataDir)
	e.rend.Info("strict_mode", strconv.FormatBool(e.cfg.StrictMode))
	e.rend.Info("show_timestamps", strconv.FormatBool(e.cfg.ShowTimestamps))
	e.rend.Info("color", strconv.FormatBool(e.cfg.Color))
	e.rend.Info("max_logs", strconv.Itoa(e.cfg.Memory.MaxLogs))
	e.rend.Info("short_term_max", strconv.Itoa(e.cfg.Memory.ShortTermMax))
	e.rend.Info("long_term_max", strconv.Itoa(e.cfg.Memory.LongTermMax))
	e.rend.Info("mood_log_max", strconv.Itoa(e.cfg.Memory.MoodLogMax))
	e.rend.Info("git.snapshots", strconv.FormatBool(e.cfg.Git.Snapshots))
	e.rend.Sep()
}

func (e *Engine) search(t string) {
	query := payload(t, 1)
	if query == "" {
		e.rend.Err("Enter a keyword.")
		return
	}
	e.rend.SearchResults(query, e.led.Search(query))
}

func (e *Engine) exportData(now time.Time) {
	path := filepath.Join(e.cfg.ExportDir(), fmt.Sprintf("akaru_export_%s.txt", now.Format("20060102_150405")))

	var b strings.Builder
	b.WriteString("AKARU CORE – Data Export\n")
	fmt.Fprintf(&b, "Time   : %s\n", now.Format("02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "User   : %s\n", e.cfg.Username)
	b.WriteString(strings.Repeat("=", 50) + "\n\nNOTES:\n")
	for _, n := range e.led.Notes() {
		fmt.Fprintf(&b, "  #%d [%s] %s\n", n.ID, n.CreatedAt.Format(time.RFC3339), n.Text)
	}
	b.WriteString("\nTASKS:\n")
	for _, t := range e.led.Tasks() {
		status := "[ ]"
		if t.Done {
			status = "[✓]"
		}
		fmt.Fprintf(&b, "  #%d %s [%s] %s\n", t.ID, status, t.CreatedAt.Format(time.RFC3339), t.Text)
	}
	fmt.Fprintf(&b, "\nGOAL: %s\n", e.cfg.Goal)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.rend.Err(fmt.Sprintf("Failed to create export directory: %v", err))
		return
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		e.rend.Err(fmt.Sprintf("Failed to export: %v", err))
		return
	}
	e.rend.OK(fmt.Sprintf("Exported to '%s'.", path))
}

func (e *Engine) resetLog() {
	if !e.confirm("Reset all logs? (y/N): ") {
		e.rend.Dim("Cancelled.")
		return
	}
	if err := e.logs.Reset(); err != nil {
		e.rend.Err(fmt.Sprintf("Failed to reset log: %v", err))
		return
	}
	e.rend.OK("Log reset.")
}

func (e *Engine) printHelp() {
	e.rend.Header("AVAILABLE COMMANDS")
	groups := []struct {
		title string
		cmds  [][2]string
	}{
		{"NOTES", [][2]string{
			{"catat <text>", "Save a new note"},
			{"lihat catatan", "List all notes"},
			{"hapus catatan <no>", "Delete a note"},
		}},
		{"TASKS", [][2]string{
			{"tugas <text>", "Add a new task"},
			{"lihat tugas", "List all tasks"},
			{"selesai <no>", "Mark a task done"},
			{"hapus tugas <no>", "Delete a task"},
		}},
		{"MOOD & INSIGHT", [][2]string{
			{"mood", "Mood & energy check-in"},
			{"lihat mood", "Mood history"},
			{"summary", "Daily summary"},
			{"summary minggu", "Weekly summary"},
			{"analisis", "Local productivity analysis"},
		}},
		{"SYSTEM", [][2]string{
			{"cari <word>", "Search notes & tasks"},
			{"status", "System overview"},
			{"doktrin", "Show the doctrine"},
			{"goal", "Show the active goal"},
			{"set goal <text>", "Change the active goal"},
			{"set nama <name>", "Change the username"},
			{"config", "Show the configuration"},
			{"ekspor", "Export data to TXT"},
			{"reset log", "Clear all logs"},
			{"lihat log", "Last 10 log entries"},
			{"bersih", "Clear the screen"},
			{"exit / quit", "Quit"},
		}},
	}
	for _, g := range groups {
		e.rend.Blank()
		e.rend.Dim(g.title)
		for _, c := range g.cmds {
			e.rend.Line("%-24s %s", c[0], c[1])
		}
	}
	e.rend.Sep()
}
