// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package engine routes raw user input to an intent and executes it
// against the persisted collections.
package engine

import "strings"

// Intents produced by Route. The command words stay in Indonesian, the
// assistant's native command set.
const (
	IntentNote        = "NOTE"
	IntentTaskAdd     = "TASK_ADD"
	IntentTaskDone    = "TASK_DONE"
	IntentDelNote     = "DEL_NOTE"
	IntentDelTask     = "DEL_TASK"
	IntentViewNotes   = "VIEW_NOTES"
	IntentViewTasks   = "VIEW_TASKS"
	IntentViewLog     = "VIEW_LOG"
	IntentViewMood    = "VIEW_MOOD"
	IntentMoodCheckin = "MOOD_CHECKIN"
	IntentSummaryWeek = "SUMMARY_WEEK"
	IntentSummaryDay  = "SUMMARY_DAY"
	IntentAnalyze     = "ANALYZE"
	IntentStatus      = "STATUS"
	IntentDoctrine    = "DOCTRINE"
	IntentGoal        = "GOAL"
	IntentSetGoal     = "SET_GOAL"
	IntentSetName     = "SET_NAME"
	IntentConfig      = "CONFIG"
	IntentSearch      = "SEARCH"
	IntentClear       = "CLEAR"
	IntentExport      = "EXPORT"
	IntentResetLog    = "RESET_LOG"
	IntentHelp        = "HELP"
	IntentUnknown     = "UNKNOWN"
)

// Route maps raw input to an intent. Prefix commands carry a payload
// after the command word, exact commands match the whole line.
func Route(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.HasPrefix(t, "catat ") || strings.HasPrefix(t, "ingat "):
		return IntentNote
	case strings.HasPrefix(t, "tugas "):
		return IntentTaskAdd
	case strings.HasPrefix(t, "selesai "):
		return IntentTaskDone
	case strings.HasPrefix(t, "hapus catatan"):
		return IntentDelNote
	case strings.HasPrefix(t, "hapus tugas"):
		return IntentDelTask
	case t == "lihat catatan" || t == "catatan":
		return IntentViewNotes
	case t == "lihat tugas" || t == "tugas":
		return IntentViewTasks
	case strings.HasPrefix(t, "lihat log") || t == "log":
		return IntentViewLog
	case t == "lihat mood":
		return IntentViewMood
	case t == "mood":
		return IntentMoodCheckin
	case t == "summary minggu":
		return IntentSummaryWeek
	case t == "summary" || t == "ringkasan":
		return IntentSummaryDay
	case t == "analisis" || t == "analyze" || t == "insight":
		return IntentAnalyze
	case t == "status":
		return IntentStatus
	case t == "doktrin":
		return IntentDoctrine
	case t == "goal":
		return IntentGoal
	case strings.HasPrefix(t, "set goal "):
		return IntentSetGoal
	case strings.HasPrefix(t, "set nama "):
		return IntentSetName
	case t == "config":
		return IntentConfig
	case strings.HasPrefix(t, "cari "):
		return IntentSearch
	case t == "bersih":
		return IntentClear
	case t == "ekspor":
		return IntentExport
	case t == "reset log":
		return IntentResetLog
	case t == "help" || t == "bantuan" || t == "?":
		return IntentHelp
	default:
		return IntentUnknown
	}
}

// ViolatesGoal reports whether the input contains one of the configured
// lazy keywords. Only NOTE and TASK_ADD input is checked by the caller.
func ViolatesGoal(text string, lazyKeywords []string) bool {
	t := strings.ToLower(text)
	for _, k := range lazyKeywords {
		if k != "" && strings.Contains(t, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
