// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package tiered

import (
	"fmt"
	"time"

	"github.com/akaru-cli/akaru/internal/store"
)

// Streak state labels for reports
const (
	StateSafe     = "aman"
	StateCaution  = "waspada"
	StateCritical = "kritis"
)

// StreakStatus is the read-time view of the long-term streak, including
// the inactivity gap and its warning message
type StreakStatus struct {
	Current  int
	Best     int
	LastDate string
	GapDays  int
	Warning  string
	State    string
}

// UpdateStreak advances the long-term streak from the newest short-term
// entry, evaluated at the current time.
func (m *Manager) UpdateStreak() (Streak, error) {
	return m.UpdateStreakAt(time.Now())
}

// UpdateStreakAt derives the last-active date from the final short-term
// entry. Only when that date is today does the streak move: increment if
// the stored date is yesterday, reset to 1 if it is any other day.
// Inactivity never decays the counter here; the gap is reported by
// Status instead.
func (m *Manager) UpdateStreakAt(now time.Time) (Streak, error) {
	short := m.LoadShort()
	long := m.LoadLong()
	streak := long.Streak

	if len(short.History) == 0 {
		return streak, nil
	}

	lastDate := short.History[len(short.History)-1].Time.Format(DateLayout)
	today := now.Format(DateLayout)
	if lastDate != today {
		return streak, nil
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if streak.LastDate == yesterday {
		streak.Current++
	} else if streak.LastDate != today {
		streak.Current = 1
	}
	streak.LastDate = today
	if streak.Current > streak.Best {
		streak.Best = streak.Current
	}

	long.Streak = streak
	if err := store.Save(m.longPath, long); err != nil {
		return streak, err
	}
	return streak, nil
}

// Status reports the streak with its inactivity gap, evaluated now
func (m *Manager) Status() StreakStatus {
	return m.StatusAt(time.Now())
}

// StatusAt reports the streak with its inactivity gap at the given time
func (m *Manager) StatusAt(now time.Time) StreakStatus {
	streak := m.LoadLong().Streak

	gapDays := 0
	if streak.LastDate != "" {
		if last, err := time.Parse(DateLayout, streak.LastDate); err == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			last = time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, now.Location())
			gapDays = int(today.Sub(last).Hours() / 24)
			if gapDays < 0 {
				gapDays = 0
			}
		}
	}

	var warning string
	switch {
	case gapDays >= 3:
		warning = fmt.Sprintf("Not active for %d days, streak at risk.", gapDays)
	case gapDays == 2:
		warning = "2 days inactive, act now or the streak breaks."
	case streak.Current > 0 && gapDays == 1:
		warning = "Not active today yet, the streak can still continue."
	}

	state := StateCaution
	if gapDays == 0 {
		state = StateSafe
	} else if gapDays >= 3 {
		state = StateCritical
	}

	return StreakStatus{
		Current:  streak.Current,
		Best:     streak.Best,
		LastDate: streak.LastDate,
		GapDays:  gapDays,
		Warning:  warning,
		State:    state,
	}
}
