// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"sort"
	"time"

	"github.com/akaru-cli/akaru/internal/tiered"
)

// Weekly summarizes the last seven days of tiered history
type Weekly struct {
	Interactions int
	ActiveDays   int
	TopTopics    []TopicCount
	DominantMood string
	Pattern      *Pattern
}

// WeeklySummary aggregates the combined short+long history over the
// last seven days. Interactions is zero when the week was silent.
func WeeklySummary(short tiered.ShortTerm, long tiered.LongTerm, now time.Time) Weekly {
	cutoff := now.AddDate(0, 0, -7).Format(DateLayout)

	combined := append(append([]tiered.Entry{}, short.History...), long.History...)
	var week []tiered.Entry
	for _, e := range combined {
		if e.Time.Format(DateLayout) >= cutoff {
			week = append(week, e)
		}
	}

	if len(week) == 0 {
		return Weekly{}
	}

	days := make(map[string]bool)
	times := make([]time.Time, 0, len(week))
	topicCounts := make(map[string]int)
	topicFirst := make(map[string]int)
	moodCounts := make(map[string]int)
	moodFirst := make(map[string]int)

	for i, e := range week {
		days[e.Time.Format(DateLayout)] = true
		times = append(times, e.Time)
		for _, topic := range e.Tags.Topics {
			if _, ok := topicFirst[topic]; !ok {
				topicFirst[topic] = i
			}
			topicCounts[topic]++
		}
		if e.Tags.Mood != "" {
			if _, ok := moodFirst[e.Tags.Mood]; !ok {
				moodFirst[e.Tags.Mood] = i
			}
			moodCounts[e.Tags.Mood]++
		}
	}

	topics := make([]TopicCount, 0, len(topicCounts))
	for topic, c := range topicCounts {
		topics = append(topics, TopicCount{Topic: topic, Count: c})
	}
	sort.SliceStable(topics, func(i, j int) bool {
		if topics[i].Count != topics[j].Count {
			return topics[i].Count > topics[j].Count
		}
		return topicFirst[topics[i].Topic] < topicFirst[topics[j].Topic]
	})
	if len(topics) > 3 {
		topics = topics[:3]
	}

	dominant := ""
	for label, c := range moodCounts {
		if dominant == "" || c > moodCounts[dominant] || (c == moodCounts[dominant] && moodFirst[label] < moodFirst[dominant]) {
			dominant = label
		}
	}

	return Weekly{
		Interactions: len(week),
		ActiveDays:   len(days),
		TopTopics:    topics,
		DominantMood: dominant,
		Pattern:      HourPattern(times),
	}
}
