// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package analytics

import (
	"math"
	"sort"

	"github.com/akaru-cli/akaru/internal/tiered"
)

// TopicCount is one entry of the topic frequency ranking
type TopicCount struct {
	Topic string `json:"topic" yaml:"topic"`
	Count int    `json:"count" yaml:"count"`
}

// TopicFrequency merges the persisted long-term topic table with a live
// recount of the not-yet-promoted short-term topics and returns the top
// n, count descending. Ties are broken by insertion order into the
// merged table: persisted topics first (alphabetically, since the JSON
// table carries no order), then short-term topics in appearance order.
func TopicFrequency(short tiered.ShortTerm, long tiered.LongTerm, n int) []TopicCount {
	freq := make(map[string]int, len(long.TopicFreq))
	var order []string

	persisted := make([]string, 0, len(long.TopicFreq))
	for topic := range long.TopicFreq {
		persisted = append(persisted, topic)
	}
	sort.Strings(persisted)
	for _, topic := range persisted {
		freq[topic] = long.TopicFreq[topic]
		order = append(order, topic)
	}

	for _, e := range short.History {
		for _, topic := range e.Tags.Topics {
			if _, ok := freq[topic]; !ok {
				order = append(order, topic)
			}
			freq[topic]++
		}
	}

	rank := make(map[string]int, len(order))
	for i, topic := range order {
		rank[topic] = i
	}

	out := make([]TopicCount, 0, len(order))
	for _, topic := range order {
		out = append(out, TopicCount{Topic: topic, Count: freq[topic]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return rank[out[i].Topic] < rank[out[j].Topic]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
