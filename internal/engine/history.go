// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package engine

import (
	"strings"
	"time"

	"github.com/akaru-cli/akaru/internal/store"
	"github.com/akaru-cli/akaru/internal/tiered"
)

// Keyword tables for the interaction tagger. Matching is substring
// based over the lowercased input, first table that hits wins for mood.
var (
	positiveWords = []string{"done", "finished", "great", "good", "productive", "win", "semangat", "mantap", "berhasil", "selesai"}
	negativeWords = []string{"tired", "stuck", "bad", "fail", "stress", "capek", "males", "gagal", "berat"}
	confusedWords = []string{"confused", "unsure", "lost", "bingung", "gimana", "why"}
)

var topicKeywords = map[string][]string{
	"work":     {"work", "kerja", "project", "deadline", "meeting", "client"},
	"study":    {"study", "belajar", "course", "read", "baca", "exam"},
	"health":   {"health", "sleep", "tidur", "workout", "olahraga", "sakit"},
	"finance":  {"money", "uang", "budget", "pay", "bayar", "saving"},
	"personal": {"family", "keluarga", "friend", "teman", "home", "rumah"},
}

// topicOrder fixes the scan order of the topic table so tagging is
// deterministic.
var topicOrder = []string{"work", "study", "health", "finance", "personal"}

// TagText derives mood/topic tags from raw input text.
func TagText(text string) tiered.Tags {
	t := strings.ToLower(text)

	var tags tiered.Tags
	switch {
	case containsAny(t, positiveWords):
		tags.Mood = tiered.MoodPositive
	case containsAny(t, negativeWords):
		tags.Mood = tiered.MoodNegative
	case containsAny(t, confusedWords):
		tags.Mood = tiered.MoodConfused
	}

	for _, topic := range topicOrder {
		if containsAny(t, topicKeywords[topic]) {
			tags.Topics = append(tags.Topics, topic)
		}
	}
	return tags
}

func containsAny(t string, words []string) bool {
	for _, w := range words {
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}

type historyDocument struct {
	History []tiered.Entry `json:"history"`
}

// RecordInteraction appends a tagged entry to the bridge history
// document the tiered memory syncs from.
func (e *Engine) RecordInteraction(text string) error {
	return e.RecordInteractionAt(text, time.Now())
}

// RecordInteractionAt is RecordInteraction with a fixed timestamp, for
// tests.
func (e *Engine) RecordInteractionAt(text string, now time.Time) error {
	path := e.cfg.MainHistoryFile()
	doc := store.Load(path, func() historyDocument { return historyDocument{} })
	doc.History = append(doc.History, tiered.Entry{Time: now, Tags: TagText(text)})
	return store.Save(path, doc)
}
