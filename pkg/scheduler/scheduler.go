// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scheduler runs periodic memory maintenance while the server
// is up: bridge sync, promotion, streak update and the auto insight
// log.
package scheduler

import (
	"log"
	"time"

	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/gitlog"
	"github.com/akaru-cli/akaru/internal/insight"
	"github.com/akaru-cli/akaru/internal/tiered"
)

// Scheduler drives the maintenance cycle on a fixed interval.
type Scheduler struct {
	cfg      *config.Config
	tm       *tiered.Manager
	reporter *insight.Reporter
	snaps    *gitlog.Snapshotter
	interval time.Duration
	stopChan chan bool
}

// NewScheduler creates a scheduler over the open stores. snaps may be
// nil when git snapshots are disabled.
func NewScheduler(cfg *config.Config, tm *tiered.Manager, reporter *insight.Reporter, snaps *gitlog.Snapshotter, intervalMinutes int) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		tm:       tm,
		reporter: reporter,
		snaps:    snaps,
		interval: time.Duration(intervalMinutes) * time.Minute,
		stopChan: make(chan bool),
	}
}

// Start begins the maintenance loop.
func (s *Scheduler) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.RunMaintenance()
			case <-s.stopChan:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the maintenance loop.
func (s *Scheduler) Stop() {
	s.stopChan <- true
}

// RunMaintenance executes one maintenance cycle. Failures are logged
// and never abort the remaining steps.
func (s *Scheduler) RunMaintenance() {
	if added, err := s.tm.SyncFromMain(s.cfg.MainHistoryFile()); err != nil {
		log.Printf("Failed to sync memory: %v", err)
	} else if added > 0 {
		log.Printf("Synced %d new entries into short-term memory", added)
	}

	if stats := s.tm.Stats(); stats.ShortFull {
		if promoted, err := s.tm.Promote(); err != nil {
			log.Printf("Failed to promote memory: %v", err)
		} else if promoted {
			log.Printf("Promoted %d short-term entries to long-term", stats.ShortCount)
			if s.snaps != nil {
				var formats gitlog.MessageFormats
				if _, err := s.snaps.Snapshot(formats.Promotion(stats.ShortCount)); err != nil {
					log.Printf("Failed to snapshot promotion: %v", err)
				}
			}
		}
	}

	if _, err := s.tm.UpdateStreak(); err != nil {
		log.Printf("Failed to update streak: %v", err)
	}

	if path, err := s.reporter.AutoLog(); err != nil {
		log.Printf("Failed to auto-log insight: %v", err)
	} else {
		log.Printf("Auto-log saved to %s", path)
	}
}
