// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/akaru-cli/akaru/internal/activity"
	"github.com/akaru-cli/akaru/internal/config"
	"github.com/akaru-cli/akaru/internal/display"
	"github.com/akaru-cli/akaru/internal/engine"
	"github.com/akaru-cli/akaru/internal/gitlog"
	"github.com/akaru-cli/akaru/internal/insight"
	"github.com/akaru-cli/akaru/internal/ledger"
	"github.com/akaru-cli/akaru/internal/mood"
	"github.com/akaru-cli/akaru/internal/server"
	"github.com/akaru-cli/akaru/internal/session"
	"github.com/akaru-cli/akaru/internal/tiered"
	"github.com/akaru-cli/akaru/pkg/scheduler"
)

// Version is set at build time via ldflags.
var Version string

func main() {
	// Logging goes to stderr; in serve mode stdout carries only JSON-RPC.
	log.SetOutput(os.Stderr)

	configPath := flag.String("config", "", "Path to config file")
	serveMode := flag.Bool("serve", false, "Run as MCP server over stdio")
	interval := flag.Int("interval", 30, "Maintenance interval in minutes (serve mode)")

	insightMode := flag.Bool("insight", false, "Print an insight report and exit")
	shortReport := flag.Bool("short", false, "Short insight report (with --insight)")
	streakReport := flag.Bool("streak", false, "Streak report only (with --insight)")
	moodReport := flag.Bool("mood", false, "Mood report only (with --insight)")
	exportFormat := flag.String("export", "", "Export the insight report (txt, log, json or yaml)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s %s — %s\n\n", display.AppName, display.Version, display.Tagline)
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Modes:\n")
		fmt.Fprintf(os.Stderr, "  %s                     Interactive journal\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --serve             MCP server over stdio\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --insight           Full insight report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --insight --short   Condensed insight report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --insight --streak  Streak report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --insight --mood    Mood report\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *serveMode && *insightMode {
		log.Fatal("ERROR: --serve and --insight cannot be used together")
	}
	if *exportFormat != "" && !*insightMode {
		log.Fatal("ERROR: --export requires --insight")
	}

	cfg := loadConfig(*configPath)
	if err := cfg.EnsureDataDir(); err != nil {
		log.Fatalf("Failed to prepare data directory: %v", err)
	}

	switch {
	case *insightMode:
		runInsight(cfg, *shortReport, *streakReport, *moodReport, *exportFormat)
	case *serveMode:
		runServe(cfg, *interval)
	default:
		runInteractive(cfg, os.Stdin)
	}
}

func loadConfig(path string) *config.Config {
	if path != "" {
		cfg, err := config.LoadFromPath(path)
		if err != nil {
			log.Fatalf("Failed to load config from %s: %v", path, err)
		}
		return cfg
	}
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: failed to load config: %v", err)
		log.Println("Using built-in defaults")
		return config.DefaultConfig()
	}
	return cfg
}

// runInsight prints one report to stdout and exits.
func runInsight(cfg *config.Config, short, streak, moodOnly bool, exportFormat string) {
	led := ledger.Open(cfg.LedgerFile())
	logs := activity.Open(cfg.LogFile(), cfg.Memory.MaxLogs)
	tm := newTieredManager(cfg)
	reporter := insight.NewReporter(cfg, tm, led, logs)

	mode := insight.ModeFull
	switch {
	case streak:
		mode = insight.ModeStreak
	case moodOnly:
		mode = insight.ModeMood
	case short:
		mode = insight.ModeShort
	}

	content, err := reporter.Generate(mode)
	if err != nil {
		log.Fatalf("Failed to generate insight: %v", err)
	}
	fmt.Println(content)

	if exportFormat != "" {
		path, err := reporter.Export(content, exportFormat)
		if err != nil {
			log.Fatalf("Failed to export insight: %v", err)
		}
		fmt.Printf("Exported to %s\n", path)
	}
}

// runServe blocks serving MCP over stdio with the maintenance scheduler
// running in the background.
func runServe(cfg *config.Config, intervalMinutes int) {
	log.Printf("Starting %s MCP server...", display.AppName)

	srv := server.NewMCPServer(cfg)
	tc := srv.ToolContext()

	var snaps *gitlog.Snapshotter
	if cfg.Git.Snapshots {
		s, err := gitlog.Open(cfg.DataDir, cfg.Git.Author, cfg.Git.Email)
		if err != nil {
			log.Printf("Git snapshots disabled: %v", err)
		} else {
			snaps = s
		}
	}

	sched := scheduler.NewScheduler(cfg, tc.TM, tc.Reporter, snaps, intervalMinutes)
	sched.RunMaintenance()
	sched.Start()
	defer sched.Stop()

	log.Printf("Maintenance scheduler started (interval: %d minutes)", intervalMinutes)
	log.Println("MCP server ready (stdio mode) - 5 tools registered")

	if err := srv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}

// runInteractive drives the journal REPL until exit or EOF.
func runInteractive(cfg *config.Config, in io.Reader) {
	rend := display.NewRenderer(os.Stdout, cfg.Color)

	led := ledger.Open(cfg.LedgerFile())
	journal := mood.OpenJournal(cfg.MoodFile())
	logs := activity.Open(cfg.LogFile(), cfg.Memory.MaxLogs)
	sessions := session.Open(cfg.ContextFile())

	var snaps *gitlog.Snapshotter
	if cfg.Git.Snapshots {
		s, err := gitlog.Open(cfg.DataDir, cfg.Git.Author, cfg.Git.Email)
		if err != nil {
			log.Printf("Git snapshots disabled: %v", err)
		} else {
			snaps = s
		}
	}

	eng := engine.New(cfg, rend, led, journal, logs, sessions, snaps, in)

	sessionCtx := sessions.Context()
	if err := sessions.StartSession(); err != nil {
		log.Printf("Failed to start session: %v", err)
	}

	rend.Clear()
	rend.Banner(cfg, time.Now())
	rend.Greeting(sessionCtx, cfg, time.Now())

	for {
		rend.Blank()
		line, err := eng.ReadLine(cfg.Username + " ❯ ")
		if err != nil {
			rend.Blank()
			break
		}
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "exit", "quit", "keluar", "q":
			closeSession(rend, sessions, snaps)
			return
		}

		eng.Handle(line)
	}

	closeSession(rend, sessions, snaps)
}

func closeSession(rend *display.Renderer, sessions *session.Manager, snaps *gitlog.Snapshotter) {
	if snaps != nil {
		var formats gitlog.MessageFormats
		if _, err := snaps.Snapshot(formats.SessionClose(sessions.Context().SessionCount)); err != nil {
			log.Printf("Session snapshot failed: %v", err)
		}
	}
	rend.Blank()
	rend.Dim(display.AppName + " offline. Stay consistent.")
}

func newTieredManager(cfg *config.Config) *tiered.Manager {
	return tiered.NewManager(cfg.ShortTermFile(), cfg.LongTermFile(), tiered.Limits{
		ShortTermMax: cfg.Memory.ShortTermMax,
		LongTermMax:  cfg.Memory.LongTermMax,
		MoodLogMax:   cfg.Memory.MoodLogMax,
	})
}
