package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gaia-snake/audio"
	"github.com/lixenwraith/gaia-snake/config"
	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/input"
	"github.com/lixenwraith/gaia-snake/logger"
	"github.com/lixenwraith/gaia-snake/network"
	"github.com/lixenwraith/gaia-snake/parameter"
	"github.com/lixenwraith/gaia-snake/reward"
	"github.com/lixenwraith/gaia-snake/service"
	"github.com/lixenwraith/gaia-snake/status"
	"github.com/lixenwraith/gaia-snake/store"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	envFlag    = flag.String("env", ".env", "dotenv file applied before environment overrides")
	debugFlag  = flag.Bool("debug", false, "write a debug log under logs/")
	seedFlag   = flag.Uint64("seed", 0, "world seed, 0 for time-based")
	playerFlag = flag.String("player", "", "player name for the ledger")
	feedFlag   = flag.String("feed", "", "serve the spectator feed on this address")
	muteFlag   = flag.Bool("mute", false, "disable sound")
	writeFlag  = flag.String("write-config", "", "write the effective config to this path and exit")
	topFlag    = flag.Int("top", 5, "leaderboard rows printed on exit")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 2
	}
	applyFlags(&cfg)
	if *writeFlag != "" {
		if err := cfg.Write(*writeFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		return 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	keys := input.DefaultKeyTable()
	if cfg.Keymap != "" {
		data, err := os.ReadFile(cfg.Keymap)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keymap: %v\n", err)
			return 2
		}
		override, err := input.LoadKeyConfig(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keymap %s: %v\n", cfg.Keymap, err)
			return 2
		}
		keys = input.MergeKeyTable(keys, override)
	}

	base, logFile, err := logger.New(logger.Options{
		Enabled: cfg.Log.Enabled,
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := base.WithField("player", cfg.Player)
	log.WithField("seed", cfg.Seed).Info("starting")

	reg := status.NewRegistry()
	ecfg := cfg.Engine()

	// Ledger store
	var (
		db  *store.Store
		rec *store.Recorder
	)
	if cfg.Store.Enabled {
		db, err = store.Open(cfg.Store.Path, log.WithField("component", "store"))
		if err != nil {
			log.WithError(err).Warn("ledger store unavailable")
			fmt.Fprintf(os.Stderr, "store: %v (continuing without ledger)\n", err)
		} else {
			defer db.Close()
			ecfg.Ledger = seedLedger(db, cfg.Player, log)
			rec = store.NewRecorder(db, 0)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screenDone := false
	finishScreen := func() {
		if !screenDone {
			screenDone = true
			screen.Fini()
		}
	}
	defer finishScreen()

	// Engine goroutines restore the terminal before reporting a crash
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGAME CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	clock := engine.NewTimeProvider()
	game := engine.NewGame(ecfg, clock, log.WithField("component", "engine"), reg)
	sched := engine.NewScheduler(game, clock, log.WithField("component", "scheduler"), reg)

	hub := service.NewHub(log.WithField("component", "services"))
	var schedDeps []string

	// Audio
	var sound muter
	if cfg.Audio.Enabled {
		acfg := audio.DefaultConfig()
		acfg.MasterVolume = cfg.Audio.Volume
		player := audio.NewPlayer(acfg)
		hub.Register(&service.Func{
			ID: "audio",
			OnStart: func() error {
				if err := player.Start(); err != nil {
					log.WithError(err).Warn("audio unavailable, continuing silent")
				}
				return nil
			},
			OnStop: func() error {
				player.Close()
				return nil
			},
		})
		sched.RegisterEventHandler(audio.NewCues(player))
		sound = player
		schedDeps = append(schedDeps, "audio")
	}

	if rec != nil {
		sched.RegisterEventHandler(rec)
		hub.Register(&service.Func{
			ID:     "recorder",
			OnStop: func() error { rec.Close(); return nil },
		})
		schedDeps = append(schedDeps, "recorder")
	}

	// Spectator feed
	if cfg.Feed.Enabled {
		ncfg := network.DefaultConfig()
		ncfg.Address = cfg.Feed.Addr
		feed := network.NewFeed(ncfg, log.WithField("component", "feed"), reg)
		srv := network.NewServer(ncfg, feed)
		sched.RegisterEventHandler(feed)
		sched.RegisterSnapshotSink(feed)
		hub.Register(&service.Func{
			ID: "feed",
			OnStart: func() error {
				if err := srv.Start(); err != nil {
					log.WithError(err).Warn("feed unavailable")
					return nil
				}
				log.WithField("addr", srv.Addr()).Info("feed listening")
				return nil
			},
			OnStop: func() error {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				return srv.Stop(ctx)
			},
		})
		schedDeps = append(schedDeps, "feed")
	}

	// Scheduler starts last and stops first so sinks never see a closed recorder
	hub.Register(&service.Func{
		ID:       "scheduler",
		Requires: schedDeps,
		OnStart:  func() error { sched.Start(); return nil },
		OnStop:   func() error { sched.Stop(); return nil },
	})
	if err := hub.StartAll(); err != nil {
		finishScreen()
		fmt.Fprintf(os.Stderr, "services: %v\n", err)
		return 1
	}
	defer hub.StopAll()

	a := newApp(screen, game, input.NewMachine(keys), sound, reg, log)
	a.run(parameter.FrameUpdateInterval)

	hub.StopAll()
	finishScreen()
	log.Info("exiting")

	if rec != nil {
		if n := rec.Dropped() + rec.Failed(); n > 0 {
			fmt.Fprintf(os.Stderr, "ledger: %d records not saved\n", n)
		}
	}
	if db != nil {
		printLeaderboard(db, *topFlag)
	}
	return 0
}

// applyFlags overlays explicit command-line values on the loaded config
func applyFlags(cfg *config.Config) {
	if *debugFlag {
		cfg.Log.Enabled = true
		cfg.Log.Level = "debug"
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *playerFlag != "" {
		cfg.Player = *playerFlag
	}
	if *feedFlag != "" {
		cfg.Feed.Enabled = true
		cfg.Feed.Addr = *feedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

// seedLedger carries the player's stored totals into the first session
func seedLedger(db *store.Store, player string, log *logrus.Entry) (l reward.Ledger) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	st, err := db.Standing(ctx, player)
	if err != nil {
		log.WithError(err).Warn("standing lookup failed")
		return l
	}
	l.Tokens = st.Tokens
	l.XP = st.XP
	l.PlayTime = st.PlayTime
	return l
}

func printLeaderboard(db *store.Store, top int) {
	if top <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	rows, err := db.Leaderboard(ctx, top)
	if err != nil || len(rows) == 0 {
		return
	}
	fmt.Print(formatLeaderboard(rows))
}
