// Package config loads host settings from a TOML file, an optional .env file and environment overrides
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/gaia-snake/core"
	"github.com/lixenwraith/gaia-snake/engine"
	"github.com/lixenwraith/gaia-snake/parameter"
	"github.com/lixenwraith/gaia-snake/world"
)

// Environment overrides
const (
	EnvSeed     = "GAIA_SEED"
	EnvPlayer   = "GAIA_PLAYER"
	EnvDB       = "GAIA_DB"
	EnvFeedAddr = "GAIA_FEED_ADDR"
	EnvLogLevel = "LOG_LEVEL"
	EnvLogFmt   = "LOG_FORMAT"
)

// Duration decodes TOML strings such as "200ms" or "1h"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full host configuration
type Config struct {
	Player string `toml:"player"`
	Seed   uint64 `toml:"seed"`   // 0 picks a time-based seed at startup
	Keymap string `toml:"keymap"` // Optional key binding override file

	Game  Game  `toml:"game"`
	Log   Log   `toml:"log"`
	Store Store `toml:"store"`
	Feed  Feed  `toml:"feed"`
	Audio Audio `toml:"audio"`
}

// Game tunes the simulation
type Game struct {
	GridSize       int      `toml:"grid_size"`
	StartX         int      `toml:"start_x"`
	StartY         int      `toml:"start_y"`
	Heading        string   `toml:"heading"`
	FoodX          int      `toml:"food_x"`
	FoodY          int      `toml:"food_y"`
	InitialBonuses int      `toml:"initial_bonuses"`
	BonusWindow    Duration `toml:"bonus_window"`
	BonusChance    float64  `toml:"bonus_chance"`
	ScorePoints    int      `toml:"score_points"`
	BonusPoints    int      `toml:"bonus_points"`
	ScorePerLevel  int      `toml:"score_per_level"`
	BaseInterval   Duration `toml:"base_interval"`
	IntervalStep   Duration `toml:"interval_step"`
	MinInterval    Duration `toml:"min_interval"`
	Elevation      int      `toml:"elevation_threshold"`
	IdleInterval   Duration `toml:"idle_interval"`
	WinThreshold   int      `toml:"win_threshold"`
}

// Log selects logger output
type Log struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
	Level   string `toml:"level"`
	Format  string `toml:"format"`
}

// Store selects the ledger database
type Store struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Feed selects the spectator websocket listener
type Feed struct {
	Enabled bool   `toml:"enabled"`
	Addr    string `toml:"addr"`
}

// Audio toggles sound cues
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Player: "player",
		Game: Game{
			GridSize:       parameter.GridSize,
			StartX:         parameter.ActorStartX,
			StartY:         parameter.ActorStartY,
			Heading:        core.DirRight.String(),
			FoodX:          parameter.FoodStartX,
			FoodY:          parameter.FoodStartY,
			InitialBonuses: parameter.InitialBonusItems,
			BonusWindow:    Duration{parameter.BonusSpawnWindow},
			BonusChance:    parameter.BonusSpawnChance,
			ScorePoints:    parameter.ScoreItemPoints,
			BonusPoints:    parameter.BonusItemPoints,
			ScorePerLevel:  parameter.ScorePerLevel,
			BaseInterval:   Duration{parameter.BaseTickInterval},
			IntervalStep:   Duration{parameter.TickIntervalDecrement},
			MinInterval:    Duration{parameter.MinTickInterval},
			Elevation:      parameter.ElevationThreshold,
			IdleInterval:   Duration{parameter.IdleXPInterval},
			WinThreshold:   parameter.WinScoreThreshold,
		},
		Log:   Log{Dir: "logs", Level: "info", Format: "text"},
		Store: Store{Enabled: true, Path: "data/ledger.db"},
		Feed:  Feed{Addr: "127.0.0.1:7777"},
		Audio: Audio{Enabled: true, Volume: parameter.AudioMasterVolume},
	}
}

// Load builds a Config from defaults, then path (if non-empty), then envFile (if present), then the environment
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("decode %s: unknown keys %s", path, strings.Join(keys, ", "))
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvPlayer); ok && v != "" {
		c.Player = v
	}
	if v, ok := os.LookupEnv(EnvDB); ok {
		c.Store.Path = v
		c.Store.Enabled = v != ""
	}
	if v, ok := os.LookupEnv(EnvFeedAddr); ok {
		c.Feed.Addr = v
		c.Feed.Enabled = v != ""
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFmt); ok && v != "" {
		c.Log.Format = v
	}
	return nil
}

// Validate rejects settings the engine cannot run with
func (c Config) Validate() error {
	g := c.Game
	if g.GridSize <= 0 {
		return fmt.Errorf("game.grid_size must be positive, got %d", g.GridSize)
	}
	start := core.Point{X: g.StartX, Y: g.StartY}
	if !start.In(g.GridSize) {
		return fmt.Errorf("game start %v outside %dx%d grid", start, g.GridSize, g.GridSize)
	}
	if _, ok := core.ParseDirection(g.Heading); !ok {
		return fmt.Errorf("game.heading %q is not Up, Down, Left or Right", g.Heading)
	}
	if g.ScorePerLevel <= 0 {
		return fmt.Errorf("game.score_per_level must be positive, got %d", g.ScorePerLevel)
	}
	if g.BaseInterval.Duration <= 0 || g.MinInterval.Duration <= 0 || g.IdleInterval.Duration <= 0 {
		return fmt.Errorf("game intervals must be positive")
	}
	if g.IntervalStep.Duration < 0 {
		return fmt.Errorf("game.interval_step must not be negative")
	}
	if g.BonusChance < 0 || g.BonusChance > 1 {
		return fmt.Errorf("game.bonus_chance %v outside [0, 1]", g.BonusChance)
	}
	if g.InitialBonuses < 0 {
		return fmt.Errorf("game.initial_bonuses must not be negative")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %v outside [0, 1]", c.Audio.Volume)
	}
	if c.Log.Format != "" && c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format %q is not text or json", c.Log.Format)
	}
	return nil
}

// Engine converts the game section into an engine configuration
func (c Config) Engine() engine.Config {
	g := c.Game
	ec := engine.DefaultConfig()
	ec.Player = c.Player
	ec.Seed = c.Seed

	heading, _ := core.ParseDirection(g.Heading)
	ec.Layout = world.Layout{
		Size:    g.GridSize,
		Start:   core.Point{X: g.StartX, Y: g.StartY},
		Heading: heading,
		Food:    core.Point{X: g.FoodX, Y: g.FoodY},
		Bonuses: g.InitialBonuses,
	}
	ec.Spawn.BonusWindow = g.BonusWindow.Duration
	ec.Spawn.BonusChance = g.BonusChance
	ec.Spawn.ScorePoints = g.ScorePoints
	ec.Spawn.BonusPoints = g.BonusPoints

	ec.Curve.ScorePerLevel = g.ScorePerLevel
	ec.Curve.Base = g.BaseInterval.Duration
	ec.Curve.Decrement = g.IntervalStep.Duration
	ec.Curve.Floor = g.MinInterval.Duration

	ec.ElevationThreshold = g.Elevation
	ec.IdleInterval = g.IdleInterval.Duration
	ec.Rules.WinThreshold = g.WinThreshold
	return ec
}

// Write encodes c as TOML to path
func (c Config) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
