// Package store persists the reward ledger and game results in SQLite and serves player rankings
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// StandingCacheSize bounds the per-player standing cache
const StandingCacheSize = 128

// Store is the ledger database
type Store struct {
	db    *sql.DB
	log   *logrus.Entry
	cache *lru.Cache[string, Standing]
}

// Open creates the database directory and schema at path
func Open(path string, log *logrus.Entry) (*Store, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// Single writer avoids SQLITE_BUSY between the recorder and ranking reads
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	if err := createSchemas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}

	cache, err := lru.New[string, Standing](StandingCacheSize)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create standing cache: %w", err)
	}

	s := &Store{
		db:    db,
		log:   log.WithField("component", "store"),
		cache: cache,
	}
	s.log.WithField("path", path).Info("ledger opened")
	return s, nil
}

// Close closes the database
func (s *Store) Close() error {
	s.cache.Purge()
	return s.db.Close()
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			last_seen INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			tokens INTEGER NOT NULL,
			xp INTEGER NOT NULL,
			consecutive_wins INTEGER NOT NULL,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			claimed_at INTEGER NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		);`,
		`CREATE TABLE IF NOT EXISTS idle_accruals (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			amount INTEGER NOT NULL,
			play_time INTEGER NOT NULL,
			accrued_at INTEGER NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		);`,
		`CREATE TABLE IF NOT EXISTS game_results (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			length INTEGER NOT NULL,
			cause TEXT NOT NULL,
			ended_at INTEGER NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);`,
		`CREATE INDEX IF NOT EXISTS idx_rewards_player ON rewards(player);`,
		`CREATE INDEX IF NOT EXISTS idx_idle_player ON idle_accruals(player);`,
		`CREATE INDEX IF NOT EXISTS idx_results_player ON game_results(player);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// touchSession upserts the session row inside tx
func touchSession(ctx context.Context, tx *sql.Tx, session, player string, at time.Time) error {
	query := `
		INSERT INTO sessions (session_id, player, started_at, last_seen)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET last_seen=excluded.last_seen
	`
	ms := at.UnixMilli()
	if _, err := tx.ExecContext(ctx, query, session, player, ms, ms); err != nil {
		return fmt.Errorf("failed to upsert session: %w", err)
	}
	return nil
}

// write runs fn in a transaction after touching the session, then drops the player's cached standing
func (s *Store) write(ctx context.Context, session, player string, at time.Time, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := touchSession(ctx, tx, session, player, at); err != nil {
		return err
	}
	if fn != nil {
		if err := fn(tx); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	s.cache.Remove(player)
	return nil
}
