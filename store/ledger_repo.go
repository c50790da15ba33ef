package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SessionRecord marks a session as seen
type SessionRecord struct {
	Session string
	Player  string
	At      time.Time
}

// RewardRecord is one accepted win claim
type RewardRecord struct {
	Session         string
	Player          string
	Tokens          int
	XP              int
	ConsecutiveWins int
	Level           int
	Score           int
	At              time.Time
}

// IdleRecord is one idle XP payout
type IdleRecord struct {
	Session  string
	Player   string
	Amount   int
	PlayTime int
	At       time.Time
}

// ResultRecord is one finished run
type ResultRecord struct {
	Session string
	Player  string
	Score   int
	Level   int
	Length  int
	Cause   string
	At      time.Time
}

// Standing is a player's aggregate ranking row
type Standing struct {
	Player    string `json:"player"`
	Tokens    int    `json:"tokens"`
	XP        int    `json:"xp"`
	BestScore int    `json:"best_score"`
	BestLevel int    `json:"best_level"`
	MaxWins   int    `json:"max_wins"`
	PlayTime  int    `json:"play_time"`
	Games     int    `json:"games"`
}

// RecordSession upserts a session row
func (s *Store) RecordSession(ctx context.Context, r SessionRecord) error {
	return s.write(ctx, r.Session, r.Player, r.At, nil)
}

// RecordReward appends a win claim
func (s *Store) RecordReward(ctx context.Context, r RewardRecord) error {
	return s.write(ctx, r.Session, r.Player, r.At, func(tx *sql.Tx) error {
		query := `
			INSERT INTO rewards (id, session_id, player, tokens, xp, consecutive_wins, level, score, claimed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			uuid.NewString(), r.Session, r.Player, r.Tokens, r.XP, r.ConsecutiveWins, r.Level, r.Score, r.At.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("failed to append reward: %w", err)
		}
		return nil
	})
}

// RecordIdle appends an idle payout
func (s *Store) RecordIdle(ctx context.Context, r IdleRecord) error {
	return s.write(ctx, r.Session, r.Player, r.At, func(tx *sql.Tx) error {
		query := `
			INSERT INTO idle_accruals (id, session_id, player, amount, play_time, accrued_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query, uuid.NewString(), r.Session, r.Player, r.Amount, r.PlayTime, r.At.UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to append idle accrual: %w", err)
		}
		return nil
	})
}

// RecordResult appends a finished run
func (s *Store) RecordResult(ctx context.Context, r ResultRecord) error {
	return s.write(ctx, r.Session, r.Player, r.At, func(tx *sql.Tx) error {
		query := `
			INSERT INTO game_results (id, session_id, player, score, level, length, cause, ended_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`
		_, err := tx.ExecContext(ctx, query,
			uuid.NewString(), r.Session, r.Player, r.Score, r.Level, r.Length, r.Cause, r.At.UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("failed to append game result: %w", err)
		}
		return nil
	})
}

const standingSelect = `
	SELECT p.player,
		COALESCE((SELECT SUM(tokens) FROM rewards r WHERE r.player = p.player), 0) AS tokens,
		COALESCE((SELECT SUM(xp) FROM rewards r WHERE r.player = p.player), 0)
			+ COALESCE((SELECT SUM(amount) FROM idle_accruals i WHERE i.player = p.player), 0) AS xp,
		MAX(COALESCE((SELECT MAX(score) FROM game_results g WHERE g.player = p.player), 0),
			COALESCE((SELECT MAX(score) FROM rewards r WHERE r.player = p.player), 0)) AS best_score,
		MAX(COALESCE((SELECT MAX(level) FROM game_results g WHERE g.player = p.player), 0),
			COALESCE((SELECT MAX(level) FROM rewards r WHERE r.player = p.player), 0)) AS best_level,
		COALESCE((SELECT MAX(consecutive_wins) FROM rewards r WHERE r.player = p.player), 0) AS max_wins,
		(SELECT COUNT(*) FROM idle_accruals i WHERE i.player = p.player) AS play_time,
		(SELECT COUNT(*) FROM game_results g WHERE g.player = p.player) AS games
	FROM (SELECT DISTINCT player FROM sessions) p
`

func scanStanding(row interface{ Scan(...any) error }) (Standing, error) {
	var st Standing
	err := row.Scan(&st.Player, &st.Tokens, &st.XP, &st.BestScore, &st.BestLevel, &st.MaxWins, &st.PlayTime, &st.Games)
	return st, err
}

// Leaderboard ranks players by total tokens, then best score
func (s *Store) Leaderboard(ctx context.Context, limit int) ([]Standing, error) {
	if limit <= 0 {
		limit = 10
	}
	query := standingSelect + ` ORDER BY tokens DESC, best_score DESC, p.player ASC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var out []Standing
	for rows.Next() {
		st, err := scanStanding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Standing returns one player's aggregate row, cached until the player's next write
// Unknown players get a zero Standing
func (s *Store) Standing(ctx context.Context, player string) (Standing, error) {
	if st, ok := s.cache.Get(player); ok {
		return st, nil
	}

	st, err := scanStanding(s.db.QueryRowContext(ctx, standingSelect+` WHERE p.player = ?`, player))
	if errors.Is(err, sql.ErrNoRows) {
		st = Standing{Player: player}
	} else if err != nil {
		return Standing{}, fmt.Errorf("failed to query standing: %w", err)
	}
	s.cache.Add(player, st)
	return st, nil
}
