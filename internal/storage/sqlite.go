// Package storage keeps a SQLite log of the rounds played during one run.
// The database lives in memory and is gone once the store is closed;
// nothing is written to disk. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
	OutcomeQuit Outcome = "quit"
)

// Store manages the in-memory round log.
type Store struct {
	db *sql.DB
}

// Round is one finished (or abandoned) round.
type Round struct {
	ID        string // Assigned by SaveRound when empty
	GameID    string
	Maze      string
	Outcome   Outcome
	Score     int
	Bonus     int
	Lives     int
	Seconds   int // Play time
	CreatedAt time.Time
}

// Stats summarises the log.
type Stats struct {
	Rounds    int
	Wins      int
	BestScore int
}

// Open creates an empty in-memory round log.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			maze TEXT NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			bonus INTEGER NOT NULL DEFAULT 0,
			lives INTEGER NOT NULL DEFAULT 0,
			seconds INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, maze, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, dropping the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound appends a round to the log and returns its ID.
func (s *Store) SaveRound(r Round) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO rounds (id, game_id, maze, outcome, score, bonus, lives, seconds)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Maze, string(r.Outcome), r.Score, r.Bonus, r.Lives, r.Seconds,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	return r.ID, nil
}

// Rounds returns up to limit rounds in the order they were played.
// A limit of zero or less returns every round.
func (s *Store) Rounds(limit int) ([]Round, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, maze, outcome, score, bonus, lives, seconds, created_at
		 FROM rounds
		 ORDER BY seq ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Maze, &outcome, &r.Score, &r.Bonus, &r.Lives, &r.Seconds, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// BestScore returns the highest score logged for a game on a maze.
// Returns 0 if no rounds exist.
func (s *Store) BestScore(gameID, maze string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE game_id = ? AND maze = ?",
		gameID, maze,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats returns the round count, the wins and the best score overall.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(score), 0)
		 FROM rounds`,
		string(OutcomeWon),
	).Scan(&st.Rounds, &st.Wins, &st.BestScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
