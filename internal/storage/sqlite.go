// Package storage keeps the session scoreboard in an in-memory SQLite
// database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the scoreboard lives exactly as
// long as the process that opened it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding the scoreboard.
// It is safe for concurrent use; SSH sessions share one Store.
type Store struct {
	db *sql.DB
}

// Try is one finished game.
type Try struct {
	ID        int64
	RunID     string // Random identifier assigned when the try is recorded
	Player    string
	Score     int
	Obstacles int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates an empty in-memory scoreboard and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database, so pin the pool
	// to a single connection that is never recycled.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

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

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			obstacles INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tries_player ON tries(player);
		CREATE INDEX IF NOT EXISTS idx_tries_top ON tries(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the scoreboard.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordTry stores a finished game. RunID and CreatedAt are filled in when
// empty. Returns the stored try.
func (s *Store) RecordTry(t Try) (Try, error) {
	if t.Player == "" {
		return Try{}, errors.New("storage: cannot record try: empty player")
	}
	if t.RunID == "" {
		t.RunID = uuid.New().String()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO tries (run_id, player, score, obstacles, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.RunID, t.Player, t.Score, t.Obstacles, t.Duration.Milliseconds(), t.CreatedAt.UnixNano(),
	)
	if err != nil {
		return Try{}, fmt.Errorf("storage: cannot record try: %w", err)
	}

	t.ID, err = result.LastInsertId()
	if err != nil {
		return Try{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return t, nil
}

// TopScores retrieves the best N tries. An empty player means everyone.
// Results are ordered by score descending, earlier tries first on ties.
func (s *Store) TopScores(player string, limit int) ([]Try, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, player, score, obstacles, duration_ms, created_at
		 FROM tries
		 WHERE ? = '' OR player = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		player, player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var tries []Try
	for rows.Next() {
		var t Try
		var durationMS, createdAt int64
		if err := rows.Scan(&t.ID, &t.RunID, &t.Player, &t.Score, &t.Obstacles, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		t.Duration = time.Duration(durationMS) * time.Millisecond
		t.CreatedAt = time.Unix(0, createdAt)
		tries = append(tries, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return tries, nil
}

// HighScore returns the best score of player, or of everyone when player is
// empty. Returns 0 if no tries exist.
func (s *Store) HighScore(player string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM tries WHERE ? = '' OR player = ?",
		player, player,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Tries returns how many games player has finished (everyone when empty).
func (s *Store) Tries(player string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM tries WHERE ? = '' OR player = ?",
		player, player,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count tries: %w", err)
	}
	return n, nil
}

// ClearPlayer deletes every try of player.
func (s *Store) ClearPlayer(player string) error {
	_, err := s.db.Exec("DELETE FROM tries WHERE player = ?", player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear tries: %w", err)
	}
	return nil
}

// PlayerStats contains aggregated statistics for one player.
type PlayerStats struct {
	Player        string
	Tries         int
	HighScore     int
	AvgScore      float64
	TotalScore    int64
	MostObstacles int
	LongestRun    time.Duration
	LastPlayed    time.Time
}

// Stats retrieves aggregated statistics for a single player.
// A player without tries gets zero stats.
func (s *Store) Stats(player string) (*PlayerStats, error) {
	all, err := s.queryStats("WHERE player = ?", player)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return &PlayerStats{Player: player}, nil
	}
	return &all[0], nil
}

// AllStats retrieves statistics for every player, best players first.
func (s *Store) AllStats() ([]PlayerStats, error) {
	return s.queryStats("")
}

func (s *Store) queryStats(where string, args ...any) ([]PlayerStats, error) {
	rows, err := s.db.Query(
		`SELECT player, COUNT(*), MAX(score), AVG(score), SUM(score),
		        MAX(obstacles), MAX(duration_ms), MAX(created_at)
		 FROM tries `+where+`
		 GROUP BY player
		 ORDER BY MAX(score) DESC, player ASC`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	var stats []PlayerStats
	for rows.Next() {
		var st PlayerStats
		var longestMS, lastPlayed int64
		if err := rows.Scan(&st.Player, &st.Tries, &st.HighScore, &st.AvgScore, &st.TotalScore,
			&st.MostObstacles, &longestMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LongestRun = time.Duration(longestMS) * time.Millisecond
		st.LastPlayed = time.Unix(0, lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
