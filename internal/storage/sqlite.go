// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

// Solve is one recorded solve of a board.
type Solve struct {
	ID        int64
	RunID     string
	BoardID   string
	Player    string
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			board_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_board_id ON solves(board_id);
		CREATE INDEX IF NOT EXISTS idx_solves_best ON solves(board_id, moves ASC, duration_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSolve records a solve. An empty RunID is replaced with a new UUID.
// Returns the run ID of the stored record.
func (s *Store) SaveSolve(rec Solve) (string, error) {
	if rec.BoardID == "" {
		return "", errors.New("storage: solve without board id")
	}
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO solves (run_id, board_id, player, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.RunID, rec.BoardID, rec.Player, rec.Moves, rec.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solve: %w", err)
	}
	return rec.RunID, nil
}

// BestSolves retrieves the best N solves of a board: fewest moves first,
// then fastest.
func (s *Store) BestSolves(boardID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, board_id, player, moves, duration_ms, created_at
		 FROM solves
		 WHERE board_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		boardID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		sv, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return solves, nil
}

// SolveByRun retrieves a solve by its run ID. Returns nil if none exists.
func (s *Store) SolveByRun(runID string) (*Solve, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, board_id, player, moves, duration_ms, created_at
		 FROM solves
		 WHERE run_id = ?`,
		runID,
	)
	sv, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sv, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (Solve, error) {
	var sv Solve
	var durationMS int64
	var createdAt any
	if err := sc.Scan(&sv.ID, &sv.RunID, &sv.BoardID, &sv.Player, &sv.Moves, &durationMS, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sv, err
		}
		return sv, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	sv.Duration = time.Duration(durationMS) * time.Millisecond
	sv.CreatedAt = parseTime(createdAt)
	return sv, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestMoves returns the fewest moves any solve of the board needed.
// Returns 0 if the board was never solved.
func (s *Store) BestMoves(boardID string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM solves WHERE board_id = ?",
		boardID,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearSolves deletes all solves of the given board.
func (s *Store) ClearSolves(boardID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	BoardID    string
	Solves     int
	BestMoves  int
	AvgMoves   float64
	Fastest    time.Duration
	LastPlayed time.Time
}

// GetBoardStats retrieves aggregated statistics for a specific board.
func (s *Store) GetBoardStats(boardID string) (*BoardStats, error) {
	stats := &BoardStats{BoardID: boardID}

	var fastestMS int64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0),
		        COALESCE(MIN(duration_ms), 0), MAX(created_at)
		 FROM solves WHERE board_id = ?`,
		boardID,
	).Scan(&stats.Solves, &stats.BestMoves, &stats.AvgMoves, &fastestMS, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	stats.Fastest = time.Duration(fastestMS) * time.Millisecond
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// GetAllBoardStats retrieves statistics for every board that has been solved.
func (s *Store) GetAllBoardStats() (map[string]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_id, COUNT(*), MIN(moves), AVG(moves), MIN(duration_ms), MAX(created_at)
		 FROM solves
		 GROUP BY board_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BoardStats)
	for rows.Next() {
		var st BoardStats
		var fastestMS int64
		var lastPlayed any
		if err := rows.Scan(&st.BoardID, &st.Solves, &st.BestMoves, &st.AvgMoves, &fastestMS, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Fastest = time.Duration(fastestMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.BoardID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
