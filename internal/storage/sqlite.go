// Package storage provides SQLite-based persistence for saved games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tile2048/internal/games/t2048"
)

// Store manages the SQLite database connection for saved games.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// GameRecord is a saved session snapshot.
type GameRecord struct {
	ID int64
	t2048.Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MoveRecord is one journaled turn of a saved game.
type MoveRecord struct {
	GameID    int64
	Seq       int
	Direction string
	Changed   bool
	Spawned   *t2048.Coord // Nil when nothing spawned
	Score     int
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

	// Create parent directories
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

	store := &Store{
		db:     db,
		logger: log.New(io.Discard),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// SetLogger routes store diagnostics to l.
func (s *Store) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l.WithPrefix("storage")
	}
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			size INTEGER NOT NULL,
			board TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			max_tile INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			state TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_updated ON games(updated_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id INTEGER NOT NULL REFERENCES games(id),
			seq INTEGER NOT NULL,
			direction TEXT NOT NULL,
			changed INTEGER NOT NULL,
			spawn_x INTEGER,
			spawn_y INTEGER,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(game_id, seq)
		);
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

// CreateGame saves a new game from its snapshot.
// Returns the ID of the inserted record.
func (s *Store) CreateGame(snap t2048.Snapshot) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (variant, size, board, score, max_tile, moves, state)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.Variant, snap.Size, t2048.FormatBoard(snap.Board),
		snap.Score, snap.MaxTile, snap.Moves, string(snap.State),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	s.logger.Debug("game created", "id", id, "variant", snap.Variant, "size", snap.Size)
	return id, nil
}

// SaveTurn stores the snapshot after a move and journals the move, atomically.
// seq is the 1-based turn number.
func (s *Store) SaveTurn(gameID int64, seq int, snap t2048.Snapshot, res t2048.MoveResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	updated, err := tx.Exec(
		`UPDATE games
		 SET board = ?, score = ?, max_tile = ?, moves = ?, state = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		t2048.FormatBoard(snap.Board), snap.Score, snap.MaxTile, snap.Moves, string(snap.State), gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update game: %w", err)
	}
	if n, err := updated.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: game %d not found", gameID)
	}

	var spawnX, spawnY sql.NullInt64
	if res.Spawned != nil {
		spawnX = sql.NullInt64{Int64: int64(res.Spawned.X), Valid: true}
		spawnY = sql.NullInt64{Int64: int64(res.Spawned.Y), Valid: true}
	}

	if _, err := tx.Exec(
		`INSERT INTO moves (game_id, seq, direction, changed, spawn_x, spawn_y, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		gameID, seq, res.Direction.String(), res.Changed, spawnX, spawnY, res.Score,
	); err != nil {
		return fmt.Errorf("storage: cannot record move: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit turn: %w", err)
	}

	s.logger.Debug("turn saved", "game", gameID, "seq", seq, "dir", res.Direction, "changed", res.Changed)
	return nil
}

// LoadGame retrieves a saved game by ID.
// Returns nil without error if the game does not exist.
func (s *Store) LoadGame(id int64) (*GameRecord, error) {
	row := s.db.QueryRow(
		`SELECT id, variant, size, board, score, max_tile, moves, state, created_at, updated_at
		 FROM games WHERE id = ?`,
		id,
	)

	rec, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game %d: %w", id, err)
	}
	return rec, nil
}

// ListGames retrieves the most recently updated games.
func (s *Store) ListGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, size, board, score, max_tile, moves, state, created_at, updated_at
		 FROM games
		 ORDER BY updated_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		games = append(games, *rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// DeleteGame removes a game and its move journal.
func (s *Store) DeleteGame(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM moves WHERE game_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete moves: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM games WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete game: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// Moves retrieves the move journal of a game in turn order.
func (s *Store) Moves(gameID int64) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT game_id, seq, direction, changed, spawn_x, spawn_y, score, created_at
		 FROM moves
		 WHERE game_id = ?
		 ORDER BY seq`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		var spawnX, spawnY sql.NullInt64
		var createdAt any
		if err := rows.Scan(&m.GameID, &m.Seq, &m.Direction, &m.Changed, &spawnX, &spawnY, &m.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if spawnX.Valid && spawnY.Valid {
			m.Spawned = &t2048.Coord{X: int(spawnX.Int64), Y: int(spawnY.Int64)}
		}
		m.CreatedAt = parseTime(createdAt)
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moves, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(r rowScanner) (*GameRecord, error) {
	var rec GameRecord
	var board, state string
	var createdAt, updatedAt any

	if err := r.Scan(
		&rec.ID,
		&rec.Variant,
		&rec.Size,
		&board,
		&rec.Score,
		&rec.MaxTile,
		&rec.Moves,
		&state,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	values, err := t2048.ParseBoard(board)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", rec.ID, err)
	}
	rec.Board = values
	rec.State = t2048.GameStateType(state)
	rec.CreatedAt = parseTime(createdAt)
	rec.UpdatedAt = parseTime(updatedAt)

	return &rec, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
