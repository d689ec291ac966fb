package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/budde25/partydj/internal/models"
)

// SQLiteStore implements [RoomStore] on a SQLite database.
//
// Rooms live in a single table keyed by code; the songs slice and
// current song are serialized as JSON columns so the table behaves like
// a small document store.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore with the given database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Put creates or replaces the record at room.Code.
func (s *SQLiteStore) Put(ctx context.Context, room models.Room) error {
	if err := room.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	songs, err := json.Marshal(room.Songs)
	if err != nil {
		return fmt.Errorf("failed to encode songs: %w", err)
	}
	current, err := json.Marshal(room.CurrentSong)
	if err != nil {
		return fmt.Errorf("failed to encode current song: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO rooms (code, enabled, owner, playlist_id, songs, current_song, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query,
		room.Code, room.Enabled, room.Owner, room.PlaylistID, string(songs), string(current), time.Now(),
	); err != nil {
		return fmt.Errorf("failed to write room: %w", err)
	}

	return nil
}

// Get fetches the record at code, returning [ErrRoomNotFound] when absent.
func (s *SQLiteStore) Get(ctx context.Context, code string) (*models.Room, error) {
	query := `
		SELECT code, enabled, owner, playlist_id, songs, current_song
		FROM rooms
		WHERE code = ?
	`

	var (
		room    models.Room
		songs   string
		current string
	)

	err := s.db.QueryRowContext(ctx, query, code).Scan(
		&room.Code, &room.Enabled, &room.Owner, &room.PlaylistID, &songs, &current,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan room: %w", err)
	}

	if err := json.Unmarshal([]byte(songs), &room.Songs); err != nil {
		return nil, fmt.Errorf("failed to decode songs: %w", err)
	}
	if err := json.Unmarshal([]byte(current), &room.CurrentSong); err != nil {
		return nil, fmt.Errorf("failed to decode current song: %w", err)
	}

	return &room, nil
}

// UpdateSongs overwrites the songs column of the record at code.
func (s *SQLiteStore) UpdateSongs(ctx context.Context, code string, songs []models.Track) error {
	if songs == nil {
		songs = []models.Track{}
	}

	payload, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("failed to encode songs: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE rooms SET songs = ?, updated_at = ? WHERE code = ?",
		string(payload), time.Now(), code,
	)
	if err != nil {
		return fmt.Errorf("failed to update songs: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// Delete removes the record at code. Absent records are a no-op.
func (s *SQLiteStore) Delete(ctx context.Context, code string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM rooms WHERE code = ?", code); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
