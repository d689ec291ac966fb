package repositories

import (
	"context"
	"errors"

	"github.com/budde25/partydj/internal/models"
)

// ErrRoomNotFound indicates that no record exists at the requested room
// code. Callers use it to distinguish "absent" (a normal outcome for
// joins) from store failures.
var ErrRoomNotFound = errors.New("room not found")

// RoomStore defines the document-store operations the room lifecycle
// needs: create-or-replace, fetch, partial update of the track list,
// and delete, all keyed by room code.
type RoomStore interface {
	// Put creates or replaces the record at room.Code with the full document.
	Put(ctx context.Context, room models.Room) error

	// Get fetches the record at code, returning [ErrRoomNotFound] when absent.
	Get(ctx context.Context, code string) (*models.Room, error)

	// UpdateSongs overwrites only the songs field of the record at code,
	// returning [ErrRoomNotFound] when no record exists.
	UpdateSongs(ctx context.Context, code string, songs []models.Track) error

	// Delete removes the record at code. Deleting an absent record is
	// not an error; the end state is the same.
	Delete(ctx context.Context, code string) error
}
