package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/budde25/partydj/internal/models"
	"github.com/budde25/partydj/internal/shared"
)

func setupTestStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return NewSQLiteStore(db), db
}

func testRoom(code string) models.Room {
	return models.Room{
		Code:       code,
		Enabled:    true,
		Owner:      "alice",
		PlaylistID: "P1",
		Songs: []models.Track{
			{Name: "First", Artist: "A", URI: "spotify:track:1", ImageURL: "http://img/1", AddedBy: "alice"},
		},
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Put And Get", func(t *testing.T) {
		store, _ := setupTestStore(t)

		if err := store.Put(ctx, testRoom("abc123")); err != nil {
			t.Fatalf("failed to put room: %v", err)
		}

		room, err := store.Get(ctx, "abc123")
		if err != nil {
			t.Fatalf("failed to get room: %v", err)
		}

		if room.Code != "abc123" || room.Owner != "alice" || room.PlaylistID != "P1" {
			t.Errorf("room fields not round-tripped: %+v", room)
		}
		if !room.Enabled {
			t.Error("enabled flag not round-tripped")
		}
		if len(room.Songs) != 1 || room.Songs[0].URI != "spotify:track:1" {
			t.Errorf("songs not round-tripped: %v", room.Songs)
		}
		if !room.CurrentSong.IsZero() {
			t.Errorf("expected zero current song, got %+v", room.CurrentSong)
		}
	})

	t.Run("Put Replaces Existing Record", func(t *testing.T) {
		store, _ := setupTestStore(t)

		if err := store.Put(ctx, testRoom("abc123")); err != nil {
			t.Fatalf("failed to put room: %v", err)
		}

		updated := testRoom("abc123")
		updated.Owner = "bob"
		updated.PlaylistID = "P2"
		if err := store.Put(ctx, updated); err != nil {
			t.Fatalf("failed to replace room: %v", err)
		}

		room, err := store.Get(ctx, "abc123")
		if err != nil {
			t.Fatalf("failed to get room: %v", err)
		}
		if room.Owner != "bob" || room.PlaylistID != "P2" {
			t.Errorf("record not replaced: %+v", room)
		}
	})

	t.Run("Put Rejects Invalid Room", func(t *testing.T) {
		store, _ := setupTestStore(t)

		if err := store.Put(ctx, models.Room{Code: "abc123"}); err == nil {
			t.Error("expected validation error for room without owner")
		}
	})

	t.Run("Get Missing Room", func(t *testing.T) {
		store, _ := setupTestStore(t)

		_, err := store.Get(ctx, "zzzzzz")
		if !errors.Is(err, ErrRoomNotFound) {
			t.Errorf("expected ErrRoomNotFound, got %v", err)
		}
	})

	t.Run("UpdateSongs Replaces Whole List", func(t *testing.T) {
		store, _ := setupTestStore(t)

		if err := store.Put(ctx, testRoom("abc123")); err != nil {
			t.Fatalf("failed to put room: %v", err)
		}

		songs := []models.Track{
			{Name: "Second", URI: "spotify:track:2"},
			{Name: "Third", URI: "spotify:track:3"},
		}
		if err := store.UpdateSongs(ctx, "abc123", songs); err != nil {
			t.Fatalf("failed to update songs: %v", err)
		}

		room, err := store.Get(ctx, "abc123")
		if err != nil {
			t.Fatalf("failed to get room: %v", err)
		}
		if len(room.Songs) != 2 || room.Songs[0].URI != "spotify:track:2" {
			t.Errorf("songs not fully replaced: %v", room.Songs)
		}
	})

	t.Run("UpdateSongs Nil Becomes Empty List", func(t *testing.T) {
		store, _ := setupTestStore(t)

		if err := store.Put(ctx, testRoom("abc123")); err != nil {
			t.Fatalf("failed to put room: %v", err)
		}

		if err := store.UpdateSongs(ctx, "abc123", nil); err != nil {
			t.Fatalf("failed to update songs: %v", err)
		}

		room, err := store.Get(ctx, "abc123")
		if err != nil {
			t.Fatalf("failed to get room: %v", err)
		}
		if room.Songs == nil || len(room.Songs) != 0 {
			t.Errorf("expected empty song list, got %v", room.Songs)
		}
	})

	t.Run("UpdateSongs Missing Room", func(t *testing.T) {
		store, _ := setupTestStore(t)

		err := store.UpdateSongs(ctx, "zzzzzz", []models.Track{{Name: "X", URI: "spotify:track:x"}})
		if !errors.Is(err, ErrRoomNotFound) {
			t.Errorf("expected ErrRoomNotFound, got %v", err)
		}
	})

	t.Run("Delete Is Idempotent", func(t *testing.T) {
		store, _ := setupTestStore(t)

		if err := store.Put(ctx, testRoom("abc123")); err != nil {
			t.Fatalf("failed to put room: %v", err)
		}

		if err := store.Delete(ctx, "abc123"); err != nil {
			t.Fatalf("failed to delete room: %v", err)
		}
		if _, err := store.Get(ctx, "abc123"); !errors.Is(err, ErrRoomNotFound) {
			t.Errorf("expected room to be gone, got %v", err)
		}

		if err := store.Delete(ctx, "abc123"); err != nil {
			t.Errorf("deleting an absent room should succeed, got %v", err)
		}
	})
}
