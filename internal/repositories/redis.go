package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budde25/partydj/internal/models"
	"github.com/go-redis/redis"
)

// roomKeyPrefix namespaces room documents in the keyspace.
const roomKeyPrefix = "room:"

// RedisStore implements [RoomStore] on Redis, storing each room as a
// JSON document at room:<code>. Selected via the store.backend config
// for deployments that already run Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new RedisStore with the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func roomKey(code string) string {
	return roomKeyPrefix + code
}

// Put creates or replaces the record at room.Code.
func (s *RedisStore) Put(_ context.Context, room models.Room) error {
	if err := room.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	payload, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to encode room: %w", err)
	}

	if err := s.client.Set(roomKey(room.Code), payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write room: %w", err)
	}

	return nil
}

// Get fetches the record at code, returning [ErrRoomNotFound] when absent.
func (s *RedisStore) Get(_ context.Context, code string) (*models.Room, error) {
	payload, err := s.client.Get(roomKey(code)).Bytes()
	if err == redis.Nil {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read room: %w", err)
	}

	var room models.Room
	if err := json.Unmarshal(payload, &room); err != nil {
		return nil, fmt.Errorf("failed to decode room: %w", err)
	}

	return &room, nil
}

// UpdateSongs overwrites only the songs field of the record at code.
//
// Redis has no partial document update, so this is a read-modify-write.
// Concurrent resyncs against the same code can interleave; the room
// contract already accepts last-write-wins for resyncs.
func (s *RedisStore) UpdateSongs(ctx context.Context, code string, songs []models.Track) error {
	room, err := s.Get(ctx, code)
	if err != nil {
		return err
	}

	if songs == nil {
		songs = []models.Track{}
	}
	room.Songs = songs

	return s.Put(ctx, *room)
}

// Delete removes the record at code. Absent records are a no-op.
func (s *RedisStore) Delete(_ context.Context, code string) error {
	if err := s.client.Del(roomKey(code)).Err(); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}
