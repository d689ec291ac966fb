// package testing contains shared testing utilities
package testing

import (
	"context"
	"sync"

	"github.com/budde25/partydj/internal/models"
	"github.com/budde25/partydj/internal/repositories"
	"github.com/budde25/partydj/internal/services"
)

// MockPlaylistService is a test double for [services.PlaylistService].
//
// Behavior is injected through the *Func fields; unset fields succeed
// with zero values. Every method bumps its call counter so tests can
// assert which adapters a handler touched.
type MockPlaylistService struct {
	CreatePlaylistFunc   func(ctx context.Context, userID, name string, public bool) (string, error)
	AddTracksFunc        func(ctx context.Context, playlistID string, uris []string) error
	RemoveTracksFunc     func(ctx context.Context, playlistID string, uris []string) error
	PlaylistTracksFunc   func(ctx context.Context, playlistID string) ([]services.PlaylistTrack, error)
	UnfollowPlaylistFunc func(ctx context.Context, playlistID string) error

	CreatePlaylistCalls   int
	AddTracksCalls        int
	RemoveTracksCalls     int
	PlaylistTracksCalls   int
	UnfollowPlaylistCalls int
}

func (m *MockPlaylistService) CreatePlaylist(ctx context.Context, userID, name string, public bool) (string, error) {
	m.CreatePlaylistCalls++
	if m.CreatePlaylistFunc != nil {
		return m.CreatePlaylistFunc(ctx, userID, name, public)
	}
	return "", nil
}

func (m *MockPlaylistService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	m.AddTracksCalls++
	if m.AddTracksFunc != nil {
		return m.AddTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockPlaylistService) RemoveTracks(ctx context.Context, playlistID string, uris []string) error {
	m.RemoveTracksCalls++
	if m.RemoveTracksFunc != nil {
		return m.RemoveTracksFunc(ctx, playlistID, uris)
	}
	return nil
}

func (m *MockPlaylistService) PlaylistTracks(ctx context.Context, playlistID string) ([]services.PlaylistTrack, error) {
	m.PlaylistTracksCalls++
	if m.PlaylistTracksFunc != nil {
		return m.PlaylistTracksFunc(ctx, playlistID)
	}
	return []services.PlaylistTrack{}, nil
}

func (m *MockPlaylistService) UnfollowPlaylist(ctx context.Context, playlistID string) error {
	m.UnfollowPlaylistCalls++
	if m.UnfollowPlaylistFunc != nil {
		return m.UnfollowPlaylistFunc(ctx, playlistID)
	}
	return nil
}

func (m *MockPlaylistService) Name() string { return "mock" }

// FactoryFor returns a [services.ClientFactory] that always hands back
// the given service and records the tokens it was invoked with.
func FactoryFor(svc services.PlaylistService, tokens *[]string) services.ClientFactory {
	return func(accessToken string) services.PlaylistService {
		if tokens != nil {
			*tokens = append(*tokens, accessToken)
		}
		return svc
	}
}

// MockRoomStore is an in-memory test double for [repositories.RoomStore].
//
// Error injection fields force specific operations to fail; call
// counters record adapter usage.
type MockRoomStore struct {
	mu    sync.Mutex
	Rooms map[string]models.Room

	PutErr         error
	GetErr         error
	UpdateSongsErr error
	DeleteErr      error

	PutCalls         int
	GetCalls         int
	UpdateSongsCalls int
	DeleteCalls      int
}

// NewMockRoomStore creates an empty MockRoomStore.
func NewMockRoomStore() *MockRoomStore {
	return &MockRoomStore{Rooms: make(map[string]models.Room)}
}

func (m *MockRoomStore) Put(_ context.Context, room models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutCalls++
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Rooms[room.Code] = room
	return nil
}

func (m *MockRoomStore) Get(_ context.Context, code string) (*models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	room, ok := m.Rooms[code]
	if !ok {
		return nil, repositories.ErrRoomNotFound
	}
	return &room, nil
}

func (m *MockRoomStore) UpdateSongs(_ context.Context, code string, songs []models.Track) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateSongsCalls++
	if m.UpdateSongsErr != nil {
		return m.UpdateSongsErr
	}
	room, ok := m.Rooms[code]
	if !ok {
		return repositories.ErrRoomNotFound
	}
	room.Songs = songs
	m.Rooms[code] = room
	return nil
}

func (m *MockRoomStore) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Rooms, code)
	return nil
}

// Has reports whether a record exists at code without counting as a Get.
func (m *MockRoomStore) Has(code string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Rooms[code]
	return ok
}
