package services

import (
	"context"
)

// PlaylistService defines the playlist operations the room lifecycle
// needs from a streaming provider. Every implementation is
// authenticated with a single bearer token supplied at construction;
// see [ClientFactory].
type PlaylistService interface {
	// CreatePlaylist creates a playlist for the given user and returns
	// its opaque identifier.
	CreatePlaylist(ctx context.Context, userID, name string, public bool) (string, error)

	// AddTracks appends the given track URIs to a playlist.
	AddTracks(ctx context.Context, playlistID string, uris []string) error

	// RemoveTracks removes all occurrences of the given track URIs from a playlist.
	RemoveTracks(ctx context.Context, playlistID string, uris []string) error

	// PlaylistTracks lists the playlist's current contents in order.
	PlaylistTracks(ctx context.Context, playlistID string) ([]PlaylistTrack, error)

	// UnfollowPlaylist detaches the playlist from its owner. The
	// playlist itself is not deleted; Spotify has no hard delete.
	UnfollowPlaylist(ctx context.Context, playlistID string) error

	// Name returns the provider name (e.g. "Spotify").
	Name() string
}

// ClientFactory builds a [PlaylistService] authenticated with the
// caller-supplied bearer token. Handlers construct a fresh client per
// request rather than sharing a process-wide authenticated singleton.
type ClientFactory func(accessToken string) PlaylistService

// PlaylistTrack is one entry of a playlist listing, already flattened
// to the fields the room store mirrors.
type PlaylistTrack struct {
	Name     string
	URI      string
	Artist   string // first credited artist
	ImageURL string // first album art image
	AddedBy  string // provider user id of the contributor, may be empty
}
