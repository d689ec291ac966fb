package models

import (
	"fmt"
)

// Track is one entry in a room's queue: display metadata plus the
// opaque Spotify URI used to add or remove it.
type Track struct {
	Name     string `json:"name"`
	Artist   string `json:"artist"`
	ImageURL string `json:"imageUrl"`
	URI      string `json:"uri"`
	AddedBy  string `json:"addedBy,omitempty"`
}

// IsZero reports whether the track carries no data.
func (t Track) IsZero() bool {
	return t == Track{}
}

// Room is a shared listening session identified by a short typable code
// and backed by exactly one Spotify playlist.
//
// Songs mirrors the playlist's current contents; the playlist is the
// source of truth and Songs is overwritten wholesale on every resync.
// Enabled and CurrentSong are written at creation and reserved for
// future use; no handler reads or updates them afterwards.
type Room struct {
	Code        string  `json:"code"`
	Enabled     bool    `json:"enabled"`
	Owner       string  `json:"owner"`
	PlaylistID  string  `json:"playlistId"`
	Songs       []Track `json:"songs"`
	CurrentSong Track   `json:"currentSong"`
}

// Validate checks that the room carries the fields every stored record needs.
func (r *Room) Validate() error {
	if r.Code == "" {
		return fmt.Errorf("room code is required")
	}
	if r.Owner == "" {
		return fmt.Errorf("room owner is required")
	}
	if r.PlaylistID == "" {
		return fmt.Errorf("room playlist id is required")
	}
	return nil
}
