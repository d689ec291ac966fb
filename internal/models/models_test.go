package models

import "testing"

func TestRoomValidation(t *testing.T) {
	t.Run("Valid Room", func(t *testing.T) {
		room := Room{
			Code:       "abc123",
			Enabled:    true,
			Owner:      "spotify_user",
			PlaylistID: "37i9dQZF1DXcBWIGoYBM5M",
			Songs:      []Track{},
		}
		if err := room.Validate(); err != nil {
			t.Errorf("expected valid room, got error: %v", err)
		}
	})

	t.Run("Missing Fields", func(t *testing.T) {
		cases := []struct {
			name string
			room Room
		}{
			{"missing code", Room{Owner: "user", PlaylistID: "p1"}},
			{"missing owner", Room{Code: "abc123", PlaylistID: "p1"}},
			{"missing playlist", Room{Code: "abc123", Owner: "user"}},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.room.Validate(); err == nil {
					t.Error("expected validation error")
				}
			})
		}
	})
}

func TestTrackIsZero(t *testing.T) {
	if !(Track{}).IsZero() {
		t.Error("empty track should be zero")
	}

	track := Track{Name: "Song", Artist: "Artist", URI: "spotify:track:x"}
	if track.IsZero() {
		t.Error("populated track should not be zero")
	}
}
