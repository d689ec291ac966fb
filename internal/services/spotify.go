// Spotify API response types based on
// https://developer.spotify.com/documentation/web-api/reference/

package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/budde25/partydj/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const spotifyBaseURL = "https://api.spotify.com/v1"

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
	URI    string         `json:"uri"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Artists []SpotifyArtist `json:"artists"`
	Album   SpotifyAlbum    `json:"album"`
	URI     string          `json:"uri"`
}

type addedBy struct {
	ID string `json:"id"`
}

// SpotifyPlaylistTrack represents a track within a playlist context.
type SpotifyPlaylistTrack struct {
	AddedAt string       `json:"added_at"`
	AddedBy addedBy      `json:"added_by"`
	Track   SpotifyTrack `json:"track"`
}

// SpotifyPlaylistTracksPage represents one page of a playlist's track listing.
type SpotifyPlaylistTracksPage struct {
	Items []SpotifyPlaylistTrack `json:"items"`
	Total int                    `json:"total"`
	Next  *string                `json:"next"`
}

type createdPlaylist struct {
	ID string `json:"id"`
}

// SpotifyService implements [PlaylistService] against the Spotify Web API.
//
// One instance wraps one bearer token; build instances per request via
// [NewSpotifyFactory]. The HTTP transport and outbound rate limiter are
// shared across instances.
type SpotifyService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewSpotifyService creates a Spotify client authenticated with the given
// bearer token. baseURL defaults to the public API; base and limiter may
// be nil.
func NewSpotifyService(accessToken, baseURL string, base *http.Client, limiter *rate.Limiter) *SpotifyService {
	if baseURL == "" {
		baseURL = spotifyBaseURL
	}

	ctx := context.Background()
	if base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})

	return &SpotifyService{
		baseURL:    baseURL,
		httpClient: oauth2.NewClient(ctx, source),
		limiter:    limiter,
	}
}

// NewSpotifyFactory returns a [ClientFactory] producing per-request
// Spotify clients that share one transport and one rate limiter.
//
// ratePerSec caps outbound requests across all clients; values <= 0
// disable limiting.
func NewSpotifyFactory(baseURL string, ratePerSec float64) ClientFactory {
	var limiter *rate.Limiter
	if ratePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(ratePerSec), 1)
	}

	base := &http.Client{}
	return func(accessToken string) PlaylistService {
		return NewSpotifyService(accessToken, baseURL, base, limiter)
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs an authenticated HTTP request to the Spotify API,
// marshaling body (if any) as JSON and decoding the response into result.
func (s *SpotifyService) doRequest(ctx context.Context, method, endpoint string, body any, result any) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: spotify status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// CreatePlaylist creates a playlist owned by userID and returns its id.
func (s *SpotifyService) CreatePlaylist(ctx context.Context, userID, name string, public bool) (string, error) {
	endpoint := fmt.Sprintf("/users/%s/playlists", url.PathEscape(userID))
	body := map[string]any{"name": name, "public": public}

	var created createdPlaylist
	if err := s.doRequest(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return "", err
	}
	if created.ID == "" {
		return "", fmt.Errorf("%w: playlist response missing id", shared.ErrAPIRequest)
	}

	return created.ID, nil
}

// AddTracks appends the given track URIs to the playlist.
func (s *SpotifyService) AddTracks(ctx context.Context, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return fmt.Errorf("%w: no track URIs provided", shared.ErrInvalidInput)
	}

	endpoint := fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID))
	body := map[string]any{"uris": uris}
	return s.doRequest(ctx, http.MethodPost, endpoint, body, nil)
}

// RemoveTracks removes all occurrences of the given track URIs from the playlist.
func (s *SpotifyService) RemoveTracks(ctx context.Context, playlistID string, uris []string) error {
	if len(uris) == 0 {
		return fmt.Errorf("%w: no track URIs provided", shared.ErrInvalidInput)
	}

	tracks := make([]map[string]string, 0, len(uris))
	for _, uri := range uris {
		tracks = append(tracks, map[string]string{"uri": uri})
	}

	endpoint := fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID))
	body := map[string]any{"tracks": tracks}
	return s.doRequest(ctx, http.MethodDelete, endpoint, body, nil)
}

// PlaylistTracks lists the playlist's current contents, flattened to
// [PlaylistTrack]: track name and URI, first credited artist, first
// album image, and the contributor's user id.
func (s *SpotifyService) PlaylistTracks(ctx context.Context, playlistID string) ([]PlaylistTrack, error) {
	endpoint := fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID))

	var page SpotifyPlaylistTracksPage
	if err := s.doRequest(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}

	tracks := make([]PlaylistTrack, 0, len(page.Items))
	for _, item := range page.Items {
		track := PlaylistTrack{
			Name:    item.Track.Name,
			URI:     item.Track.URI,
			AddedBy: item.AddedBy.ID,
		}
		if len(item.Track.Artists) > 0 {
			track.Artist = item.Track.Artists[0].Name
		}
		if len(item.Track.Album.Images) > 0 {
			track.ImageURL = item.Track.Album.Images[0].URL
		}
		tracks = append(tracks, track)
	}

	return tracks, nil
}

// UnfollowPlaylist detaches the playlist from the authenticated user.
func (s *SpotifyService) UnfollowPlaylist(ctx context.Context, playlistID string) error {
	endpoint := fmt.Sprintf("/playlists/%s/followers", url.PathEscape(playlistID))
	return s.doRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}
