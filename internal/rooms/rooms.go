package rooms

import (
	"context"
	"errors"

	"github.com/budde25/partydj/internal/models"
	"github.com/budde25/partydj/internal/repositories"
	"github.com/budde25/partydj/internal/services"
	"github.com/budde25/partydj/internal/shared"
	"github.com/charmbracelet/log"
)

// Collaborator names used in upstream failure envelopes.
const (
	SystemSpotify = "Spotify"
	SystemStore   = "Room store"
)

// InvalidParamError reports a required request parameter that was
// absent or empty. It is detected locally; no external call is made.
type InvalidParamError struct {
	Param string
}

func (e *InvalidParamError) Error() string {
	return e.Param + " format incorrect"
}

// UpstreamError reports a failure surfaced from one of the two
// collaborators. All upstream failures share one envelope code
// regardless of cause; the caller retries the whole operation if it
// wants to.
type UpstreamError struct {
	System string
	Err    error
}

func (e *UpstreamError) Error() string {
	return e.System + " connection failed"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Options carries the room lifecycle tunables from configuration.
type Options struct {
	CodeLength     int    // room code length, default 6
	PlaylistPrefix string // playlist name prefix, default "PartyDJ"
}

// Engine sequences the playlist service and the room store for the five
// room lifecycle operations. It holds no per-request state: the Spotify
// client is rebuilt from the caller's token on every call.
type Engine struct {
	store   repositories.RoomStore
	factory services.ClientFactory
	logger  *log.Logger

	codeLength     int
	playlistPrefix string
}

// NewEngine creates an Engine backed by the given store and client factory.
func NewEngine(store repositories.RoomStore, factory services.ClientFactory, logger *log.Logger, opts Options) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	if opts.CodeLength <= 0 {
		opts.CodeLength = 6
	}
	if opts.PlaylistPrefix == "" {
		opts.PlaylistPrefix = "PartyDJ"
	}

	return &Engine{
		store:          store,
		factory:        factory,
		logger:         logger,
		codeLength:     opts.CodeLength,
		playlistPrefix: opts.PlaylistPrefix,
	}
}

// requireParams checks required string parameters in order and returns
// an [InvalidParamError] naming the first empty one. Runs before any
// external call.
func (e *Engine) requireParams(pairs ...[2]string) error {
	for _, pair := range pairs {
		name, value := pair[0], pair[1]
		if value == "" {
			e.logger.Warn("missing required parameter", "param", name)
			return &InvalidParamError{Param: name}
		}
	}
	return nil
}

func (e *Engine) upstream(system string, err error) error {
	e.logger.Error("upstream call failed", "system", system, "error", err)
	return &UpstreamError{System: system, Err: err}
}

// GenerateRoomResult is the success payload of [Engine.GenerateRoom].
type GenerateRoomResult struct {
	RoomCode   string
	PlaylistID string
}

// GenerateRoom creates a Spotify playlist for the user and writes a new
// room record keyed by a freshly generated code.
//
// The playlist is created first; if the store write then fails the
// playlist is not rolled back and stays orphaned on Spotify. Codes are
// not checked for collisions against open rooms.
func (e *Engine) GenerateRoom(ctx context.Context, username, accessToken string) (*GenerateRoomResult, error) {
	if err := e.requireParams(
		[2]string{"Username", username},
		[2]string{"Access token", accessToken},
	); err != nil {
		return nil, err
	}

	code := shared.GenerateCode(e.codeLength)
	client := e.factory(accessToken)

	playlistID, err := client.CreatePlaylist(ctx, username, e.playlistPrefix+":"+code, true)
	if err != nil {
		return nil, e.upstream(SystemSpotify, err)
	}

	room := models.Room{
		Code:       code,
		Enabled:    true,
		Owner:      username,
		PlaylistID: playlistID,
		Songs:      []models.Track{},
	}
	if err := e.store.Put(ctx, room); err != nil {
		return nil, e.upstream(SystemStore, err)
	}

	e.logger.Info("room created", "code", code, "playlist", playlistID)
	return &GenerateRoomResult{RoomCode: code, PlaylistID: playlistID}, nil
}

// JoinRoomResult is the success payload of [Engine.JoinRoom].
type JoinRoomResult struct {
	IsRoomOpen bool
	PlaylistID string
}

// JoinRoom reports whether a room is open. A record present in the
// store means open; an absent record is a normal closed outcome, not an
// error.
func (e *Engine) JoinRoom(ctx context.Context, roomCode string) (*JoinRoomResult, error) {
	if err := e.requireParams([2]string{"Room code", roomCode}); err != nil {
		return nil, err
	}

	room, err := e.store.Get(ctx, roomCode)
	if errors.Is(err, repositories.ErrRoomNotFound) {
		return &JoinRoomResult{IsRoomOpen: false}, nil
	}
	if err != nil {
		return nil, e.upstream(SystemStore, err)
	}

	return &JoinRoomResult{IsRoomOpen: true, PlaylistID: room.PlaylistID}, nil
}

// CloseRoom deletes the room record and then detaches the playlist.
//
// The record goes first on purpose: the room becomes unjoinable
// immediately even if the playlist detach below fails. A detach failure
// is still reported as an error although the delete already stuck.
func (e *Engine) CloseRoom(ctx context.Context, roomCode, accessToken, playlistID string) error {
	if err := e.requireParams(
		[2]string{"Room code", roomCode},
		[2]string{"Access token", accessToken},
		[2]string{"Playlist id", playlistID},
	); err != nil {
		return err
	}

	if err := e.store.Delete(ctx, roomCode); err != nil {
		return e.upstream(SystemStore, err)
	}

	if err := e.factory(accessToken).UnfollowPlaylist(ctx, playlistID); err != nil {
		return e.upstream(SystemSpotify, err)
	}

	e.logger.Info("room closed", "code", roomCode)
	return nil
}

// AddSong appends a track to the room's playlist and resyncs the stored
// track list. A failed append is reported without attempting resync.
func (e *Engine) AddSong(ctx context.Context, roomCode, accessToken, playlistID, songURI string) error {
	if err := e.requireParams(
		[2]string{"Room code", roomCode},
		[2]string{"Access token", accessToken},
		[2]string{"Playlist id", playlistID},
		[2]string{"Song uri", songURI},
	); err != nil {
		return err
	}

	client := e.factory(accessToken)
	if err := client.AddTracks(ctx, playlistID, []string{songURI}); err != nil {
		return e.upstream(SystemSpotify, err)
	}

	return e.resync(ctx, client, roomCode, playlistID)
}

// RemoveSong removes a track from the room's playlist and resyncs the
// stored track list. Symmetric to [Engine.AddSong].
func (e *Engine) RemoveSong(ctx context.Context, roomCode, accessToken, playlistID, songURI string) error {
	if err := e.requireParams(
		[2]string{"Room code", roomCode},
		[2]string{"Access token", accessToken},
		[2]string{"Playlist id", playlistID},
		[2]string{"Song uri", songURI},
	); err != nil {
		return err
	}

	client := e.factory(accessToken)
	if err := client.RemoveTracks(ctx, playlistID, []string{songURI}); err != nil {
		return e.upstream(SystemSpotify, err)
	}

	return e.resync(ctx, client, roomCode, playlistID)
}

// resync fetches the playlist's full current listing and overwrites the
// stored songs with it. Full replace, not an incremental patch: the
// playlist is the source of truth and the store only mirrors it.
func (e *Engine) resync(ctx context.Context, client services.PlaylistService, roomCode, playlistID string) error {
	listing, err := client.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return e.upstream(SystemSpotify, err)
	}

	songs := make([]models.Track, 0, len(listing))
	for _, item := range listing {
		songs = append(songs, models.Track{
			Name:     item.Name,
			URI:      item.URI,
			Artist:   item.Artist,
			ImageURL: item.ImageURL,
			AddedBy:  item.AddedBy,
		})
	}

	if err := e.store.UpdateSongs(ctx, roomCode, songs); err != nil {
		return e.upstream(SystemStore, err)
	}

	return nil
}
