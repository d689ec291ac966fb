package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/budde25/partydj/internal/rooms"
	"github.com/budde25/partydj/internal/shared"
	"github.com/charmbracelet/log"
)

// Envelope statuses shared by every room response.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// Envelope codes. 400 is a locally detected bad parameter; 401 is any
// downstream failure, a historical quirk of the original clients that
// the mobile apps still depend on.
const (
	codeInvalidParam    = 400
	codeUpstreamFailure = 401
)

// envelope is the response shape every room operation shares: status
// plus code/message on the error arm, with operation payload fields
// flattened alongside on success.
type envelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

type generateRoomResponse struct {
	envelope
	RoomCode   string `json:"roomCode"`
	PlaylistID string `json:"playlistId"`
}

type joinRoomResponse struct {
	envelope
	IsRoomOpen bool   `json:"isRoomOpen"`
	PlaylistID string `json:"playlistId,omitempty"`
}

// roomRequest is the union of the request fields across the five
// operations; each operation validates its own required subset.
type roomRequest struct {
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
	RoomCode    string `json:"roomCode"`
	PlaylistID  string `json:"playlistId"`
	SongURI     string `json:"songUri"`
}

// RoomsHandler serves the five RPC-style room lifecycle endpoints.
// Implements the [Handler] interface for registration with a [Router].
type RoomsHandler struct {
	engine *rooms.Engine
	logger *log.Logger
}

// NewRoomsHandler creates a RoomsHandler around the given engine.
func NewRoomsHandler(engine *rooms.Engine, logger *log.Logger) *RoomsHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &RoomsHandler{engine: engine, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *RoomsHandler) Routes() []string {
	return []string{"/generateRoom", "/joinRoom", "/closeRoom", "/addSong", "/removeSong"}
}

// ServeHTTP decodes the request body, dispatches on the path, and
// writes the response envelope. The HTTP status mirrors the envelope:
// 200 on success, the envelope code on error.
func (h *RoomsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, &rooms.InvalidParamError{Param: "Request body"})
		return
	}

	ctx := r.Context()
	switch r.URL.Path {
	case "/generateRoom":
		result, err := h.engine.GenerateRoom(ctx, req.Username, req.AccessToken)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, generateRoomResponse{
			envelope:   envelope{Status: statusSuccess},
			RoomCode:   result.RoomCode,
			PlaylistID: result.PlaylistID,
		})

	case "/joinRoom":
		result, err := h.engine.JoinRoom(ctx, req.RoomCode)
		if err != nil {
			h.writeError(w, err)
			return
		}
		h.writeJSON(w, http.StatusOK, joinRoomResponse{
			envelope:   envelope{Status: statusSuccess},
			IsRoomOpen: result.IsRoomOpen,
			PlaylistID: result.PlaylistID,
		})

	case "/closeRoom":
		h.writeOutcome(w, h.engine.CloseRoom(ctx, req.RoomCode, req.AccessToken, req.PlaylistID))

	case "/addSong":
		h.writeOutcome(w, h.engine.AddSong(ctx, req.RoomCode, req.AccessToken, req.PlaylistID, req.SongURI))

	case "/removeSong":
		h.writeOutcome(w, h.engine.RemoveSong(ctx, req.RoomCode, req.AccessToken, req.PlaylistID, req.SongURI))

	default:
		http.NotFound(w, r)
	}
}

// writeOutcome writes the bare success envelope or the error envelope
// for operations without a payload.
func (h *RoomsHandler) writeOutcome(w http.ResponseWriter, err error) {
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Status: statusSuccess})
}

// writeError maps the two engine error kinds onto the error envelope.
// Anything unexpected is treated as an upstream failure.
func (h *RoomsHandler) writeError(w http.ResponseWriter, err error) {
	var paramErr *rooms.InvalidParamError
	if errors.As(err, &paramErr) {
		h.writeJSON(w, codeInvalidParam, envelope{
			Status:  statusError,
			Code:    codeInvalidParam,
			Message: paramErr.Error(),
		})
		return
	}

	var upstreamErr *rooms.UpstreamError
	message := "internal error"
	if errors.As(err, &upstreamErr) {
		message = upstreamErr.Error()
	} else {
		h.logger.Error("unexpected handler error", "error", err)
	}

	h.writeJSON(w, codeUpstreamFailure, envelope{
		Status:  statusError,
		Code:    codeUpstreamFailure,
		Message: message,
	})
}

func (h *RoomsHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}
