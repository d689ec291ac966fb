// Package services defines the [PlaylistService] interface for the streaming provider backing each room and implements it for Spotify.
//
// # PlaylistService Interface
//
// The room lifecycle only needs five playlist operations: create, add
// tracks, remove tracks, list tracks, and unfollow. All of them are
// authenticated with a bearer token the caller supplies per request.
//
// # Per-Request Clients
//
// Because every request arrives with its own access token, clients are
// built through a [ClientFactory] rather than shared as a process-wide
// singleton. [NewSpotifyFactory] closes over the shared HTTP transport
// and a [rate.Limiter] so per-request construction stays cheap and the
// outbound request rate stays bounded.
//
// # Spotify Implementation
//
// [SpotifyService] is a thin REST client over the Spotify Web API.
// Authorization uses [oauth2.StaticTokenSource]; there is no token
// refresh because the backend never owns credentials, only the bearer
// tokens the mobile clients obtained themselves. Failures are not
// retried; a non-2xx response surfaces as a wrapped [shared.ErrAPIRequest].
package services
