// Package rooms implements the room lifecycle: the five operations that
// sequence the Spotify playlist client and the room store.
//
// # Operations
//
//  1. [Engine.GenerateRoom] : create a playlist, then write the room record
//  2. [Engine.JoinRoom] : look up a room; absent means closed, not failed
//  3. [Engine.CloseRoom] : delete the record, then detach the playlist
//  4. [Engine.AddSong] : append a track, then resync the stored list
//  5. [Engine.RemoveSong] : remove a track, then resync the stored list
//
// # Error Contract
//
// Exactly two error kinds leave this package. [InvalidParamError] is
// detected locally before any external call and names the offending
// parameter. [UpstreamError] wraps any failure from either
// collaborator; the underlying cause is logged here and not exposed to
// clients. Nothing is retried.
//
// # Consistency
//
// After every successful add or remove the stored track list is
// replaced wholesale with a fresh playlist listing. Concurrent
// mutations against the same room can interleave and the last resync
// wins; the service accepts this for a casual collaborative queue.
// Operations against the same code are not serialized.
package rooms
