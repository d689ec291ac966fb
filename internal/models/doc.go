// Package models defines the domain entities for the PartyDJ room service.
//
// The package contains two types:
//   - [Room] : a shared listening session keyed by a short room code,
//     backed by one Spotify playlist
//   - [Track] : a queue entry with display metadata and the playable
//     Spotify URI
//
// A room exists in the store if and only if it is open; closing a room
// deletes its record. The stored Songs slice is a mirror of the backing
// playlist and is replaced in full after every successful mutation.
package models
