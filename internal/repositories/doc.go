// Package repositories implements persistence for room records.
//
// The [RoomStore] interface is deliberately small: rooms are opaque
// documents keyed by their code, and the only partial update the
// lifecycle performs is replacing the mirrored track list.
//
// Implementations:
//   - [SQLiteStore] : default backend; one table with JSON columns for
//     the track list and current song
//   - [RedisStore] : alternative backend storing each room as a JSON
//     value at room:<code>
//
// Both map "record absent" to [ErrRoomNotFound] so the join operation
// can report a closed room as a normal outcome rather than an error.
// Deletes are idempotent: removing an absent record succeeds, matching
// the document-store semantics the handlers were written against.
package repositories
