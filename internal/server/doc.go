// Package server provides HTTP routing, middleware, and the request handlers for the room service.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] is applied in registration order: the first middleware added is the outermost wrapper and runs first.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Room Endpoints
//
// [RoomsHandler] serves the five RPC-style endpoints the mobile clients
// call: /generateRoom, /joinRoom, /closeRoom, /addSong, /removeSong.
// Each accepts one POST JSON body and answers with the shared response
// envelope: {status: "success", ...} or {status: "error", code, message}.
// The HTTP status mirrors the envelope code so plain HTTP clients and
// envelope-reading clients agree.
//
// # Middleware
//
// [RequestID] tags each request with a UUID for log correlation;
// [Logging] emits one structured line per request.
package server
