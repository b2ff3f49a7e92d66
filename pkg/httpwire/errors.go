package httpwire

import "github.com/shapestone/httpwire/internal/wire"

// The error taxonomy is defined once in the engine and aliased here so the
// view path, the one-shot helpers, and the incremental Decoder all surface
// identical types.

// SyntaxError reports malformed HTTP/1.x grammar with the byte offset at
// which it was detected.
type SyntaxError = wire.SyntaxError

// AmbiguousFramingError reports conflicting body-length headers, such as
// Transfer-Encoding: chunked alongside Content-Length. The engine fails
// closed on these: picking one silently is a request-smuggling hazard.
type AmbiguousFramingError = wire.AmbiguousFramingError

// TooLargeError reports input exceeding a configured limit.
type TooLargeError = wire.TooLargeError

// LimitKind identifies the bound a TooLargeError refers to.
type LimitKind = wire.LimitKind

// Limit kinds.
const (
	LimitHeader = wire.LimitHeader
	LimitChunk  = wire.LimitChunk
	LimitBody   = wire.LimitBody
)

// ErrIncomplete signals that the input ended mid-message. It is not a
// malformed-input error: feed more bytes and retry.
var ErrIncomplete = wire.ErrIncomplete
