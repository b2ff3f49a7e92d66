package httpwire

import "github.com/shapestone/httpwire/internal/wire"

// BodyFraming is the resolved body delimitation of a message: none,
// content-length, chunked, or until-close. Exactly one variant applies to
// a parsed message; resolution is deterministic and shared by every
// parsing path in this package.
type BodyFraming = wire.Framing

// FramingKind enumerates the BodyFraming variants.
type FramingKind = wire.FramingKind

// Body framing kinds.
const (
	FramingNone          = wire.FramingNone
	FramingContentLength = wire.FramingContentLength
	FramingChunked       = wire.FramingChunked
	FramingUntilClose    = wire.FramingUntilClose
)

// ResolveFraming determines body framing from an accumulated header set,
// using the same precedence rules the parsers apply: Transfer-Encoding
// ending in chunked wins, a lone consistent Content-Length next, then
// until-close for close-delimited responses, otherwise no body. Conflicting
// length headers yield an *AmbiguousFramingError.
func ResolveFraming(isResponse bool, headers Headers, opts Options) (BodyFraming, error) {
	fields := make([]wire.Field, len(headers))
	for i, h := range headers {
		fields[i] = wire.Field{Name: h.Name, Value: h.Value}
	}
	return wire.ResolveFraming(isResponse, fields, opts)
}
