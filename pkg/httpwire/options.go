package httpwire

import "github.com/shapestone/httpwire/internal/wire"

// Options configures parsing limits and tolerances. The zero value is
// usable: default limits, CRLF or bare LF line endings, obsolete line
// folding rejected. See the field docs on the engine type.
type Options = wire.Options

// Default resource bounds applied when the corresponding Options field
// is zero.
const (
	DefaultMaxHeaderBytes = wire.DefaultMaxHeaderBytes
	DefaultMaxChunkSize   = wire.DefaultMaxChunkSize
	DefaultMaxBodyBytes   = wire.DefaultMaxBodyBytes
)

// DefaultOptions returns Options with every default made explicit.
func DefaultOptions() Options { return wire.DefaultOptions() }
