package wire

// Default resource bounds. Zero-valued limits in Options fall back to these;
// the engine never runs unbounded against a hostile peer.
const (
	DefaultMaxHeaderBytes = 64 << 10
	DefaultMaxChunkSize   = 8 << 20
	DefaultMaxBodyBytes   = 64 << 20
)

// Options configures scanning and decoding. The zero value is usable and
// gives the default limits with tolerant (CRLF or bare LF) line endings,
// obsolete line folding rejected, and no close-delimited response bodies.
type Options struct {
	// MaxHeaderBytes bounds the start line plus header block, terminator
	// included. 0 means DefaultMaxHeaderBytes.
	MaxHeaderBytes int

	// MaxChunkSize bounds a single chunk in a chunked body.
	// 0 means DefaultMaxChunkSize.
	MaxChunkSize int

	// MaxBodyBytes bounds the decoded body. 0 means DefaultMaxBodyBytes.
	MaxBodyBytes int

	// StrictCRLF rejects bare LF line endings. By default both CRLF and
	// bare LF terminate a line.
	StrictCRLF bool

	// UnfoldObsFold joins obsolete folded header lines (continuations
	// starting with SP or HTAB) with a single space. When false, folded
	// lines are a syntax error.
	UnfoldObsFold bool

	// CloseDelimited marks the connection as closing after the current
	// message. A response with no framing headers then reads until the
	// end of input instead of having no body.
	CloseDelimited bool
}

// DefaultOptions returns Options with all defaults made explicit.
func DefaultOptions() Options {
	return Options{
		MaxHeaderBytes: DefaultMaxHeaderBytes,
		MaxChunkSize:   DefaultMaxChunkSize,
		MaxBodyBytes:   DefaultMaxBodyBytes,
	}
}

// withDefaults fills zero limits in-place-by-value.
func (o Options) withDefaults() Options {
	if o.MaxHeaderBytes == 0 {
		o.MaxHeaderBytes = DefaultMaxHeaderBytes
	}
	if o.MaxChunkSize == 0 {
		o.MaxChunkSize = DefaultMaxChunkSize
	}
	if o.MaxBodyBytes == 0 {
		o.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return o
}
