package wire

import (
	"errors"
	"fmt"
)

// ErrIncomplete signals that the input ended before the element being
// scanned was terminated. It is not a malformed-input error: incremental
// callers treat it as "need more bytes".
var ErrIncomplete = errors.New("httpwire: incomplete message")

// SyntaxError reports malformed HTTP/1.x grammar: a bad start line, header
// field, or chunk header. Offset is the byte position in the scanned buffer
// where the violation was detected.
type SyntaxError struct {
	Reason string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("httpwire: syntax error at offset %d: %s", e.Offset, e.Reason)
}

func syntaxErr(off int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Reason: fmt.Sprintf(format, args...), Offset: off}
}

// AmbiguousFramingError reports a message whose headers admit more than one
// body length interpretation, such as Transfer-Encoding: chunked combined
// with Content-Length. Such messages are rejected outright: disagreeing
// parsers on either side of a proxy are a request-smuggling vector.
type AmbiguousFramingError struct {
	Reason string
}

func (e *AmbiguousFramingError) Error() string {
	return "httpwire: ambiguous body framing: " + e.Reason
}

// LimitKind identifies which configured bound a TooLargeError refers to.
type LimitKind uint8

const (
	LimitHeader LimitKind = iota + 1 // header block, start line included
	LimitChunk                       // single chunk size
	LimitBody                        // accumulated body bytes
)

func (k LimitKind) String() string {
	switch k {
	case LimitHeader:
		return "header block"
	case LimitChunk:
		return "chunk size"
	case LimitBody:
		return "body size"
	}
	return "unknown"
}

// TooLargeError reports input that exceeded a caller-configured bound.
type TooLargeError struct {
	Limit LimitKind
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("httpwire: %s limit exceeded", e.Limit)
}
