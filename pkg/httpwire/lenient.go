package httpwire

import (
	"github.com/shapestone/httpwire/internal/wire"
)

// UnmarshalLenient performs best-effort parsing of an HTTP message. It
// never returns an error: whatever is extractable is extracted and every
// repair is reported in Warnings. Partial is set when the input was
// truncated.
//
// Beyond the strict parser, the lenient path accepts bare LF endings, a
// missing HTTP version (assumed HTTP/1.1), a missing reason phrase,
// skips malformed header lines, unfolds obsolete line folding, and keeps
// a truncated or unframeable body as raw bytes.
func UnmarshalLenient(data []byte) *ParseResult {
	lr := wire.ParseLenient(data)

	result := &ParseResult{
		Warnings: lr.Warnings,
		Partial:  lr.Partial,
	}
	if lr.Request != nil {
		result.Request = &Request{
			Method:  lr.Request.Method,
			Target:  lr.Request.Target,
			Version: lr.Request.Version,
			Headers: copyHeaders(lr.Request.Fields),
			Body:    lr.Request.Body,
			Framing: lr.Request.Framing,
		}
	}
	if lr.Response != nil {
		result.Response = &Response{
			Version:    lr.Response.Version,
			StatusCode: lr.Response.Status,
			Reason:     lr.Response.Reason,
			Headers:    copyHeaders(lr.Response.Fields),
			Body:       lr.Response.Body,
			Framing:    lr.Response.Framing,
		}
	}
	return result
}
