// Package httpwire parses and serializes HTTP/1.x messages per RFC 9112.
//
// The package is a pure byte engine: it turns raw connection bytes into
// structured requests and responses and back, and performs no I/O of its
// own. Two parsing strategies share one grammar and one body-framing rule
// set:
//
//   - View - a zero-copy pass producing MessageUnits, spans into the
//     caller's buffer, copied into owned values on demand
//   - Decoder - an incremental, owning state machine fed arbitrary-sized
//     byte chunks, for input that arrives in pieces
//
// One-shot helpers (Unmarshal, UnmarshalRequest, UnmarshalResponse) cover
// the common fully-buffered case. Marshal and Encoder render messages back
// to wire bytes. Parse/Render expose the same messages as shape-core AST
// nodes, and UnmarshalLenient is a best-effort parser that reports
// problems as warnings instead of failing.
//
// # Thread safety
//
// All top-level functions are safe for concurrent use. A Decoder or
// MessageUnits instance is owned by a single caller; use one Decoder per
// connection.
package httpwire

import (
	"strconv"
	"strings"
)

// Request is an owned HTTP/1.x request message.
type Request struct {
	Method  string  // "GET", "POST", ...
	Target  string  // request-target, e.g. "/api/users?q=foo"
	Version string  // "HTTP/1.1"
	Headers Headers // ordered, repeatable, original casing preserved
	Body    []byte  // decoded body (nil if none)

	// Framing records how the body was (or will be) delimited on the
	// wire. The zero value lets Marshal pick content-length framing.
	Framing BodyFraming
}

// Response is an owned HTTP/1.x response message.
type Response struct {
	Version    string
	StatusCode int    // 100..599
	Reason     string // "OK", "Not Found", may be empty
	Headers    Headers
	Body       []byte
	Framing    BodyFraming
}

// Header is a single header field. Name keeps the casing it arrived with.
type Header struct {
	Name  string
	Value string
}

// Headers is an ordered, repeatable list of header fields. Lookup is
// case-insensitive per RFC 9110; order and casing are preserved for
// serialization fidelity.
type Headers []Header

// Get returns the first value for name, or "" if absent.
func (h Headers) Get(name string) string {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value
		}
	}
	return ""
}

// Has reports whether a field with the given name is present.
func (h Headers) Has(name string) bool {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

// Values returns every value for name, in order.
func (h Headers) Values(name string) []string {
	var vals []string
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// Set replaces the first field named name and removes any later
// duplicates, or appends when absent.
func (h *Headers) Set(name, value string) {
	for i, f := range *h {
		if strings.EqualFold(f.Name, name) {
			(*h)[i].Value = value
			j := i + 1
			for j < len(*h) {
				if strings.EqualFold((*h)[j].Name, name) {
					*h = append((*h)[:j], (*h)[j+1:]...)
				} else {
					j++
				}
			}
			return
		}
	}
	*h = append(*h, Header{Name: name, Value: value})
}

// Add appends a field without touching existing ones.
func (h *Headers) Add(name, value string) {
	*h = append(*h, Header{Name: name, Value: value})
}

// Del removes every field named name.
func (h *Headers) Del(name string) {
	j := 0
	for _, f := range *h {
		if !strings.EqualFold(f.Name, name) {
			(*h)[j] = f
			j++
		}
	}
	*h = (*h)[:j]
}

// Clone returns a copy sharing no backing array with h.
func (h Headers) Clone() Headers {
	if h == nil {
		return nil
	}
	clone := make(Headers, len(h))
	copy(clone, h)
	return clone
}

// ContentLength returns the Content-Length value, or -1 when absent or
// not a plain non-negative decimal.
func (h Headers) ContentLength() int64 {
	v := h.Get("Content-Length")
	if v == "" {
		return -1
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n < 0 {
		return -1
	}
	return n
}

// IsChunked reports whether Transfer-Encoding's last coding is chunked.
func (h Headers) IsChunked() bool {
	var last string
	for _, f := range h {
		if !strings.EqualFold(f.Name, "Transfer-Encoding") {
			continue
		}
		for _, part := range strings.Split(f.Value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				last = part
			}
		}
	}
	return strings.EqualFold(last, "chunked")
}

// Message is the interface shared by Request and Response.
type Message interface {
	GetVersion() string
	GetHeaders() Headers
	GetBody() []byte
	GetFraming() BodyFraming
}

// GetVersion returns the HTTP version string.
func (r *Request) GetVersion() string { return r.Version }

// GetHeaders returns the headers.
func (r *Request) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Request) GetBody() []byte { return r.Body }

// GetFraming returns the resolved body framing.
func (r *Request) GetFraming() BodyFraming { return r.Framing }

// GetVersion returns the HTTP version string.
func (r *Response) GetVersion() string { return r.Version }

// GetHeaders returns the headers.
func (r *Response) GetHeaders() Headers { return r.Headers }

// GetBody returns the body bytes.
func (r *Response) GetBody() []byte { return r.Body }

// GetFraming returns the resolved body framing.
func (r *Response) GetFraming() BodyFraming { return r.Framing }

// Marshaler is implemented by types that can render themselves to HTTP
// wire format.
type Marshaler interface {
	MarshalHTTP() ([]byte, error)
}

// Unmarshaler is implemented by types that can parse themselves from HTTP
// wire format.
type Unmarshaler interface {
	UnmarshalHTTP([]byte) error
}

// ParseResult holds the outcome of lenient parsing.
type ParseResult struct {
	Request  *Request  // non-nil if a request was detected
	Response *Response // non-nil if a response was detected
	Warnings []string  // non-fatal issues, human readable
	Partial  bool      // input was truncated
}
