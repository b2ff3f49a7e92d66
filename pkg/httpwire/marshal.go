package httpwire

import (
	"fmt"
	"sync"
)

// bufPool recycles serialization buffers across Marshal calls.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Marshal renders v to HTTP/1.x wire format.
//
// v must be a *Request or *Response satisfying the message invariants
// (token method, non-empty target, well-formed header names, 3-digit
// status). Line endings are canonicalized to CRLF and headers are written
// in insertion order. A body with chunked framing is re-chunked on the
// wire; otherwise Content-Length is added when a body is present and the
// header is absent. Decoding the result yields a message semantically
// equal to v.
func Marshal(v interface{}) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("httpwire: Marshal(nil)")
	}
	if m, ok := v.(Marshaler); ok {
		return m.MarshalHTTP()
	}

	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]
	defer func() {
		// Keep whatever capacity the append chain grew.
		*bp = buf
		bufPool.Put(bp)
	}()

	var err error
	switch msg := v.(type) {
	case *Request:
		buf, err = appendRequest(buf, msg)
	case *Response:
		buf, err = appendResponse(buf, msg)
	default:
		return nil, fmt.Errorf("httpwire: Marshal unsupported type %T (expected *Request or *Response)", v)
	}
	if err != nil {
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)
	return result, nil
}

// MarshalRequest renders req to wire bytes.
func MarshalRequest(req *Request) ([]byte, error) { return Marshal(req) }

// MarshalResponse renders resp to wire bytes.
func MarshalResponse(resp *Response) ([]byte, error) { return Marshal(resp) }
