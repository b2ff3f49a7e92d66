package httpwire

import (
	"github.com/shapestone/httpwire/internal/wire"
)

// MessageUnits is the zero-copy view of one complete message: every field
// is a span into the source buffer, interpreted only when accessed. The
// view borrows the buffer for its entire lifetime — the caller must not
// mutate or release the buffer while the view is in use, and must finish
// any CopyTo call before discarding it. For owned data, copy into a
// Request or Response.
type MessageUnits struct {
	u *wire.Units
}

// View scans buf, which must contain at least one complete header block,
// and returns the span-based view. ErrIncomplete is returned for a
// truncated buffer, *SyntaxError for malformed input.
func View(buf []byte, opts Options) (*MessageUnits, error) {
	u, err := wire.ScanUnits(buf, opts)
	if err != nil {
		return nil, err
	}
	return &MessageUnits{u: u}, nil
}

// IsResponse reports whether the buffer holds a response.
func (m *MessageUnits) IsResponse() bool { return m.u.IsResponse() }

// Method returns the request method.
func (m *MessageUnits) Method() string { return m.u.Method() }

// Target returns the request target.
func (m *MessageUnits) Target() string { return m.u.Target() }

// Version returns the HTTP version.
func (m *MessageUnits) Version() string { return m.u.Version() }

// StatusCode returns the response status code.
func (m *MessageUnits) StatusCode() int { return m.u.Status() }

// Reason returns the response reason phrase.
func (m *MessageUnits) Reason() string { return m.u.Reason() }

// Len returns the number of header fields.
func (m *MessageUnits) Len() int { return m.u.NumFields() }

// HeaderAt returns header field i in received order and casing.
func (m *MessageUnits) HeaderAt(i int) Header {
	f := m.u.FieldAt(i)
	return Header{Name: f.Name, Value: f.Value}
}

// HeaderValue returns the first value for name (case-insensitive). The
// lookup compares raw bytes; only a hit materializes a string.
func (m *MessageUnits) HeaderValue(name string) (string, bool) {
	return m.u.Value(name)
}

// Framing resolves the body framing for this message.
func (m *MessageUnits) Framing() (BodyFraming, error) {
	return m.u.Framing()
}

// CopyToRequest materializes the view into req: owned strings for the
// start line, headers in received order, and the body per the resolved
// framing (chunked bodies are decoded). The source buffer is safe to
// discard once the call returns.
func (m *MessageUnits) CopyToRequest(req *Request) error {
	if m.u.IsResponse() {
		return &SyntaxError{Reason: "message is a response, not a request"}
	}
	framing, err := m.u.Framing()
	if err != nil {
		return err
	}
	body, err := m.u.MaterializeBody(framing)
	if err != nil {
		return err
	}
	req.Method = m.u.Method()
	req.Target = m.u.Target()
	req.Version = m.u.Version()
	req.Headers = copyHeaders(m.u.Fields())
	req.Body = body
	req.Framing = framing
	return nil
}

// CopyToResponse materializes the view into resp. See CopyToRequest.
func (m *MessageUnits) CopyToResponse(resp *Response) error {
	if !m.u.IsResponse() {
		return &SyntaxError{Reason: "message is a request, not a response"}
	}
	framing, err := m.u.Framing()
	if err != nil {
		return err
	}
	body, err := m.u.MaterializeBody(framing)
	if err != nil {
		return err
	}
	resp.Version = m.u.Version()
	resp.StatusCode = m.u.Status()
	resp.Reason = m.u.Reason()
	resp.Headers = copyHeaders(m.u.Fields())
	resp.Body = body
	resp.Framing = framing
	return nil
}

func copyHeaders(fields []wire.Field) Headers {
	if len(fields) == 0 {
		return nil
	}
	headers := make(Headers, len(fields))
	for i, f := range fields {
		headers[i] = Header{Name: f.Name, Value: f.Value}
	}
	return headers
}
