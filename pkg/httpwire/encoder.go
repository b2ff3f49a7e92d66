package httpwire

import (
	"io"
	"strconv"
)

// Encoder writes HTTP messages to an output sink.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the wire-format encoding of v (a *Request or *Response).
func (enc *Encoder) Encode(v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	_, err = enc.w.Write(data)
	return err
}

// appendRequest serializes "METHOD SP target SP version CRLF", headers,
// blank line, body.
func appendRequest(buf []byte, req *Request) ([]byte, error) {
	if err := validMethod(req.Method); err != nil {
		return buf, err
	}
	if req.Target == "" {
		return buf, &SyntaxError{Reason: "request target is empty"}
	}
	if err := validHeaders(req.Headers); err != nil {
		return buf, err
	}

	version := req.Version
	if version == "" {
		version = "HTTP/1.1"
	}
	buf = append(buf, req.Method...)
	buf = append(buf, ' ')
	buf = append(buf, req.Target...)
	buf = append(buf, ' ')
	buf = append(buf, version...)
	buf = appendCRLF(buf)
	return appendTail(buf, req.Headers, req.Body, req.Framing), nil
}

// appendResponse serializes "version SP status SP reason CRLF", headers,
// blank line, body.
func appendResponse(buf []byte, resp *Response) ([]byte, error) {
	if resp.StatusCode < 100 || resp.StatusCode > 599 {
		return buf, &SyntaxError{Reason: "status code out of range"}
	}
	if err := validHeaders(resp.Headers); err != nil {
		return buf, err
	}

	version := resp.Version
	if version == "" {
		version = "HTTP/1.1"
	}
	buf = append(buf, version...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(resp.StatusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, resp.Reason...)
	buf = appendCRLF(buf)
	return appendTail(buf, resp.Headers, resp.Body, resp.Framing), nil
}

// appendTail writes headers, the blank line, and the body. Chunked framing
// re-chunks the flattened body as a single chunk plus terminator; anything
// else writes the body verbatim. The output must stay self-describing, so
// the framing header is added when the Framing field asks for a delimitation
// the header set does not declare: Content-Length for a plain body,
// Transfer-Encoding for a chunked one.
func appendTail(buf []byte, headers Headers, body []byte, framing BodyFraming) []byte {
	chunked := framing.Kind == FramingChunked || headers.IsChunked()

	for _, h := range headers {
		buf = append(buf, h.Name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, h.Value...)
		buf = appendCRLF(buf)
	}
	if chunked && !headers.IsChunked() {
		buf = append(buf, "Transfer-Encoding: chunked"...)
		buf = appendCRLF(buf)
	}
	if len(body) > 0 && !chunked && !headers.Has("Content-Length") {
		buf = append(buf, "Content-Length: "...)
		buf = strconv.AppendInt(buf, int64(len(body)), 10)
		buf = appendCRLF(buf)
	}
	buf = appendCRLF(buf)

	if chunked {
		if len(body) > 0 {
			buf = strconv.AppendInt(buf, int64(len(body)), 16)
			buf = appendCRLF(buf)
			buf = append(buf, body...)
			buf = appendCRLF(buf)
		}
		buf = append(buf, '0')
		buf = appendCRLF(buf)
		buf = appendCRLF(buf)
		return buf
	}
	return append(buf, body...)
}

func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

func validMethod(method string) error {
	if method == "" {
		return &SyntaxError{Reason: "request method is empty"}
	}
	for i := 0; i < len(method); i++ {
		if !isTokenByte(method[i]) {
			return &SyntaxError{Reason: "request method is not a token"}
		}
	}
	return nil
}

func validHeaders(headers Headers) error {
	for _, h := range headers {
		if h.Name == "" {
			return &SyntaxError{Reason: "header name is empty"}
		}
		for i := 0; i < len(h.Name); i++ {
			c := h.Name[i]
			if c == ':' || c < 0x21 || c == 0x7f {
				return &SyntaxError{Reason: "header name contains invalid byte"}
			}
		}
		for i := 0; i < len(h.Value); i++ {
			c := h.Value[i]
			if c == '\r' || c == '\n' || c == 0x00 {
				return &SyntaxError{Reason: "header value contains invalid byte"}
			}
		}
	}
	return nil
}

func isTokenByte(c byte) bool {
	switch {
	case c >= '0' && c <= '9', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
