package wire

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// LenientResult is the outcome of a best-effort parse. Exactly one of
// Request and Response is set; Warnings describe what had to be repaired
// and Partial marks truncated input.
type LenientResult struct {
	Request  *Message
	Response *Message
	Warnings []string
	Partial  bool
}

func (r *LenientResult) warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ParseLenient never fails: it extracts whatever structure the input
// contains and reports problems as warnings. It accepts bare LF endings,
// a missing HTTP version (defaulted to HTTP/1.1), a missing reason phrase,
// skips malformed header lines, and takes a truncated body as-is.
func ParseLenient(data []byte) *LenientResult {
	res := &LenientResult{}
	msg := &Message{}
	if IsResponseData(data) {
		res.Response = msg
	} else {
		res.Request = msg
	}

	lines, bodyOff, terminated := splitHeaderBlock(data)
	if !terminated {
		res.Partial = true
		res.warnf("header block is not terminated by a blank line")
	}
	if len(lines) == 0 {
		res.warnf("message has no start line")
		return res
	}

	if res.Response != nil {
		lenientStatusLine(lines[0], msg, res)
	} else {
		lenientRequestLine(lines[0], msg, res)
	}

	for _, line := range lines[1:] {
		if line[0] == ' ' || line[0] == '\t' {
			// Fold onto the previous field when there is one.
			if n := len(msg.Fields); n > 0 {
				msg.Fields[n-1].Value += " " + strings.Trim(string(line), " \t")
				res.warnf("obsolete line folding unfolded")
			} else {
				res.warnf("continuation line without preceding field skipped")
			}
			continue
		}
		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			res.warnf("malformed header line skipped: %q", string(line))
			continue
		}
		name := strings.TrimRight(string(line[:colon]), " \t")
		value := strings.Trim(string(line[colon+1:]), " \t")
		msg.Fields = append(msg.Fields, Field{Name: name, Value: value})
	}

	lenientBody(data[bodyOff:], msg, res)
	return res
}

// splitHeaderBlock cuts data into header-block lines and the body offset.
// Lines are terminated by CRLF or bare LF; the block ends at the first
// blank line or at the end of input.
func splitHeaderBlock(data []byte) (lines [][]byte, bodyOff int, terminated bool) {
	pos := 0
	for pos < len(data) {
		nl := bytes.IndexByte(data[pos:], '\n')
		if nl < 0 {
			lines = append(lines, data[pos:])
			return lines, len(data), false
		}
		line := data[pos : pos+nl]
		line = bytes.TrimSuffix(line, []byte("\r"))
		pos += nl + 1
		if len(line) == 0 {
			return lines, pos, true
		}
		lines = append(lines, line)
	}
	return lines, len(data), false
}

func lenientRequestLine(line []byte, msg *Message, res *LenientResult) {
	parts := strings.Fields(string(line))
	switch len(parts) {
	case 0:
		res.warnf("empty request line")
	case 1:
		msg.Method = parts[0]
		res.warnf("request line has no target")
	case 2:
		msg.Method = parts[0]
		msg.Target = parts[1]
		msg.Version = "HTTP/1.1"
		res.warnf("request line has no version, assuming HTTP/1.1")
	default:
		msg.Method = parts[0]
		msg.Target = parts[1]
		msg.Version = parts[2]
		if len(parts) > 3 {
			res.warnf("request line has extra fields")
		}
	}
}

func lenientStatusLine(line []byte, msg *Message, res *LenientResult) {
	parts := strings.SplitN(string(line), " ", 3)
	msg.Version = parts[0]
	if len(parts) < 2 {
		res.warnf("status line has no status code")
		return
	}
	code, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		res.warnf("invalid status code %q", parts[1])
	} else {
		msg.Status = code
	}
	if len(parts) == 3 {
		msg.Reason = parts[2]
	} else {
		res.warnf("status line has no reason phrase")
	}
}

// lenientBody applies framing resolution but degrades instead of failing:
// an ambiguous or unparseable framing falls back to rest-of-input, a short
// fixed-length body is taken as-is, and a broken chunked body is kept raw.
func lenientBody(rest []byte, msg *Message, res *LenientResult) {
	framing, err := ResolveFraming(res.Response != nil, msg.Fields, Options{CloseDelimited: true})
	if err != nil {
		res.warnf("body framing unresolvable (%v), keeping remaining bytes", err)
		msg.Framing = Framing{Kind: FramingUntilClose}
		msg.Body = copyBytes(rest)
		return
	}
	msg.Framing = framing

	switch framing.Kind {
	case FramingContentLength:
		if int64(len(rest)) < framing.Length {
			res.warnf("message body is incomplete")
			res.Partial = true
			msg.Body = copyBytes(rest)
			return
		}
		msg.Body = copyBytes(rest[:framing.Length])
	case FramingChunked:
		body, _, err := Dechunk(rest, DefaultOptions())
		if err != nil {
			if err == ErrIncomplete {
				res.warnf("message body is incomplete")
				res.Partial = true
			} else {
				res.warnf("chunked body undecodable (%v), keeping raw bytes", err)
			}
			msg.Body = copyBytes(rest)
			return
		}
		msg.Body = body
	case FramingUntilClose:
		msg.Body = copyBytes(rest)
	case FramingNone:
		if len(rest) > 0 {
			res.warnf("unframed trailing bytes kept as body")
			msg.Body = copyBytes(rest)
		}
	}
}

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
