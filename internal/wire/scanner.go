package wire

import (
	"bytes"
	"strings"
)

// tokenTable marks the tchar set from RFC 9110 §5.6.2. Header field names
// and request methods are tokens.
var tokenTable = [256]bool{}

func init() {
	for c := '0'; c <= '9'; c++ {
		tokenTable[c] = true
	}
	for c := 'a'; c <= 'z'; c++ {
		tokenTable[c] = true
	}
	for c := 'A'; c <= 'Z'; c++ {
		tokenTable[c] = true
	}
	for _, c := range "!#$%&'*+-.^_`|~" {
		tokenTable[c] = true
	}
}

// isToken reports whether b is a non-empty sequence of tchar bytes.
func isToken(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if !tokenTable[c] {
			return false
		}
	}
	return true
}

// ScanRequestLine recognizes "method SP request-target SP HTTP-version" and
// returns spans for the three elements. The cursor advances past the line
// terminator on success. ErrIncomplete means the line terminator has not
// arrived yet.
func ScanRequestLine(c *Cursor, opts Options) (method, target, version Span, err error) {
	line, err := c.line(opts.StrictCRLF)
	if err != nil {
		return Span{}, Span{}, Span{}, err
	}
	content := line.Bytes(c.data)

	sp1 := bytes.IndexByte(content, ' ')
	if sp1 < 0 {
		return Span{}, Span{}, Span{}, syntaxErr(line.Off, "request line: missing method separator")
	}
	sp2 := bytes.IndexByte(content[sp1+1:], ' ')
	if sp2 < 0 {
		return Span{}, Span{}, Span{}, syntaxErr(line.Off+sp1+1, "request line: missing version separator")
	}
	sp2 += sp1 + 1

	method = Span{Off: line.Off, Len: sp1}
	target = Span{Off: line.Off + sp1 + 1, Len: sp2 - sp1 - 1}
	version = Span{Off: line.Off + sp2 + 1, Len: line.Len - sp2 - 1}

	if !isToken(method.Bytes(c.data)) {
		return Span{}, Span{}, Span{}, syntaxErr(method.Off, "request line: method is not a token")
	}
	if target.Len == 0 {
		return Span{}, Span{}, Span{}, syntaxErr(target.Off, "request line: empty request target")
	}
	if !bytes.HasPrefix(version.Bytes(c.data), []byte("HTTP/")) {
		return Span{}, Span{}, Span{}, syntaxErr(version.Off, "request line: malformed HTTP version")
	}
	return method, target, version, nil
}

// ScanStatusLine recognizes "HTTP-version SP status-code [SP reason]" and
// returns the version span, the numeric status code, and the reason span
// (zero span when the reason phrase is absent).
func ScanStatusLine(c *Cursor, opts Options) (version Span, status int, reason Span, err error) {
	line, err := c.line(opts.StrictCRLF)
	if err != nil {
		return Span{}, 0, Span{}, err
	}
	content := line.Bytes(c.data)

	sp1 := bytes.IndexByte(content, ' ')
	if sp1 < 0 {
		return Span{}, 0, Span{}, syntaxErr(line.Off, "status line: missing version separator")
	}
	version = Span{Off: line.Off, Len: sp1}
	if !bytes.HasPrefix(content, []byte("HTTP/")) {
		return Span{}, 0, Span{}, syntaxErr(line.Off, "status line: malformed HTTP version")
	}

	codeBytes := content[sp1+1:]
	reason = Span{}
	if sp2 := bytes.IndexByte(codeBytes, ' '); sp2 >= 0 {
		reason = Span{Off: line.Off + sp1 + 1 + sp2 + 1, Len: len(codeBytes) - sp2 - 1}
		codeBytes = codeBytes[:sp2]
	}
	status, ok := parseStatusCode(codeBytes)
	if !ok {
		return Span{}, 0, Span{}, syntaxErr(line.Off+sp1+1, "status line: invalid status code %q", string(codeBytes))
	}
	return version, status, reason, nil
}

// parseStatusCode accepts exactly three digits in 100..599.
func parseStatusCode(b []byte) (int, bool) {
	if len(b) != 3 {
		return 0, false
	}
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	if n < 100 {
		return 0, false
	}
	return n, true
}

// ScanHeaderField recognizes one "field-name: field-value" line. It returns
// done=true after consuming the blank line that terminates the header block.
// The value span is OWS-trimmed; when opts.UnfoldObsFold is set and the
// field is continued on folded lines, the span covers the folded region
// including its embedded line breaks (materialize with unfoldValue).
func ScanHeaderField(c *Cursor, opts Options) (name, value Span, done bool, err error) {
	if c.atBlankLine(opts.StrictCRLF) {
		if b, _ := c.Peek(); b == '\r' {
			c.Advance(2)
		} else {
			c.Advance(1)
		}
		return Span{}, Span{}, true, nil
	}
	// A lone CR at the buffer end may still become a blank line.
	if b, ok := c.Peek(); ok && b == '\r' && c.Remaining() == 1 {
		return Span{}, Span{}, false, ErrIncomplete
	}

	mark := *c
	line, err := c.line(opts.StrictCRLF)
	if err != nil {
		return Span{}, Span{}, false, err
	}
	content := line.Bytes(c.data)

	if content[0] == ' ' || content[0] == '\t' {
		return Span{}, Span{}, false, syntaxErr(line.Off, "header field: continuation line without preceding field")
	}

	colon := bytes.IndexByte(content, ':')
	if colon < 0 {
		return Span{}, Span{}, false, syntaxErr(line.Off, "header field: missing colon")
	}
	nameBytes := content[:colon]
	if !isToken(nameBytes) {
		return Span{}, Span{}, false, syntaxErr(line.Off, "header field: field name is not a token")
	}
	name = Span{Off: line.Off, Len: colon}
	value = trimOWSSpan(c.data, Span{Off: line.Off + colon + 1, Len: line.Len - colon - 1})

	// Obsolete line folding: a following line starting with SP or HTAB
	// continues this field's value.
	for {
		b, ok := c.Peek()
		if !ok {
			// Cannot tell yet whether the next line is a fold.
			*c = mark
			return Span{}, Span{}, false, ErrIncomplete
		}
		if b != ' ' && b != '\t' {
			break
		}
		if !opts.UnfoldObsFold {
			return Span{}, Span{}, false, syntaxErr(c.Pos(), "header field: obsolete line folding")
		}
		cont, lineErr := c.line(opts.StrictCRLF)
		if lineErr != nil {
			*c = mark
			return Span{}, Span{}, false, lineErr
		}
		folded := Span{Off: value.Off, Len: cont.End() - value.Off}
		value = trimOWSSpan(c.data, folded)
	}
	return name, value, false, nil
}

// trimOWSSpan narrows a span to exclude leading and trailing SP/HTAB.
func trimOWSSpan(buf []byte, s Span) Span {
	off, end := s.Off, s.End()
	for off < end && (buf[off] == ' ' || buf[off] == '\t') {
		off++
	}
	for end > off && (buf[end-1] == ' ' || buf[end-1] == '\t') {
		end--
	}
	return Span{Off: off, Len: end - off}
}

// unfoldValue materializes a header value span. Folded line breaks and the
// surrounding whitespace collapse into a single SP.
func unfoldValue(b []byte) string {
	if bytes.IndexByte(b, '\n') < 0 {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	i := 0
	for i < len(b) {
		c := b[i]
		if c == '\r' || c == '\n' {
			for i < len(b) && (b[i] == '\r' || b[i] == '\n' || b[i] == ' ' || b[i] == '\t') {
				i++
			}
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(c)
		i++
	}
	return strings.TrimRight(sb.String(), " ")
}

// ScanChunkSizeLine recognizes a chunk-size line: hex digits, an optional
// ";ext" chunk extension (ignored), then a line terminator. The size is
// checked against opts.MaxChunkSize.
func ScanChunkSizeLine(c *Cursor, opts Options) (int64, error) {
	line, err := c.line(opts.StrictCRLF)
	if err != nil {
		return 0, err
	}
	content := line.Bytes(c.data)
	if semi := bytes.IndexByte(content, ';'); semi >= 0 {
		content = content[:semi]
	}
	content = bytes.TrimRight(content, " \t")
	if len(content) == 0 {
		return 0, syntaxErr(line.Off, "chunk header: empty chunk size")
	}

	var size int64
	for _, ch := range content {
		var d int64
		switch {
		case ch >= '0' && ch <= '9':
			d = int64(ch - '0')
		case ch >= 'a' && ch <= 'f':
			d = int64(ch-'a') + 10
		case ch >= 'A' && ch <= 'F':
			d = int64(ch-'A') + 10
		default:
			return 0, syntaxErr(line.Off, "chunk header: invalid hex digit %q", ch)
		}
		if size > (1<<62)/16 {
			return 0, &TooLargeError{Limit: LimitChunk}
		}
		size = size<<4 | d
	}
	if size > int64(opts.MaxChunkSize) {
		return 0, &TooLargeError{Limit: LimitChunk}
	}
	return size, nil
}
