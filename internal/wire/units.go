package wire

// Units is the zero-copy view of one complete message: spans into the
// source buffer for every start-line element and header field, plus the
// body offset. It borrows the buffer for its entire lifetime and must be
// discarded before the buffer is; nothing here copies until a caller asks
// for materialized values.
type Units struct {
	buf  []byte
	opts Options

	response bool
	method   Span // request only
	target   Span // request only
	version  Span
	status   int  // response only
	reason   Span // response only

	fields  []FieldSpan
	bodyOff int
}

// ScanUnits runs the grammar scanner once over buf, which must hold at
// least one complete header block. ErrIncomplete is returned when the
// terminating blank line (or a complete start line) has not arrived;
// malformed input is a *SyntaxError.
func ScanUnits(buf []byte, opts Options) (*Units, error) {
	opts = opts.withDefaults()
	u := &Units{buf: buf, opts: opts, response: IsResponseData(buf)}
	c := NewCursor(buf)

	var err error
	if u.response {
		u.version, u.status, u.reason, err = ScanStatusLine(c, opts)
	} else {
		u.method, u.target, u.version, err = ScanRequestLine(c, opts)
	}
	if err != nil {
		return nil, headerLimitErr(err, len(buf), opts)
	}

	for {
		name, value, done, err := ScanHeaderField(c, opts)
		if err != nil {
			return nil, headerLimitErr(err, len(buf), opts)
		}
		if done {
			break
		}
		u.fields = append(u.fields, FieldSpan{Name: name, Value: value})
	}
	if c.Pos() > opts.MaxHeaderBytes {
		return nil, &TooLargeError{Limit: LimitHeader}
	}
	u.bodyOff = c.Pos()
	return u, nil
}

// headerLimitErr upgrades ErrIncomplete to a TooLargeError once the header
// block can no longer fit in the configured bound: an unterminated start
// line past the limit is oversized, not pending.
func headerLimitErr(err error, buffered int, opts Options) error {
	if err == ErrIncomplete && buffered > opts.MaxHeaderBytes {
		return &TooLargeError{Limit: LimitHeader}
	}
	return err
}

// IsResponseData reports whether data starts like a status line.
func IsResponseData(data []byte) bool {
	const prefix = "HTTP/"
	if len(data) < len(prefix) {
		return false
	}
	return string(data[:len(prefix)]) == prefix
}

// IsResponse reports whether the scanned message is a response.
func (u *Units) IsResponse() bool { return u.response }

// Method materializes the request method.
func (u *Units) Method() string { return internMethod(u.method.Bytes(u.buf)) }

// Target materializes the request target.
func (u *Units) Target() string { return string(u.target.Bytes(u.buf)) }

// Version materializes the HTTP version.
func (u *Units) Version() string { return internVersion(u.version.Bytes(u.buf)) }

// Status returns the response status code.
func (u *Units) Status() int { return u.status }

// Reason materializes the response reason phrase.
func (u *Units) Reason() string { return internReason(u.reason.Bytes(u.buf)) }

// MethodSpan returns the method span. Spans index the source buffer.
func (u *Units) MethodSpan() Span { return u.method }

// TargetSpan returns the request-target span.
func (u *Units) TargetSpan() Span { return u.target }

// VersionSpan returns the HTTP-version span.
func (u *Units) VersionSpan() Span { return u.version }

// NumFields returns the number of header fields, in received order.
func (u *Units) NumFields() int { return len(u.fields) }

// FieldSpanAt returns the span pair of field i.
func (u *Units) FieldSpanAt(i int) FieldSpan { return u.fields[i] }

// FieldAt materializes field i, preserving the name's original casing.
func (u *Units) FieldAt(i int) Field {
	fs := u.fields[i]
	return Field{
		Name:  internFieldName(fs.Name.Bytes(u.buf)),
		Value: unfoldValue(fs.Value.Bytes(u.buf)),
	}
}

// Value finds the first field matching name case-insensitively and
// materializes its value. The comparison runs over the raw spans; nothing
// is allocated for misses.
func (u *Units) Value(name string) (string, bool) {
	for _, fs := range u.fields {
		if eqFoldBytes(fs.Name.Bytes(u.buf), name) {
			return unfoldValue(fs.Value.Bytes(u.buf)), true
		}
	}
	return "", false
}

// Fields materializes every header field in order.
func (u *Units) Fields() []Field {
	if len(u.fields) == 0 {
		return nil
	}
	out := make([]Field, len(u.fields))
	for i := range u.fields {
		out[i] = u.FieldAt(i)
	}
	return out
}

// BodyOffset returns the offset of the first body byte (the byte after the
// header block's blank line).
func (u *Units) BodyOffset() int { return u.bodyOff }

// Framing resolves body framing for the scanned header set.
func (u *Units) Framing() (Framing, error) {
	return ResolveFraming(u.response, u.Fields(), u.opts)
}

// MaterializeBody copies the body out of the source buffer according to f.
// Chunked bodies are decoded; ErrIncomplete is returned when the buffer
// ends before the framing is satisfied.
func (u *Units) MaterializeBody(f Framing) ([]byte, error) {
	rest := u.buf[u.bodyOff:]
	switch f.Kind {
	case FramingNone:
		return nil, nil
	case FramingContentLength:
		if f.Length == 0 {
			return nil, nil
		}
		if int64(len(rest)) < f.Length {
			return nil, ErrIncomplete
		}
		body := make([]byte, f.Length)
		copy(body, rest)
		return body, nil
	case FramingChunked:
		body, _, err := Dechunk(rest, u.opts)
		return body, err
	case FramingUntilClose:
		if len(rest) > u.opts.MaxBodyBytes {
			return nil, &TooLargeError{Limit: LimitBody}
		}
		if len(rest) == 0 {
			return nil, nil
		}
		body := make([]byte, len(rest))
		copy(body, rest)
		return body, nil
	}
	return nil, nil
}

// eqFoldBytes compares a byte slice to a string ASCII case-insensitively
// without allocating.
func eqFoldBytes(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		cb, cs := b[i], s[i]
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if cs >= 'A' && cs <= 'Z' {
			cs += 'a' - 'A'
		}
		if cb != cs {
			return false
		}
	}
	return true
}
