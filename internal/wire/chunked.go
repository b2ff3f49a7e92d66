package wire

// Dechunk decodes a complete chunked body from data. It returns the decoded
// body, the number of input bytes consumed (through the final terminator,
// trailer fields included), and an error. ErrIncomplete means data ends
// mid-body; malformed chunk grammar is a *SyntaxError and oversized chunks
// or bodies are *TooLargeError.
//
// Trailer fields after the zero-size chunk are scanned for well-formedness
// and discarded.
func Dechunk(data []byte, opts Options) (body []byte, consumed int, err error) {
	opts = opts.withDefaults()
	c := NewCursor(data)

	for {
		size, err := ScanChunkSizeLine(c, opts)
		if err != nil {
			return nil, 0, err
		}
		if size == 0 {
			break
		}
		if int64(len(body))+size > int64(opts.MaxBodyBytes) {
			return nil, 0, &TooLargeError{Limit: LimitBody}
		}
		if int64(c.Remaining()) < size {
			return nil, 0, ErrIncomplete
		}
		body = append(body, c.Rest()[:size]...)
		c.Advance(int(size))

		end, err := c.line(opts.StrictCRLF)
		if err != nil {
			return nil, 0, err
		}
		if end.Len != 0 {
			return nil, 0, syntaxErr(end.Off, "chunked body: missing CRLF after chunk data")
		}
	}

	// Trailer section: zero or more header fields, then a blank line.
	for {
		_, _, done, err := ScanHeaderField(c, opts)
		if err != nil {
			return nil, 0, err
		}
		if done {
			return body, c.Pos(), nil
		}
	}
}
