package wire

// Cursor is a position into an immutable byte buffer. It never mutates or
// copies the buffer; scanning functions advance it past what they consume.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current offset into the buffer.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unconsumed bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Peek returns the byte at the current position without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

// PeekAt returns the byte n positions ahead of the cursor.
func (c *Cursor) PeekAt(n int) (byte, bool) {
	if c.pos+n >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos+n], true
}

// Advance moves the cursor forward by n bytes, clamped to the buffer end.
func (c *Cursor) Advance(n int) {
	c.pos += n
	if c.pos > len(c.data) {
		c.pos = len(c.data)
	}
}

// Rest returns the unconsumed tail of the buffer. The result aliases the
// underlying buffer.
func (c *Cursor) Rest() []byte { return c.data[c.pos:] }

// line scans forward from the cursor for a line terminator and returns the
// span of the line content (terminator excluded), advancing the cursor past
// the terminator. A lone CR inside the line stays part of the content; only
// CRLF (and bare LF unless strictCRLF) terminates. Returns ErrIncomplete
// when the buffer ends before a terminator, leaving the cursor unmoved.
func (c *Cursor) line(strictCRLF bool) (Span, error) {
	start := c.pos
	for i := c.pos; i < len(c.data); i++ {
		if c.data[i] != '\n' {
			continue
		}
		if i > start && c.data[i-1] == '\r' {
			c.pos = i + 1
			return Span{Off: start, Len: i - 1 - start}, nil
		}
		if strictCRLF {
			return Span{}, syntaxErr(i, "bare LF line ending")
		}
		c.pos = i + 1
		return Span{Off: start, Len: i - start}, nil
	}
	return Span{}, ErrIncomplete
}

// atBlankLine reports whether the cursor sits on an empty line (CRLF, or
// bare LF unless strictCRLF). It does not consume the line.
func (c *Cursor) atBlankLine(strictCRLF bool) bool {
	b, ok := c.Peek()
	if !ok {
		return false
	}
	if b == '\r' {
		b2, ok2 := c.PeekAt(1)
		return ok2 && b2 == '\n'
	}
	return b == '\n' && !strictCRLF
}
