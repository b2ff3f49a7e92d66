package wire

// Span is an (offset, length) reference into a byte buffer. A Span owns no
// data; it is only meaningful together with the buffer it was produced from.
type Span struct {
	Off int
	Len int
}

// IsZero reports whether the span is the zero span.
func (s Span) IsZero() bool { return s.Off == 0 && s.Len == 0 }

// End returns the exclusive end offset.
func (s Span) End() int { return s.Off + s.Len }

// Bytes returns the referenced slice of buf. The result aliases buf.
func (s Span) Bytes(buf []byte) []byte { return buf[s.Off : s.Off+s.Len] }

// FieldSpan is a header field as a pair of spans into the source buffer.
// The value span is OWS-trimmed but may still contain folded line breaks
// when obsolete line folding is being unfolded (see unfoldValue).
type FieldSpan struct {
	Name  Span
	Value Span
}
