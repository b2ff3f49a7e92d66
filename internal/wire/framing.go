package wire

import (
	"strings"
)

// FramingKind enumerates the four ways a message body can be delimited.
type FramingKind uint8

const (
	FramingNone FramingKind = iota
	FramingContentLength
	FramingChunked
	FramingUntilClose
)

func (k FramingKind) String() string {
	switch k {
	case FramingNone:
		return "none"
	case FramingContentLength:
		return "content-length"
	case FramingChunked:
		return "chunked"
	case FramingUntilClose:
		return "until-close"
	}
	return "unknown"
}

// Framing is the resolved body delimitation for one message. Length is
// meaningful only for FramingContentLength.
type Framing struct {
	Kind   FramingKind
	Length int64
}

// Field is an owned header field, the materialized form of a FieldSpan.
type Field struct {
	Name  string
	Value string
}

// ResolveFraming determines body framing from the accumulated header set.
// Both parsing strategies route through this function; it is the only place
// message length rules live. Precedence per RFC 9112 §6:
//
//  1. Transfer-Encoding present: combined with any Content-Length the
//     message is rejected as ambiguous. Last coding "chunked" selects
//     chunked framing. A non-chunked final coding leaves a request without
//     a determinable length (rejected); a response reads until close.
//  2. Content-Length: all values (across repeated headers and within
//     comma-separated lists) must agree and parse as a non-negative
//     decimal. Identical duplicates are tolerated.
//  3. Otherwise: a close-delimited response reads until close; anything
//     else has no body.
func ResolveFraming(isResponse bool, fields []Field, opts Options) (Framing, error) {
	opts = opts.withDefaults()

	var codings []string
	var lengths []string
	hasTE := false
	hasCL := false
	for _, f := range fields {
		switch {
		case strings.EqualFold(f.Name, "Transfer-Encoding"):
			hasTE = true
			for _, part := range strings.Split(f.Value, ",") {
				if part = strings.TrimSpace(part); part != "" {
					codings = append(codings, part)
				}
			}
		case strings.EqualFold(f.Name, "Content-Length"):
			hasCL = true
			for _, part := range strings.Split(f.Value, ",") {
				lengths = append(lengths, strings.TrimSpace(part))
			}
		}
	}

	if hasTE {
		if hasCL {
			return Framing{}, &AmbiguousFramingError{
				Reason: "message has both Transfer-Encoding and Content-Length",
			}
		}
		if len(codings) > 0 && strings.EqualFold(codings[len(codings)-1], "chunked") {
			return Framing{Kind: FramingChunked}, nil
		}
		if isResponse {
			return Framing{Kind: FramingUntilClose}, nil
		}
		return Framing{}, syntaxErr(0, "request Transfer-Encoding does not end in chunked")
	}

	if hasCL {
		first := lengths[0]
		for _, v := range lengths[1:] {
			if v != first {
				return Framing{}, &AmbiguousFramingError{
					Reason: "conflicting Content-Length values",
				}
			}
		}
		n, ok := parseContentLength(first)
		if !ok {
			return Framing{}, syntaxErr(0, "invalid Content-Length %q", first)
		}
		if n > int64(opts.MaxBodyBytes) {
			return Framing{}, &TooLargeError{Limit: LimitBody}
		}
		return Framing{Kind: FramingContentLength, Length: n}, nil
	}

	if isResponse && opts.CloseDelimited {
		return Framing{Kind: FramingUntilClose}, nil
	}
	return Framing{Kind: FramingNone}, nil
}

// parseContentLength accepts a non-negative decimal with no sign, spaces,
// or radix prefixes. Stricter than strconv.ParseInt on purpose: permissive
// length parsing is how smuggled lengths slip through.
func parseContentLength(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		if n > (1<<62)/10 {
			return 0, false
		}
		n = n*10 + int64(c-'0')
	}
	return n, true
}
