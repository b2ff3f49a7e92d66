package httpwire

import (
	"github.com/shapestone/httpwire/internal/wire"
)

// State is the decoder state reported by Feed and Close.
type State = wire.State

// Decoder states.
const (
	// NeedMore means the buffered input ends mid-message; feed more bytes.
	NeedMore = wire.StateNeedMore
	// Done means a complete message is available via Request or Response.
	Done = wire.StateDone
)

// Decoder incrementally decodes one message at a time from input arriving
// in arbitrary-sized chunks. It owns everything it returns: no result
// aliases a fed buffer. A Decoder serves exactly one connection direction
// and is not safe for concurrent use; decoding independent connections
// takes one Decoder each, with no shared state between them.
//
// Errors latch: after a failed Feed every subsequent call reports the same
// error. Resetting past a framing violation is deliberately impossible —
// the caller's only move is to discard the Decoder (and usually the
// connection).
type Decoder struct {
	m        *wire.Machine
	response bool
}

// NewRequestDecoder returns a Decoder for request messages.
func NewRequestDecoder(opts Options) *Decoder {
	return &Decoder{m: wire.NewMachine(wire.KindRequest, opts)}
}

// NewResponseDecoder returns a Decoder for response messages.
func NewResponseDecoder(opts Options) *Decoder {
	return &Decoder{m: wire.NewMachine(wire.KindResponse, opts), response: true}
}

// Feed appends p to the decoder's buffer and advances as far as possible.
// It returns Done once a message is complete, NeedMore when input ran out,
// or an error (*SyntaxError, *AmbiguousFramingError, *TooLargeError). Feed
// never blocks; it returns as soon as the buffered bytes are exhausted.
func (d *Decoder) Feed(p []byte) (State, error) {
	return d.m.Feed(p)
}

// Close signals that no more input will arrive (the peer closed the
// connection). A response body framed until-close completes; any other
// unfinished message fails with ErrIncomplete.
func (d *Decoder) Close() (State, error) {
	return d.m.Close()
}

// Rest returns bytes fed beyond the completed message. With pipelined
// input these belong to the next message; call Reset to decode it.
func (d *Decoder) Rest() []byte { return d.m.Rest() }

// Reset re-arms the decoder for the next message on the same connection,
// carrying Rest over. It has no effect on a failed decoder.
func (d *Decoder) Reset() { d.m.Reset() }

// Request returns the decoded request. Valid only after Done on a request
// decoder.
func (d *Decoder) Request() *Request {
	if d.response {
		return nil
	}
	msg := d.m.Message()
	return &Request{
		Method:  msg.Method,
		Target:  msg.Target,
		Version: msg.Version,
		Headers: copyHeaders(msg.Fields),
		Body:    msg.Body,
		Framing: msg.Framing,
	}
}

// Response returns the decoded response. Valid only after Done on a
// response decoder.
func (d *Decoder) Response() *Response {
	if !d.response {
		return nil
	}
	msg := d.m.Message()
	return &Response{
		Version:    msg.Version,
		StatusCode: msg.Status,
		Reason:     msg.Reason,
		Headers:    copyHeaders(msg.Fields),
		Body:       msg.Body,
		Framing:    msg.Framing,
	}
}
