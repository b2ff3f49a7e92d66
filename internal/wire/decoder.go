package wire

// Kind selects whether a Machine decodes requests or responses. One side of
// a connection only ever sees one kind, so it is fixed at construction.
type Kind uint8

const (
	KindRequest Kind = iota + 1
	KindResponse
)

// State is the observable decoder state after a Feed or Close call.
type State uint8

const (
	StateNeedMore State = iota + 1
	StateDone
)

// Message is the owned result of an incremental decode. Every string and
// byte slice is independent of the fed buffers.
type Message struct {
	Method  string
	Target  string
	Version string
	Status  int
	Reason  string
	Fields  []Field
	Body    []byte
	Framing Framing
}

type phase uint8

const (
	phaseStartLine phase = iota + 1
	phaseHeaders
	phaseFixedBody
	phaseChunkSize
	phaseChunkData
	phaseChunkDataEnd
	phaseTrailers
	phaseUntilClose
	phaseDone
	phaseFailed
)

// Machine is the resumable decode state machine. Feed appends input and
// advances as far as the buffered bytes allow; no call blocks or performs
// I/O. A Machine is owned by a single caller and is not safe for concurrent
// use. Once a decode fails the machine latches the error: a framing
// violation must never be silently retried on the same byte stream.
type Machine struct {
	kind Kind
	opts Options

	buf    []byte // accumulation buffer
	pos    int    // consumed offset into buf
	phase  phase
	err    error
	closed bool

	msg          Message
	need         int64 // bytes outstanding for the fixed body or current chunk
	trailerStart int   // offset of the trailer section, for its size bound
}

// NewMachine returns a machine ready to decode one message of the given
// kind. Zero limits in opts take the package defaults.
func NewMachine(kind Kind, opts Options) *Machine {
	return &Machine{kind: kind, opts: opts.withDefaults(), phase: phaseStartLine}
}

// Feed appends p to the accumulation buffer and advances the decode.
// It returns StateDone when a complete message is available via Message,
// StateNeedMore when the input ran out mid-element, or the latched error.
func (m *Machine) Feed(p []byte) (State, error) {
	if m.phase == phaseFailed {
		return 0, m.err
	}
	m.buf = append(m.buf, p...)
	if m.phase == phaseDone {
		return StateDone, nil
	}
	return m.run()
}

// Close signals end of input. An until-close body completes; any other
// unfinished message fails with ErrIncomplete.
func (m *Machine) Close() (State, error) {
	if m.phase == phaseFailed {
		return 0, m.err
	}
	m.closed = true
	switch m.phase {
	case phaseDone:
		return StateDone, nil
	case phaseUntilClose:
		m.phase = phaseDone
		return StateDone, nil
	default:
		return 0, m.fail(ErrIncomplete)
	}
}

// Message returns the decoded message. Valid only after StateDone.
func (m *Machine) Message() *Message { return &m.msg }

// Rest returns the bytes fed beyond the end of the completed message.
// They belong to the next pipelined message.
func (m *Machine) Rest() []byte { return m.buf[m.pos:] }

// Reset re-arms the machine for the next message on the same connection,
// carrying any unconsumed bytes over. A failed machine stays failed.
func (m *Machine) Reset() {
	if m.phase == phaseFailed {
		return
	}
	rest := m.buf[m.pos:]
	buf := make([]byte, len(rest))
	copy(buf, rest)
	m.buf = buf
	m.pos = 0
	m.msg = Message{}
	m.need = 0
	m.trailerStart = 0
	m.phase = phaseStartLine
}

func (m *Machine) fail(err error) error {
	m.phase = phaseFailed
	m.err = err
	return err
}

// run drives the phase loop over the currently buffered bytes.
func (m *Machine) run() (State, error) {
	for {
		switch m.phase {
		case phaseStartLine:
			if err := m.stepStartLine(); err != nil {
				return m.pend(err)
			}
		case phaseHeaders:
			if err := m.stepHeaders(); err != nil {
				return m.pend(err)
			}
		case phaseFixedBody:
			m.consumeBody()
			if m.need > 0 {
				return StateNeedMore, nil
			}
			m.phase = phaseDone
		case phaseChunkSize:
			if err := m.stepChunkSize(); err != nil {
				return m.pend(err)
			}
		case phaseChunkData:
			m.consumeBody()
			if m.need > 0 {
				return StateNeedMore, nil
			}
			m.phase = phaseChunkDataEnd
		case phaseChunkDataEnd:
			if err := m.stepChunkDataEnd(); err != nil {
				return m.pend(err)
			}
		case phaseTrailers:
			if err := m.stepTrailers(); err != nil {
				return m.pend(err)
			}
		case phaseUntilClose:
			if err := m.consumeUntilClose(); err != nil {
				return 0, m.fail(err)
			}
			return StateNeedMore, nil
		case phaseDone:
			return StateDone, nil
		}
	}
}

// pend translates a step error: ErrIncomplete means wait for more input
// unless the header block already exceeds its bound; everything else latches.
func (m *Machine) pend(err error) (State, error) {
	if err == ErrIncomplete {
		if m.inHeaderBlock() && len(m.buf) > m.opts.MaxHeaderBytes {
			return 0, m.fail(&TooLargeError{Limit: LimitHeader})
		}
		if m.phase == phaseTrailers && len(m.buf)-m.trailerStart > m.opts.MaxHeaderBytes {
			return 0, m.fail(&TooLargeError{Limit: LimitHeader})
		}
		return StateNeedMore, nil
	}
	return 0, m.fail(err)
}

func (m *Machine) inHeaderBlock() bool {
	return m.phase == phaseStartLine || m.phase == phaseHeaders
}

func (m *Machine) cursor() *Cursor {
	c := NewCursor(m.buf)
	c.Advance(m.pos)
	return c
}

func (m *Machine) stepStartLine() error {
	c := m.cursor()
	if m.kind == KindResponse {
		version, status, reason, err := ScanStatusLine(c, m.opts)
		if err != nil {
			return err
		}
		m.msg.Version = internVersion(version.Bytes(m.buf))
		m.msg.Status = status
		m.msg.Reason = internReason(reason.Bytes(m.buf))
	} else {
		method, target, version, err := ScanRequestLine(c, m.opts)
		if err != nil {
			return err
		}
		m.msg.Method = internMethod(method.Bytes(m.buf))
		m.msg.Target = string(target.Bytes(m.buf))
		m.msg.Version = internVersion(version.Bytes(m.buf))
	}
	m.pos = c.Pos()
	m.phase = phaseHeaders
	return nil
}

func (m *Machine) stepHeaders() error {
	c := m.cursor()
	for {
		name, value, done, err := ScanHeaderField(c, m.opts)
		if err != nil {
			return err
		}
		m.pos = c.Pos()
		if done {
			break
		}
		m.msg.Fields = append(m.msg.Fields, Field{
			Name:  internFieldName(name.Bytes(m.buf)),
			Value: unfoldValue(value.Bytes(m.buf)),
		})
		if m.pos > m.opts.MaxHeaderBytes {
			return &TooLargeError{Limit: LimitHeader}
		}
	}

	framing, err := ResolveFraming(m.kind == KindResponse, m.msg.Fields, m.opts)
	if err != nil {
		return err
	}
	m.msg.Framing = framing

	switch framing.Kind {
	case FramingContentLength:
		if framing.Length == 0 {
			m.phase = phaseDone
			return nil
		}
		m.need = framing.Length
		m.msg.Body = make([]byte, 0, framing.Length)
		m.phase = phaseFixedBody
	case FramingChunked:
		m.phase = phaseChunkSize
	case FramingUntilClose:
		m.phase = phaseUntilClose
	default:
		m.phase = phaseDone
	}
	return nil
}

// consumeBody moves up to m.need buffered bytes into the body.
func (m *Machine) consumeBody() {
	avail := int64(len(m.buf) - m.pos)
	take := m.need
	if avail < take {
		take = avail
	}
	if take > 0 {
		m.msg.Body = append(m.msg.Body, m.buf[m.pos:m.pos+int(take)]...)
		m.pos += int(take)
		m.need -= take
	}
}

func (m *Machine) stepChunkSize() error {
	c := m.cursor()
	size, err := ScanChunkSizeLine(c, m.opts)
	if err != nil {
		return err
	}
	if size == 0 {
		m.pos = c.Pos()
		m.trailerStart = m.pos
		m.phase = phaseTrailers
		return nil
	}
	if int64(len(m.msg.Body))+size > int64(m.opts.MaxBodyBytes) {
		return &TooLargeError{Limit: LimitBody}
	}
	m.pos = c.Pos()
	m.need = size
	m.phase = phaseChunkData
	return nil
}

func (m *Machine) stepChunkDataEnd() error {
	c := m.cursor()
	end, err := c.line(m.opts.StrictCRLF)
	if err != nil {
		return err
	}
	if end.Len != 0 {
		return syntaxErr(end.Off, "chunked body: missing CRLF after chunk data")
	}
	m.pos = c.Pos()
	m.phase = phaseChunkSize
	return nil
}

// stepTrailers scans trailer fields after the zero-size chunk and discards
// them. The trailing blank line completes the message.
func (m *Machine) stepTrailers() error {
	c := m.cursor()
	for {
		_, _, done, err := ScanHeaderField(c, m.opts)
		if err != nil {
			return err
		}
		m.pos = c.Pos()
		if done {
			m.phase = phaseDone
			return nil
		}
	}
}

func (m *Machine) consumeUntilClose() error {
	avail := len(m.buf) - m.pos
	if avail == 0 {
		return nil
	}
	if len(m.msg.Body)+avail > m.opts.MaxBodyBytes {
		return &TooLargeError{Limit: LimitBody}
	}
	m.msg.Body = append(m.msg.Body, m.buf[m.pos:]...)
	m.pos = len(m.buf)
	return nil
}
