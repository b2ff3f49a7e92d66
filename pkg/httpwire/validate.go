package httpwire

import (
	"bytes"
	"io"

	"golang.org/x/net/http/httpguts"

	"github.com/shapestone/httpwire/internal/wire"
)

// Validate checks that input is a syntactically valid, complete HTTP/1.x
// message: start line and header grammar, RFC 9110 field-name and
// field-value byte sets (via httpguts), and resolvable body framing.
// It does not evaluate header semantics beyond framing.
func Validate(input string) error {
	return ValidateBytes([]byte(input))
}

// ValidateBytes is Validate for a byte slice.
func ValidateBytes(data []byte) error {
	return ValidateBytesWithOptions(data, Options{})
}

// ValidateBytesWithOptions is ValidateBytes with explicit options.
func ValidateBytesWithOptions(data []byte, opts Options) error {
	u, err := wire.ScanUnits(data, opts)
	if err != nil {
		return err
	}

	if !u.IsResponse() {
		if !httpguts.ValidHeaderFieldName(u.Method()) {
			return &SyntaxError{Reason: "method is not a valid token"}
		}
	}
	for i := 0; i < u.NumFields(); i++ {
		f := u.FieldAt(i)
		if !httpguts.ValidHeaderFieldName(f.Name) {
			return &SyntaxError{Reason: "invalid header field name " + f.Name}
		}
		if !httpguts.ValidHeaderFieldValue(f.Value) {
			return &SyntaxError{Reason: "invalid header field value for " + f.Name}
		}
	}

	framing, err := u.Framing()
	if err != nil {
		return err
	}
	if _, err := u.MaterializeBody(framing); err != nil {
		return err
	}
	return nil
}

// ValidateReader reads all of r and validates it as one HTTP message.
func ValidateReader(r io.Reader) error {
	data, err := readAll(r)
	if err != nil {
		return err
	}
	return ValidateBytes(data)
}

func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
