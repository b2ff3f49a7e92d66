package httpwire

import (
	"fmt"

	"github.com/shapestone/httpwire/internal/wire"
)

// Unmarshal parses one complete HTTP wire-format message into v.
//
// v must be a *Request or *Response. The message type is auto-detected:
// data starting with "HTTP/" is a response, everything else a request.
// The buffer must hold the whole message; partial input fails with
// ErrIncomplete (use a Decoder for streaming arrival). Bytes beyond the
// first message are ignored.
func Unmarshal(data []byte, v interface{}) error {
	return UnmarshalWithOptions(data, v, Options{})
}

// UnmarshalWithOptions is Unmarshal with explicit parsing options.
func UnmarshalWithOptions(data []byte, v interface{}, opts Options) error {
	if v == nil {
		return fmt.Errorf("httpwire: Unmarshal(nil)")
	}
	if u, ok := v.(Unmarshaler); ok {
		return u.UnmarshalHTTP(data)
	}

	isResp := wire.IsResponseData(data)
	switch target := v.(type) {
	case *Request:
		if isResp {
			return fmt.Errorf("httpwire: data appears to be a response but target is *Request")
		}
		return unmarshalRequest(data, opts, target)
	case *Response:
		if !isResp {
			return fmt.Errorf("httpwire: data appears to be a request but target is *Response")
		}
		return unmarshalResponse(data, opts, target)
	default:
		return fmt.Errorf("httpwire: Unmarshal unsupported type %T (expected *Request or *Response)", v)
	}
}

// UnmarshalRequest parses one complete request.
func UnmarshalRequest(data []byte) (*Request, error) {
	req := &Request{}
	if err := unmarshalRequest(data, Options{}, req); err != nil {
		return nil, err
	}
	return req, nil
}

// UnmarshalResponse parses one complete response.
func UnmarshalResponse(data []byte) (*Response, error) {
	resp := &Response{}
	if err := unmarshalResponse(data, Options{}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UnmarshalRequestWithOptions is UnmarshalRequest with explicit options.
func UnmarshalRequestWithOptions(data []byte, opts Options) (*Request, error) {
	req := &Request{}
	if err := unmarshalRequest(data, opts, req); err != nil {
		return nil, err
	}
	return req, nil
}

// UnmarshalResponseWithOptions is UnmarshalResponse with explicit options.
// Set opts.CloseDelimited for responses whose body runs to the end of the
// buffer without framing headers.
func UnmarshalResponseWithOptions(data []byte, opts Options) (*Response, error) {
	resp := &Response{}
	if err := unmarshalResponse(data, opts, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// DetectMessageType returns "request" or "response" based on the data
// prefix: data starting with "HTTP/" is a response.
func DetectMessageType(data []byte) string {
	if wire.IsResponseData(data) {
		return "response"
	}
	return "request"
}

// unmarshalRequest feeds the whole buffer through the decode machine and
// expects a complete message, so one-shot parsing follows the exact same
// grammar and framing rules as incremental decoding.
func unmarshalRequest(data []byte, opts Options, target *Request) error {
	d := NewRequestDecoder(opts)
	st, err := d.Feed(data)
	if err != nil {
		return err
	}
	if st != Done {
		if _, err := d.Close(); err != nil {
			return err
		}
	}
	*target = *d.Request()
	return nil
}

func unmarshalResponse(data []byte, opts Options, target *Response) error {
	d := NewResponseDecoder(opts)
	st, err := d.Feed(data)
	if err != nil {
		return err
	}
	if st != Done {
		if _, err := d.Close(); err != nil {
			return err
		}
	}
	*target = *d.Response()
	return nil
}
