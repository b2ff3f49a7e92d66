package httpwire

import (
	"errors"
	"strings"
	"testing"
)

func TestDecoder_Request(t *testing.T) {
	d := NewRequestDecoder(Options{})
	st, err := d.Feed([]byte("POST /u HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello"))
	if err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if st != Done {
		t.Fatalf("state = %v, want Done", st)
	}
	req := d.Request()
	if req.Method != "POST" || string(req.Body) != "hello" {
		t.Errorf("request = %+v", req)
	}
	if d.Response() != nil {
		t.Error("Response() non-nil on a request decoder")
	}
}

func TestDecoder_SplitFeeds(t *testing.T) {
	d := NewRequestDecoder(Options{})
	chunks := []string{
		"POST /u HT",
		"TP/1.1\r\nContent-Le",
		"ngth: 5\r\n",
		"\r\nhel",
		"lo",
	}
	var st State
	var err error
	for _, c := range chunks {
		st, err = d.Feed([]byte(c))
		if err != nil {
			t.Fatalf("Feed(%q) error = %v", c, err)
		}
	}
	if st != Done {
		t.Fatalf("final state = %v, want Done", st)
	}
	if got := string(d.Request().Body); got != "hello" {
		t.Errorf("body = %q", got)
	}
}

func TestDecoder_Pipelining(t *testing.T) {
	d := NewRequestDecoder(Options{})
	input := "POST /a HTTP/1.1\r\nContent-Length: 4\r\n\r\nWiki" +
		"GET /b HTTP/1.1\r\nHost: x\r\n\r\n"
	st, err := d.Feed([]byte(input))
	if err != nil || st != Done {
		t.Fatalf("first message: state=%v err=%v", st, err)
	}
	if d.Request().Target != "/a" {
		t.Fatalf("first target = %q", d.Request().Target)
	}
	if !strings.HasPrefix(string(d.Rest()), "GET /b") {
		t.Fatalf("Rest() = %q", d.Rest())
	}

	d.Reset()
	st, err = d.Feed(nil)
	if err != nil || st != Done {
		t.Fatalf("second message: state=%v err=%v", st, err)
	}
	if d.Request().Target != "/b" {
		t.Errorf("second target = %q", d.Request().Target)
	}
}

func TestDecoder_ResponseUntilClose(t *testing.T) {
	opts := DefaultOptions()
	opts.CloseDelimited = true
	d := NewResponseDecoder(opts)

	st, err := d.Feed([]byte("HTTP/1.0 200 OK\r\n\r\nstreamed "))
	if err != nil || st != NeedMore {
		t.Fatalf("state=%v err=%v, want NeedMore", st, err)
	}
	if _, err = d.Feed([]byte("data")); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	st, err = d.Close()
	if err != nil || st != Done {
		t.Fatalf("Close(): state=%v err=%v", st, err)
	}
	resp := d.Response()
	if string(resp.Body) != "streamed data" {
		t.Errorf("body = %q", resp.Body)
	}
	if d.Request() != nil {
		t.Error("Request() non-nil on a response decoder")
	}
}

func TestDecoder_ErrorLatches(t *testing.T) {
	d := NewRequestDecoder(Options{})
	_, err := d.Feed([]byte("GET / HTTP/1.1\r\nBad\x01: v\r\n\r\n"))
	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want *SyntaxError", err)
	}
	if _, err2 := d.Feed([]byte("GET / HTTP/1.1\r\n\r\n")); !errors.As(err2, &se) {
		t.Errorf("error did not latch: %v", err2)
	}
	d.Reset()
	if _, err2 := d.Feed([]byte("GET / HTTP/1.1\r\n\r\n")); !errors.As(err2, &se) {
		t.Errorf("Reset cleared a latched error: %v", err2)
	}
}

func TestDecoder_TooLargeNotIncomplete(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxHeaderBytes = 64
	d := NewRequestDecoder(opts)
	_, err := d.Feed([]byte("GET / HTTP/1.1\r\nX-Fill: " + strings.Repeat("a", 200)))
	var tl *TooLargeError
	if !errors.As(err, &tl) || tl.Limit != LimitHeader {
		t.Fatalf("error = %v, want *TooLargeError{LimitHeader}", err)
	}
}

func TestDecoder_CloseMidMessage(t *testing.T) {
	d := NewRequestDecoder(Options{})
	if _, err := d.Feed([]byte("GET / HT")); err != nil {
		t.Fatalf("Feed() error = %v", err)
	}
	if _, err := d.Close(); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("Close() error = %v, want ErrIncomplete", err)
	}
}
