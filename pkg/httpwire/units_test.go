package httpwire

import (
	"errors"
	"testing"
)

func TestView_Request(t *testing.T) {
	buf := []byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n")
	m, err := View(buf, Options{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	if m.IsResponse() {
		t.Error("IsResponse() = true for a request")
	}
	if m.Method() != "GET" || m.Target() != "/" || m.Version() != "HTTP/1.1" {
		t.Errorf("start line = %q %q %q", m.Method(), m.Target(), m.Version())
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d", m.Len())
	}
	if h := m.HeaderAt(0); h.Name != "Host" || h.Value != "x" {
		t.Errorf("HeaderAt(0) = %+v", h)
	}
	if v, ok := m.HeaderValue("host"); !ok || v != "x" {
		t.Errorf("HeaderValue(host) = %q, %v", v, ok)
	}
	f, err := m.Framing()
	if err != nil || f.Kind != FramingNone {
		t.Errorf("Framing() = %+v, %v", f, err)
	}
}

func TestView_CopyToRequest(t *testing.T) {
	buf := []byte("POST /u HTTP/1.1\r\nContent-Length: 4\r\n\r\nWiki")
	m, err := View(buf, Options{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	var req Request
	if err := m.CopyToRequest(&req); err != nil {
		t.Fatalf("CopyToRequest() error = %v", err)
	}

	// The copy owns its data: clobbering the source must not change it.
	for i := range buf {
		buf[i] = 'Z'
	}
	if req.Method != "POST" || req.Target != "/u" || string(req.Body) != "Wiki" {
		t.Errorf("request = %+v", req)
	}
	if req.Headers.Get("Content-Length") != "4" {
		t.Errorf("headers = %v", req.Headers)
	}
}

func TestView_CopyToResponse(t *testing.T) {
	buf := []byte("HTTP/1.1 301 Moved Permanently\r\nLocation: /new\r\n\r\n")
	m, err := View(buf, Options{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	var resp Response
	if err := m.CopyToResponse(&resp); err != nil {
		t.Fatalf("CopyToResponse() error = %v", err)
	}
	if resp.StatusCode != 301 || resp.Reason != "Moved Permanently" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Headers.Get("Location") != "/new" {
		t.Errorf("headers = %v", resp.Headers)
	}
}

func TestView_KindMismatch(t *testing.T) {
	m, err := View([]byte("GET / HTTP/1.1\r\n\r\n"), Options{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	var resp Response
	if err := m.CopyToResponse(&resp); err == nil {
		t.Error("CopyToResponse of a request succeeded")
	}

	m, err = View([]byte("HTTP/1.1 200 OK\r\n\r\n"), Options{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	var req Request
	if err := m.CopyToRequest(&req); err == nil {
		t.Error("CopyToRequest of a response succeeded")
	}
}

func TestView_Incomplete(t *testing.T) {
	if _, err := View([]byte("GET / HTTP/1.1\r\nHost: x\r\n"), Options{}); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("View() error = %v, want ErrIncomplete", err)
	}
}

func TestView_CopyChunked(t *testing.T) {
	buf := []byte("POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n")
	m, err := View(buf, Options{})
	if err != nil {
		t.Fatalf("View() error = %v", err)
	}
	var req Request
	if err := m.CopyToRequest(&req); err != nil {
		t.Fatalf("CopyToRequest() error = %v", err)
	}
	if string(req.Body) != "Wiki" {
		t.Errorf("body = %q", req.Body)
	}
	if req.Framing.Kind != FramingChunked {
		t.Errorf("framing = %+v", req.Framing)
	}
}
