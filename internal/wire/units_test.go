package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestScanUnits_Request(t *testing.T) {
	buf := []byte("GET /index.html HTTP/1.1\r\nHost: example.com\r\nAccept: */*\r\n\r\n")
	u, err := ScanUnits(buf, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanUnits() error = %v", err)
	}
	if u.IsResponse() {
		t.Error("IsResponse() = true for a request")
	}
	if u.Method() != "GET" || u.Target() != "/index.html" || u.Version() != "HTTP/1.1" {
		t.Errorf("start line = %q %q %q", u.Method(), u.Target(), u.Version())
	}
	if u.NumFields() != 2 {
		t.Fatalf("NumFields() = %d, want 2", u.NumFields())
	}
	if f := u.FieldAt(0); f.Name != "Host" || f.Value != "example.com" {
		t.Errorf("field 0 = %+v", f)
	}
	if v, ok := u.Value("accept"); !ok || v != "*/*" {
		t.Errorf(`Value("accept") = %q, %v`, v, ok)
	}
	if _, ok := u.Value("Missing"); ok {
		t.Error(`Value("Missing") reported present`)
	}
	if u.BodyOffset() != len(buf) {
		t.Errorf("BodyOffset() = %d, want %d", u.BodyOffset(), len(buf))
	}
}

func TestScanUnits_SpansIndexSourceBuffer(t *testing.T) {
	buf := []byte("GET / HTTP/1.1\r\nHost: x\r\n\r\n")
	u, err := ScanUnits(buf, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanUnits() error = %v", err)
	}
	m := u.MethodSpan()
	if m.Off != 0 || m.Len != 3 {
		t.Errorf("method span = %+v, want {0 3}", m)
	}
	if got := string(u.TargetSpan().Bytes(buf)); got != "/" {
		t.Errorf("target span bytes = %q", got)
	}
	fs := u.FieldSpanAt(0)
	if got := string(fs.Name.Bytes(buf)); got != "Host" {
		t.Errorf("name span bytes = %q", got)
	}
	if got := string(fs.Value.Bytes(buf)); got != "x" {
		t.Errorf("value span bytes = %q", got)
	}
}

func TestScanUnits_Response(t *testing.T) {
	buf := []byte("HTTP/1.1 404 Not Found\r\nContent-Length: 9\r\n\r\nnot foundEXTRA")
	u, err := ScanUnits(buf, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanUnits() error = %v", err)
	}
	if !u.IsResponse() {
		t.Fatal("IsResponse() = false for a response")
	}
	if u.Status() != 404 || u.Reason() != "Not Found" || u.Version() != "HTTP/1.1" {
		t.Errorf("status line = %q %d %q", u.Version(), u.Status(), u.Reason())
	}
	f, err := u.Framing()
	if err != nil {
		t.Fatalf("Framing() error = %v", err)
	}
	if f.Kind != FramingContentLength || f.Length != 9 {
		t.Fatalf("framing = %+v", f)
	}
	body, err := u.MaterializeBody(f)
	if err != nil {
		t.Fatalf("MaterializeBody() error = %v", err)
	}
	if string(body) != "not found" {
		t.Errorf("body = %q, want %q", body, "not found")
	}
}

func TestScanUnits_Incomplete(t *testing.T) {
	inputs := []string{
		"",
		"GET / HTTP",
		"GET / HTTP/1.1\r\n",
		"GET / HTTP/1.1\r\nHost: x\r\n",
	}
	for _, in := range inputs {
		if _, err := ScanUnits([]byte(in), DefaultOptions()); err != ErrIncomplete {
			t.Errorf("ScanUnits(%q) error = %v, want ErrIncomplete", in, err)
		}
	}
}

func TestScanUnits_HeaderLimit(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxHeaderBytes = 32

	// Unterminated header block past the limit is oversized, not pending.
	buf := []byte("GET / HTTP/1.1\r\nX-Fill: " + strings.Repeat("a", 64))
	_, err := ScanUnits(buf, opts)
	var tl *TooLargeError
	if !errors.As(err, &tl) || tl.Limit != LimitHeader {
		t.Fatalf("unterminated: error = %v, want *TooLargeError{LimitHeader}", err)
	}

	// A terminated block past the limit fails the same way.
	buf = []byte("GET / HTTP/1.1\r\nX-Fill: " + strings.Repeat("a", 64) + "\r\n\r\n")
	_, err = ScanUnits(buf, opts)
	if !errors.As(err, &tl) || tl.Limit != LimitHeader {
		t.Fatalf("terminated: error = %v, want *TooLargeError{LimitHeader}", err)
	}
}

func TestUnits_MaterializeBody(t *testing.T) {
	buf := []byte("POST /u HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n")
	u, err := ScanUnits(buf, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanUnits() error = %v", err)
	}
	f, err := u.Framing()
	if err != nil {
		t.Fatalf("Framing() error = %v", err)
	}
	if f.Kind != FramingChunked {
		t.Fatalf("framing = %+v, want chunked", f)
	}
	body, err := u.MaterializeBody(f)
	if err != nil {
		t.Fatalf("MaterializeBody() error = %v", err)
	}
	if string(body) != "Wiki" {
		t.Errorf("body = %q, want Wiki", body)
	}
}

func TestUnits_MaterializeBody_ShortContentLength(t *testing.T) {
	buf := []byte("POST /u HTTP/1.1\r\nContent-Length: 10\r\n\r\nshort")
	u, err := ScanUnits(buf, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanUnits() error = %v", err)
	}
	f, err := u.Framing()
	if err != nil {
		t.Fatalf("Framing() error = %v", err)
	}
	if _, err := u.MaterializeBody(f); err != ErrIncomplete {
		t.Fatalf("MaterializeBody() error = %v, want ErrIncomplete", err)
	}
}

func TestUnits_MaterializeBody_CopiesOutOfBuffer(t *testing.T) {
	buf := []byte("POST /u HTTP/1.1\r\nContent-Length: 4\r\n\r\nWiki")
	u, err := ScanUnits(buf, DefaultOptions())
	if err != nil {
		t.Fatalf("ScanUnits() error = %v", err)
	}
	f, _ := u.Framing()
	body, err := u.MaterializeBody(f)
	if err != nil {
		t.Fatalf("MaterializeBody() error = %v", err)
	}
	for i := range buf {
		buf[i] = 'Z'
	}
	if !bytes.Equal(body, []byte("Wiki")) {
		t.Errorf("body aliases the source buffer: %q", body)
	}
}

func TestIsResponseData(t *testing.T) {
	if !IsResponseData([]byte("HTTP/1.1 200 OK\r\n")) {
		t.Error("status line not recognized")
	}
	if IsResponseData([]byte("GET / HTTP/1.1\r\n")) {
		t.Error("request line misrecognized as response")
	}
	if IsResponseData([]byte("HTT")) {
		t.Error("short prefix misrecognized")
	}
}

func TestEqFoldBytes(t *testing.T) {
	tests := []struct {
		b    string
		s    string
		want bool
	}{
		{"Content-Length", "content-length", true},
		{"HOST", "host", true},
		{"Host", "Host", true},
		{"Host", "Hos", false},
		{"Host", "Hoss", false},
	}
	for _, tt := range tests {
		if got := eqFoldBytes([]byte(tt.b), tt.s); got != tt.want {
			t.Errorf("eqFoldBytes(%q, %q) = %v, want %v", tt.b, tt.s, got, tt.want)
		}
	}
}
