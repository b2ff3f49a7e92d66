package httpwire

import (
	"testing"
)

func TestUnmarshalLenient(t *testing.T) {
	res := UnmarshalLenient([]byte("GET /legacy\r\nHost: old-server\r\n\r\n"))
	if res.Request == nil {
		t.Fatal("expected a request")
	}
	if res.Request.Version != "HTTP/1.1" {
		t.Errorf("version = %q, want defaulted HTTP/1.1", res.Request.Version)
	}
	if res.Request.Headers.Get("Host") != "old-server" {
		t.Errorf("headers = %v", res.Request.Headers)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for the missing version")
	}
}

func TestUnmarshalLenient_Truncated(t *testing.T) {
	res := UnmarshalLenient([]byte("POST /u HTTP/1.1\r\nContent-Length: 10\r\n\r\npart"))
	if !res.Partial {
		t.Error("Partial = false for truncated body")
	}
	if got := string(res.Request.Body); got != "part" {
		t.Errorf("body = %q", got)
	}
}

func TestUnmarshalLenient_Response(t *testing.T) {
	res := UnmarshalLenient([]byte("HTTP/1.1 200\r\n\r\nhello"))
	if res.Response == nil {
		t.Fatal("expected a response")
	}
	if res.Response.StatusCode != 200 {
		t.Errorf("status = %d", res.Response.StatusCode)
	}
	if got := string(res.Response.Body); got != "hello" {
		t.Errorf("body = %q", got)
	}
}

func TestUnmarshalLenient_NeverNil(t *testing.T) {
	for _, in := range []string{"", "garbage", "\r\n\r\n"} {
		res := UnmarshalLenient([]byte(in))
		if res == nil {
			t.Fatalf("UnmarshalLenient(%q) = nil", in)
		}
		if res.Request == nil && res.Response == nil {
			t.Errorf("UnmarshalLenient(%q): neither side set", in)
		}
	}
}
