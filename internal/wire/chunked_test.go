package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestDechunk(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		body     string
		consumed int
	}{
		{"empty body", "0\r\n\r\n", "", 5},
		{"single chunk", "4\r\nWiki\r\n0\r\n\r\n", "Wiki", 14},
		{"two chunks", "4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n", "Wikipedia", 24},
		{"hex size", "a\r\n0123456789\r\n0\r\n\r\n", "0123456789", 20},
		{"chunk extension", "4;x=y\r\nWiki\r\n0\r\n\r\n", "Wiki", 18},
		{"binary data", "3\r\n\x00\r\x01\r\n0\r\n\r\n", "\x00\r\x01", 13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, consumed, err := Dechunk([]byte(tt.input), DefaultOptions())
			if err != nil {
				t.Fatalf("Dechunk() error = %v", err)
			}
			if !bytes.Equal(body, []byte(tt.body)) {
				t.Errorf("body = %q, want %q", body, tt.body)
			}
			if consumed != tt.consumed {
				t.Errorf("consumed = %d, want %d", consumed, tt.consumed)
			}
		})
	}
}

func TestDechunk_Trailers(t *testing.T) {
	input := []byte("4\r\nWiki\r\n0\r\nExpires: never\r\nX-Checksum: abc\r\n\r\n")
	body, consumed, err := Dechunk(input, DefaultOptions())
	if err != nil {
		t.Fatalf("Dechunk() error = %v", err)
	}
	if string(body) != "Wiki" {
		t.Errorf("body = %q, want Wiki", body)
	}
	if consumed != len(input) {
		t.Errorf("consumed = %d, want %d", consumed, len(input))
	}
}

func TestDechunk_ConsumedStopsAtTerminator(t *testing.T) {
	input := []byte("4\r\nWiki\r\n0\r\n\r\nGET /next HTTP/1.1\r\n")
	body, consumed, err := Dechunk(input, DefaultOptions())
	if err != nil {
		t.Fatalf("Dechunk() error = %v", err)
	}
	if string(body) != "Wiki" {
		t.Errorf("body = %q, want Wiki", body)
	}
	if string(input[consumed:consumed+3]) != "GET" {
		t.Errorf("consumed = %d, rest starts %q", consumed, input[consumed:])
	}
}

func TestDechunk_Incomplete(t *testing.T) {
	inputs := []string{
		"",
		"4",
		"4\r\n",
		"4\r\nWi",
		"4\r\nWiki\r\n",
		"4\r\nWiki\r\n0\r\n",
	}
	for _, in := range inputs {
		_, _, err := Dechunk([]byte(in), DefaultOptions())
		if err != ErrIncomplete {
			t.Errorf("Dechunk(%q) error = %v, want ErrIncomplete", in, err)
		}
	}
}

func TestDechunk_Malformed(t *testing.T) {
	inputs := []string{
		"zz\r\nWiki\r\n0\r\n\r\n",       // non-hex size
		"4\r\nWikipedia\r\n0\r\n\r\n",   // data longer than declared
		"4\r\nWiki0\r\n\r\n",            // missing CRLF after data
		"4\r\nWiki\r\nbad header\r\n\r\n0\r\n\r\n", // garbage where a size line belongs
	}
	for _, in := range inputs {
		_, _, err := Dechunk([]byte(in), DefaultOptions())
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("Dechunk(%q) error = %v, want *SyntaxError", in, err)
		}
	}
}

func TestDechunk_Limits(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxChunkSize = 8
	_, _, err := Dechunk([]byte("9\r\n012345678\r\n0\r\n\r\n"), opts)
	var tl *TooLargeError
	if !errors.As(err, &tl) || tl.Limit != LimitChunk {
		t.Fatalf("error = %v, want *TooLargeError{LimitChunk}", err)
	}

	opts = DefaultOptions()
	opts.MaxBodyBytes = 6
	_, _, err = Dechunk([]byte("4\r\nWiki\r\n4\r\npedi\r\n0\r\n\r\n"), opts)
	if !errors.As(err, &tl) || tl.Limit != LimitBody {
		t.Fatalf("error = %v, want *TooLargeError{LimitBody}", err)
	}
}
