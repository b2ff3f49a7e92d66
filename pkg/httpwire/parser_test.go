package httpwire

import (
	"strings"
	"testing"

	"github.com/shapestone/shape-core/pkg/ast"
)

func TestParse(t *testing.T) {
	node, err := Parse("GET /api HTTP/1.1\r\nHost: example.com\r\n\r\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		t.Fatalf("Parse() returned %T, want *ast.ObjectNode", node)
	}
	props := obj.Properties()
	lit, ok := props["method"].(*ast.LiteralNode)
	if !ok {
		t.Fatalf("method property is %T", props["method"])
	}
	if lit.Value() != "GET" {
		t.Errorf("method = %v", lit.Value())
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("GET/HTTP\r\n\r\n"); err == nil {
		t.Error("Parse of malformed input succeeded")
	}
}

func TestParseReader(t *testing.T) {
	node, err := ParseReader(strings.NewReader("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhi"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	resp, err := NodeToResponse(node)
	if err != nil {
		t.Fatalf("NodeToResponse() error = %v", err)
	}
	if resp.StatusCode != 200 || string(resp.Body) != "hi" {
		t.Errorf("response = %+v", resp)
	}
}
