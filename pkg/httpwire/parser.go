package httpwire

import (
	"io"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/httpwire/internal/astform"
)

// Parse parses one complete HTTP wire-format message into an AST.
//
// The result is an ast.ObjectNode whose properties depend on the message
// type. For requests:
//
//	{ "type": "request", "method": "GET", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// For responses:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
func Parse(input string) (ast.SchemaNode, error) {
	p := astform.NewParser([]byte(input), Options{})
	return p.Parse()
}

// ParseReader reads all of r and parses it as one HTTP message into an AST.
func ParseReader(r io.Reader) (ast.SchemaNode, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	p := astform.NewParser(data, Options{})
	return p.Parse()
}
