// Package astform bridges decoded HTTP messages and shape-core AST nodes.
//
// A message maps to an ObjectNode:
//
// Request:
//
//	{ "type": "request", "method": "POST", "target": "/api",
//	  "version": "HTTP/1.1",
//	  "headers": [{"key": "Host", "value": "example.com"}, ...],
//	  "body": "..." }
//
// Response:
//
//	{ "type": "response", "version": "HTTP/1.1", "statusCode": 200,
//	  "reason": "OK",
//	  "headers": [{"key": "Content-Type", "value": "text/plain"}, ...],
//	  "body": "..." }
package astform

import (
	"fmt"
	"strconv"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/httpwire/internal/wire"
)

var zeroPos = ast.Position{}

// Parser produces AST nodes from HTTP wire-format data.
type Parser struct {
	data []byte
	opts wire.Options
}

// NewParser returns an AST parser for the given input.
func NewParser(data []byte, opts wire.Options) *Parser {
	return &Parser{data: data, opts: opts}
}

// Parse scans the message through the wire engine and returns its AST form.
func (p *Parser) Parse() (ast.SchemaNode, error) {
	u, err := wire.ScanUnits(p.data, p.opts)
	if err != nil {
		return nil, err
	}
	framing, err := u.Framing()
	if err != nil {
		return nil, err
	}
	body, err := u.MaterializeBody(framing)
	if err != nil {
		return nil, err
	}

	if u.IsResponse() {
		return responseNode(u, body), nil
	}
	return requestNode(u, body), nil
}

func requestNode(u *wire.Units, body []byte) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(u.Method(), zeroPos),
		"target":  ast.NewLiteralNode(u.Target(), zeroPos),
		"version": ast.NewLiteralNode(u.Version(), zeroPos),
		"headers": FieldsToNode(u.Fields()),
	}
	if body != nil {
		props["body"] = ast.NewLiteralNode(string(body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func responseNode(u *wire.Units, body []byte) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(u.Version(), zeroPos),
		"statusCode": ast.NewLiteralNode(int64(u.Status()), zeroPos),
		"reason":     ast.NewLiteralNode(u.Reason(), zeroPos),
		"headers":    FieldsToNode(u.Fields()),
	}
	if body != nil {
		props["body"] = ast.NewLiteralNode(string(body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// FieldsToNode renders ordered header fields as an array of {key, value}
// object nodes.
func FieldsToNode(fields []wire.Field) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		elements[i] = ast.NewObjectNode(map[string]ast.SchemaNode{
			"key":   ast.NewLiteralNode(f.Name, zeroPos),
			"value": ast.NewLiteralNode(f.Value, zeroPos),
		}, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToMessage converts an AST ObjectNode back to a decoded message.
// The returned bool reports whether the node was a response.
func NodeToMessage(node ast.SchemaNode) (*wire.Message, bool, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, false, fmt.Errorf("expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	msgType := stringProp(props, "type")
	if msgType != "request" && msgType != "response" {
		return nil, false, fmt.Errorf("unknown message type %q", msgType)
	}

	msg := &wire.Message{
		Method:  stringProp(props, "method"),
		Target:  stringProp(props, "target"),
		Version: stringProp(props, "version"),
		Reason:  stringProp(props, "reason"),
	}
	if v, ok := props["statusCode"]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			switch code := lit.Value().(type) {
			case int64:
				msg.Status = int(code)
			case float64:
				msg.Status = int(code)
			case string:
				msg.Status, _ = strconv.Atoi(code)
			}
		}
	}
	if v, ok := props["headers"]; ok {
		fields, err := nodeToFields(v)
		if err != nil {
			return nil, false, err
		}
		msg.Fields = fields
	}
	if body := stringProp(props, "body"); body != "" {
		msg.Body = []byte(body)
	}
	return msg, msgType == "response", nil
}

func stringProp(props map[string]ast.SchemaNode, key string) string {
	if v, ok := props[key]; ok {
		if lit, ok := v.(*ast.LiteralNode); ok {
			s, _ := lit.Value().(string)
			return s
		}
	}
	return ""
}

func nodeToFields(node ast.SchemaNode) ([]wire.Field, error) {
	arr, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("expected ArrayDataNode for headers, got %T", node)
	}
	elements := arr.Elements()
	fields := make([]wire.Field, 0, len(elements))
	for _, elem := range elements {
		obj, ok := elem.(*ast.ObjectNode)
		if !ok {
			continue
		}
		props := obj.Properties()
		fields = append(fields, wire.Field{
			Name:  stringProp(props, "key"),
			Value: stringProp(props, "value"),
		})
	}
	return fields, nil
}
