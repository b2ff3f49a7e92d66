package httpwire

import (
	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/httpwire/internal/astform"
	"github.com/shapestone/httpwire/internal/wire"
)

var zeroPos = ast.Position{}

// RequestToNode converts a Request to its AST form (see Parse for the
// node shape).
func RequestToNode(req *Request) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":    ast.NewLiteralNode("request", zeroPos),
		"method":  ast.NewLiteralNode(req.Method, zeroPos),
		"target":  ast.NewLiteralNode(req.Target, zeroPos),
		"version": ast.NewLiteralNode(req.Version, zeroPos),
		"headers": headersToNode(req.Headers),
	}
	if req.Body != nil {
		props["body"] = ast.NewLiteralNode(string(req.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// ResponseToNode converts a Response to its AST form.
func ResponseToNode(resp *Response) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"type":       ast.NewLiteralNode("response", zeroPos),
		"version":    ast.NewLiteralNode(resp.Version, zeroPos),
		"statusCode": ast.NewLiteralNode(int64(resp.StatusCode), zeroPos),
		"reason":     ast.NewLiteralNode(resp.Reason, zeroPos),
		"headers":    headersToNode(resp.Headers),
	}
	if resp.Body != nil {
		props["body"] = ast.NewLiteralNode(string(resp.Body), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

// NodeToRequest converts an AST ObjectNode back to a Request.
func NodeToRequest(node ast.SchemaNode) (*Request, error) {
	msg, isResponse, err := astform.NodeToMessage(node)
	if err != nil {
		return nil, err
	}
	if isResponse {
		return nil, &SyntaxError{Reason: "node is a response, not a request"}
	}
	return &Request{
		Method:  msg.Method,
		Target:  msg.Target,
		Version: msg.Version,
		Headers: copyHeaders(msg.Fields),
		Body:    msg.Body,
	}, nil
}

// NodeToResponse converts an AST ObjectNode back to a Response.
func NodeToResponse(node ast.SchemaNode) (*Response, error) {
	msg, isResponse, err := astform.NodeToMessage(node)
	if err != nil {
		return nil, err
	}
	if !isResponse {
		return nil, &SyntaxError{Reason: "node is a request, not a response"}
	}
	return &Response{
		Version:    msg.Version,
		StatusCode: msg.Status,
		Reason:     msg.Reason,
		Headers:    copyHeaders(msg.Fields),
		Body:       msg.Body,
	}, nil
}

func headersToNode(headers Headers) ast.SchemaNode {
	fields := make([]wire.Field, len(headers))
	for i, h := range headers {
		fields[i] = wire.Field{Name: h.Name, Value: h.Value}
	}
	return astform.FieldsToNode(fields)
}
