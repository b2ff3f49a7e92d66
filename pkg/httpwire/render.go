package httpwire

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"

	"github.com/shapestone/httpwire/internal/astform"
)

// Render converts an AST node produced by Parse back to wire-format bytes.
func Render(node ast.SchemaNode) ([]byte, error) {
	msg, isResponse, err := astform.NodeToMessage(node)
	if err != nil {
		return nil, fmt.Errorf("httpwire: Render: %w", err)
	}
	if isResponse {
		return Marshal(&Response{
			Version:    msg.Version,
			StatusCode: msg.Status,
			Reason:     msg.Reason,
			Headers:    copyHeaders(msg.Fields),
			Body:       msg.Body,
		})
	}
	return Marshal(&Request{
		Method:  msg.Method,
		Target:  msg.Target,
		Version: msg.Version,
		Headers: copyHeaders(msg.Fields),
		Body:    msg.Body,
	})
}
