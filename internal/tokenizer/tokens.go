// Package tokenizer exposes the HTTP/1.x lexical productions through
// Shape's tokenizer framework, for tooling that wants token streams
// rather than parsed messages.
package tokenizer

// Token type constants. HTTP/1.x is line oriented: tokens are the lexical
// elements of start lines, header fields, and chunk headers.
const (
	TokenCRLF      = "CRLF"      // \r\n, or bare \n
	TokenSP        = "SP"        // single space separator
	TokenColon     = "Colon"     // header name/value separator
	TokenVersion   = "Version"   // HTTP/1.1, HTTP/1.0
	TokenToken     = "Token"     // RFC 9110 token (method, field name)
	TokenChunkSize = "ChunkSize" // hex chunk size
	TokenText      = "Text"      // any other run up to SP, colon, or CRLF
)
