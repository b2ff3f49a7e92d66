package wire

// String interning for tokens that repeat on virtually every message.
// Map lookups keyed by string([]byte) compile to a zero-alloc access, so
// interning a known method or header name costs no allocation at all.

var knownMethods = map[string]string{
	"GET": "GET", "HEAD": "HEAD", "POST": "POST", "PUT": "PUT",
	"DELETE": "DELETE", "CONNECT": "CONNECT", "OPTIONS": "OPTIONS",
	"TRACE": "TRACE", "PATCH": "PATCH",
}

var knownVersions = map[string]string{
	"HTTP/1.0": "HTTP/1.0",
	"HTTP/1.1": "HTTP/1.1",
}

var knownFieldNames = map[string]string{
	"Accept":            "Accept",
	"Accept-Encoding":   "Accept-Encoding",
	"Accept-Language":   "Accept-Language",
	"Authorization":     "Authorization",
	"Cache-Control":     "Cache-Control",
	"Connection":        "Connection",
	"Content-Encoding":  "Content-Encoding",
	"Content-Length":    "Content-Length",
	"Content-Type":      "Content-Type",
	"Cookie":            "Cookie",
	"Date":              "Date",
	"ETag":              "ETag",
	"Expect":            "Expect",
	"Host":              "Host",
	"Location":          "Location",
	"Server":            "Server",
	"Set-Cookie":        "Set-Cookie",
	"TE":                "TE",
	"Trailer":           "Trailer",
	"Transfer-Encoding": "Transfer-Encoding",
	"Upgrade":           "Upgrade",
	"User-Agent":        "User-Agent",
	"Vary":              "Vary",
	"Via":               "Via",
}

var knownReasons = map[string]string{
	"OK":                    "OK",
	"Created":               "Created",
	"No Content":            "No Content",
	"Moved Permanently":     "Moved Permanently",
	"Found":                 "Found",
	"Not Modified":          "Not Modified",
	"Bad Request":           "Bad Request",
	"Unauthorized":          "Unauthorized",
	"Forbidden":             "Forbidden",
	"Not Found":             "Not Found",
	"Internal Server Error": "Internal Server Error",
	"Bad Gateway":           "Bad Gateway",
	"Service Unavailable":   "Service Unavailable",
}

func internMethod(b []byte) string {
	if s, ok := knownMethods[string(b)]; ok {
		return s
	}
	return string(b)
}

func internVersion(b []byte) string {
	if s, ok := knownVersions[string(b)]; ok {
		return s
	}
	return string(b)
}

func internFieldName(b []byte) string {
	if s, ok := knownFieldNames[string(b)]; ok {
		return s
	}
	return string(b)
}

func internReason(b []byte) string {
	if s, ok := knownReasons[string(b)]; ok {
		return s
	}
	return string(b)
}
