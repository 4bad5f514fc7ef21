package httpapi

import "fmt"

// SyntaxErrorCode is the server's discriminant for query syntax rejections.
const SyntaxErrorCode = "TQL0"

// TransportError reports that the request never produced a usable server
// response: connection refused, timeout, or a body that failed to encode.
// The core never retries these; retry policy belongs to the caller.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is the server's structured business-level rejection. Callers can
// recover from it (display it, retry with a fixed query, and so on).
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error [%s]: %s", e.Code, e.Message)
}

// SyntaxError is the APIError variant carrying code TQL0: the submitted
// query text did not parse. Matched via errors.As ahead of *APIError.
type SyntaxError struct {
	APIError
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.Message)
}

// ProtocolError reports a client/server contract mismatch: a response body
// that does not decode into the expected shape, or a content type the client
// does not know how to interpret. Unrecoverable; never swallow or retry.
type ProtocolError struct {
	Method string
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: protocol violation: %s: %v", e.Method, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: protocol violation: %s", e.Method, e.Reason)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// ReleaseError reports that the guaranteed terminal action of a scoped
// resource failed. The remote resource is leaked and the caller has no other
// way to observe that, so this is always escalated, never dropped.
type ReleaseError struct {
	Resource string // "transaction" or "database"
	ID       string
	Action   string // "close", "commit" or "delete"
	Err      error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("failed to %s %s %q, remote resource may be leaked: %v",
		e.Action, e.Resource, e.ID, e.Err)
}

func (e *ReleaseError) Unwrap() error { return e.Err }
