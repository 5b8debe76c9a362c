package studyclient

import "errors"

// ErrorKind classifies a failed generation request.
type ErrorKind int

const (
	// KindTooShort means the input was rejected locally; no request was sent.
	KindTooShort ErrorKind = iota + 1
	// KindUnreachable means the transport failed (connection, timeout).
	KindUnreachable
	// KindRejected means the server answered with a non-2xx status.
	KindRejected
	// KindMalformedResponse means a 2xx body was not a valid study set.
	KindMalformedResponse
)

// String returns the kind name used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindTooShort:
		return "too_short"
	case KindUnreachable:
		return "unreachable"
	case KindRejected:
		return "rejected"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// User-facing messages for failures that carry no server message.
const (
	MsgTooShort          = "Please provide at least 50 characters of text."
	MsgUnreachable       = "Failed to generate content. Please try again."
	MsgRejectedFallback  = "Failed to generate content"
	MsgMalformedResponse = "Invalid response format from server"
)

// GenerationError is the only error type returned by Client.Generate.
// Message is suitable for showing to the user as is.
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a *GenerationError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return 0
}
