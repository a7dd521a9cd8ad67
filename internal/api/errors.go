package api

type constError string

func (e constError) Error() string { return string(e) }

const errIncompleteInput = constError("incomplete input")

// Client-facing messages.
const (
	msgInvalidPayload  = "invalid request payload"
	msgInternalError   = "internal server error"
	msgUnauthorized    = "unauthorized"
	msgTooManyRequests = "too many requests"
	msgBodyTooLarge    = "request body too large"
	msgInvalidLimit    = "invalid limit"
	msgNotFound        = "not found"
	msgMethodNotAllow  = "method not allowed"
	msgOriginForbidden = "origin not allowed"
)
