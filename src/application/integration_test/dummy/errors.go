package dummy

import "errors"

var (
	UnexpectedInput = errors.New("request does not fit the state of the edit")
	NotFound        = errors.New("no such track or file")
	NetworkFailure  = errors.New("connection refused")
	AlreadyClosed   = errors.New("publisher is closed")
)
