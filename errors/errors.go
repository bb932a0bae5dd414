package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrLockStoreUnavailable  = fmt.Errorf("lock store unavailable")
	ErrMalformedFrame        = fmt.Errorf("malformed gateway frame")
	ErrEmptyCommandName      = fmt.Errorf("command has an empty name")
	ErrMissingExecute        = fmt.Errorf("command has no body")
	ErrDuplicateCommand      = fmt.Errorf("command name already registered")
	ErrCommandPanic          = fmt.Errorf("command panicked")
	ErrMissingCredentials    = fmt.Errorf("missing gateway credentials")
	ErrUnsupportedCapability = fmt.Errorf("gateway does not support this capability")
	ErrInvalidCharacter      = fmt.Errorf("censor character must be a single character")
	ErrGatewayRejected       = fmt.Errorf("gateway rejected the request")
	ErrEmptyWords            = fmt.Errorf("no words have been found")
)

// Re-exported so callers importing this package don't need to alias the standard one.
var (
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)
