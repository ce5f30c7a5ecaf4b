package errors

import "fmt"

// Request-rejection errors raised by the validators before any store mutation.
// They surface verbatim to the caller; nothing downgrades or retries them.
var (
	ErrInvalidParticipants  = fmt.Errorf("conversation must have at least one participant")
	ErrInvalidDirectMessage = fmt.Errorf("direct message must have exactly two participants")
	ErrPermissionDenied     = fmt.Errorf("permission denied")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMessageImmutable     = fmt.Errorf("message is not editable")
	ErrMessageNotFound      = fmt.Errorf("no message found")
	ErrStaleReadPosition    = fmt.Errorf("read position is older than the current one")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
