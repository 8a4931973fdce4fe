package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrChannelNotFound  = fmt.Errorf("channel not found")
	ErrInvalidChannel   = fmt.Errorf("invalid channel record")
	ErrGatewayNotFound  = fmt.Errorf("gateway not found")
	ErrInvalidGateway   = fmt.Errorf("invalid gateway record")
	ErrNotEditing       = fmt.Errorf("thread name is not being edited")
	ErrMissingThread    = fmt.Errorf("topbar has no thread")
	ErrIndexUnavailable = fmt.Errorf("search index is closed")
	ErrHandlerDestroyed = fmt.Errorf("notification handler destroyed")
	ErrEmptyChannelInfo = fmt.Errorf("channel info lookup returned no channel")
)
