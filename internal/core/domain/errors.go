package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Provider errors.

	// ErrProviderFailure indicates a provider's search failed internally.
	// The engine recovers these: the provider is dropped from the merge.
	ErrProviderFailure = errors.New("provider failure")

	// ErrProviderDisabled indicates a provider is registered but not
	// currently operational (missing OS dependency, index offline).
	ErrProviderDisabled = errors.New("provider disabled")

	// Execution errors.

	// ErrExecutionFailed indicates a result's action could not be performed.
	ErrExecutionFailed = errors.New("execution failed")

	// ErrWrongResultType indicates a provider was asked to execute a result
	// of a type it does not own.
	ErrWrongResultType = errors.New("wrong result type")

	// ErrUnknownAction indicates a result carries an action variant the
	// default action table does not recognise.
	ErrUnknownAction = errors.New("unknown action")

	// Platform errors.

	// ErrPlatformUnsupported indicates the current OS cannot perform the
	// requested shell integration.
	ErrPlatformUnsupported = errors.New("unsupported on this platform")

	// ErrClipboardUnavailable indicates no clipboard mechanism is reachable.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
