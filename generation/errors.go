package generation

import (
	"fmt"
	"time"
)

// The pipeline converts every remote failure into one of the closed error
// types below before it reaches orchestration code. Stages never swallow
// or downgrade an error; the first failure aborts the remaining stages.

// ValidationError reports malformed orchestration input, caught before any
// remote call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Msg
}

// ContractViolation reports a remote response that parses but does not
// match the declared output shape.
type ContractViolation struct {
	Reason string
	Raw    string
}

func (e *ContractViolation) Error() string {
	if e.Raw == "" {
		return "response contract violation: " + e.Reason
	}
	return fmt.Sprintf("response contract violation: %s (raw: %s)", e.Reason, e.Raw)
}

// RemoteOperationError reports an explicit failure on a completed
// long-running operation.
type RemoteOperationError struct {
	Message string
}

func (e *RemoteOperationError) Error() string {
	return "remote operation failed: " + e.Message
}

// MissingMediaError reports an operation that completed successfully but
// produced no usable media asset. Not retryable: the service said success.
type MissingMediaError struct {
	Operation string
}

func (e *MissingMediaError) Error() string {
	return "operation " + e.Operation + " completed without a media asset"
}

// FetchError reports a failed media download.
type FetchError struct {
	Status int
	Reason string
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("media fetch failed: status %d: %s", e.Status, e.Reason)
	}
	return "media fetch failed: " + e.Reason
}

// TransportError reports a network or API-level failure at any remote call.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a long-running operation that exceeded the maximum
// polling budget without completing.
type TimeoutError struct {
	Attempts int
	Interval time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation still pending after %d polls at %s intervals", e.Attempts, e.Interval)
}

// Pipeline stages, used to tag where an orchestration failed.
const (
	StageNarrative = "narrative"
	StageCompose   = "compose"
	StageSubmit    = "submit"
	StagePoll      = "poll"
	StageFetch     = "fetch"
)

// StageError tags a failure with the orchestration stage it occurred in so
// callers can render a precise user-facing message.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + " stage: " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}
