package pipeline

import "fmt"

// ErrorKind classifies processing failures.
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "invalid_input"
	KindMissingDependency ErrorKind = "missing_dependency"
	KindTranscode         ErrorKind = "transcode"
	KindTranscription     ErrorKind = "transcription"
	KindRender            ErrorKind = "render"
	KindBusy              ErrorKind = "busy"
)

// Error is a step-aware processing failure surfaced to callers.
type Error struct {
	Kind    ErrorKind
	Step    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Step, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
