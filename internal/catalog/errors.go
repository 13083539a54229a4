package catalog

// errors.go defines the failure taxonomy for the import pipeline and the
// mapping from technical errors to user-facing messages.
//
// Error codes are grouped by category:
//
//	CSV001 - Malformed CSV file
//	CSV002 - Batch exceeds the 100 record ceiling
//	CSV003 - Empty file / no data rows
//	VAL001 - One or more fields failed validation
//	VAL002 - Batch has no records
//	API001 - Remote content store rejected a create or publish call
//	API002 - Console or game not found
//	ERR000 - Fallback for unrecognized errors
//
// Nothing here is fatal to the process. Every failure mode leaves the
// user able to correct their input and retry.

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that a console or game slug has no match in the
// content store. Rendered as a 404 state, never as a crash.
var ErrNotFound = errors.New("not found")

// ErrTooManyRecords reports a batch over the MaxBatchSize ceiling.
// Raised by both the CSV ingestor and the submission path.
var ErrTooManyRecords = fmt.Errorf("you cannot upload more than %d records at a time", MaxBatchSize)

// ErrEmptyBatch reports a submission with no records.
var ErrEmptyBatch = errors.New("you must have at least one game added")

// ParseError reports malformed CSV input, carrying the parser's message.
// Recoverable: the uploader stays in its pre-upload state.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "csv parse: " + e.Msg
}

// RemoteError reports a failed create or publish call against the
// content store. It carries the structured error payload so the caller
// can render each message, and is never thrown past the orchestrator
// boundary.
type RemoteError struct {
	Op       string   // "create" or "publish"
	Title    string   // title of the record that failed
	Messages []string // remote error payload, one message per entry
}

func (e *RemoteError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("%s %q failed", e.Op, e.Title)
	}
	return fmt.Sprintf("%s %q failed: %s", e.Op, e.Title, strings.Join(e.Messages, "; "))
}

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again. If the problem persists, contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Typed errors from this package are matched first; anything else falls
// back to pattern matching on the message text, then to ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return UserMessage{
			Message: "The file could not be parsed as CSV: " + parseErr.Msg,
			Action:  "Ensure the file is comma-separated with a header row",
			Code:    "CSV001",
		}
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return UserMessage{
			Message: remoteErr.Error(),
			Action:  "Your games were kept in the form so you can retry",
			Code:    "API001",
		}
	}

	switch {
	case errors.Is(err, ErrTooManyRecords):
		return UserMessage{
			Message: ErrTooManyRecords.Error(),
			Action:  "Split the file and upload at most 100 games per batch",
			Code:    "CSV002",
		}
	case errors.Is(err, ErrEmptyBatch):
		return UserMessage{
			Message: ErrEmptyBatch.Error(),
			Action:  "Add at least one game before submitting",
			Code:    "VAL002",
		}
	case errors.Is(err, ErrNotFound):
		return UserMessage{
			Message: "Sorry, this page doesn't appear to exist",
			Action:  "Check the address or go back home",
			Code:    "API002",
		}
	}

	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "empty file"), strings.Contains(lower, "no data rows"):
		return UserMessage{
			Message: "The uploaded file has no data rows",
			Action:  "Upload a CSV with a header row and at least one game",
			Code:    "CSV003",
		}
	case strings.Contains(lower, "validation"):
		return UserMessage{
			Message: "Some fields failed validation",
			Action:  "Fix the highlighted fields and submit again",
			Code:    "VAL001",
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
