package internal

import (
	"fmt"
)

// Error messages
const (
	ErrMsgEmptyTemplate      = "template cannot be empty"
	ErrMsgEmptyTextPath      = "dictionary path cannot be empty"
	ErrMsgMaxDepthExceeded   = "maximum render depth exceeded"
	ErrMsgMaxIterExceeded    = "fixpoint iteration cap exceeded"
	ErrMsgFilterNilFilter    = "filter cannot be nil"
	ErrMsgFilterEmptyName    = "filter name cannot be empty"
	ErrMsgFilterExists       = "filter already registered"
	ErrMsgFilterNotFound     = "filter not found"
	ErrMsgFilterSpecInvalid  = "filter spec does not match name(args) grammar"
	ErrMsgUnclosedBlock      = "block tag is not closed"
	ErrMsgInvalidLoopHeader  = "loop header does not match 'for <name> in <source>'"
	ErrMsgInvalidCondition   = "condition is empty"
	ErrMsgLargeLoop          = "loop collection exceeds advisory threshold"
	ErrMsgInvalidRange       = "range bound is not a valid integer"
	ErrMsgRangeTooLarge      = "range exceeds maximum size"
	ErrMsgTextNotFound       = "dictionary path not found"
)

// Error format strings
const (
	ErrFmtWithArgument = "%s: %s"
	ErrFmtLimit        = "%s (%s limit %d)"
	ErrFmtDepth        = "%s (limit %d)"
)

// ArgumentError reports a missing or empty required argument.
type ArgumentError struct {
	Message  string
	Argument string
}

// NewArgumentError creates a new argument error
func NewArgumentError(message, argument string) *ArgumentError {
	return &ArgumentError{
		Message:  message,
		Argument: argument,
	}
}

// Error implements the error interface
func (e *ArgumentError) Error() string {
	if e.Argument != "" {
		return fmt.Sprintf(ErrFmtWithArgument, e.Message, e.Argument)
	}
	return e.Message
}

// DepthError is returned when nested rendering exceeds the configured depth.
type DepthError struct {
	Limit int
}

// NewDepthError creates a new depth error
func NewDepthError(limit int) *DepthError {
	return &DepthError{Limit: limit}
}

// Error implements the error interface
func (e *DepthError) Error() string {
	return fmt.Sprintf(ErrFmtDepth, ErrMsgMaxDepthExceeded, e.Limit)
}

// IterationError is returned when a pass keeps changing the template past the cap.
type IterationError struct {
	Pass  string
	Limit int
}

// NewIterationError creates a new iteration error
func NewIterationError(pass string, limit int) *IterationError {
	return &IterationError{
		Pass:  pass,
		Limit: limit,
	}
}

// Error implements the error interface
func (e *IterationError) Error() string {
	return fmt.Sprintf(ErrFmtLimit, ErrMsgMaxIterExceeded, e.Pass, e.Limit)
}

// FilterRegistryError represents a filter registration error
type FilterRegistryError struct {
	Message    string
	FilterName string
}

// NewFilterRegistryError creates a new filter registry error
func NewFilterRegistryError(message, filterName string) *FilterRegistryError {
	return &FilterRegistryError{
		Message:    message,
		FilterName: filterName,
	}
}

// Error implements the error interface
func (e *FilterRegistryError) Error() string {
	if e.FilterName != "" {
		return fmt.Sprintf(ErrFmtWithArgument, e.Message, e.FilterName)
	}
	return e.Message
}
