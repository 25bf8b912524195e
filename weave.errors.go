package weave

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-weave/internal"
)

// Error message constants
const (
	ErrMsgEmptyTemplate     = internal.ErrMsgEmptyTemplate
	ErrMsgEmptyTextPath     = internal.ErrMsgEmptyTextPath
	ErrMsgTextNotFound      = internal.ErrMsgTextNotFound
	ErrMsgMaxDepthExceeded  = internal.ErrMsgMaxDepthExceeded
	ErrMsgMaxIterExceeded   = internal.ErrMsgMaxIterExceeded
	ErrMsgRenderFailed      = "template rendering failed"
	ErrMsgInvalidLanguage   = "invalid language code"
	ErrMsgInvalidLimit      = "limit cannot be negative"
	ErrMsgDictionaryRead    = "failed to read dictionary"
	ErrMsgDictionaryDecode  = "failed to decode dictionary"
	ErrMsgDictionaryNotTree = "dictionary root must be a mapping"
)

// Error code constants for categorization
const (
	ErrCodeArgument   = "WEAVE_ARGUMENT"
	ErrCodeLimit      = "WEAVE_LIMIT"
	ErrCodeConfig     = "WEAVE_CONFIG"
	ErrCodeDictionary = "WEAVE_DICTIONARY"
	ErrCodeRender     = "WEAVE_RENDER"
)

// Resource names for not-found errors
const (
	ResourceText = "text"
)

// NewArgumentError creates an error for a missing or empty argument
func NewArgumentError(msg, argument string) error {
	return cuserr.NewValidationError(ErrCodeArgument, msg).
		WithMetadata(MetaKeyArgument, argument)
}

// NewDepthLimitError creates an error for exceeding the nesting depth
func NewDepthLimitError(cause error, limit int) error {
	return cuserr.WrapStdError(cause, ErrCodeLimit, ErrMsgMaxDepthExceeded).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(limit))
}

// NewIterationLimitError creates an error for a pass that never settles
func NewIterationLimitError(cause error, pass string, limit int) error {
	return cuserr.WrapStdError(cause, ErrCodeLimit, ErrMsgMaxIterExceeded).
		WithMetadata(MetaKeyPass, pass).
		WithMetadata(MetaKeyMaxIter, strconv.Itoa(limit))
}

// NewTextNotFoundError creates an error for an unresolved dictionary path
func NewTextNotFoundError(path, fallback string) error {
	return cuserr.NewNotFoundError(ResourceText, ErrMsgTextNotFound).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyFallback, fallback)
}

// NewInvalidLanguageError creates an error for an unparseable language code
func NewInvalidLanguageError(code string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgInvalidLanguage).
		WithMetadata(MetaKeyLanguage, code)
}

// NewInvalidLimitError creates an error for a negative limit option
func NewInvalidLimitError(option string, value int) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidLimit).
		WithMetadata(MetaKeyOption, option).
		WithMetadata(MetaKeyValue, strconv.Itoa(value))
}

// NewDictionaryError creates an error for dictionary loading failures
func NewDictionaryError(msg, file string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeDictionary, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeDictionary, msg)
	}
	if file == "" {
		return err
	}
	return err.WithMetadata(MetaKeyFile, file)
}

// wrapRenderError maps renderer errors onto the public error constructors.
func wrapRenderError(err error) error {
	var argErr *internal.ArgumentError
	if errors.As(err, &argErr) {
		return NewArgumentError(argErr.Message, argErr.Argument)
	}
	var depthErr *internal.DepthError
	if errors.As(err, &depthErr) {
		return NewDepthLimitError(err, depthErr.Limit)
	}
	var iterErr *internal.IterationError
	if errors.As(err, &iterErr) {
		return NewIterationLimitError(err, iterErr.Pass, iterErr.Limit)
	}
	return cuserr.WrapStdError(err, ErrCodeRender, ErrMsgRenderFailed)
}
