package service

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	NoError ErrorKind = iota
	MissingParameter
	InvalidParameterType
	OutOfRange
	NotFound
	UnknownTool
	InternalFault
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "ok"
	case MissingParameter:
		return "missing_parameter"
	case InvalidParameterType:
		return "invalid_parameter_type"
	case OutOfRange:
		return "out_of_range"
	case NotFound:
		return "not_found"
	case UnknownTool:
		return "unknown_tool"
	case InternalFault:
		return "internal_fault"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ToolError is the error a tool handler returns for an expected failure.
// Its message is what the caller sees.
type ToolError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ToolError) Error() string {
	return e.Msg
}

func newToolError(kind ErrorKind, format string, args ...any) *ToolError {
	return &ToolError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf reports the ErrorKind carried by err. Errors that are not a
// *ToolError are internal faults.
func KindOf(err error) ErrorKind {
	if err == nil {
		return NoError
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr.Kind
	}
	return InternalFault
}
