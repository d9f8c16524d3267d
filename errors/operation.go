package errors

import (
	"github.com/gofiber/fiber/v2"
)

// Kind tags an operation failure with one of the closed set of outcomes
// the core reports.
type Kind string

const (
	KindUnauthenticated Kind = "Unauthenticated"
	KindUnauthorized    Kind = "Unauthorized"
	KindNotFound        Kind = "NotFound"
	KindConflict        Kind = "Conflict"
	KindAlreadyExists   Kind = "AlreadyExists"
	KindInvalidInput    Kind = "InvalidInput"
	KindStoreFailure    Kind = "StoreFailure"
)

// OperationError is the tagged failure returned by the timetable and
// friend managers. Services translate it into a transport response.
type OperationError struct {
	Kind        Kind
	Problem     string
	Description string
}

func (e *OperationError) Error() string {
	return string(e.Kind) + "; Problem: " + e.Problem + "; Description: " + e.Description
}

// Operation builds a tagged operation error
func Operation(kind Kind, problem string, description string) *OperationError {
	return &OperationError{
		Kind:        kind,
		Problem:     problem,
		Description: description,
	}
}

// AsOperation extracts the tagged form of an error if it has one
func AsOperation(err error) (*OperationError, bool) {
	opErr, ok := err.(*OperationError)
	return opErr, ok
}

// HandleOperationError maps a tagged operation error onto the matching
// response handler. Unknown errors are treated as internal.
func HandleOperationError(c *fiber.Ctx, err error) error {
	opErr, ok := AsOperation(err)
	if !ok {
		return HandleInternalError(c, "operation", err.Error())
	}
	switch opErr.Kind {
	case KindUnauthenticated:
		return HandleUnauthenticatedError(c)
	case KindUnauthorized:
		return HandleUnauthorizedError(c, opErr.Description)
	case KindNotFound, KindConflict, KindAlreadyExists:
		return HandleInvalidRequestError(c, opErr.Problem, opErr.Description)
	case KindInvalidInput:
		return HandleBadRequestError(c, opErr.Problem, opErr.Description)
	default:
		return HandleInternalError(c, opErr.Problem, opErr.Description)
	}
}
