package domain

import (
	"errors"
	"net/http"
)

// Op names one of the four access-layer operations.
type Op string

const (
	OpList   Op = "list"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Error kinds. Match them with errors.Is against any *OpError.
var (
	ErrNotFound   = errors.New("not found")
	ErrInvalid    = errors.New("invalid data")
	ErrFailed     = errors.New("request failed")
	ErrUnexpected = errors.New("unexpected error")
)

// OpError is the single error an access-layer call fails with.
// Error() is the human-readable message shown to the user.
type OpError struct {
	Op      Op
	Kind    error
	Status  int // 0 when no response was received
	Message string
	Err     error
}

func (e *OpError) Error() string { return e.Message }

func (e *OpError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

const invalidDataMsg = "Invalid employee data provided"

type opMessages struct {
	notFound   string // empty when the op has no 404 mapping
	invalid    string // empty when the op has no 400 mapping
	failed     string
	unexpected string
}

var messages = map[Op]opMessages{
	OpList: {
		notFound:   "Employee data not found",
		failed:     "Failed to fetch employees. Please try again later.",
		unexpected: "An unexpected error occurred while fetching employees",
	},
	OpCreate: {
		invalid:    invalidDataMsg,
		failed:     "Failed to create employee. Please try again later.",
		unexpected: "An unexpected error occurred while creating employee",
	},
	OpUpdate: {
		notFound:   "Employee not found",
		invalid:    invalidDataMsg,
		failed:     "Failed to update employee. Please try again later.",
		unexpected: "An unexpected error occurred while updating employee",
	},
	OpDelete: {
		notFound:   "Employee not found",
		failed:     "Failed to delete employee. Please try again later.",
		unexpected: "An unexpected error occurred while deleting employee",
	},
}

// StatusError maps a non-success HTTP status returned to op onto its error.
// Statuses other than the op's 404/400 mappings all become ErrFailed.
func StatusError(op Op, status int) *OpError {
	m := messages[op]
	e := &OpError{Op: op, Kind: ErrFailed, Status: status, Message: m.failed}
	switch {
	case status == http.StatusNotFound && m.notFound != "":
		e.Kind, e.Message = ErrNotFound, m.notFound
	case status == http.StatusBadRequest && m.invalid != "":
		e.Kind, e.Message = ErrInvalid, m.invalid
	}
	return e
}

// UnexpectedError wraps a failure that produced no mappable status, such as a
// transport error or an undecodable body.
func UnexpectedError(op Op, cause error) *OpError {
	return &OpError{Op: op, Kind: ErrUnexpected, Message: messages[op].unexpected, Err: cause}
}

// AsOpError passes *OpError values through and wraps anything else as the
// unexpected error of op. A nil err stays nil.
func AsOpError(op Op, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr
	}
	return UnexpectedError(op, err)
}
