package failure

import (
	"errors"
	"net/http"
)

// Reasons let callers branch on a failure without parsing its message.
const (
	ReasonBadRequest          = "BAD_REQUEST"
	ReasonValidation          = "VALIDATION_ERROR"
	ReasonUnauthorized        = "UNAUTHORIZED"
	ReasonAuthorization       = "AUTHORIZATION_ERROR"
	ReasonNotFound            = "NOT_FOUND"
	ReasonConflict            = "CONFLICT"
	ReasonInternal            = "INTERNAL_ERROR"
	ReasonUnimplemented       = "UNIMPLEMENTED"
	ReasonNotCancellable      = "NOT_CANCELLABLE"
	ReasonDuplicateReview     = "DUPLICATE_REVIEW"
	ReasonInvalidTransition   = "INVALID_TRANSITION"
	ReasonConcurrencyConflict = "CONCURRENCY_CONFLICT"
	ReasonAvailability        = "AVAILABILITY_ERROR"
	ReasonBookingNotCompleted = "BOOKING_NOT_COMPLETED"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Reason: ReasonBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Reason: ReasonBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Reason: ReasonAuthorization, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Reason: ReasonAuthorization, Message: "You don't have permission to access this resource"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Reason:  ReasonValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Reason:  ReasonValidation,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Reason:  ReasonUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Reason:  ReasonInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Reason:  ReasonUnimplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Reason:  ReasonNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonConflict,
		Message: message,
	}
}

// Forbidden is returned when the actor lacks the role or ownership the operation needs.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Reason:  ReasonAuthorization,
		Message: msg,
	}
}

func NotCancellable(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Reason:  ReasonNotCancellable,
		Message: msg,
	}
}

func DuplicateReview(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonDuplicateReview,
		Message: msg,
	}
}

func InvalidTransition(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonInvalidTransition,
		Message: msg,
	}
}

// ConcurrencyConflict reports a lost race. Callers are expected to retry the whole operation.
func ConcurrencyConflict(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonConcurrencyConflict,
		Message: msg,
	}
}

func Unavailable(msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Reason:  ReasonAvailability,
		Message: msg,
	}
}

func BookingNotCompleted(msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Reason:  ReasonBookingNotCompleted,
		Message: msg,
	}
}

// IsFailure reports whether err wraps a *Failure.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetReason returns the reason of an error interface, ReasonInternal for anything that is not a Failure.
func GetReason(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Reason
	}

	return ReasonInternal
}

// IsReason reports whether err carries the given reason.
func IsReason(err error, reason string) bool {
	if err == nil {
		return false
	}

	return GetReason(err) == reason
}
