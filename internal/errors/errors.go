package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound                 = NewAppError("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrBadRequest               = NewAppError("BAD_REQUEST", "Invalid request", http.StatusBadRequest)
	ErrInternalServer           = NewAppError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
	ErrValidation               = NewAppError("VALIDATION_ERROR", "Validation failed", http.StatusBadRequest)
	ErrDatabase                 = NewAppError("DATABASE_ERROR", "Failed to execute database operation", http.StatusInternalServerError)
	ErrDonationNotFound         = NewAppError("DONATION_NOT_FOUND", "Donation not found", http.StatusNotFound)
	ErrPledgeNotFound           = NewAppError("PLEDGE_NOT_FOUND", "Pledge not found", http.StatusNotFound)
	ErrUnsupportedPaymentMethod = NewAppError("UNSUPPORTED_PAYMENT_METHOD", "Unsupported payment method", http.StatusBadRequest)
	ErrInvalidSignature         = NewAppError("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	ErrPayloadTooLarge          = NewAppError("PAYLOAD_TOO_LARGE", "Request body too large", http.StatusRequestEntityTooLarge)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so sentinel comparisons survive WithError/WithDetails clones.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err carries a 404 AppError.
func IsNotFound(err error) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.StatusCode == http.StatusNotFound
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Request canceled by client", http.StatusRequestTimeout)
	}

	return WrapError(err, "INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	appErr := ErrValidation.WithDetails(map[string]interface{}{"field": field})
	appErr.Message = fmt.Sprintf("%s %s", field, message)
	return appErr
}

func NewDatabaseError(err error) *AppError {
	return ErrDatabase.WithError(err)
}

func NewNotFoundError(resource string) *AppError {
	appErr := ErrNotFound.WithDetails(map[string]interface{}{"resource": resource})
	appErr.Message = fmt.Sprintf("%s not found", resource)
	return appErr
}

// ParseValidationErrors converts binding failures into a VALIDATION_ERROR.
// JSON type mismatches (a string amount, for instance) are reported per field too.
func ParseValidationErrors(err error) *AppError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		appErr := ErrValidation.WithDetails(map[string]interface{}{
			"fields": []map[string]string{{
				"field":   field,
				"message": fmt.Sprintf("%s must be a %s", field, typeErr.Type.String()),
			}},
		})
		appErr.Message = "Invalid field values"
		appErr.Err = err
		return appErr
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   lowerFirst(fieldErr.Field()),
			"message": translateValidationError(fieldErr),
		})
	}

	appErr := ErrValidation.WithDetails(map[string]interface{}{"fields": fieldErrors})
	appErr.Message = "Missing required fields"
	return appErr
}

func lowerFirst(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := lowerFirst(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "email":
		return "invalid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, fe.Param())
	default:
		return fmt.Sprintf("validation '%s' failed for %s", fe.Tag(), fieldName)
	}
}
