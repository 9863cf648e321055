package clickatell

import (
	"errors"
	"fmt"
)

// ErrorType classifies client errors.
type ErrorType string

const (
	// TypeConfiguration covers construction-time failures. Never
	// recoverable by retry.
	TypeConfiguration ErrorType = "CONFIGURATION"
	// TypeValidation covers input failures raised before any network call.
	TypeValidation ErrorType = "VALIDATION"
	// TypeGateway covers ERR responses reported by the gateway.
	TypeGateway ErrorType = "GATEWAY"
	// TypeTransport covers network and HTTP-level failures.
	TypeTransport ErrorType = "TRANSPORT"
	// TypeUnexpectedResponse covers response bodies whose leading token is
	// not part of the endpoint's contract.
	TypeUnexpectedResponse ErrorType = "UNEXPECTED_RESPONSE"
)

// Error is the base error type for all client errors.
type Error struct {
	Type        ErrorType
	Message     string
	Field       string // offending field for configuration/validation errors
	Code        string // gateway error code for TypeGateway
	Description string // gateway description for TypeGateway
	Endpoint    string // endpoint path for transport/unexpected errors
	Cause       error
}

// Error implements the error interface. Gateway errors render in the
// gateway's own "ERR: <code>, <description>" shape so callers and logs see
// the wire-level failure verbatim.
func (e *Error) Error() string {
	if e.Type == TypeGateway {
		return fmt.Sprintf("ERR: %s, %s", e.Code, e.Description)
	}

	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsType reports whether err is a client error of the given type.
func IsType(err error, t ErrorType) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Type == t
	}

	return false
}

// GatewayCode returns the gateway error code carried by err, if any.
func GatewayCode(err error) (string, bool) {
	var ce *Error
	if errors.As(err, &ce) && ce.Type == TypeGateway {
		return ce.Code, true
	}

	return "", false
}

// IsRetryable reports whether the gateway error code behind err is
// documented as transient. Transport errors are always retryable.
func IsRetryable(err error) bool {
	var ce *Error
	if !errors.As(err, &ce) {
		return false
	}

	switch ce.Type {
	case TypeTransport:
		return true
	case TypeGateway:
		return retryableCodes[ce.Code]
	default:
		return false
	}
}

func newMissingCredential(field string) *Error {
	return &Error{
		Type:    TypeConfiguration,
		Field:   field,
		Message: fmt.Sprintf("please pass in your Clickatell %s", field),
	}
}

func newInvalidAccountID() *Error {
	return &Error{
		Type:    TypeConfiguration,
		Field:   "api_id",
		Message: "please pass in a numeric Clickatell api_id",
	}
}

func newMissingRequiredField(field string) *Error {
	return &Error{
		Type:    TypeValidation,
		Field:   field,
		Message: fmt.Sprintf("required parameter %q is not set", field),
	}
}

func newInvalidMessageType(msgType string) *Error {
	return &Error{
		Type:    TypeValidation,
		Field:   "msg_type",
		Message: fmt.Sprintf("invalid message type %q", msgType),
	}
}

func newInvalidArgument(message string) *Error {
	return &Error{
		Type:    TypeValidation,
		Message: message,
	}
}

// newGatewayError builds a TypeGateway error from a parsed ERR line. When
// the gateway sends a bare code, the description is filled in from the
// documented code table.
func newGatewayError(code, description string) *Error {
	if description == "" {
		description = errorDescriptions[code]
	}

	return &Error{
		Type:        TypeGateway,
		Code:        code,
		Description: description,
		Message:     description,
	}
}

func newTransportError(endpoint string, cause error) *Error {
	return &Error{
		Type:     TypeTransport,
		Endpoint: endpoint,
		Message:  "request to " + endpoint + " failed",
		Cause:    cause,
	}
}

func newUnexpectedResponse(endpoint, body string) *Error {
	return &Error{
		Type:     TypeUnexpectedResponse,
		Endpoint: endpoint,
		Message:  fmt.Sprintf("unexpected response from %s: %q", endpoint, body),
	}
}
