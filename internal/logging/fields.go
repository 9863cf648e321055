// Package logging defines standardized logging field names for sms-bridge components.
package logging

// Standard field names used across client and CLI logs.
const (
	// Service identification.
	FieldService   = "service"
	FieldComponent = "component"
	FieldVersion   = "version"

	// Request/response.
	FieldEndpoint   = "endpoint"
	FieldStatus     = "status"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldSize       = "size_bytes"

	// Gateway domain.
	FieldAPIMsgID    = "apimsgid"
	FieldClientMsgID = "climsgid"
	FieldDestination = "to"
	FieldSender      = "from"
	FieldReqFeat     = "req_feat"
	FieldQueue       = "queue"

	// Session.
	FieldSessionSet = "session_set"

	// Error handling.
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldErrorCode = "error_code"
)

// Service names.
const (
	ServiceBridge = "sms-bridge"
)

// Component names.
const (
	ComponentClient = "clickatell"
	ComponentCLI    = "cli"
	ComponentConfig = "config"
)
