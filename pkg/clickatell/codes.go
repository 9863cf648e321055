package clickatell

// errorDescriptions maps the gateway's 3-digit error codes to their
// documented descriptions. Used to render GatewayError messages when the
// gateway omits or truncates the description.
var errorDescriptions = map[string]string{
	"001": "Authentication failed",
	"002": "Unknown username or password",
	"003": "Session ID expired",
	"004": "Account frozen",
	"005": "Missing session ID",
	"007": "IP lockdown violation",
	"101": "Invalid or missing parameters",
	"102": "Invalid UDH. (User Data Header)",
	"103": "Unknown apismgid (API Message ID)",
	"104": "Unknown climsgid (Client Message ID)",
	"105": "Invalid Destination Address",
	"106": "Invalid Source Address",
	"107": "Empty message",
	"108": "Invalid or missing api_id",
	"109": "Missing message ID",
	"110": "Error with email message",
	"111": "Invalid Protocol",
	"112": "Invalid msg_type",
	"113": "Max message parts exceeded",
	"114": "Cannot route message",
	"115": "Message Expired",
	"116": "Invalid Unicode Data",
	"120": "Invalid delivery date",
	"121": "Destination mobile number blocked",
	"122": "Destination mobile opted out",
	"123": "Invalid Sender ID",
	"128": "Number delisted",
	"130": "Maximum MT limitexceeded until <UNIXTIME STAMP>",
	"201": "Invalid batch ID",
	"202": "No batch template",
	"301": "No credit left",
	"302": "Max allowed credit",
	"605": "Tokenpay transaction successful",
	"606": "Invalid Token",
	"901": "Internal error – please retry",
}

// statusDescriptions maps the gateway's message status codes to their
// documented descriptions.
var statusDescriptions = map[string]string{
	"001": "Message unknown",
	"002": "Message queued",
	"003": "Delivered",
	"004": "Received by recipient",
	"005": "Error with message",
	"006": "User cancelled message delivery",
	"007": "Error delivering message",
	"008": "OK",
	"009": "Routing error",
	"010": "Message expired",
	"011": "Message queued for later delivery",
	"012": "Out of credit",
	"013": "Clickatell canceled message delivery",
	"014": "Maximum MT limit exceeded",
	"015": "Do not contact receiver",
}

// retryableCodes marks the gateway error codes that a caller may retry.
var retryableCodes = map[string]bool{
	"901": true,
}

// ErrorDescription returns the documented description for a gateway error
// code, or false if the code is unknown.
func ErrorDescription(code string) (string, bool) {
	desc, ok := errorDescriptions[code]

	return desc, ok
}

// StatusText returns the documented description for a message status code,
// or false if the code is unknown.
func StatusText(code string) (string, bool) {
	desc, ok := statusDescriptions[code]

	return desc, ok
}

// Message types. The gateway sets the UDH for non-text types on its side.
const (
	// TypeSMSText is the default message type and is omitted from the wire.
	TypeSMSText = "SMS_TEXT"
	// TypeSMSFlash displays immediately upon arrival at the phone.
	TypeSMSFlash       = "SMS_FLASH"
	TypeNokiaOLogo     = "SMS_NOKIA_OLOGO"
	TypeNokiaGLogo     = "SMS_NOKIA_GLOGO"
	TypeNokiaPicture   = "SMS_NOKIA_PICTURE"
	TypeNokiaRingtone  = "SMS_NOKIA_RINGTONE"
	TypeNokiaRTTL      = "SMS_NOKIA_RTTL"
	TypeNokiaCleanScrn = "SMS_NOKIA_CLEAN"
	TypeNokiaVCard     = "SMS_NOKIA_VCARD"
	TypeNokiaVCalendar = "SMS_NOKIA_VCAL"
)

// messageTypes is the closed set accepted by SendMessage.
var messageTypes = map[string]bool{
	TypeSMSText:        true,
	TypeSMSFlash:       true,
	TypeNokiaOLogo:     true,
	TypeNokiaGLogo:     true,
	TypeNokiaPicture:   true,
	TypeNokiaRingtone:  true,
	TypeNokiaRTTL:      true,
	TypeNokiaCleanScrn: true,
	TypeNokiaVCard:     true,
	TypeNokiaVCalendar: true,
}
