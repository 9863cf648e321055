package clickatell

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/actual-software/sms-bridge/internal/logging"
)

// Message length beyond which the gateway must concatenate.
const singlePartLimit = 160

// Message describes one outbound SMS. To and Body are required; everything
// else is copied onto the wire verbatim when non-empty.
type Message struct {
	To   string
	Body string

	// From is the sender id. A purely numeric value requests the numeric
	// source address feature, anything else the alphanumeric one.
	From string

	// ClientMsgID is a client-assigned message id (wire field climsgid).
	ClientMsgID string

	// MO opts in to mobile-originated replies.
	MO string

	// MaxCredits caps the credits the gateway may spend on this message.
	MaxCredits string

	// Escalate bumps delivery priority when the message is stuck in queue.
	Escalate string

	// Unicode marks UCS2 content.
	Unicode string

	// UDH is a user-data-header for binary payloads.
	UDH string

	// Data is the binary payload.
	Data string

	// Validity is the validity period.
	Validity string

	// Binary marks the payload as binary.
	Binary string

	// ScheduledTime defers delivery.
	ScheduledTime string

	// Queue selects one of the three delivery queues assigned to each
	// account. Values outside 1..3 are silently dropped, matching gateway
	// tolerance.
	Queue int

	// Type is one of the SMS_* message types; empty means SMS_TEXT.
	Type string
}

// optionalFields maps Message fields to their wire names in the order the
// gateway documents them.
func (m *Message) optionalFields() []struct{ name, value string } {
	return []struct{ name, value string }{
		{"from", m.From},
		{"climsgid", m.ClientMsgID},
		{"mo", m.MO},
		{"max_credits", m.MaxCredits},
		{"escalate", m.Escalate},
		{"unicode", m.Unicode},
		{"udh", m.UDH},
		{"data", m.Data},
		{"validity", m.Validity},
		{"binary", m.Binary},
		{"scheduled_time", m.ScheduledTime},
	}
}

// requiredFeatures computes the req_feat bitmask for the message given the
// client's delivery-ack setting. The gateway may amend required features on
// its side when sender ids are not registered on the account.
func requiredFeatures(m *Message, delivAck bool) Feature {
	var feat Feature

	if m.Type == TypeSMSText {
		feat += FeatText
	}

	if m.From != "" {
		if isNumeric(m.From) {
			feat += FeatNumber
		} else {
			feat += FeatAlpha
		}
	}

	if m.Type == TypeSMSFlash {
		feat += FeatFlash
	}

	if delivAck {
		feat += FeatDelivAck
	}

	if len(m.Body) > singlePartLimit {
		feat += FeatConcat
	}

	return feat
}

// SendMessage submits one message to the gateway and returns the
// gateway-assigned message id. Validation failures surface before any
// network call; an ERR response surfaces as a gateway error.
func (c *Client) SendMessage(ctx context.Context, msg *Message) (string, error) {
	if msg == nil || msg.To == "" {
		return "", newMissingRequiredField("to")
	}

	if msg.Body == "" {
		return "", newMissingRequiredField("message")
	}

	// Work on a copy so resolving the default type never mutates the
	// caller's message.
	m := *msg
	if m.Type == "" {
		m.Type = TypeSMSText
	}

	if !messageTypes[m.Type] {
		return "", newInvalidMessageType(m.Type)
	}

	params := url.Values{}
	params.Set("to", m.To)
	params.Set("text", m.Body)

	for _, field := range m.optionalFields() {
		if field.value != "" {
			params.Set(field.name, field.value)
		}
	}

	// The gateway treats absence of msg_type as SMS_TEXT.
	if m.Type != TypeSMSText {
		params.Set("msg_type", m.Type)
	}

	if m.Queue >= 1 && m.Queue <= 3 {
		params.Set("queue", strconv.Itoa(m.Queue))
	}

	feat := requiredFeatures(&m, c.delivAck)
	if c.delivAck {
		params.Set("deliv_ack", "1")
		params.Set("callback", "7")
	}

	params.Set("req_feat", strconv.Itoa(int(feat)))

	resp, err := c.call(ctx, endpointSendMsg, params)
	if err != nil {
		return "", err
	}

	switch resp.kind {
	case respID:
		c.metrics.RecordMessageSent()
		c.recordFeatures(feat)
		c.logger.Debug("message accepted",
			zap.String(logging.FieldDestination, msg.To),
			zap.String(logging.FieldAPIMsgID, resp.value(1)),
			zap.Int(logging.FieldReqFeat, int(feat)),
		)

		return resp.value(1), nil
	case respErr:
		c.metrics.RecordGatewayError(resp.code)

		return "", newGatewayError(resp.code, resp.desc)
	default:
		return "", newUnexpectedResponse(endpointSendMsg, resp.raw)
	}
}

// featureNames labels the feature bits for metrics.
var featureNames = map[Feature]string{
	FeatText:     "text",
	Feat8Bit:     "8bit",
	FeatUDH:      "udh",
	FeatUCS2:     "ucs2",
	FeatAlpha:    "alpha",
	FeatNumber:   "number",
	FeatFlash:    "flash",
	FeatDelivAck: "deliv_ack",
	FeatConcat:   "concat",
}

func (c *Client) recordFeatures(feat Feature) {
	if c.metrics == nil {
		return
	}

	for bit, name := range featureNames {
		if feat&bit != 0 {
			c.metrics.RecordMessageFeature(name)
		}
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
