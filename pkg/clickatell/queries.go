package clickatell

import (
	"context"
	"net/url"
	"strings"
)

// apiMsgIDLength is the fixed length of gateway-assigned message ids.
const apiMsgIDLength = 32

// voucherLength is the length of a prepaid voucher number.
const voucherLength = 16

// Charge is the parsed result of a message cost lookup.
type Charge struct {
	APIMsgID string
	Charge   string
	Status   string
}

// DeleteResult is the parsed result of cancelling a queued message. The
// gateway answers with either a charge report or a remaining-credit line;
// exactly one of the two shapes is populated.
type DeleteResult struct {
	Charge string
	Status string
	Credit string
}

// Balance queries the remaining SMS credits on the account.
func (c *Client) Balance(ctx context.Context) (string, error) {
	resp, err := c.call(ctx, endpointGetBalance, nil)
	if err != nil {
		return "", err
	}

	switch resp.kind {
	case respCredit:
		return resp.value(1), nil
	case respErr:
		c.metrics.RecordGatewayError(resp.code)

		return "", newGatewayError(resp.code, resp.desc)
	default:
		return "", newUnexpectedResponse(endpointGetBalance, resp.raw)
	}
}

// DeleteMessage cancels a message queued by the gateway which has not yet
// been passed on to the SMSC.
func (c *Client) DeleteMessage(ctx context.Context, apiMsgID string) (*DeleteResult, error) {
	resp, err := c.call(ctx, endpointDelMsg, url.Values{
		"apimsgid": {strings.TrimSpace(apiMsgID)},
	})
	if err != nil {
		return nil, err
	}

	if tokens, ok := resp.chargeReport(); ok {
		return &DeleteResult{Charge: tokens[3], Status: tokens[5]}, nil
	}

	switch resp.kind {
	case respCredit:
		return &DeleteResult{Credit: resp.value(1)}, nil
	case respErr:
		c.metrics.RecordGatewayError(resp.code)

		return nil, newGatewayError(resp.code, resp.desc)
	default:
		return nil, newUnexpectedResponse(endpointDelMsg, resp.raw)
	}
}

// MessageCharge determines the cost of a previously sent message. The id
// must be exactly 32 characters; anything else fails before a request is
// made.
func (c *Client) MessageCharge(ctx context.Context, apiMsgID string) (*Charge, error) {
	if len(apiMsgID) != apiMsgIDLength {
		return nil, newInvalidArgument("invalid API message id")
	}

	resp, err := c.call(ctx, endpointGetMsgCharge, url.Values{
		"apimsgid": {strings.TrimSpace(apiMsgID)},
	})
	if err != nil {
		return nil, err
	}

	if tokens, ok := resp.chargeReport(); ok {
		return &Charge{
			APIMsgID: tokens[1],
			Charge:   tokens[3],
			Status:   tokens[5],
		}, nil
	}

	if resp.kind == respErr {
		c.metrics.RecordGatewayError(resp.code)

		return nil, newGatewayError(resp.code, resp.desc)
	}

	return nil, newUnexpectedResponse(endpointGetMsgCharge, resp.raw)
}

// QueryMessage looks up the delivery status of a message. A non-ID,
// non-ERR answer reports (false, "0") without an error, matching the
// gateway's loose contract for this endpoint.
func (c *Client) QueryMessage(ctx context.Context, apiMsgID string) (bool, string, error) {
	resp, err := c.call(ctx, endpointQueryMsg, url.Values{
		"apimsgid": {apiMsgID},
	})
	if err != nil {
		return false, "", err
	}

	switch resp.kind {
	case respID:
		return true, resp.last(), nil
	case respErr:
		c.metrics.RecordGatewayError(resp.code)

		return false, "", newGatewayError(resp.code, resp.desc)
	default:
		return false, "0", nil
	}
}

// RouteCoverage checks whether the gateway can deliver to a destination
// and at what minimum price. A non-OK, non-ERR answer reports (false, "0")
// without an error.
func (c *Client) RouteCoverage(ctx context.Context, msisdn string) (bool, string, error) {
	resp, err := c.call(ctx, endpointRouteCoverage, url.Values{
		"msisdn": {msisdn},
	})
	if err != nil {
		return false, "", err
	}

	switch resp.kind {
	case respOK:
		return true, resp.last(), nil
	case respErr:
		c.metrics.RecordGatewayError(resp.code)

		return false, "", newGatewayError(resp.code, resp.desc)
	default:
		return false, "0", nil
	}
}

// TokenPay redeems a prepaid voucher against the account balance and
// returns the gateway's confirmation value.
//
// The precondition rejects vouchers that are non-numeric AND not 16
// characters long. This reproduces the legacy validation exactly, even
// though it also admits non-numeric 16-character input. Callers relying
// on stricter voucher checks must validate before calling.
func (c *Client) TokenPay(ctx context.Context, token string) (string, error) {
	if !isNumeric(token) && len(token) != voucherLength {
		return "", newInvalidArgument("invalid voucher number")
	}

	resp, err := c.call(ctx, endpointTokenPay, url.Values{
		"token": {token},
	})
	if err != nil {
		return "", err
	}

	switch resp.kind {
	case respOK:
		return resp.value(1), nil
	case respErr:
		c.metrics.RecordGatewayError(resp.code)

		return "", newGatewayError(resp.code, resp.desc)
	default:
		return "", newUnexpectedResponse(endpointTokenPay, resp.raw)
	}
}
