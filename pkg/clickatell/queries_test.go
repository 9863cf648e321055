package clickatell

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIMsgID = "1234567890abcdef1234567890abcdef"

func TestBalance(t *testing.T) {
	stub := &gatewayStub{response: "Credit: 12.000"}
	client := newTestClient(t, stub)

	credit, err := client.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12.000", credit)
	assert.Equal(t, "/http/getbalance", stub.lastPath)
}

func TestBalance_GatewayError(t *testing.T) {
	stub := &gatewayStub{response: "ERR: 001, Authentication failed"}
	client := newTestClient(t, stub)

	_, err := client.Balance(context.Background())
	require.Error(t, err)
	assert.True(t, IsType(err, TypeGateway))
	assert.Equal(t, "ERR: 001, Authentication failed", err.Error())
}

func TestBalance_UnexpectedResponse(t *testing.T) {
	stub := &gatewayStub{response: "Nope"}
	client := newTestClient(t, stub)

	_, err := client.Balance(context.Background())
	require.Error(t, err)
	assert.True(t, IsType(err, TypeUnexpectedResponse))
}

func TestDeleteMessage_ChargeReport(t *testing.T) {
	stub := &gatewayStub{response: "ID: " + testAPIMsgID + " charge: 0.300 status: 006"}
	client := newTestClient(t, stub)

	result, err := client.DeleteMessage(context.Background(), testAPIMsgID)
	require.NoError(t, err)
	assert.Equal(t, "0.300", result.Charge)
	assert.Equal(t, "006", result.Status)
	assert.Empty(t, result.Credit)
	assert.Equal(t, "/http/delmsg", stub.lastPath)
	assert.Equal(t, testAPIMsgID, stub.lastForm.Get("apimsgid"))
}

func TestDeleteMessage_CreditLine(t *testing.T) {
	stub := &gatewayStub{response: "Credit: 11.700"}
	client := newTestClient(t, stub)

	result, err := client.DeleteMessage(context.Background(), testAPIMsgID)
	require.NoError(t, err)
	assert.Equal(t, "11.700", result.Credit)
	assert.Empty(t, result.Charge)
}

func TestDeleteMessage_GatewayError(t *testing.T) {
	stub := &gatewayStub{response: "ERR: 103, Unknown apismgid (API Message ID)"}
	client := newTestClient(t, stub)

	_, err := client.DeleteMessage(context.Background(), testAPIMsgID)
	require.Error(t, err)

	code, ok := GatewayCode(err)
	assert.True(t, ok)
	assert.Equal(t, "103", code)
}

func TestMessageCharge_LengthPrecondition(t *testing.T) {
	// The stub fails the test if reached: the precondition must reject
	// before any network call.
	stub := &gatewayStub{response: "ERR: 901, should never get here"}
	client := newTestClient(t, stub)

	_, err := client.MessageCharge(context.Background(), "short")
	require.Error(t, err)
	assert.True(t, IsType(err, TypeValidation))
	assert.Empty(t, stub.lastPath)

	_, err = client.MessageCharge(context.Background(), strings.Repeat("a", 33))
	require.Error(t, err)
	assert.True(t, IsType(err, TypeValidation))
	assert.Empty(t, stub.lastPath)
}

func TestMessageCharge(t *testing.T) {
	stub := &gatewayStub{response: "ID: " + testAPIMsgID + " charge: 0.300 status: 004"}
	client := newTestClient(t, stub)

	charge, err := client.MessageCharge(context.Background(), testAPIMsgID)
	require.NoError(t, err)
	assert.Equal(t, testAPIMsgID, charge.APIMsgID)
	assert.Equal(t, "0.300", charge.Charge)
	assert.Equal(t, "004", charge.Status)
	assert.Equal(t, "/http/getmsgcharge", stub.lastPath)
}

func TestMessageCharge_GatewayError(t *testing.T) {
	stub := &gatewayStub{response: "ERR: 001, Authentication failed"}
	client := newTestClient(t, stub)

	_, err := client.MessageCharge(context.Background(), testAPIMsgID)
	require.Error(t, err)
	assert.True(t, IsType(err, TypeGateway))
}

func TestQueryMessage(t *testing.T) {
	stub := &gatewayStub{response: "ID: " + testAPIMsgID + " Status: 004"}
	client := newTestClient(t, stub)

	ok, status, err := client.QueryMessage(context.Background(), testAPIMsgID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "004", status)
	assert.Equal(t, "/http/querymsg", stub.lastPath)
}

func TestQueryMessage_GatewayError(t *testing.T) {
	stub := &gatewayStub{response: "ERR: 001, Authentication failed"}
	client := newTestClient(t, stub)

	_, _, err := client.QueryMessage(context.Background(), testAPIMsgID)
	require.Error(t, err)
	assert.True(t, IsType(err, TypeGateway))
}

func TestQueryMessage_OtherTokenReportsUnavailable(t *testing.T) {
	stub := &gatewayStub{response: "Session expired"}
	client := newTestClient(t, stub)

	ok, status, err := client.QueryMessage(context.Background(), testAPIMsgID)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "0", status)
}

func TestRouteCoverage(t *testing.T) {
	stub := &gatewayStub{response: "OK: This prefix is currently supported. Messages sent to this prefix will be routed. Charge: 1"}
	client := newTestClient(t, stub)

	ok, charge, err := client.RouteCoverage(context.Background(), "27725671567")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", charge)
	assert.Equal(t, "/utils/routeCoverage", stub.lastPath)
	assert.Equal(t, "27725671567", stub.lastForm.Get("msisdn"))
}

func TestRouteCoverage_NotRoutable(t *testing.T) {
	stub := &gatewayStub{response: "This prefix is not currently supported"}
	client := newTestClient(t, stub)

	ok, charge, err := client.RouteCoverage(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "0", charge)
}

func TestRouteCoverage_GatewayError(t *testing.T) {
	stub := &gatewayStub{response: "ERR: 001, Authentication failed"}
	client := newTestClient(t, stub)

	_, _, err := client.RouteCoverage(context.Background(), "27725671567")
	require.Error(t, err)
	assert.True(t, IsType(err, TypeGateway))
}

func TestTokenPay_Precondition(t *testing.T) {
	stub := &gatewayStub{}
	client := newTestClient(t, stub)

	// Non-numeric and not 16 characters: rejected before any request.
	_, err := client.TokenPay(context.Background(), "voucher")
	require.Error(t, err)
	assert.True(t, IsType(err, TypeValidation))
	assert.Empty(t, stub.lastPath)

	// Numeric vouchers of any length pass the legacy precondition.
	stub.response = "OK: 5.000"
	_, err = client.TokenPay(context.Background(), "12345")
	require.NoError(t, err)

	// So does any 16-character voucher, numeric or not.
	_, err = client.TokenPay(context.Background(), "ABCDEFGHIJKLMNOP")
	require.NoError(t, err)
}

func TestTokenPay(t *testing.T) {
	stub := &gatewayStub{response: "OK: 5.000"}
	client := newTestClient(t, stub)

	value, err := client.TokenPay(context.Background(), "1234567890123456")
	require.NoError(t, err)
	assert.Equal(t, "5.000", value)
	assert.Equal(t, "/http/token_pay", stub.lastPath)
	assert.Equal(t, "1234567890123456", stub.lastForm.Get("token"))
}

func TestTokenPay_GatewayError(t *testing.T) {
	stub := &gatewayStub{response: "ERR: 606, Invalid Token"}
	client := newTestClient(t, stub)

	_, err := client.TokenPay(context.Background(), "1234567890123456")
	require.Error(t, err)

	code, ok := GatewayCode(err)
	assert.True(t, ok)
	assert.Equal(t, "606", code)
}
