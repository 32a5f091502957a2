package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expensewise/sms-parser/internal/logger"
	"github.com/expensewise/sms-parser/internal/registry"
)

func testApp() *fiber.App {
	h := &Handler{
		Registry: registry.New(),
		Log:      logger.NewWithWriter(io.Discard),
	}
	return NewApp(h)
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleHealth(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Greater(t, body["parsers"], float64(0))
}

func TestHandleParse(t *testing.T) {
	app := testApp()
	resp := postJSON(t, app, "/api/parse", ParseRequest{
		Body:      "INR 500.00 debited from A/c XX1234 on 01-01-25 to SWIGGY. Avl Bal is INR 4,500.00",
		Sender:    "VM-HDFCBK-S",
		Timestamp: 1735689600000,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ParseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Matched)
	assert.NotEmpty(t, body.ID)
	require.NotNil(t, body.Transaction)
	assert.Equal(t, "HDFC Bank", body.Transaction.Bank)
	assert.Equal(t, "Swiggy", body.Transaction.Merchant)
}

func TestHandleParseUnmatched(t *testing.T) {
	app := testApp()

	resp := postJSON(t, app, "/api/parse", ParseRequest{
		Body:   "123456 is your OTP for Rs.500. Do not share.",
		Sender: "VM-HDFCBK-S",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ParseResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Matched)
	assert.Empty(t, body.ID)
	assert.Nil(t, body.Transaction)
}

func TestHandleParseValidation(t *testing.T) {
	app := testApp()

	resp := postJSON(t, app, "/api/parse", ParseRequest{Sender: "MPESA"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/api/parse", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleScan(t *testing.T) {
	app := testApp()
	resp := postJSON(t, app, "/api/scan", ScanRequest{Messages: []ParseRequest{
		{Body: "INR 500.00 debited from A/c XX1234 to SWIGGY.", Sender: "HDFCBK"},
		{Body: "hello there", Sender: "+15551234567"},
		{Body: "QGH7YW12MN Confirmed. Ksh500.00 sent to JOHN DOE 0722000000. New M-PESA balance is Ksh4,500.00.", Sender: "MPESA"},
	}})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body ScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, 2, body.Matched)
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "HDFC Bank", body.Transactions[0].Bank)
	assert.Equal(t, "M-PESA", body.Transactions[1].Bank)
}

func TestHandleBanks(t *testing.T) {
	app := testApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/banks", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Count int `json:"count"`
		Banks []struct {
			Name     string `json:"name"`
			Currency string `json:"currency"`
		} `json:"banks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, body.Count, len(body.Banks))
	assert.Greater(t, body.Count, 50)

	names := make(map[string]string, len(body.Banks))
	for _, b := range body.Banks {
		names[b.Name] = b.Currency
	}
	assert.Equal(t, "INR", names["HDFC Bank"])
	assert.Equal(t, "AED", names["Emirates NBD"])
	assert.Equal(t, "KES", names["M-PESA"])
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{
		Registry: registry.New(),
		Log:      logger.NewWithWriter(&buf),
	}
	app := NewApp(h)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request", entry["message"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/health", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}
