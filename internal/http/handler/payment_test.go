package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"medizone/internal/auth"
	"medizone/internal/domain/payment"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func setPrincipal(c echo.Context, email string) {
	c.Set(auth.ContextKeyPrincipal, jwt.MapClaims{"email": email})
}

func TestCreatePaymentIntent_ConvertsToCents(t *testing.T) {
	gateway := &fakeGateway{secret: "pi_secret_123"}
	h := NewPaymentHandler(&fakePaymentRepo{}, &fakeCartRepo{}, gateway)

	c, rec := newJSONContext(http.MethodPost, "/create-payment-intent", `{"price":49.99}`)
	setPrincipal(c, "a@x.com")

	err := h.CreatePaymentIntent(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int64{4999}, gateway.amounts)

	var resp PaymentIntentResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pi_secret_123", resp.ClientSecret)
}

func TestCreatePaymentIntent_RejectsNonPositivePrice(t *testing.T) {
	gateway := &fakeGateway{secret: "pi_secret_123"}
	h := NewPaymentHandler(&fakePaymentRepo{}, &fakeCartRepo{}, gateway)

	c, rec := newJSONContext(http.MethodPost, "/create-payment-intent", `{"price":0}`)
	setPrincipal(c, "a@x.com")

	err := h.CreatePaymentIntent(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, gateway.amounts)
}

func TestRecordPayment_InsertsAndClearsCart(t *testing.T) {
	payments := &fakePaymentRepo{}
	carts := &fakeCartRepo{}
	h := NewPaymentHandler(payments, carts, &fakeGateway{})

	body := `{"cartIds":["aaa","bbb"],"amount":25.50,"sellerEmails":["s@x.com"],"medicineIds":["m1"]}`
	c, rec := newJSONContext(http.MethodPost, "/payments", body)
	setPrincipal(c, "a@x.com")

	err := h.RecordPayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Len(t, payments.payments, 1)
	p := payments.payments[0]
	assert.Equal(t, "a@x.com", p.BuyerEmail)
	assert.Equal(t, payment.StatusPending, p.Status)
	assert.NotEmpty(t, p.TransactionID)
	assert.False(t, p.CreatedAt.IsZero())

	assert.Equal(t, []string{"aaa", "bbb"}, carts.deleted)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pay-1", resp["insertedId"])
	assert.Equal(t, float64(2), resp["deletedCount"])
}

func TestRecordPayment_KeepsProvidedTransactionID(t *testing.T) {
	payments := &fakePaymentRepo{}
	h := NewPaymentHandler(payments, &fakeCartRepo{}, &fakeGateway{})

	body := `{"transactionId":"txn_42","cartIds":[],"amount":10,"sellerEmails":[],"medicineIds":[]}`
	c, rec := newJSONContext(http.MethodPost, "/payments", body)
	setPrincipal(c, "a@x.com")

	err := h.RecordPayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "txn_42", payments.payments[0].TransactionID)
}

func TestListByBuyer_FallsBackToPrincipal(t *testing.T) {
	payments := &fakePaymentRepo{payments: []*payment.Payment{
		{BuyerEmail: "a@x.com", Amount: 10},
		{BuyerEmail: "b@x.com", Amount: 20},
	}}
	h := NewPaymentHandler(payments, &fakeCartRepo{}, &fakeGateway{})

	c, rec := newJSONContext(http.MethodGet, "/payment", "")
	setPrincipal(c, "a@x.com")

	err := h.ListByBuyer(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []payment.Payment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, "a@x.com", resp[0].BuyerEmail)
}
