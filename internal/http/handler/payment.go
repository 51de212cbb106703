package handler

import (
	"math"
	"net/http"
	"time"

	"medizone/internal/auth"
	"medizone/internal/domain/payment"
	"medizone/internal/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	payments repository.PaymentRepository
	carts    repository.CartRepository
	gateway  PaymentGateway
}

func NewPaymentHandler(payments repository.PaymentRepository, carts repository.CartRepository, gateway PaymentGateway) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		carts:    carts,
		gateway:  gateway,
	}
}

type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req PaymentIntentRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Price <= 0 {
		return respondError(c, http.StatusBadRequest, msgPriceRequired)
	}

	amountCents := int64(math.Round(req.Price * 100))

	clientSecret, err := h.gateway.CreateIntent(c.Request().Context(), amountCents)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgPaymentIntentFail, err)
		return respondError(c, http.StatusInternalServerError, msgPaymentIntentFail)
	}

	return c.JSON(http.StatusOK, PaymentIntentResponse{ClientSecret: clientSecret})
}

// RecordPayment stores the payment document and then removes the purchased
// cart items. The two writes are not linked transactionally; a failed cleanup
// surfaces as an error with the payment already recorded.
func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	p := &payment.Payment{}
	if err := bindStrictJSON(c, p); err != nil {
		return handleHTTPError(c, err)
	}

	email, err := auth.PrincipalEmail(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}
	p.BuyerEmail = email

	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = payment.StatusPending
	}
	p.CreatedAt = time.Now().UTC()

	ctx := c.Request().Context()

	id, err := h.payments.Create(ctx, p)
	if err != nil {
		return handleRepoError(c, err, msgRecordPaymentFail)
	}

	deleted, err := h.carts.DeleteByIDs(ctx, p.CartIDs)
	if err != nil {
		return handleRepoError(c, err, msgRecordPaymentFail)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"insertedId":   id,
		"deletedCount": deleted,
	})
}

// ListByBuyer serves a buyer's payment history. Without an email query it
// falls back to the principal's own payments.
func (h *PaymentHandler) ListByBuyer(c echo.Context) error {
	email := c.QueryParam(queryEmail)
	if email == "" {
		principal, err := auth.PrincipalEmail(c)
		if err != nil {
			return respondError(c, http.StatusUnauthorized, err.Error())
		}
		email = principal
	}

	payments, err := h.payments.ListByBuyer(c.Request().Context(), email)
	if err != nil {
		return handleRepoError(c, err, msgListPaymentsFail)
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) ListAll(c echo.Context) error {
	payments, err := h.payments.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListPaymentsFail)
	}

	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) MarkPaid(c echo.Context) error {
	modified, err := h.payments.MarkPaid(c.Request().Context(), c.Param(paramID))
	if err != nil {
		return handleRepoError(c, err, msgUpdatePaymentFail)
	}

	return respondModified(c, modified)
}
