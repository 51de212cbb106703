package handler

import (
	"net/http"

	"medizone/internal/auth"
	"medizone/internal/domain/cart"
	"medizone/internal/repository"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	carts repository.CartRepository
}

func NewCartHandler(carts repository.CartRepository) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) AddItem(c echo.Context) error {
	item := &cart.Item{}
	if err := bindStrictJSON(c, item); err != nil {
		return handleHTTPError(c, err)
	}

	email, err := auth.PrincipalEmail(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}
	item.BuyerEmail = email

	if item.Quantity <= 0 {
		item.Quantity = 1
	}

	id, err := h.carts.Add(c.Request().Context(), item)
	if err != nil {
		return handleRepoError(c, err, msgCartFail)
	}

	return respondInserted(c, id)
}

func (h *CartHandler) ListItems(c echo.Context) error {
	items, err := h.carts.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListCartFail)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) ListByBuyer(c echo.Context) error {
	items, err := h.carts.ListByBuyer(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		return handleRepoError(c, err, msgListCartFail)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) DeleteItem(c echo.Context) error {
	deleted, err := h.carts.Delete(c.Request().Context(), c.Param(paramID))
	if err != nil {
		return handleRepoError(c, err, msgCartFail)
	}

	return respondDeleted(c, deleted)
}
