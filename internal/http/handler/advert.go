package handler

import (
	"net/http"

	"medizone/internal/auth"
	"medizone/internal/domain/advert"
	"medizone/internal/repository"

	"github.com/labstack/echo/v4"
)

type AdvertHandler struct {
	adverts repository.AdvertRepository
}

func NewAdvertHandler(adverts repository.AdvertRepository) *AdvertHandler {
	return &AdvertHandler{adverts: adverts}
}

type UpdateSlideRequest struct {
	Slide *bool `json:"slide"`
}

// Create records a seller's advertisement request. New requests never start
// out promoted; an admin flips the slide flag later.
func (h *AdvertHandler) Create(c echo.Context) error {
	ad := &advert.Advertisement{}
	if err := bindStrictJSON(c, ad); err != nil {
		return handleHTTPError(c, err)
	}

	email, err := auth.PrincipalEmail(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}
	ad.SellerEmail = email
	ad.Slide = false

	id, err := h.adverts.Create(c.Request().Context(), ad)
	if err != nil {
		return handleRepoError(c, err, msgAdvertFail)
	}

	return respondInserted(c, id)
}

// ListBySeller serves a seller's own advertisements. Without an email query
// it falls back to the principal.
func (h *AdvertHandler) ListBySeller(c echo.Context) error {
	email := c.QueryParam(queryEmail)
	if email == "" {
		principal, err := auth.PrincipalEmail(c)
		if err != nil {
			return respondError(c, http.StatusUnauthorized, err.Error())
		}
		email = principal
	}

	ads, err := h.adverts.ListBySeller(c.Request().Context(), email)
	if err != nil {
		return handleRepoError(c, err, msgListAdvertsFail)
	}

	return c.JSON(http.StatusOK, ads)
}

func (h *AdvertHandler) ListAll(c echo.Context) error {
	ads, err := h.adverts.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListAdvertsFail)
	}

	return c.JSON(http.StatusOK, ads)
}

func (h *AdvertHandler) UpdateSlide(c echo.Context) error {
	var req UpdateSlideRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	if req.Slide == nil {
		return respondError(c, http.StatusBadRequest, msgSlideRequired)
	}

	modified, err := h.adverts.SetSlide(c.Request().Context(), c.Param(paramID), *req.Slide)
	if err != nil {
		return handleRepoError(c, err, msgAdvertFail)
	}

	return respondModified(c, modified)
}
