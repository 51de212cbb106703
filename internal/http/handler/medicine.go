package handler

import (
	"net/http"

	"medizone/internal/auth"
	"medizone/internal/domain/medicine"
	"medizone/internal/repository"

	"github.com/labstack/echo/v4"
)

type MedicineHandler struct {
	medicines repository.MedicineRepository
}

func NewMedicineHandler(medicines repository.MedicineRepository) *MedicineHandler {
	return &MedicineHandler{medicines: medicines}
}

// ListByCategory serves the public shop page; an empty category query returns
// the whole catalog.
func (h *MedicineHandler) ListByCategory(c echo.Context) error {
	medicines, err := h.medicines.ListByCategory(c.Request().Context(), c.QueryParam(queryCategory))
	if err != nil {
		return handleRepoError(c, err, msgListMedicinesFail)
	}

	return c.JSON(http.StatusOK, medicines)
}

func (h *MedicineHandler) ListAll(c echo.Context) error {
	medicines, err := h.medicines.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListMedicinesFail)
	}

	return c.JSON(http.StatusOK, medicines)
}

// Create records a seller's medicine. The seller identity always comes from
// the verified principal, never from the request body.
func (h *MedicineHandler) Create(c echo.Context) error {
	m := &medicine.Medicine{}
	if err := bindStrictJSON(c, m); err != nil {
		return handleHTTPError(c, err)
	}

	email, err := auth.PrincipalEmail(c)
	if err != nil {
		return respondError(c, http.StatusUnauthorized, err.Error())
	}
	m.SellerEmail = email

	id, err := h.medicines.Create(c.Request().Context(), m)
	if err != nil {
		return handleRepoError(c, err, msgCreateMedicineFail)
	}

	return respondInserted(c, id)
}

func (h *MedicineHandler) ListBySeller(c echo.Context) error {
	medicines, err := h.medicines.ListBySeller(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		return handleRepoError(c, err, msgListMedicinesFail)
	}

	return c.JSON(http.StatusOK, medicines)
}

func (h *MedicineHandler) ListDiscounted(c echo.Context) error {
	medicines, err := h.medicines.ListDiscounted(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListMedicinesFail)
	}

	return c.JSON(http.StatusOK, medicines)
}
