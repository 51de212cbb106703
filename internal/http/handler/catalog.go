package handler

import (
	"net/http"

	"medizone/internal/domain/catalog"
	"medizone/internal/repository"

	"github.com/labstack/echo/v4"
)

// CatalogHandler manages the storefront content collections: promotional
// sliders and medicine categories.
type CatalogHandler struct {
	sliders    repository.SliderRepository
	categories repository.CategoryRepository
}

func NewCatalogHandler(sliders repository.SliderRepository, categories repository.CategoryRepository) *CatalogHandler {
	return &CatalogHandler{
		sliders:    sliders,
		categories: categories,
	}
}

func (h *CatalogHandler) ListSliders(c echo.Context) error {
	sliders, err := h.sliders.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListCatalogFail)
	}

	return c.JSON(http.StatusOK, sliders)
}

func (h *CatalogHandler) CreateSlider(c echo.Context) error {
	s := &catalog.Slider{}
	if err := bindStrictJSON(c, s); err != nil {
		return handleHTTPError(c, err)
	}

	id, err := h.sliders.Create(c.Request().Context(), s)
	if err != nil {
		return handleRepoError(c, err, msgCatalogFail)
	}

	return respondInserted(c, id)
}

func (h *CatalogHandler) UpdateSlider(c echo.Context) error {
	var input catalog.UpdateSliderInput
	if err := bindStrictJSON(c, &input); err != nil {
		return handleHTTPError(c, err)
	}

	modified, err := h.sliders.Update(c.Request().Context(), c.Param(paramID), input)
	if err != nil {
		return handleRepoError(c, err, msgCatalogFail)
	}

	return respondModified(c, modified)
}

func (h *CatalogHandler) DeleteSlider(c echo.Context) error {
	deleted, err := h.sliders.Delete(c.Request().Context(), c.Param(paramID))
	if err != nil {
		return handleRepoError(c, err, msgCatalogFail)
	}

	return respondDeleted(c, deleted)
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListCatalogFail)
	}

	return c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	cat := &catalog.Category{}
	if err := bindStrictJSON(c, cat); err != nil {
		return handleHTTPError(c, err)
	}

	id, err := h.categories.Create(c.Request().Context(), cat)
	if err != nil {
		return handleRepoError(c, err, msgCatalogFail)
	}

	return respondInserted(c, id)
}

func (h *CatalogHandler) UpdateCategory(c echo.Context) error {
	var input catalog.UpdateCategoryInput
	if err := bindStrictJSON(c, &input); err != nil {
		return handleHTTPError(c, err)
	}

	modified, err := h.categories.Update(c.Request().Context(), c.Param(paramID), input)
	if err != nil {
		return handleRepoError(c, err, msgCatalogFail)
	}

	return respondModified(c, modified)
}

func (h *CatalogHandler) DeleteCategory(c echo.Context) error {
	deleted, err := h.categories.Delete(c.Request().Context(), c.Param(paramID))
	if err != nil {
		return handleRepoError(c, err, msgCatalogFail)
	}

	return respondDeleted(c, deleted)
}
