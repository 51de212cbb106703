package handler

import (
	"errors"
	"net/http"

	apperrors "medizone/pkg/errors"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

func respondInserted(c echo.Context, id string) error {
	return c.JSON(http.StatusOK, map[string]any{"insertedId": id})
}

func respondModified(c echo.Context, count int64) error {
	return c.JSON(http.StatusOK, map[string]any{"modifiedCount": count})
}

func respondDeleted(c echo.Context, count int64) error {
	return c.JSON(http.StatusOK, map[string]any{"deletedCount": count})
}

// handleRepoError maps repository failures onto the public taxonomy: bad ids
// become 400, duplicate keys 409, anything else a generic 500.
func handleRepoError(c echo.Context, err error, failMsg string) error {
	switch {
	case errors.Is(err, apperrors.ErrBadRequest):
		return respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return respondError(c, http.StatusConflict, err.Error())
	default:
		c.Logger().Errorf("%s: %v", failMsg, err)
		return respondError(c, http.StatusInternalServerError, failMsg)
	}
}

func handleHTTPError(c echo.Context, err error) error {
	if he, ok := err.(*echo.HTTPError); ok {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		return respondError(c, he.Code, msg)
	}

	return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
