package handler

import (
	"net/http"

	"medizone/internal/auth"
	"medizone/pkg/validator"

	"github.com/labstack/echo/v4"
)

type TokenHandler struct {
	tokenService *auth.TokenService
}

func NewTokenHandler(tokenService *auth.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

// IssueToken signs the posted claims into a time-limited identity token.
// The claims document is open-ended but must carry a valid email identity.
func (h *TokenHandler) IssueToken(c echo.Context) error {
	claims := map[string]any{}
	if err := bindJSON(c, &claims); err != nil {
		return handleHTTPError(c, err)
	}

	email, _ := claims["email"].(string)
	if validator.Email(email) != nil {
		return respondError(c, http.StatusBadRequest, msgEmailClaimRequired)
	}

	token, err := h.tokenService.Issue(claims)
	if err != nil {
		c.Logger().Errorf("%s: %v", msgGenerateTokenFail, err)
		return respondError(c, http.StatusInternalServerError, msgGenerateTokenFail)
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}
