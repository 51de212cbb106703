package handler

import (
	"net/http"
	"strings"

	"medizone/internal/domain/user"
	"medizone/internal/repository"
	"medizone/pkg/validator"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type UpdateRoleRequest struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// CreateUser inserts a user record unless the email is already registered.
// The pre-check keeps the duplicate path from touching the collection; the
// unique index backs it up against concurrent creates.
func (h *UserHandler) CreateUser(c echo.Context) error {
	u := &user.User{}
	if err := bindStrictJSON(c, u); err != nil {
		return handleHTTPError(c, err)
	}

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if err := validator.Email(u.Email); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	if u.Role == "" {
		u.Role = user.RoleUser
	}

	ctx := c.Request().Context()

	existing, err := h.users.GetByEmail(ctx, u.Email)
	if err != nil {
		return handleRepoError(c, err, msgCreateUserFail)
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, map[string]any{
			jsonKeyMessage: msgUserAlreadyExists,
			"insertedId":   nil,
		})
	}

	id, err := h.users.Create(ctx, u)
	if err != nil {
		return handleRepoError(c, err, msgCreateUserFail)
	}

	return respondInserted(c, id)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return handleRepoError(c, err, msgListUsersFail)
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	var req UpdateRoleRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	modified, err := h.users.UpdateRole(c.Request().Context(), req.ID, req.Role)
	if err != nil {
		return handleRepoError(c, err, msgUpdateUserFail)
	}

	return respondModified(c, modified)
}

// GetUserByEmail returns the stored record, or a null body when no user
// matches. Absent records are not an error here.
func (h *UserHandler) GetUserByEmail(c echo.Context) error {
	u, err := h.users.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		return handleRepoError(c, err, msgGetUserFail)
	}

	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateUserProfile(c echo.Context) error {
	var input user.UpdateProfileInput
	if err := bindStrictJSON(c, &input); err != nil {
		return handleHTTPError(c, err)
	}

	modified, err := h.users.UpdateProfile(c.Request().Context(), c.Param(paramEmail), input)
	if err != nil {
		return handleRepoError(c, err, msgUpdateUserFail)
	}

	return respondModified(c, modified)
}

// CheckAdmin reports whether the requested account holds the admin role.
// The route is identity-matched, so callers can only ever ask about
// themselves.
func (h *UserHandler) CheckAdmin(c echo.Context) error {
	u, err := h.users.GetByEmail(c.Request().Context(), c.Param(paramEmail))
	if err != nil {
		return handleRepoError(c, err, msgGetUserFail)
	}

	admin := u != nil && u.IsAdmin()

	return c.JSON(http.StatusOK, map[string]bool{"admin": admin})
}
