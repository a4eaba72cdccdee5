package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

// UpdateProfileRequest is the whitelist of self-service profile fields,
// validated with the same rules as the general user update.
type UpdateProfileRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

func GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized access", nil))
	}

	user, err := users().FindByID(c.Request().Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "User")
	}
	if err != nil {
		return serverError(c, err)
	}

	user.Sanitize()
	return c.JSON(http.StatusOK, utils.NewResponse(user, "Profile retrieved successfully"))
}

func UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized access", nil))
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	set, err := userUpdateFields(UpdateUserRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return serverError(c, err)
	}

	user, err := users().UpdateByID(c.Request().Context(), userID, set)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "User")
	}
	if err != nil {
		return serverError(c, err)
	}

	data := map[string]string{
		"name":  user.Name,
		"email": user.Email,
	}
	return c.JSON(http.StatusOK, utils.NewResponse(data, "Profile updated successfully"))
}
