package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password are indistinguishable to the client.
func Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	user, err := users().FindOne(c.Request().Context(), bson.M{"email": strings.ToLower(req.Email)})
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Invalid credentials", nil))
	}
	if err != nil {
		return serverError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Invalid credentials", nil))
	}

	token, err := middleware.GenerateToken(user.ID, user.Email)
	if err != nil {
		return serverError(c, err)
	}

	data := map[string]string{
		"token": token,
		"email": user.Email,
		"name":  user.Name,
	}
	return c.JSON(http.StatusOK, utils.NewResponse(data, "Logged in successfully"))
}
