package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopmill/shopmill-backend-go/models"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateUserRequest struct {
	Name            *string                 `json:"name" validate:"omitempty,min=1"`
	Email           *string                 `json:"email" validate:"omitempty,email"`
	Password        *string                 `json:"password" validate:"omitempty,min=6"`
	IsAdmin         *bool                   `json:"isAdmin"`
	ShippingAddress *models.ShippingAddress `json:"shippingAddress"`
}

func CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return serverError(c, err)
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashed),
		Orders:    []primitive.ObjectID{},
		Wishlist:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := users().Insert(c.Request().Context(), &user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, utils.NewErrorResponse("Email already exists", nil))
		}
		return serverError(c, err)
	}

	user.ID = id
	user.Sanitize()
	return c.JSON(http.StatusOK, utils.NewResponse(user, "User created successfully"))
}

func GetUsers(c echo.Context) error {
	page, limit := pageParams(c)

	list, pagination, err := users().List(c.Request().Context(), bson.M{}, page, limit)
	if err != nil {
		return serverError(c, err)
	}
	for i := range list {
		list[i].Sanitize()
	}

	data := map[string]interface{}{"users": list, "pagination": pagination}
	return c.JSON(http.StatusOK, utils.NewResponse(data, "Users retrieved successfully"))
}

func GetUserByID(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("user", id); issues != nil {
		return validationError(c, issues)
	}
	userID, _ := primitive.ObjectIDFromHex(id)

	user, err := users().FindByID(c.Request().Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "User")
	}
	if err != nil {
		return serverError(c, err)
	}

	user.Sanitize()
	return c.JSON(http.StatusOK, utils.NewResponse(user, "User retrieved successfully"))
}

func UpdateUser(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("user", id); issues != nil {
		return validationError(c, issues)
	}
	userID, _ := primitive.ObjectIDFromHex(id)

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	set, err := userUpdateFields(req)
	if err != nil {
		return serverError(c, err)
	}

	user, err := users().UpdateByID(c.Request().Context(), userID, set)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "User")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusConflict, utils.NewErrorResponse("Email already exists", nil))
		}
		return serverError(c, err)
	}

	user.Sanitize()
	return c.JSON(http.StatusOK, utils.NewResponse(user, "User updated successfully"))
}

func DeleteUser(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("user", id); issues != nil {
		return validationError(c, issues)
	}
	userID, _ := primitive.ObjectIDFromHex(id)

	err := users().DeleteByID(c.Request().Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "User")
	}
	if err != nil {
		return serverError(c, err)
	}

	// User delete is the one no-content endpoint; every other delete
	// returns an empty-object envelope.
	return c.NoContent(http.StatusNoContent)
}

// userUpdateFields builds the partial $set document, hashing the password
// when it is being replaced.
func userUpdateFields(req UpdateUserRequest) (bson.M, error) {
	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		set["password"] = string(hashed)
	}
	if req.IsAdmin != nil {
		set["isAdmin"] = *req.IsAdmin
	}
	if req.ShippingAddress != nil {
		set["shippingAddress"] = req.ShippingAddress
		set["hasShippingAddress"] = true
	}
	return set, nil
}
