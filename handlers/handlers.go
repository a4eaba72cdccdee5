// Package handlers implements the resource controllers. Every handler
// follows the same shape: validate input, run a store operation, wrap the
// result in the response envelope.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopmill/shopmill-backend-go/database"
	"github.com/shopmill/shopmill-backend-go/models"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

func users() *store.Store[models.User] {
	return store.New[models.User](database.DB.Collection("users"))
}

func products() *store.Store[models.Product] {
	return store.New[models.Product](database.DB.Collection("products"))
}

func orders() *store.Store[models.Order] {
	return store.New[models.Order](database.DB.Collection("orders"))
}

func reviews() *store.Store[models.Review] {
	return store.New[models.Review](database.DB.Collection("reviews"))
}

func validationError(c echo.Context, issues []validation.FieldIssue) error {
	return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Validation error", issues))
}

func notFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, utils.NewErrorResponse(fmt.Sprintf("%s not found", resource), nil))
}

func serverError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Server error", err.Error()))
}

// pageParams reads page/limit query parameters; the store applies the
// defaults (page 1, limit 10) for absent or malformed values.
func pageParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
