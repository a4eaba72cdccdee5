package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopmill/shopmill-backend-go/database"
	"github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/models"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

type CreateCatalogRequest struct {
	Name   string `json:"name" validate:"required"`
	Images string `json:"images" validate:"omitempty,url"`
}

type UpdateCatalogRequest struct {
	Name   *string `json:"name" validate:"omitempty,min=1"`
	Images *string `json:"images" validate:"omitempty,url"`
}

// CatalogHandler serves brands, categories and colors: one implementation
// parameterized by collection and display name.
type CatalogHandler struct {
	collection string
	resource   string
}

var (
	Brands     = CatalogHandler{collection: "brands", resource: "Brand"}
	Categories = CatalogHandler{collection: "categories", resource: "Category"}
	Colors     = CatalogHandler{collection: "colors", resource: "Color"}
)

func catalogStore(collection string) *store.Store[models.Catalog] {
	return store.New[models.Catalog](database.DB.Collection(collection))
}

func (h CatalogHandler) store() *store.Store[models.Catalog] {
	return catalogStore(h.collection)
}

func (h CatalogHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized access", nil))
	}

	var req CreateCatalogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	images := req.Images
	if images == "" {
		images = models.DefaultImageURL
	}

	now := time.Now()
	entry := models.Catalog{
		Name:      req.Name,
		User:      userID,
		Images:    images,
		Products:  []primitive.ObjectID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := h.store().Insert(c.Request().Context(), &entry)
	if err != nil {
		return serverError(c, err)
	}
	entry.ID = id

	return c.JSON(http.StatusOK, utils.NewResponse(entry, fmt.Sprintf("%s created successfully", h.resource)))
}

func (h CatalogHandler) GetAll(c echo.Context) error {
	page, limit := pageParams(c)

	list, pagination, err := h.store().List(c.Request().Context(), bson.M{}, page, limit)
	if err != nil {
		return serverError(c, err)
	}

	data := map[string]interface{}{h.collection: list, "pagination": pagination}
	plural := pluralResource(h.resource)
	return c.JSON(http.StatusOK, utils.NewResponse(data, fmt.Sprintf("%s retrieved successfully", plural)))
}

func (h CatalogHandler) GetByID(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue(strings.ToLower(h.resource), id); issues != nil {
		return validationError(c, issues)
	}
	entryID, _ := primitive.ObjectIDFromHex(id)

	entry, err := h.store().FindByID(c.Request().Context(), entryID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, h.resource)
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(entry, fmt.Sprintf("%s retrieved successfully", h.resource)))
}

func (h CatalogHandler) Update(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue(strings.ToLower(h.resource), id); issues != nil {
		return validationError(c, issues)
	}
	entryID, _ := primitive.ObjectIDFromHex(id)

	var req UpdateCatalogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Images != nil {
		set["images"] = *req.Images
	}

	entry, err := h.store().UpdateByID(c.Request().Context(), entryID, set)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, h.resource)
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(entry, fmt.Sprintf("%s updated successfully", h.resource)))
}

func (h CatalogHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue(strings.ToLower(h.resource), id); issues != nil {
		return validationError(c, issues)
	}
	entryID, _ := primitive.ObjectIDFromHex(id)

	err := h.store().DeleteByID(c.Request().Context(), entryID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, h.resource)
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(map[string]interface{}{}, fmt.Sprintf("%s deleted successfully", h.resource)))
}

func pluralResource(resource string) string {
	if strings.HasSuffix(resource, "y") {
		return strings.TrimSuffix(resource, "y") + "ies"
	}
	return resource + "s"
}
