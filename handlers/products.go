package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopmill/shopmill-backend-go/database"
	"github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/models"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

type CreateProductRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category" validate:"required"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	Size          []string `json:"size" validate:"required"`
	Colors        []string `json:"colors" validate:"required"`
	Images        []string `json:"images" validate:"omitempty,dive,url"`
	TotalQuantity int      `json:"totalQuantity" validate:"required,gt=0"`
	SoldQuantity  int      `json:"soldQuantity" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Brand         *string  `json:"brand"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Size          []string `json:"size"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images" validate:"omitempty,dive,url"`
	TotalQuantity *int     `json:"totalQuantity" validate:"omitempty,gt=0"`
	SoldQuantity  *int     `json:"soldQuantity" validate:"omitempty,gte=0"`
}

// productDetail augments a product with its derived review attributes.
type productDetail struct {
	models.Product
	TotalReviews  int     `json:"totalReviews"`
	AverageRating float64 `json:"averageRating"`
}

// CreateProduct inserts the product, then pushes its id onto the matched
// category and brand documents. The back-reference writes are best-effort:
// a failure there is logged, not returned, so the graph can go
// inconsistent under concurrent writes.
func CreateProduct(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.LogError(c, "Unauthorized access", nil)
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized access", nil))
	}

	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		utils.LogError(c, "Validation error", nil)
		return validationError(c, issues)
	}

	ctx := c.Request().Context()
	categories := catalogStore("categories")
	brands := catalogStore("brands")

	category, err := categories.FindOne(ctx, bson.M{"name": req.Category})
	if errors.Is(err, store.ErrNotFound) {
		utils.LogError(c, "Category not found", nil)
		return notFoundError(c, "Category")
	}
	if err != nil {
		return serverError(c, err)
	}

	brand, err := brands.FindOne(ctx, bson.M{"name": req.Brand})
	if errors.Is(err, store.ErrNotFound) {
		utils.LogError(c, "Brand not found", nil)
		return notFoundError(c, "Brand")
	}
	if err != nil {
		return serverError(c, err)
	}

	exists, err := products().Exists(ctx, bson.M{"name": req.Name})
	if err != nil {
		return serverError(c, err)
	}
	if exists {
		utils.LogError(c, "Product already exists", nil)
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Product already exists", nil))
	}

	images := req.Images
	if len(images) == 0 {
		images = []string{models.DefaultImageURL}
	}

	now := time.Now()
	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Brand:         req.Brand,
		Category:      req.Category,
		Price:         req.Price,
		Size:          req.Size,
		Colors:        req.Colors,
		User:          userID,
		Images:        images,
		Reviews:       []primitive.ObjectID{},
		TotalQuantity: req.TotalQuantity,
		SoldQuantity:  req.SoldQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := products().Insert(ctx, &product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Product already exists", nil))
		}
		return serverError(c, err)
	}
	product.ID = id

	if err := categories.Push(ctx, category.ID, "products", id); err != nil {
		utils.LogError(c, "Failed to link product to category", err)
	}
	if err := brands.Push(ctx, brand.ID, "products", id); err != nil {
		utils.LogError(c, "Failed to link product to brand", err)
	}

	utils.LogInfo(c, "Product created successfully")
	return c.JSON(http.StatusOK, utils.NewResponse(product, "Product created successfully"))
}

func GetProducts(c echo.Context) error {
	page, limit := pageParams(c)
	filter := utils.ProductFilter(c.QueryParams())

	list, pagination, err := products().List(c.Request().Context(), filter, page, limit)
	if err != nil {
		utils.LogError(c, "Error retrieving products", err)
		return serverError(c, err)
	}

	utils.LogInfo(c, "Products retrieved successfully")
	data := map[string]interface{}{"products": list, "pagination": pagination}
	return c.JSON(http.StatusOK, utils.NewResponse(data, "Products retrieved successfully"))
}

func GetProductByID(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("product", id); issues != nil {
		utils.LogError(c, "Validation error", nil)
		return validationError(c, issues)
	}
	productID, _ := primitive.ObjectIDFromHex(id)

	ctx := c.Request().Context()
	product, err := products().FindByID(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		utils.LogError(c, "Product not found", nil)
		return notFoundError(c, "Product")
	}
	if err != nil {
		utils.LogError(c, "Error retrieving product", err)
		return serverError(c, err)
	}

	rating, err := averageRating(ctx, productID)
	if err != nil {
		utils.LogError(c, "Error computing average rating", err)
		return serverError(c, err)
	}

	detail := productDetail{
		Product:       *product,
		TotalReviews:  len(product.Reviews),
		AverageRating: rating,
	}

	utils.LogInfo(c, "Product retrieved successfully")
	return c.JSON(http.StatusOK, utils.NewResponse(detail, "Product retrieved successfully"))
}

func UpdateProduct(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("product", id); issues != nil {
		utils.LogError(c, "Validation error", nil)
		return validationError(c, issues)
	}
	productID, _ := primitive.ObjectIDFromHex(id)

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		utils.LogError(c, "Validation error", nil)
		return validationError(c, issues)
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Brand != nil {
		set["brand"] = *req.Brand
	}
	if req.Category != nil {
		set["category"] = *req.Category
	}
	if req.Price != nil {
		set["price"] = *req.Price
	}
	if req.Size != nil {
		set["size"] = req.Size
	}
	if req.Colors != nil {
		set["colors"] = req.Colors
	}
	if req.Images != nil {
		set["images"] = req.Images
	}
	if req.TotalQuantity != nil {
		set["totalQuantity"] = *req.TotalQuantity
	}
	if req.SoldQuantity != nil {
		set["soldQuantity"] = *req.SoldQuantity
	}

	product, err := products().UpdateByID(c.Request().Context(), productID, set)
	if errors.Is(err, store.ErrNotFound) {
		utils.LogError(c, "Product not found", nil)
		return notFoundError(c, "Product")
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Product already exists", nil))
		}
		utils.LogError(c, "Error updating product", err)
		return serverError(c, err)
	}

	utils.LogInfo(c, "Product updated successfully")
	return c.JSON(http.StatusOK, utils.NewResponse(product, "Product updated successfully"))
}

func DeleteProduct(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("product", id); issues != nil {
		utils.LogError(c, "Validation error", nil)
		return validationError(c, issues)
	}
	productID, _ := primitive.ObjectIDFromHex(id)

	err := products().DeleteByID(c.Request().Context(), productID)
	if errors.Is(err, store.ErrNotFound) {
		utils.LogError(c, "Product not found", nil)
		return notFoundError(c, "Product")
	}
	if err != nil {
		utils.LogError(c, "Error deleting product", err)
		return serverError(c, err)
	}

	utils.LogInfo(c, "Product deleted successfully")
	return c.JSON(http.StatusOK, utils.NewResponse(map[string]interface{}{}, "Product deleted successfully"))
}

// averageRating aggregates the mean rating over all reviews referencing
// the product; zero when the product has no reviews.
func averageRating(ctx context.Context, productID primitive.ObjectID) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"products": bson.M{"$in": []primitive.ObjectID{productID}}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := database.DB.Collection("reviews").Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}

	var results []struct {
		AverageRating float64 `bson:"averageRating"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].AverageRating, nil
}
