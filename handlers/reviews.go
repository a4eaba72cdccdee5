package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/models"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Message string `json:"message" validate:"required"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Message *string `json:"message"`
}

// CreateReview targets the product in the path. A user gets one review
// per product, enforced by an existence query rather than an index.
func CreateReview(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized access", nil))
	}

	productParam := c.Param("productId")
	if issues := validation.IDIssue("product", productParam); issues != nil {
		return validationError(c, issues)
	}
	productID, _ := primitive.ObjectIDFromHex(productParam)

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	ctx := c.Request().Context()
	if _, err := products().FindByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFoundError(c, "Product")
		}
		return serverError(c, err)
	}

	alreadyReviewed, err := reviews().Exists(ctx, bson.M{
		"user":     userID,
		"products": bson.M{"$in": []primitive.ObjectID{productID}},
	})
	if err != nil {
		return serverError(c, err)
	}
	if alreadyReviewed {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("User has already submitted a review for this product", nil))
	}

	now := time.Now()
	review := models.Review{
		User:      userID,
		Rating:    req.Rating,
		Message:   req.Message,
		Products:  []primitive.ObjectID{productID},
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := reviews().Insert(ctx, &review)
	if err != nil {
		return serverError(c, err)
	}
	review.ID = id

	// Best-effort back-reference, same policy as product create.
	if err := products().Push(ctx, productID, "reviews", id); err != nil {
		utils.LogError(c, "Failed to link review to product", err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(review, "Review created successfully"))
}

func GetReviews(c echo.Context) error {
	page, limit := pageParams(c)

	list, pagination, err := reviews().List(c.Request().Context(), bson.M{}, page, limit)
	if err != nil {
		return serverError(c, err)
	}

	data := map[string]interface{}{"reviews": list, "pagination": pagination}
	return c.JSON(http.StatusOK, utils.NewResponse(data, "Reviews retrieved successfully"))
}

func GetReviewByID(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("review", id); issues != nil {
		return validationError(c, issues)
	}
	reviewID, _ := primitive.ObjectIDFromHex(id)

	review, err := reviews().FindByID(c.Request().Context(), reviewID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "Review")
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(review, "Review retrieved successfully"))
}

func UpdateReview(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("review", id); issues != nil {
		return validationError(c, issues)
	}
	reviewID, _ := primitive.ObjectIDFromHex(id)

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Rating != nil {
		set["rating"] = *req.Rating
	}
	if req.Message != nil {
		set["message"] = *req.Message
	}

	review, err := reviews().UpdateByID(c.Request().Context(), reviewID, set)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "Review")
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(review, "Review updated successfully"))
}

func DeleteReview(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("review", id); issues != nil {
		return validationError(c, issues)
	}
	reviewID, _ := primitive.ObjectIDFromHex(id)

	err := reviews().DeleteByID(c.Request().Context(), reviewID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "Review")
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(map[string]interface{}{}, "Review deleted successfully"))
}
