package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/models"
	"github.com/shopmill/shopmill-backend-go/store"
	"github.com/shopmill/shopmill-backend-go/utils"
	"github.com/shopmill/shopmill-backend-go/validation"
)

type CreateOrderRequest struct {
	OrderItems      []bson.M `json:"orderItems" validate:"required"`
	ShippingAddress bson.M   `json:"shippingAddress" validate:"required"`
	PaymentMethod   string   `json:"paymentMethod" validate:"required"`
	Currency        string   `json:"currency" validate:"required"`
}

type UpdateOrderRequest struct {
	OrderItems      []bson.M `json:"orderItems"`
	ShippingAddress bson.M   `json:"shippingAddress"`
	PaymentMethod   *string  `json:"paymentMethod"`
	PaymentStatus   *string  `json:"paymentStatus"`
	Currency        *string  `json:"currency"`
	Status          *string  `json:"status" validate:"omitempty,oneof=pending processing shipping completed cancelled refunded"`
}

func CreateOrder(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized access", nil))
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	now := time.Now()
	order := models.Order{
		User:            userID,
		OrderItems:      req.OrderItems,
		ShippingAddress: req.ShippingAddress,
		PaymentStatus:   models.PaymentStatusNotPaid,
		PaymentMethod:   req.PaymentMethod,
		Currency:        req.Currency,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The order number is random; retry on the rare collision with the
	// unique index.
	var insertErr error
	for attempt := 0; attempt < 3; attempt++ {
		order.OrderNumber = models.NewOrderNumber()
		id, err := orders().Insert(c.Request().Context(), &order)
		if err == nil {
			order.ID = id
			insertErr = nil
			break
		}
		insertErr = err
		if !mongo.IsDuplicateKeyError(err) {
			break
		}
	}
	if insertErr != nil {
		return serverError(c, insertErr)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(order, "Order created successfully"))
}

func GetOrders(c echo.Context) error {
	page, limit := pageParams(c)

	list, pagination, err := orders().List(c.Request().Context(), bson.M{}, page, limit)
	if err != nil {
		return serverError(c, err)
	}

	data := map[string]interface{}{"orders": list, "pagination": pagination}
	return c.JSON(http.StatusOK, utils.NewResponse(data, "Orders retrieved successfully"))
}

func GetOrderByID(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("order", id); issues != nil {
		return validationError(c, issues)
	}
	orderID, _ := primitive.ObjectIDFromHex(id)

	order, err := orders().FindByID(c.Request().Context(), orderID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "Order")
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(order, "Order retrieved successfully"))
}

func UpdateOrder(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("order", id); issues != nil {
		return validationError(c, issues)
	}
	orderID, _ := primitive.ObjectIDFromHex(id)

	var req UpdateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request body", nil))
	}
	if issues := validation.Validate(req); issues != nil {
		return validationError(c, issues)
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.OrderItems != nil {
		set["orderItems"] = req.OrderItems
	}
	if req.ShippingAddress != nil {
		set["shippingAddress"] = req.ShippingAddress
	}
	if req.PaymentMethod != nil {
		set["paymentMethod"] = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		set["paymentStatus"] = *req.PaymentStatus
	}
	if req.Currency != nil {
		set["currency"] = *req.Currency
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}

	order, err := orders().UpdateByID(c.Request().Context(), orderID, set)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "Order")
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(order, "Order updated successfully"))
}

func DeleteOrder(c echo.Context) error {
	id := c.Param("id")
	if issues := validation.IDIssue("order", id); issues != nil {
		return validationError(c, issues)
	}
	orderID, _ := primitive.ObjectIDFromHex(id)

	err := orders().DeleteByID(c.Request().Context(), orderID)
	if errors.Is(err, store.ErrNotFound) {
		return notFoundError(c, "Order")
	}
	if err != nil {
		return serverError(c, err)
	}

	return c.JSON(http.StatusOK, utils.NewResponse(map[string]interface{}{}, "Order deleted successfully"))
}
