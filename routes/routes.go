package routes

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopmill/shopmill-backend-go/handlers"
	"github.com/shopmill/shopmill-backend-go/metrics"
	custommw "github.com/shopmill/shopmill-backend-go/middleware"
	"github.com/shopmill/shopmill-backend-go/utils"
)

// Setup binds every endpoint under /api/v1. Authenticated routes sit
// behind the bearer-token gate.
func Setup(e *echo.Echo) {
	e.GET("/metrics", metrics.Handler())

	v1 := e.Group("/api/v1")

	// Users and auth
	v1.POST("/users", handlers.CreateUser)
	v1.GET("/users", handlers.GetUsers)
	v1.GET("/users/:id", handlers.GetUserByID)
	v1.PATCH("/users/:id", handlers.UpdateUser)
	v1.DELETE("/users/:id", handlers.DeleteUser)
	v1.POST("/login", handlers.Login)

	// Profile
	v1.GET("/profile", handlers.GetProfile, custommw.Authenticate)
	v1.PATCH("/profile", handlers.UpdateProfile, custommw.Authenticate)

	// Products
	v1.POST("/product", handlers.CreateProduct, custommw.Authenticate)
	v1.GET("/products", handlers.GetProducts)
	v1.GET("/product/:id", handlers.GetProductByID)
	v1.PATCH("/product/:id", handlers.UpdateProduct, custommw.Authenticate)
	v1.DELETE("/product/:id", handlers.DeleteProduct, custommw.Authenticate)

	// Catalog resources share one handler implementation.
	registerCatalog(v1, "brand", "brands", handlers.Brands)
	registerCatalog(v1, "category", "categories", handlers.Categories)
	registerCatalog(v1, "color", "colors", handlers.Colors)

	// Orders
	v1.POST("/order", handlers.CreateOrder, custommw.Authenticate)
	v1.GET("/orders", handlers.GetOrders)
	v1.GET("/order/:id", handlers.GetOrderByID)
	v1.PATCH("/order/:id", handlers.UpdateOrder, custommw.Authenticate)
	v1.DELETE("/order/:id", handlers.DeleteOrder, custommw.Authenticate)

	// Reviews
	v1.POST("/review/:productId", handlers.CreateReview, custommw.Authenticate)
	v1.GET("/reviews", handlers.GetReviews)
	v1.GET("/review/:id", handlers.GetReviewByID)
	v1.PATCH("/review/:id", handlers.UpdateReview, custommw.Authenticate)
	v1.DELETE("/review/:id", handlers.DeleteReview, custommw.Authenticate)
}

func registerCatalog(g *echo.Group, singular, plural string, h handlers.CatalogHandler) {
	g.POST("/"+singular, h.Create, custommw.Authenticate)
	g.GET("/"+plural, h.GetAll)
	g.GET("/"+singular+"/:id", h.GetByID)
	g.PATCH("/"+singular+"/:id", h.Update, custommw.Authenticate)
	g.DELETE("/"+singular+"/:id", h.Delete, custommw.Authenticate)
}

// HTTPErrorHandler keeps the envelope shape for everything the router
// rejects itself, including unmatched routes.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		switch {
		case code == http.StatusNotFound:
			message = "Route not found"
		case httpErr.Message != nil:
			message = fmt.Sprintf("%v", httpErr.Message)
		}
	}

	if c.Request().Method == http.MethodHead {
		c.NoContent(code)
		return
	}
	c.JSON(code, utils.NewErrorResponse(message, nil))
}
