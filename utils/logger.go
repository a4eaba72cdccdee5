package utils

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LogInfo writes a structured record for a handler event, tagged with the
// request method, path and authenticated user when present.
func LogInfo(c echo.Context, message string) {
	c.Logger().Infoj(requestMeta(c, message, nil))
}

// LogError writes a structured record for a handler failure.
func LogError(c echo.Context, message string, err error) {
	c.Logger().Errorj(requestMeta(c, message, err))
}

func requestMeta(c echo.Context, message string, err error) log.JSON {
	meta := log.JSON{
		"method":  c.Request().Method,
		"path":    c.Path(),
		"message": message,
	}
	if userID, ok := c.Get("userID").(primitive.ObjectID); ok {
		meta["userId"] = userID.Hex()
	}
	if email, ok := c.Get("userEmail").(string); ok && email != "" {
		meta["userEmail"] = email
	}
	if err != nil {
		meta["error"] = err.Error()
	}
	return meta
}
