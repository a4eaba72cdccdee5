package main

import (
	"fmt"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/shopmill/shopmill-backend-go/config"
	"github.com/shopmill/shopmill-backend-go/database"
	"github.com/shopmill/shopmill-backend-go/metrics"
	"github.com/shopmill/shopmill-backend-go/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = routes.HTTPErrorHandler

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.ClientURL},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(metrics.Middleware)

	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	routes.Setup(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.ServerPort)))
}
