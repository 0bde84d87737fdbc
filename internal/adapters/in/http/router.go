package http

import (
	"log/slog"
	"net/http"
	"sync"

	"pos/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type RouterOptions struct {
	Logger *slog.Logger
	// ValidateRequests checks every request against api/openapi.json.
	ValidateRequests bool
	// AuthEnforced requires an admin session on the admin routes.
	AuthEnforced bool
}

// openAPIDoc serves the embedded document to the swagger UI.
type openAPIDoc struct{}

func (openAPIDoc) ReadDoc() string {
	return string(api.OpenAPI)
}

var registerDocOnce sync.Once

// NewRouter builds the echo instance: recovery, request logging, CORS, optional
// request validation and admin guard, the API routes, /health and /swagger/*.
func NewRouter(server *Server, opts RouterOptions) (*echo.Echo, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonlog.WARN)
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(middleware.CORS())

	if opts.ValidateRequests {
		doc, err := LoadOpenAPI(api.OpenAPI)
		if err != nil {
			return nil, err
		}
		validator, err := OpenAPIValidator(doc)
		if err != nil {
			return nil, err
		}
		e.Use(validator)
	}
	if opts.AuthEnforced {
		e.Use(server.RequireAdmin())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server)

	return e, nil
}
