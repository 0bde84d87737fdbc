package http

import (
	"log/slog"
	"net/http"

	"pos/internal/core/domain/model/access"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// LoadOpenAPI parses and validates an OpenAPI document.
func LoadOpenAPI(data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}
	return doc, nil
}

// OpenAPIValidator rejects requests that do not match doc with 400. Requests
// for paths the document does not describe pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
			}
			return next(ctx)
		}
	}, nil
}

// adminRoutes are the method and route template pairs that change the menu,
// the login codes or the archive.
var adminRoutes = map[string]struct{}{
	http.MethodPost + " /menu":                                {},
	http.MethodPost + " /menu/categories":                     {},
	http.MethodDelete + " /menu/categories/:id":               {},
	http.MethodPost + " /menu/categories/:id/items":           {},
	http.MethodPost + " /menu/categories/:id/addons":          {},
	http.MethodDelete + " /menu/items/:id":                    {},
	http.MethodPost + " /menu/items/:id/ingredients":          {},
	http.MethodDelete + " /menu/items/:id/ingredients/:index": {},
	http.MethodDelete + " /menu/addons/:id":                   {},
	http.MethodPut + " /menu/tableCount":                      {},
	http.MethodPost + " /menu/import":                         {},
	http.MethodPost + " /clear_orders_archive":                {},
	http.MethodGet + " /user-codes":                           {},
	http.MethodPost + " /user-codes":                          {},
	http.MethodDelete + " /user-codes/:code":                  {},
}

// RequireAdmin guards adminRoutes with an admin session. It runs after routing,
// so ctx.Path() holds the matched route template.
func (s *Server) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if _, guarded := adminRoutes[ctx.Request().Method+" "+ctx.Path()]; !guarded {
				return next(ctx)
			}

			session, err := s.session(ctx, sessionToken(ctx))
			if err != nil {
				return err
			}
			if session.Role != access.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin session required")
			}
			return next(ctx)
		}
	}
}

// RequestLogger writes one slog record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(ctx.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
