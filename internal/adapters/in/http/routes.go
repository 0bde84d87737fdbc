package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of api/openapi.json. Path and query
// parameters arrive already bound.
type ServerInterface interface {
	ListOrders(ctx echo.Context) error
	CreateOrder(ctx echo.Context) error
	ClearOrders(ctx echo.Context) error
	ClearTable(ctx echo.Context, table string) error
	MoveItem(ctx echo.Context) error
	MoveTable(ctx echo.Context) error
	ExportOrders(ctx echo.Context) error
	GetTables(ctx echo.Context) error

	GetMenu(ctx echo.Context) error
	ReplaceMenu(ctx echo.Context) error
	AddCategory(ctx echo.Context) error
	DeleteCategory(ctx echo.Context, id string) error
	AddItem(ctx echo.Context, id string) error
	AddAddon(ctx echo.Context, id string) error
	DeleteItem(ctx echo.Context, id string) error
	AddIngredient(ctx echo.Context, id string) error
	DeleteIngredient(ctx echo.Context, id string, index int) error
	DeleteAddon(ctx echo.Context, id string) error
	SetTableCount(ctx echo.Context) error
	ExportMenu(ctx echo.Context, params ExportMenuParams) error
	ImportMenu(ctx echo.Context) error

	GetArchive(ctx echo.Context) error
	ResetArchive(ctx echo.Context) error

	Login(ctx echo.Context) error
	Logout(ctx echo.Context) error
	GetSession(ctx echo.Context) error
	ListUserCodes(ctx echo.Context) error
	AddUserCode(ctx echo.Context) error
	DeleteUserCode(ctx echo.Context, code string) error
}

// ServerInterfaceWrapper binds parameters and forwards to the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ClearTable(ctx echo.Context) error {
	table, err := pathParam(ctx, "table")
	if err != nil {
		return err
	}
	return w.Handler.ClearTable(ctx, table)
}

func (w *ServerInterfaceWrapper) DeleteCategory(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.DeleteCategory(ctx, id)
}

func (w *ServerInterfaceWrapper) AddItem(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AddItem(ctx, id)
}

func (w *ServerInterfaceWrapper) AddAddon(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AddAddon(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteItem(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.DeleteItem(ctx, id)
}

func (w *ServerInterfaceWrapper) AddIngredient(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.AddIngredient(ctx, id)
}

func (w *ServerInterfaceWrapper) DeleteIngredient(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}

	var index int
	err = runtime.BindStyledParameterWithOptions("simple", "index", ctx.Param("index"), &index,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter index: %s", err))
	}
	return w.Handler.DeleteIngredient(ctx, id, index)
}

func (w *ServerInterfaceWrapper) DeleteAddon(ctx echo.Context) error {
	id, err := pathParam(ctx, "id")
	if err != nil {
		return err
	}
	return w.Handler.DeleteAddon(ctx, id)
}

func (w *ServerInterfaceWrapper) ExportMenu(ctx echo.Context) error {
	var params ExportMenuParams
	err := runtime.BindQueryParameter("form", true, false, "format", ctx.QueryParams(), &params.Format)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter format: %s", err))
	}
	return w.Handler.ExportMenu(ctx, params)
}

func (w *ServerInterfaceWrapper) DeleteUserCode(ctx echo.Context) error {
	code, err := pathParam(ctx, "code")
	if err != nil {
		return err
	}
	return w.Handler.DeleteUserCode(ctx, code)
}

func pathParam(ctx echo.Context, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for registration.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds every operation of si to router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/orders", si.ListOrders)
	router.POST("/orders", si.CreateOrder)
	router.DELETE("/orders", si.ClearOrders)
	router.DELETE("/orders/table/:table", w.ClearTable)
	router.POST("/orders/move", si.MoveItem)
	router.POST("/orders/moveTable", si.MoveTable)
	router.GET("/orders/export", si.ExportOrders)
	router.GET("/tables", si.GetTables)

	router.GET("/menu.json", si.GetMenu)
	router.POST("/menu", si.ReplaceMenu)
	router.POST("/menu/categories", si.AddCategory)
	router.DELETE("/menu/categories/:id", w.DeleteCategory)
	router.POST("/menu/categories/:id/items", w.AddItem)
	router.POST("/menu/categories/:id/addons", w.AddAddon)
	router.DELETE("/menu/items/:id", w.DeleteItem)
	router.POST("/menu/items/:id/ingredients", w.AddIngredient)
	router.DELETE("/menu/items/:id/ingredients/:index", w.DeleteIngredient)
	router.DELETE("/menu/addons/:id", w.DeleteAddon)
	router.PUT("/menu/tableCount", si.SetTableCount)
	router.GET("/menu/export", w.ExportMenu)
	router.POST("/menu/import", si.ImportMenu)

	router.GET("/archive", si.GetArchive)
	router.POST("/clear_orders_archive", si.ResetArchive)

	router.POST("/login", si.Login)
	router.POST("/logout", si.Logout)
	router.GET("/session", si.GetSession)
	router.GET("/user-codes", si.ListUserCodes)
	router.POST("/user-codes", si.AddUserCode)
	router.DELETE("/user-codes/:code", w.DeleteUserCode)
}
