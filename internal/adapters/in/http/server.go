package http

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Commands holds the command handlers the server dispatches to.
type Commands struct {
	CreateOrder    commands.CreateOrderCommandHandler
	MoveItem       commands.MoveItemCommandHandler
	MoveTable      commands.MoveTableCommandHandler
	ClearTable     commands.ClearTableCommandHandler
	ClearAllOrders commands.ClearAllOrdersCommandHandler
	EditMenu       commands.EditMenuCommandHandler
	ReplaceMenu    commands.ReplaceMenuCommandHandler
	ImportMenu     commands.ImportMenuCommandHandler
	ResetArchive   commands.ResetArchiveCommandHandler
	Login          commands.LoginCommandHandler
	Logout         commands.LogoutCommandHandler
	AddUserCode    commands.AddUserCodeCommandHandler
	DeleteUserCode commands.DeleteUserCodeCommandHandler
}

// Queries holds the query handlers the server dispatches to.
type Queries struct {
	ListOrders    queries.ListOrdersQueryHandler
	ExportOrders  queries.ExportOrdersQueryHandler
	GetTables     queries.GetTablesQueryHandler
	GetMenu       queries.GetMenuQueryHandler
	ExportMenu    queries.ExportMenuQueryHandler
	GetArchive    queries.GetArchiveQueryHandler
	ListUserCodes queries.ListUserCodesQueryHandler
	GetSession    queries.GetSessionQueryHandler
}

// Server implements ServerInterface. It translates HTTP requests into commands
// and queries and their results into response bodies.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
	now      func() time.Time
}

// NewServer creates a server. A nil now uses time.Now; a nil logger uses slog.Default.
func NewServer(cmds Commands, qs Queries, logger *slog.Logger, now func() time.Time) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &Server{
		commands: cmds,
		queries:  qs,
		logger:   logger.With("component", "http"),
		now:      now,
	}
}

var _ ServerInterface = (*Server)(nil)

// ListOrders handles GET /orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /orders. The order is stamped with the server time.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, commands.OrderLine{
			Item:               item.Item,
			Quantity:           int(item.Quantity),
			Ingredients:        item.Ingredients,
			DefaultIngredients: item.DefaultIngredients,
			ExtraIngredients:   item.ExtraIngredients,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, string(body.Customer), s.now(), lines)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderCreated{Success: true, ID: orderID.String()})
}

// ClearOrders handles DELETE /orders: every order is archived, then deleted.
func (s *Server) ClearOrders(ctx echo.Context) error {
	cmd, err := commands.NewClearAllOrdersCommand(s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ClearAllOrders.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// ClearTable handles DELETE /orders/table/{table}.
func (s *Server) ClearTable(ctx echo.Context, table string) error {
	cmd, err := commands.NewClearTableCommand(table, s.now())
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ClearTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// MoveItem handles POST /orders/move.
func (s *Server) MoveItem(ctx echo.Context) error {
	var body MoveItem
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	if body.OrderTime == nil || body.ItemIndex == nil {
		return s.fail(ctx, errors.Join(
			requiredIfNil(body.OrderTime, "orderTime"),
			requiredIfNil(body.ItemIndex, "itemIndex"),
		))
	}

	cmd, err := commands.NewMoveItemCommand(
		string(body.FromTable),
		string(body.ToTable),
		time.UnixMilli(int64(*body.OrderTime)),
		int(*body.ItemIndex),
		kernel.NewUUID(),
	)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.MoveItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// MoveTable handles POST /orders/moveTable.
func (s *Server) MoveTable(ctx echo.Context) error {
	var body MoveTable
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewMoveTableCommand(string(body.FromTable), string(body.ToTable))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.MoveTable.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// ExportOrders handles GET /orders/export.
func (s *Server) ExportOrders(ctx echo.Context) error {
	rows, err := s.queries.ExportOrders.Handle(ctx.Request().Context(), queries.NewExportOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.writeCSV(ctx, "orders.csv", rows)
}

// GetTables handles GET /tables.
func (s *Server) GetTables(ctx echo.Context) error {
	tables, err := s.queries.GetTables.Handle(ctx.Request().Context(), queries.NewGetTablesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Table, 0, len(tables))
	for _, t := range tables {
		response = append(response, Table{
			Table:      t.Table,
			LatestTime: t.LatestTime,
			Orders:     toOrders(t.Orders),
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetMenu handles GET /menu.json.
func (s *Server) GetMenu(ctx echo.Context) error {
	doc, err := s.queries.GetMenu.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, doc)
}

// ReplaceMenu handles POST /menu.
func (s *Server) ReplaceMenu(ctx echo.Context) error {
	var doc menu.Document
	if err := ctx.Bind(&doc); err != nil {
		return err
	}

	cmd, err := commands.NewReplaceMenuCommand(doc)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ReplaceMenu.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// AddCategory handles POST /menu/categories.
func (s *Server) AddCategory(ctx echo.Context) error {
	var body NameRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	var created menu.Category
	return s.editMenu(ctx, func(m *menu.Menu) (err error) {
		created, err = m.AddCategory(body.Name)
		return err
	}, func() any { return menu.CategoryDocument{ID: created.ID, Name: created.Name} })
}

// DeleteCategory handles DELETE /menu/categories/{id}.
func (s *Server) DeleteCategory(ctx echo.Context, id string) error {
	return s.editMenu(ctx, func(m *menu.Menu) error {
		return m.DeleteCategory(id)
	}, nil)
}

// AddItem handles POST /menu/categories/{id}/items.
func (s *Server) AddItem(ctx echo.Context, id string) error {
	var body NameRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	var created menu.Item
	return s.editMenu(ctx, func(m *menu.Menu) (err error) {
		created, err = m.AddItem(id, body.Name)
		return err
	}, func() any {
		return menu.ItemDocument{
			ID:          created.ID,
			CategoryID:  created.CategoryID,
			Name:        created.Name,
			Ingredients: append([]string{}, created.Ingredients...),
		}
	})
}

// AddAddon handles POST /menu/categories/{id}/addons.
func (s *Server) AddAddon(ctx echo.Context, id string) error {
	var body NameRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	var created menu.Addon
	return s.editMenu(ctx, func(m *menu.Menu) (err error) {
		created, err = m.AddAddon(id, body.Name)
		return err
	}, func() any {
		return menu.AddonDocument{ID: created.ID, CategoryID: created.CategoryID, Name: created.Name}
	})
}

// DeleteItem handles DELETE /menu/items/{id}.
func (s *Server) DeleteItem(ctx echo.Context, id string) error {
	return s.editMenu(ctx, func(m *menu.Menu) error {
		return m.DeleteItem(id)
	}, nil)
}

// AddIngredient handles POST /menu/items/{id}/ingredients.
func (s *Server) AddIngredient(ctx echo.Context, id string) error {
	var body NameRequest
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.editMenu(ctx, func(m *menu.Menu) error {
		return m.AddIngredient(id, body.Name)
	}, nil)
}

// DeleteIngredient handles DELETE /menu/items/{id}/ingredients/{index}.
func (s *Server) DeleteIngredient(ctx echo.Context, id string, index int) error {
	return s.editMenu(ctx, func(m *menu.Menu) error {
		return m.DeleteIngredient(id, index)
	}, nil)
}

// DeleteAddon handles DELETE /menu/addons/{id}.
func (s *Server) DeleteAddon(ctx echo.Context, id string) error {
	return s.editMenu(ctx, func(m *menu.Menu) error {
		return m.DeleteAddon(id)
	}, nil)
}

// SetTableCount handles PUT /menu/tableCount.
func (s *Server) SetTableCount(ctx echo.Context) error {
	var body TableCount
	if err := ctx.Bind(&body); err != nil {
		return err
	}
	return s.editMenu(ctx, func(m *menu.Menu) error {
		return m.SetTableCount(body.TableCount)
	}, nil)
}

// editMenu runs one catalog edit. result renders the success body; nil answers
// with {"success": true}.
func (s *Server) editMenu(ctx echo.Context, apply func(*menu.Menu) error, result func() any) error {
	cmd, err := commands.NewEditMenuCommand(apply)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.EditMenu.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	if result == nil {
		return ctx.JSON(http.StatusOK, ok)
	}
	return ctx.JSON(http.StatusOK, result())
}

// ExportMenu handles GET /menu/export. The default format is CSV; format=json
// returns {"rows": [...]}.
func (s *Server) ExportMenu(ctx echo.Context, params ExportMenuParams) error {
	rows, err := s.queries.ExportMenu.Handle(ctx.Request().Context(), queries.NewExportMenuQuery())
	if err != nil {
		return s.fail(ctx, err)
	}
	if params.Format != nil && *params.Format == "json" {
		return ctx.JSON(http.StatusOK, Rows{Rows: rows})
	}
	return s.writeCSV(ctx, "menu.csv", rows)
}

// ImportMenu handles POST /menu/import with either a CSV body or JSON rows.
func (s *Server) ImportMenu(ctx echo.Context) error {
	rows, err := readRows(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewImportMenuCommand(rows)
	if err != nil {
		return s.fail(ctx, err)
	}
	imported, err := s.commands.ImportMenu.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, imported.Document())
}

// GetArchive handles GET /archive. The body maps each day to its archived orders.
func (s *Server) GetArchive(ctx echo.Context) error {
	days, err := s.queries.GetArchive.Handle(ctx.Request().Context(), queries.NewGetArchiveQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make(map[string][]Order, len(days))
	for _, day := range days {
		response[day.Day] = toOrders(day.Orders)
	}
	return ctx.JSON(http.StatusOK, response)
}

// ResetArchive handles POST /clear_orders_archive.
func (s *Server) ResetArchive(ctx echo.Context) error {
	if err := s.commands.ResetArchive.Handle(ctx.Request().Context(), commands.NewResetArchiveCommand()); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// Login handles POST /login.
func (s *Server) Login(ctx echo.Context) error {
	var body Login
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewLoginCommand(body.Code)
	if err != nil {
		return s.fail(ctx, err)
	}
	session, err := s.commands.Login.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, Session{
		Token:     session.Token(),
		Role:      session.Role().String(),
		ExpiresAt: session.ExpiresAt().UnixMilli(),
	})
}

// Logout handles POST /logout.
func (s *Server) Logout(ctx echo.Context) error {
	cmd, err := commands.NewLogoutCommand(sessionToken(ctx))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.Logout.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// GetSession handles GET /session. Unknown and expired tokens are answered with 401.
func (s *Server) GetSession(ctx echo.Context) error {
	token := sessionToken(ctx)
	session, err := s.session(ctx, token)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Session{
		Token:     token,
		Role:      session.Role.String(),
		ExpiresAt: session.ExpiresAt.UnixMilli(),
	})
}

// ListUserCodes handles GET /user-codes.
func (s *Server) ListUserCodes(ctx echo.Context) error {
	codes, err := s.queries.ListUserCodes.Handle(ctx.Request().Context(), queries.NewListUserCodesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]UserCode, 0, len(codes))
	for _, c := range codes {
		response = append(response, UserCode{Code: c.Code, Role: c.Role})
	}
	return ctx.JSON(http.StatusOK, response)
}

// AddUserCode handles POST /user-codes.
func (s *Server) AddUserCode(ctx echo.Context) error {
	var body UserCode
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewAddUserCodeCommand(body.Code, body.Role)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.AddUserCode.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// DeleteUserCode handles DELETE /user-codes/{code}.
func (s *Server) DeleteUserCode(ctx echo.Context, code string) error {
	cmd, err := commands.NewDeleteUserCodeCommand(code)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteUserCode.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ok)
}

// session resolves token. Missing, unknown and expired tokens yield a 401.
func (s *Server) session(ctx echo.Context, token string) (queries.SessionView, error) {
	query, err := queries.NewGetSessionQuery(token)
	if err != nil {
		return queries.SessionView{}, echo.NewHTTPError(http.StatusUnauthorized, "session token required")
	}
	session, err := s.queries.GetSession.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return queries.SessionView{}, echo.NewHTTPError(http.StatusUnauthorized, "session expired or unknown")
	}
	if err != nil {
		return queries.SessionView{}, err
	}
	return session, nil
}

// sessionToken reads the token from the Authorization bearer header or the auth
// query parameter.
func sessionToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ctx.QueryParam("auth")
}

func requiredIfNil(v *FlexInt, param string) error {
	if v == nil {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

// writeCSV encodes rows before the status is committed. A failure while sending
// the committed body is logged because no error response can follow it.
func (s *Server) writeCSV(ctx echo.Context, filename string, rows [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	if err := ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes()); err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "csv write failed",
			slog.String("file", filename),
			slog.Any("error", err),
		)
	}
	return nil
}

func readRows(ctx echo.Context) ([][]string, error) {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	if mediaType, _, _ := mime.ParseMediaType(contentType); mediaType == "text/csv" {
		r := csv.NewReader(ctx.Request().Body)
		r.FieldsPerRecord = -1
		r.TrimLeadingSpace = true
		rows, err := r.ReadAll()
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, errs.NewValueIsInvalidErrorWithCause("csv", err)
		}
		return rows, nil
	}

	var body Rows
	if err := ctx.Bind(&body); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("rows", err)
	}
	return body.Rows, nil
}
