package queries

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"pos/internal/pkg/guard"
)

var (
	ErrExportOrdersQueryIsNotConstructed = errors.New(
		"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
	)
)

// ExportOrdersHeader is the first row of an orders export.
var ExportOrdersHeader = []string{"Table", "Item", "Quantity", "Ingredients"}

// ExportOrdersQuery flattens the open orders to one row per item, for download
// as a spreadsheet.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}

// ExportOrdersQueryHandler reuses the order listing and lays it out as rows.
type ExportOrdersQueryHandler struct {
	list ListOrdersQueryHandler
}

func NewExportOrdersQueryHandler(list ListOrdersQueryHandler) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{list: list}
}

// Handle returns the header followed by Table | Item | Quantity | Ingredients
// rows in listing order. Ingredients are joined with "; ".
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([][]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.list.Handle(ctx, NewListOrdersQuery())
	if err != nil {
		return nil, err
	}

	rows := [][]string{append([]string(nil), ExportOrdersHeader...)}
	for _, o := range orders {
		for _, item := range o.Items {
			rows = append(rows, []string{
				o.Customer,
				item.Item,
				strconv.Itoa(item.Quantity),
				strings.Join(item.Ingredients, "; "),
			})
		}
	}
	return rows, nil
}
