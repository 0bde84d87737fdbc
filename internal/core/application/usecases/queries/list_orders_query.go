// Package queries contains read operations for retrieving system state.
// Queries bypass the aggregates where a flat read model is enough and return
// view structs shaped for the HTTP adapter.
package queries

import (
	"errors"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves every open order with its items.
//
// Example:
//
//	query := NewListOrdersQuery()
//	handler := NewListOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("table %s: %d items\n", o.Customer, len(o.Items))
//	}
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderView is the read model of an order. Time is the creation time in Unix
// milliseconds, the value clients send back to address the order.
type OrderView struct {
	ID       kernel.UUID
	Customer string
	Time     int64
	Items    []OrderItemView
}

// OrderItemView is one line of an order in insertion order.
type OrderItemView struct {
	Item        string
	Quantity    int
	Ingredients []string
}

func newOrderView(o *order.Order) OrderView {
	items := o.Items()
	view := OrderView{
		ID:       o.ID(),
		Customer: o.Table().String(),
		Time:     o.PlacedAtMillis(),
		Items:    make([]OrderItemView, 0, len(items)),
	}
	for _, item := range items {
		ingredients := item.Ingredients()
		if ingredients == nil {
			ingredients = []string{}
		}
		view.Items = append(view.Items, OrderItemView{
			Item:        item.Name(),
			Quantity:    item.Quantity(),
			Ingredients: ingredients,
		})
	}
	return view
}
