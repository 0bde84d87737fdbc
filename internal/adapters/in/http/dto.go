package http

import (
	"bytes"
	"encoding/json"
	"strconv"

	"pos/internal/core/application/usecases/queries"
	"pos/internal/pkg/errs"
)

// FlexString accepts a JSON string or number. Table labels arrive either way
// depending on the client.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("string or number", err)
	}
	*f = FlexString(n.String())
	return nil
}

// FlexInt accepts a JSON integer or a string holding one.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if strErr := json.Unmarshal(data, &s); strErr != nil {
			return errs.NewValueIsInvalidErrorWithCause("integer", err)
		}
		n = json.Number(s)
	}
	v, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("integer", err)
	}
	*f = FlexInt(v)
	return nil
}

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Success struct {
	Success bool `json:"success"`
}

var ok = Success{Success: true}

type NewOrderItem struct {
	Item               string   `json:"item"`
	Quantity           FlexInt  `json:"quantity"`
	Ingredients        []string `json:"ingredients"`
	DefaultIngredients []string `json:"defaultIngredients"`
	ExtraIngredients   []string `json:"extraIngredients"`
}

type NewOrder struct {
	Customer FlexString     `json:"customer"`
	Items    []NewOrderItem `json:"items"`
}

type OrderCreated struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// MoveItem uses pointers for the numeric fields because zero is a valid index.
type MoveItem struct {
	FromTable FlexString `json:"fromTable"`
	ToTable   FlexString `json:"toTable"`
	OrderTime *FlexInt   `json:"orderTime"`
	ItemIndex *FlexInt   `json:"itemIndex"`
}

type MoveTable struct {
	FromTable FlexString `json:"fromTable"`
	ToTable   FlexString `json:"toTable"`
}

type OrderItem struct {
	Item        string   `json:"item"`
	Quantity    int      `json:"quantity"`
	Ingredients []string `json:"ingredients"`
}

type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Time     int64       `json:"time"`
	Items    []OrderItem `json:"items"`
}

type Table struct {
	Table      string  `json:"table"`
	LatestTime int64   `json:"latestTime"`
	Orders     []Order `json:"orders"`
}

type NameRequest struct {
	Name string `json:"name"`
}

type TableCount struct {
	TableCount int `json:"tableCount"`
}

type Rows struct {
	Rows [][]string `json:"rows"`
}

type Login struct {
	Code string `json:"code"`
}

type Session struct {
	Token     string `json:"token"`
	Role      string `json:"role"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserCode struct {
	Code string `json:"code"`
	Role string `json:"role"`
}

type ExportMenuParams struct {
	Format *string `json:"format,omitempty"`
}

func toOrder(view queries.OrderView) Order {
	o := Order{
		ID:       view.ID.String(),
		Customer: view.Customer,
		Time:     view.Time,
		Items:    make([]OrderItem, 0, len(view.Items)),
	}
	for _, item := range view.Items {
		o.Items = append(o.Items, OrderItem{
			Item:        item.Item,
			Quantity:    item.Quantity,
			Ingredients: item.Ingredients,
		})
	}
	return o
}

func toOrders(views []queries.OrderView) []Order {
	orders := make([]Order, 0, len(views))
	for _, view := range views {
		orders = append(orders, toOrder(view))
	}
	return orders
}
