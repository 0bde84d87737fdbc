package services

import (
	"errors"
	"fmt"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"
)

// ErrSameTable is returned when a relocation names the same table as source and destination.
var ErrSameTable = errs.NewValueIsInvalidErrorWithCause("toTable", errors.New("destination must differ from source table"))

// MoveItemResult describes the aggregates touched by OrderRelocator.MoveItem.
// Callers persist Source (or delete it when SourceEmptied) and Target (add it
// when TargetCreated, update it otherwise).
type MoveItemResult struct {
	Source        *order.Order
	SourceEmptied bool
	Target        *order.Order
	TargetCreated bool
	Item          order.Item
}

// MoveTableResult describes the aggregates touched by OrderRelocator.MoveTable.
//   - Relabelled: source orders now carrying the destination table
//   - Merged: destination orders that received the items of a colliding source order
//   - Removed: source orders whose items were merged away
type MoveTableResult struct {
	Relabelled []*order.Order
	Merged     []*order.Order
	Removed    []*order.Order
}

// OrderRelocator is a domain service moving line items and whole tables between
// tables. It works on loaded aggregates only; loading and persisting them is the
// caller's unit of work.
//
// Business rules:
//   - Source and destination tables differ
//   - An order's placement time never changes, so clients keep correlating by it
//   - At most one order exists per (table, time); a collision merges items
//     into the order already at the destination
//   - An order left without items is removed
//
// Example usage:
//
//	relocator := services.NewOrderRelocator()
//	result, err := relocator.MoveItem(source, target, kernel.NewTableNumber(7), kernel.NewUUID(), 0)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // itemIndex does not address a line of source
//	}
type OrderRelocator struct{}

func NewOrderRelocator() OrderRelocator {
	return OrderRelocator{}
}

// MoveItem detaches the line at index from source and attaches it to the order at
// (to, source time).
//
// Parameters:
//   - source: the order the line is taken from
//   - target: the order already at (to, source time), or nil when there is none
//   - to: destination table
//   - newID: identifier of the order created when target is nil
//   - index: position of the line within source, in insertion order
func (r OrderRelocator) MoveItem(
	source, target *order.Order,
	to kernel.Table,
	newID kernel.UUID,
	index int,
) (MoveItemResult, error) {
	if err := source.Validate(); err != nil {
		return MoveItemResult{}, err
	}
	if err := to.Validate(); err != nil {
		return MoveItemResult{}, err
	}
	if source.Table().IsEqual(to) {
		return MoveItemResult{}, ErrSameTable
	}
	if err := r.checkTarget(source, target, to, newID); err != nil {
		return MoveItemResult{}, err
	}

	item, err := source.RemoveItem(index)
	if err != nil {
		return MoveItemResult{}, err
	}

	result := MoveItemResult{
		Source:        source,
		SourceEmptied: source.IsEmpty(),
		Item:          item,
	}

	if target == nil {
		created, err := order.NewOrder(newID, to, source.PlacedAt(), []order.Item{item})
		if err != nil {
			return MoveItemResult{}, err
		}
		result.Target = created
		result.TargetCreated = true
		return result, nil
	}

	if err = target.AppendItems(item); err != nil {
		return MoveItemResult{}, err
	}
	result.Target = target
	return result, nil
}

// MoveTable relabels every source order to table to. A source order whose time
// matches one of targets is merged into it instead.
//
// Parameters:
//   - sources: the orders of the table being moved
//   - targets: the orders the destination table already has
//   - to: destination table
func (r OrderRelocator) MoveTable(sources, targets []*order.Order, to kernel.Table) (MoveTableResult, error) {
	if err := to.Validate(); err != nil {
		return MoveTableResult{}, err
	}

	byTime := make(map[int64]*order.Order, len(targets))
	for _, t := range targets {
		if err := t.Validate(); err != nil {
			return MoveTableResult{}, err
		}
		byTime[t.PlacedAtMillis()] = t
	}

	var (
		result MoveTableResult
		merged = make(map[int64]bool)
	)
	for _, s := range sources {
		if err := s.Validate(); err != nil {
			return MoveTableResult{}, err
		}
		if s.Table().IsEqual(to) {
			return MoveTableResult{}, ErrSameTable
		}

		target, collides := byTime[s.PlacedAtMillis()]
		if !collides {
			if err := s.Relabel(to); err != nil {
				return MoveTableResult{}, err
			}
			result.Relabelled = append(result.Relabelled, s)
			continue
		}

		if err := target.AppendItems(s.Items()...); err != nil {
			return MoveTableResult{}, err
		}
		if !merged[target.PlacedAtMillis()] {
			merged[target.PlacedAtMillis()] = true
			result.Merged = append(result.Merged, target)
		}
		result.Removed = append(result.Removed, s)
	}

	return result, nil
}

func (r OrderRelocator) checkTarget(source, target *order.Order, to kernel.Table, newID kernel.UUID) error {
	if target == nil {
		return newID.Validate()
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !target.Table().IsEqual(to) || !target.PlacedAt().Equal(source.PlacedAt()) {
		return errs.NewValueIsInvalidErrorWithCause("target", fmt.Errorf(
			"order %s is not at table %s, time %d", target.ID(), to, source.PlacedAtMillis()))
	}
	return nil
}
