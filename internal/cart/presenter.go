package cart

import (
	"fmt"
	"strconv"
)

// Line is a view row: a line item plus its computed subtotal.
type Line struct {
	LineItem
	Subtotal int64
}

// Shipping is the free-shipping incentive state for the current total.
type Shipping struct {
	Unlocked  bool
	Remaining int64
	Message   string
}

// View is the fully derived presentation state of a cart snapshot. It is
// recomputed from scratch on every change; nothing in it is cached.
type View struct {
	Lines      []Line
	GrandTotal int64
	ItemCount  int
	Empty      bool
	Shipping   Shipping
}

// Compute derives a View from a cart snapshot. threshold is the
// free-shipping grand total; zero or less disables shipping messaging.
func Compute(items []LineItem, threshold int64) View {
	view := View{Empty: len(items) == 0}
	for _, item := range items {
		sub := item.Subtotal()
		view.Lines = append(view.Lines, Line{LineItem: item, Subtotal: sub})
		view.GrandTotal += sub
		view.ItemCount += item.Quantity
	}
	if threshold > 0 {
		if view.GrandTotal >= threshold {
			view.Shipping = Shipping{Unlocked: true, Message: "Free shipping unlocked"}
		} else {
			remaining := threshold - view.GrandTotal
			view.Shipping = Shipping{
				Remaining: remaining,
				Message:   fmt.Sprintf("Add %s more for free shipping", FormatAmount(remaining)),
			}
		}
	}
	return view
}

// Presenter recomputes a View after every store change and hands it to
// Render. Attach it before mutating the store so no change is missed.
type Presenter struct {
	Threshold int64
	Render    func(View)
}

// Attach subscribes the presenter to a store.
func (p *Presenter) Attach(store *Store) {
	store.Subscribe(func(items []LineItem) {
		if p.Render != nil {
			p.Render(Compute(items, p.Threshold))
		}
	})
}

// FormatAmount renders a price in display form, e.g. ₹1999.
func FormatAmount(amount int64) string {
	return "₹" + strconv.FormatInt(amount, 10)
}
