// Package checkout drives the multi-step checkout flow: collect contact
// info, review a frozen cart snapshot, submit the order.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"optical-storefront/internal/cart"
	"optical-storefront/internal/domain"
)

// State is a checkout machine state.
type State string

const (
	StateCollectingInfo State = "COLLECTING_INFO"
	StateReviewingOrder State = "REVIEWING_ORDER"
	StateCompleted      State = "COMPLETED"
	StateCancelled      State = "CANCELLED"
)

// IsTerminal reports whether no further transitions are possible.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

func (s State) String() string { return string(s) }

var (
	// ErrState indicates an operation invalid in the current state.
	ErrState = errors.New("invalid checkout state")
	// ErrEmptyCart indicates a confirm attempt with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrSubmitting indicates a submission is already in flight.
	ErrSubmitting = errors.New("submission in progress")
)

// SubmissionError wraps an endpoint failure. The machine stays in
// ReviewingOrder and the cart is untouched, so the user can retry or use a
// fallback channel.
type SubmissionError struct {
	cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("order submission failed: %v", e.cause)
}

func (e *SubmissionError) Unwrap() error { return e.cause }

// OrderDraft is the assembled, not-yet-submitted order payload.
type OrderDraft struct {
	CustomerName string
	Phone        string
	Email        string
	Address      string
	Notes        string
	Items        []domain.OrderItem
	Total        int64
}

// Submitter delivers an order draft to the order endpoint and returns the
// generated order identifier.
type Submitter interface {
	Submit(ctx context.Context, draft OrderDraft) (string, error)
}

// Sequencer is one checkout instance. Completed and Cancelled are terminal;
// a new checkout means a new Sequencer.
type Sequencer struct {
	cart      *cart.Store
	submitter Submitter
	logger    zerolog.Logger

	state    State
	contact  ContactInfo
	snapshot []cart.LineItem
	total    int64
	inFlight bool
	orderID  string
}

func NewSequencer(store *cart.Store, submitter Submitter, logger zerolog.Logger) *Sequencer {
	return &Sequencer{
		cart:      store,
		submitter: submitter,
		logger:    logger,
		state:     StateCollectingInfo,
	}
}

// State returns the current machine state.
func (s *Sequencer) State() State { return s.state }

// Contact returns the collected contact info.
func (s *Sequencer) Contact() ContactInfo { return s.contact }

// OrderID returns the identifier issued on successful submission.
func (s *Sequencer) OrderID() string { return s.orderID }

// SubmitInfo validates contact info and advances to ReviewingOrder,
// freezing the cart snapshot and total that will be submitted. Validation
// failures keep the machine collecting and report per-field messages.
func (s *Sequencer) SubmitInfo(info ContactInfo) error {
	if s.state != StateCollectingInfo {
		return fmt.Errorf("%w: submit info in %s", ErrState, s.state)
	}
	if err := validateContact(info); err != nil {
		return err
	}
	s.contact = info
	s.snapshot = s.cart.Snapshot()
	s.total = cart.Compute(s.snapshot, 0).GrandTotal
	s.state = StateReviewingOrder
	return nil
}

// Review returns the frozen snapshot and total under review. Cart changes
// made after entering review do not alter these; go Back and resubmit to
// pick them up.
func (s *Sequencer) Review() ([]cart.LineItem, int64) {
	items := make([]cart.LineItem, len(s.snapshot))
	copy(items, s.snapshot)
	return items, s.total
}

// Back returns from review to info collection, discarding the snapshot.
func (s *Sequencer) Back() error {
	if s.state != StateReviewingOrder {
		return fmt.Errorf("%w: back in %s", ErrState, s.state)
	}
	s.snapshot = nil
	s.total = 0
	s.state = StateCollectingInfo
	return nil
}

// Confirm submits the reviewed order. On success the machine completes,
// the cart is cleared and the returned order id is recorded — exactly once,
// even under repeated confirm triggers. On failure the machine stays in
// ReviewingOrder with the cart intact and returns a *SubmissionError.
func (s *Sequencer) Confirm(ctx context.Context) (string, error) {
	if s.state != StateReviewingOrder {
		return "", fmt.Errorf("%w: confirm in %s", ErrState, s.state)
	}
	if s.inFlight {
		return "", ErrSubmitting
	}
	if len(s.snapshot) == 0 {
		return "", ErrEmptyCart
	}

	s.inFlight = true
	draft := s.buildDraft()
	orderID, err := s.submitter.Submit(ctx, draft)
	if err != nil {
		s.inFlight = false
		s.logger.Warn().Err(err).Msg("order submission failed")
		return "", &SubmissionError{cause: err}
	}

	s.orderID = orderID
	s.state = StateCompleted
	s.cart.Clear(ctx)
	s.logger.Info().Str("order_id", orderID).Int64("total", draft.Total).Msg("order placed")
	return orderID, nil
}

// Cancel ends the checkout without touching the cart. Cancelling a
// terminal machine is an error.
func (s *Sequencer) Cancel() error {
	if s.state.IsTerminal() {
		return fmt.Errorf("%w: cancel in %s", ErrState, s.state)
	}
	if s.inFlight {
		return ErrSubmitting
	}
	s.state = StateCancelled
	return nil
}

func (s *Sequencer) buildDraft() OrderDraft {
	items := make([]domain.OrderItem, 0, len(s.snapshot))
	var total int64
	for _, line := range s.snapshot {
		items = append(items, domain.OrderItem{
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
		total += line.Subtotal()
	}
	return OrderDraft{
		CustomerName: s.contact.Name,
		Phone:        s.contact.Phone,
		Email:        s.contact.Email,
		Address:      s.contact.Address,
		Notes:        s.contact.Notes,
		Items:        items,
		Total:        total,
	}
}
