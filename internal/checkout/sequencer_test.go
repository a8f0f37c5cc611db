package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"optical-storefront/internal/cart"
	"optical-storefront/internal/domain"
)

type stubResolver map[int64]domain.Product

func (r stubResolver) Get(id int64) (domain.Product, bool) {
	p, ok := r[id]
	return p, ok
}

type stubSubmitter struct {
	orderID string
	err     error
	calls   int
	last    OrderDraft
	onCall  func()
}

func (s *stubSubmitter) Submit(_ context.Context, draft OrderDraft) (string, error) {
	s.calls++
	s.last = draft
	if s.onCall != nil {
		s.onCall()
	}
	return s.orderID, s.err
}

func validInfo() ContactInfo {
	return ContactInfo{
		Name:    "Asha Rao",
		Phone:   "9876543210",
		Address: "12 MG Road, Pune",
	}
}

func newCheckoutCart(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(stubResolver{
		7: {ID: 7, Name: "Aviator Frame", Price: 500},
		9: {ID: 9, Name: "Reading Glasses", Price: 1200},
	}, nil, zerolog.Nop())
	require.NoError(t, store.AddItem(context.Background(), 7, 2))
	return store
}

func newSequencerForTest(t *testing.T, sub Submitter) (*Sequencer, *cart.Store) {
	t.Helper()
	store := newCheckoutCart(t)
	return NewSequencer(store, sub, zerolog.Nop()), store
}

func TestSubmitInfoRequiresFields(t *testing.T) {
	cases := []struct {
		name  string
		info  ContactInfo
		field string
	}{
		{"missing name", ContactInfo{Phone: "123", Address: "addr"}, "name"},
		{"missing phone", ContactInfo{Name: "A", Address: "addr"}, "phone"},
		{"missing address", ContactInfo{Name: "A", Phone: "123"}, "address"},
		{"blank name", ContactInfo{Name: "   ", Phone: "123", Address: "addr"}, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq, _ := newSequencerForTest(t, &stubSubmitter{})

			err := seq.SubmitInfo(tc.info)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.NotEmpty(t, verr.Fields)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
			assert.Equal(t, StateCollectingInfo, seq.State())
		})
	}
}

func TestSubmitInfoRejectsBadEmail(t *testing.T) {
	seq, _ := newSequencerForTest(t, &stubSubmitter{})
	info := validInfo()
	info.Email = "not-an-email"

	err := seq.SubmitInfo(info)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, StateCollectingInfo, seq.State())
}

func TestSubmitInfoAdvancesToReview(t *testing.T) {
	seq, _ := newSequencerForTest(t, &stubSubmitter{})

	require.NoError(t, seq.SubmitInfo(validInfo()))

	assert.Equal(t, StateReviewingOrder, seq.State())
	items, total := seq.Review()
	require.Len(t, items, 1)
	assert.Equal(t, int64(1000), total)
}

func TestReviewSnapshotIsFrozen(t *testing.T) {
	seq, store := newSequencerForTest(t, &stubSubmitter{orderID: "42"})
	require.NoError(t, seq.SubmitInfo(validInfo()))

	// A cart mutation during review must not alter the reviewed total.
	require.NoError(t, store.AddItem(context.Background(), 9, 1))

	_, total := seq.Review()
	assert.Equal(t, int64(1000), total)
}

func TestBackDiscardsSnapshot(t *testing.T) {
	seq, store := newSequencerForTest(t, &stubSubmitter{orderID: "42"})
	require.NoError(t, seq.SubmitInfo(validInfo()))
	require.NoError(t, store.AddItem(context.Background(), 9, 1))

	require.NoError(t, seq.Back())
	assert.Equal(t, StateCollectingInfo, seq.State())

	require.NoError(t, seq.SubmitInfo(validInfo()))
	_, total := seq.Review()
	assert.Equal(t, int64(2200), total)
}

func TestConfirmSuccessClearsCartOnce(t *testing.T) {
	sub := &stubSubmitter{orderID: "ord-1"}
	seq, store := newSequencerForTest(t, sub)
	require.NoError(t, seq.SubmitInfo(validInfo()))

	orderID, err := seq.Confirm(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "ord-1", orderID)
	assert.Equal(t, StateCompleted, seq.State())
	assert.Equal(t, "ord-1", seq.OrderID())
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 1, sub.calls)

	// A second confirm must not produce a second order.
	_, err = seq.Confirm(context.Background())
	require.ErrorIs(t, err, ErrState)
	assert.Equal(t, 1, sub.calls)
}

func TestConfirmBuildsDraftFromSnapshot(t *testing.T) {
	sub := &stubSubmitter{orderID: "ord-2"}
	seq, _ := newSequencerForTest(t, sub)
	info := validInfo()
	info.Email = "asha@example.com"
	info.Notes = "call before delivery"
	require.NoError(t, seq.SubmitInfo(info))

	_, err := seq.Confirm(context.Background())
	require.NoError(t, err)

	draft := sub.last
	assert.Equal(t, "Asha Rao", draft.CustomerName)
	assert.Equal(t, "call before delivery", draft.Notes)
	require.Len(t, draft.Items, 1)
	assert.Equal(t, domain.OrderItem{Name: "Aviator Frame", Price: 500, Quantity: 2}, draft.Items[0])
	assert.Equal(t, int64(1000), draft.Total)
}

func TestConfirmFailureKeepsReviewAndCart(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("server error: 500")}
	seq, store := newSequencerForTest(t, sub)
	require.NoError(t, seq.SubmitInfo(validInfo()))

	_, err := seq.Confirm(context.Background())

	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, StateReviewingOrder, seq.State())
	assert.Equal(t, 1, store.Len())

	// Retry succeeds after the endpoint recovers.
	sub.err = nil
	sub.orderID = "ord-3"
	orderID, err := seq.Confirm(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ord-3", orderID)
	assert.Equal(t, 0, store.Len())
}

func TestConfirmGuardsInFlightSubmission(t *testing.T) {
	sub := &stubSubmitter{orderID: "ord-4"}
	seq, _ := newSequencerForTest(t, sub)
	require.NoError(t, seq.SubmitInfo(validInfo()))

	// A rapid double-click re-enters Confirm while the first submission is
	// still outstanding.
	var reentrant error
	sub.onCall = func() {
		_, reentrant = seq.Confirm(context.Background())
	}

	_, err := seq.Confirm(context.Background())
	require.NoError(t, err)
	require.ErrorIs(t, reentrant, ErrSubmitting)
	assert.Equal(t, 1, sub.calls)
}

func TestConfirmEmptyCart(t *testing.T) {
	store := cart.NewStore(stubResolver{}, nil, zerolog.Nop())
	seq := NewSequencer(store, &stubSubmitter{}, zerolog.Nop())
	require.NoError(t, seq.SubmitInfo(validInfo()))

	_, err := seq.Confirm(context.Background())
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCancelKeepsCart(t *testing.T) {
	seq, store := newSequencerForTest(t, &stubSubmitter{})
	require.NoError(t, seq.SubmitInfo(validInfo()))

	require.NoError(t, seq.Cancel())

	assert.Equal(t, StateCancelled, seq.State())
	assert.True(t, seq.State().IsTerminal())
	assert.Equal(t, 1, store.Len())

	require.ErrorIs(t, seq.Cancel(), ErrState)
}

func TestSubmitInfoOnlyWhileCollecting(t *testing.T) {
	seq, _ := newSequencerForTest(t, &stubSubmitter{})
	require.NoError(t, seq.SubmitInfo(validInfo()))
	require.ErrorIs(t, seq.SubmitInfo(validInfo()), ErrState)
}
