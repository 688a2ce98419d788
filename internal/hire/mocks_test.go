package hire_test

import (
	"context"
	"errors"

	"gigflow/backend/internal/apperrors"
	"gigflow/backend/internal/models"
	"gigflow/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

// fakeStore is an in-memory stand-in for the transactional store. Transact
// runs the closure against copies of the data and only publishes the copies
// back when the closure succeeds, so rollback behaviour is observable.
type fakeStore struct {
	gigs map[string]models.Gig
	bids map[string]models.Bid

	// failSaveBid forces an error after the gig write has been staged,
	// to exercise the all-or-nothing guarantee.
	failSaveBid bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		gigs: make(map[string]models.Gig),
		bids: make(map[string]models.Bid),
	}
}

func (s *fakeStore) addGig(g models.Gig) { s.gigs[g.ID] = g }
func (s *fakeStore) addBid(b models.Bid) { s.bids[b.ID] = b }

func (s *fakeStore) Transact(ctx context.Context, fn func(tx storage.Tx) error) error {
	tx := &fakeTx{
		store: s,
		gigs:  make(map[string]models.Gig, len(s.gigs)),
		bids:  make(map[string]models.Bid, len(s.bids)),
	}
	for id, g := range s.gigs {
		tx.gigs[id] = g
	}
	for id, b := range s.bids {
		tx.bids[id] = b
	}

	if err := fn(tx); err != nil {
		return err // rollback: staged copies are discarded
	}

	s.gigs = tx.gigs
	s.bids = tx.bids
	return nil
}

type fakeTx struct {
	store *fakeStore
	gigs  map[string]models.Gig
	bids  map[string]models.Bid
}

func (t *fakeTx) BidByID(id string) (*models.Bid, error) {
	b, ok := t.bids[id]
	if !ok {
		return nil, apperrors.ErrBidNotFound
	}
	return &b, nil
}

func (t *fakeTx) GigForUpdate(id string) (*models.Gig, error) {
	g, ok := t.gigs[id]
	if !ok {
		return nil, apperrors.ErrGigNotFound
	}
	return &g, nil
}

func (t *fakeTx) SaveGig(gig *models.Gig) error {
	t.gigs[gig.ID] = *gig
	return nil
}

func (t *fakeTx) SaveBid(bid *models.Bid) error {
	if t.store.failSaveBid {
		return errors.New("write failed")
	}
	t.bids[bid.ID] = *bid
	return nil
}

func (t *fakeTx) RejectOtherBids(gigID, winningBidID string) (int64, error) {
	var n int64
	for id, b := range t.bids {
		if b.GigID == gigID && id != winningBidID {
			b.Status = models.BidStatusRejected
			t.bids[id] = b
			n++
		}
	}
	return n, nil
}

// MockNotifier records hired-event dispatches.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyHired(freelancerID, gigID, gigTitle string) {
	m.Called(freelancerID, gigID, gigTitle)
}
