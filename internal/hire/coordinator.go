// Package hire implements the transition that closes bidding on a gig:
// the gig becomes assigned, the winning bid becomes hired, and every other
// bid of the gig is rejected, all inside one transaction.
package hire

import (
	"context"

	"gigflow/backend/internal/apperrors"
	"gigflow/backend/internal/models"
	"gigflow/backend/internal/storage"

	log "github.com/sirupsen/logrus"
)

// Store is the slice of the storage layer the coordinator needs: the
// ability to run a closure as one atomic unit of work.
type Store interface {
	Transact(ctx context.Context, fn func(tx storage.Tx) error) error
}

// Notifier delivers the post-commit hired event. Delivery is best effort;
// the coordinator never looks at its outcome.
type Notifier interface {
	NotifyHired(freelancerID, gigID, gigTitle string)
}

// Result carries the committed state back to the handler.
type Result struct {
	Gig        *models.Gig `json:"gig"`
	WinningBid *models.Bid `json:"winningBid"`
}

type Coordinator struct {
	Store    Store
	Notifier Notifier
}

func NewCoordinator(store Store, notifier Notifier) *Coordinator {
	return &Coordinator{Store: store, Notifier: notifier}
}

// Hire executes the hire transition for the given bid on behalf of
// actingUserID. Checks run in order, each with its own failure:
// bid exists, its gig exists, the actor owns the gig, the gig is still open.
// The gig row is locked before the status check, so of two concurrent hire
// calls on the same gig exactly one commits and the other sees
// ErrGigAssigned. On any error nothing is written.
func (c *Coordinator) Hire(ctx context.Context, bidID, actingUserID string) (*Result, error) {
	var result Result

	err := c.Store.Transact(ctx, func(tx storage.Tx) error {
		bid, err := tx.BidByID(bidID)
		if err != nil {
			return err
		}

		gig, err := tx.GigForUpdate(bid.GigID)
		if err != nil {
			return err
		}

		if gig.OwnerID != actingUserID {
			return apperrors.ErrNotOwner
		}
		if !gig.IsOpen() {
			return apperrors.ErrGigAssigned
		}

		gig.Status = models.GigStatusAssigned
		if err := tx.SaveGig(gig); err != nil {
			return err
		}

		bid.Status = models.BidStatusHired
		if err := tx.SaveBid(bid); err != nil {
			return err
		}

		rejected, err := tx.RejectOtherBids(gig.ID, bid.ID)
		if err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"gig_id":        gig.ID,
			"winning_bid":   bid.ID,
			"rejected_bids": rejected,
		}).Info("hire: transition staged")

		result = Result{Gig: gig, WinningBid: bid}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The transaction is committed; from here on nothing can fail the hire.
	if c.Notifier != nil {
		c.Notifier.NotifyHired(result.WinningBid.FreelancerID, result.Gig.ID, result.Gig.Title)
	}

	return &result, nil
}
