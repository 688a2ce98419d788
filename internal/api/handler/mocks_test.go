package handler_test

import (
	"context"

	"gigflow/backend/internal/api/handler"
	"gigflow/backend/internal/api/middleware"
	"gigflow/backend/internal/hire"
	"gigflow/backend/internal/models"
	"gigflow/backend/internal/presence"
	"gigflow/backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"
)

// MockStorage is a testify mock of the storage.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) CreateGig(gig *models.Gig) error {
	args := m.Called(gig)
	return args.Error(0)
}

func (m *MockStorage) GetGigByID(id string) (*models.Gig, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Gig), args.Error(1)
}

func (m *MockStorage) ListOpenGigs(search string) ([]models.Gig, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Gig), args.Error(1)
}

func (m *MockStorage) DeleteGig(gigID string) error {
	args := m.Called(gigID)
	return args.Error(0)
}

func (m *MockStorage) CreateBid(bid *models.Bid) error {
	args := m.Called(bid)
	return args.Error(0)
}

func (m *MockStorage) GetBidsForGig(gigID string) ([]models.Bid, error) {
	args := m.Called(gigID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Bid), args.Error(1)
}

func (m *MockStorage) Transact(ctx context.Context, fn func(tx storage.Tx) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

func (m *MockStorage) PublishNotification(n models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}

func (m *MockStorage) SubscribeNotifications() *redis.PubSub {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*redis.PubSub)
}

// stubHireStore backs the coordinator in handler tests. Either it fails
// outright with err, or it runs the transaction against the fixed tx data.
type stubHireStore struct {
	err error
	tx  *stubTx
}

func (s *stubHireStore) Transact(ctx context.Context, fn func(tx storage.Tx) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(s.tx)
}

type stubTx struct {
	bid *models.Bid
	gig *models.Gig
}

func (t *stubTx) BidByID(id string) (*models.Bid, error)             { return t.bid, nil }
func (t *stubTx) GigForUpdate(id string) (*models.Gig, error)        { return t.gig, nil }
func (t *stubTx) SaveGig(gig *models.Gig) error                      { return nil }
func (t *stubTx) SaveBid(bid *models.Bid) error                      { return nil }
func (t *stubTx) RejectOtherBids(gigID, winID string) (int64, error) { return 0, nil }

// testRouter wires the handler behind a stand-in access guard that injects
// the given user id, so tests exercise the handlers' own checks.
func testRouter(h *handler.Handler, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set(middleware.ContextUserID, userID)
		}
	})

	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/auth/me", h.Me)
	r.POST("/api/gigs", h.CreateGig)
	r.GET("/api/gigs", h.ListGigs)
	r.GET("/api/gigs/:id", h.GetGig)
	r.DELETE("/api/gigs/:id", h.DeleteGig)
	r.POST("/api/bids", h.PlaceBid)
	r.GET("/api/bids/:gigId", h.GetBidsForGig)
	r.PATCH("/api/bids/:bidId/hire", h.HireBid)
	return r
}

func newTestHandler(store *MockStorage, hireStore hire.Store) *handler.Handler {
	hub := presence.NewHub(nil)
	var coordinator *hire.Coordinator
	if hireStore != nil {
		coordinator = hire.NewCoordinator(hireStore, nil)
	}
	return handler.NewHandler(store, coordinator, hub)
}
