package storage

import (
	"context"
	"encoding/json"
	"errors"

	"gigflow/backend/internal/apperrors"
	"gigflow/backend/internal/config"
	"gigflow/backend/internal/models"

	log "github.com/sirupsen/logrus"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Tx is the unit of work the hire transition runs inside. All reads and
// writes made through it belong to one database transaction; the closure
// passed to Transact either commits them all or none.
type Tx interface {
	// BidByID loads a bid inside the transaction.
	BidByID(id string) (*models.Bid, error)
	// GigForUpdate loads a gig with a row lock, so concurrent hire
	// attempts on the same gig serialize and re-read its status.
	GigForUpdate(id string) (*models.Gig, error)
	SaveGig(gig *models.Gig) error
	SaveBid(bid *models.Bid) error
	// RejectOtherBids bulk-rejects every bid of the gig except the winner
	// and returns the number of rows touched.
	RejectOtherBids(gigID, winningBidID string) (int64, error)
}

type Storage interface {
	// Users
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)

	// Gigs
	CreateGig(gig *models.Gig) error
	GetGigByID(id string) (*models.Gig, error)
	ListOpenGigs(search string) ([]models.Gig, error)
	DeleteGig(gigID string) error

	// Bids
	CreateBid(bid *models.Bid) error
	GetBidsForGig(gigID string) ([]models.Bid, error)

	// Transact runs fn inside a single database transaction. Returning an
	// error from fn rolls everything back and that error is returned as-is.
	Transact(ctx context.Context, fn func(tx Tx) error) error

	// Realtime fan-out
	PublishNotification(n models.Notification) error
	SubscribeNotifications() *redis.PubSub
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// --- Users ---

func (s *Service) CreateUser(user *models.User) error {
	err := s.DB.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrEmailTaken
	}
	return err
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBadLogin
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrTokenInvalid
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// --- Gigs ---

func (s *Service) CreateGig(gig *models.Gig) error {
	return s.DB.Create(gig).Error
}

func (s *Service) GetGigByID(id string) (*models.Gig, error) {
	var gig models.Gig
	err := s.DB.Preload("Owner").First(&gig, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		log.WithFields(log.Fields{"gig_id": id, "error": err}).Error("storage: gig lookup failed")
		return nil, err
	}
	return &gig, nil
}

// ListOpenGigs returns open gigs, newest first, with owner display fields.
// A non-empty search narrows by case-insensitive title substring.
func (s *Service) ListOpenGigs(search string) ([]models.Gig, error) {
	var gigs []models.Gig
	q := s.DB.Preload("Owner").Where("status = ?", models.GigStatusOpen)
	if search != "" {
		q = q.Where("title ILIKE ?", "%"+search+"%")
	}
	if err := q.Order("created_at DESC").Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

// DeleteGig removes a gig and all its bids in one transaction, so a
// half-deleted gig is never visible.
func (s *Service) DeleteGig(gigID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("gig_id = ?", gigID).Delete(&models.Bid{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Gig{}, "id = ?", gigID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrGigNotFound
		}
		return nil
	})
}

// --- Bids ---

func (s *Service) CreateBid(bid *models.Bid) error {
	err := s.DB.Create(bid).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// The (gig_id, freelancer_id) unique index caught a concurrent
		// duplicate that the pre-check missed.
		return apperrors.ErrDuplicateBid
	}
	return err
}

func (s *Service) GetBidsForGig(gigID string) ([]models.Bid, error) {
	var bids []models.Bid
	err := s.DB.Preload("Freelancer").
		Where("gig_id = ?", gigID).
		Order("created_at DESC").
		Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

// --- Unit of work ---

// gormTx adapts a transactional *gorm.DB to the Tx interface.
type gormTx struct {
	db *gorm.DB
}

func (t *gormTx) BidByID(id string) (*models.Bid, error) {
	var bid models.Bid
	err := t.db.First(&bid, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrBidNotFound
	}
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (t *gormTx) GigForUpdate(id string) (*models.Gig, error) {
	var gig models.Gig
	err := t.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&gig, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		return nil, err
	}
	return &gig, nil
}

func (t *gormTx) SaveGig(gig *models.Gig) error {
	return t.db.Save(gig).Error
}

func (t *gormTx) SaveBid(bid *models.Bid) error {
	return t.db.Save(bid).Error
}

func (t *gormTx) RejectOtherBids(gigID, winningBidID string) (int64, error) {
	res := t.db.Model(&models.Bid{}).
		Where("gig_id = ? AND id <> ?", gigID, winningBidID).
		Update("status", models.BidStatusRejected)
	return res.RowsAffected, res.Error
}

func (s *Service) Transact(ctx context.Context, fn func(tx Tx) error) error {
	return s.DB.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(&gormTx{db: db})
	})
}

// --- Realtime fan-out ---

// PublishNotification pushes a hire event onto the Redis notification
// channel. Whichever instance holds the target user's connection picks
// it up from there.
func (s *Service) PublishNotification(n models.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, config.NotificationChannel, payload).Err()
}

func (s *Service) SubscribeNotifications() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, config.NotificationChannel)
}
