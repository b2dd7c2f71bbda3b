package request

import (
	"context"
	"errors"
	"fmt"

	"devconnect-service/internal/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// RequestRepository persists directional connection-request records. The
// find-or-none lookups return (nil, nil) when no record matches.
type RequestRepository interface {
	Create(ctx context.Context, req *models.ConnectionRequest) error
	Save(ctx context.Context, req *models.ConnectionRequest) error
	// FindBetween looks for a record between two users in either direction.
	FindBetween(ctx context.Context, a, b string) (*models.ConnectionRequest, error)
	// FindPendingFor returns the record only if it is addressed to reviewer
	// and still in status interested.
	FindPendingFor(ctx context.Context, id, reviewer string) (*models.ConnectionRequest, error)
	// FindReciprocal looks for the exact directional edge from -> to in
	// status interested.
	FindReciprocal(ctx context.Context, from, to string) (*models.ConnectionRequest, error)
	// FindInvolving returns every record with userID at either endpoint,
	// regardless of status.
	FindInvolving(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
	FindConnected(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
	FindReceived(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
	FindOutbound(ctx context.Context, userID string) ([]models.ConnectionRequest, error)
	// Connect flips both records to connected in a single transaction.
	Connect(ctx context.Context, original, reciprocal *models.ConnectionRequest) error
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *models.ConnectionRequest) error {
	err := r.db.WithContext(ctx).Create(req).Error

	// Two concurrent inserts of the same directional edge race past the
	// existence checks; the unique pair index catches the loser here.
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrRequestExists
	}
	return err
}

func (r *requestRepository) Save(ctx context.Context, req *models.ConnectionRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *requestRepository) FindBetween(ctx context.Context, a, b string) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a).
		First(&req).Error
	return oneOrNone(&req, err)
}

func (r *requestRepository) FindPendingFor(ctx context.Context, id, reviewer string) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Where("id = ? AND to_user_id = ? AND status = ?", id, reviewer, models.StatusInterested).
		First(&req).Error
	return oneOrNone(&req, err)
}

func (r *requestRepository) FindReciprocal(ctx context.Context, from, to string) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?", from, to, models.StatusInterested).
		First(&req).Error
	return oneOrNone(&req, err)
}

func (r *requestRepository) FindInvolving(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepository) FindConnected(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		Where("(from_user_id = ? OR to_user_id = ?) AND status = ?", userID, userID, models.StatusConnected).
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepository) FindReceived(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Preload("FromUser").
		Where("to_user_id = ? AND status = ?", userID, models.StatusInterested).
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepository) FindOutbound(ctx context.Context, userID string) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	err := r.db.WithContext(ctx).
		Preload("ToUser").
		Where("from_user_id = ? AND status = ?", userID, models.StatusInterested).
		Find(&reqs).Error
	return reqs, err
}

// Connect updates both directional records to connected atomically. Each
// update re-checks the interested status, so a record that moved under our
// feet rolls the whole transaction back instead of leaving one side
// connected and the other not.
func (r *requestRepository) Connect(ctx context.Context, original, reciprocal *models.ConnectionRequest) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range []*models.ConnectionRequest{original, reciprocal} {
			res := tx.Model(&models.ConnectionRequest{}).
				Where("id = ? AND status = ?", rec.ID, models.StatusInterested).
				Update("status", models.StatusConnected)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected != 1 {
				return fmt.Errorf("request %s is no longer pending", rec.ID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to establish connection: %w", err)
	}

	original.Status = models.StatusConnected
	reciprocal.Status = models.StatusConnected
	return nil
}

func oneOrNone(req *models.ConnectionRequest, err error) (*models.ConnectionRequest, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}
