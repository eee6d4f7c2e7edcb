package waitlist

import (
	"context"

	"github.com/evervow/leads-api/internal/models"
	apperrors "github.com/evervow/leads-api/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// CreateSubmission persists a new waitlist submission. Duplicate emails
	// are allowed; every call inserts a fresh row.
	CreateSubmission(ctx context.Context, submission *models.WaitlistSubmission) (*models.WaitlistSubmission, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateSubmission(ctx context.Context, submission *models.WaitlistSubmission) (*models.WaitlistSubmission, error) {
	if err := wr.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, apperrors.NewDatabaseError("DB error", err)
	}

	return submission, nil
}
