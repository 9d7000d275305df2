package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"court-reservation-server/internal/domain"
)

type CourtRepo struct{ db *gorm.DB }

func NewCourtRepo(db *gorm.DB) *CourtRepo {
	return &CourtRepo{db: db}
}

func (r *CourtRepo) Create(ctx context.Context, c *domain.Court) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CourtRepo) ByID(ctx context.Context, id uint) (*domain.Court, error) {
	var c domain.Court
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourtNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CourtRepo) List(ctx context.Context) ([]domain.Court, error) {
	var out []domain.Court
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}
