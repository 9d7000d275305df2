package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"court-reservation-server/internal/domain"
)

type ClientRepo struct{ db *gorm.DB }

func NewClientRepo(db *gorm.DB) *ClientRepo {
	return &ClientRepo{db: db}
}

func (r *ClientRepo) Create(ctx context.Context, c *domain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepo) ByID(ctx context.Context, id uint) (*domain.Client, error) {
	var c domain.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) List(ctx context.Context) ([]domain.Client, error) {
	var out []domain.Client
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, err
}
