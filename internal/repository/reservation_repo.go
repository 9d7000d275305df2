package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"court-reservation-server/internal/domain"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// HasOverlap reports whether any reservation on the court and date
// overlaps [start, end) under half-open semantics: existing.start < end
// AND existing.end > start. Touching boundaries do not overlap.
func (r *ReservationRepo) HasOverlap(ctx context.Context, courtID uint, date, start, end string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("court_id = ? AND date = ?", courtID, date).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&n).Error
	return n > 0, err
}

// CreateWithNoOverlap runs the conflict check and the insert in one
// transaction so two concurrent attempts on the same court/date cannot
// both commit. On postgres candidate rows are locked FOR UPDATE; on
// sqlite the single-writer transaction already serializes the pair.
func (r *ReservationRepo) CreateWithNoOverlap(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&domain.Client{}, res.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrClientNotFound
			}
			return err
		}
		if err := tx.First(&domain.Court{}, res.CourtID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCourtNotFound
			}
			return err
		}

		q := tx.Model(&domain.Reservation{}).
			Where("court_id = ? AND date = ?", res.CourtID, res.Date).
			Where("start_time < ? AND end_time > ?", res.EndTime, res.StartTime)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var existing domain.Reservation
		err := q.Take(&existing).Error
		if err == nil {
			return domain.ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(res).Error
	})
}

// ListAll returns every reservation, newest date first, then earliest
// start time, with client and court preloaded for display.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("Client").Preload("Court").
		Order("date DESC, start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepo) ListByClient(ctx context.Context, clientID uint) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Preload("Court").
		Where("client_id = ?", clientID).
		Order("date DESC").
		Find(&out).Error
	return out, err
}
