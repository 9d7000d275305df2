package service

import (
	"context"
	"log"

	"court-reservation-server/internal/domain"
	"court-reservation-server/internal/repository"
)

// AuditTrailLimit caps how many entries the audit screen shows.
const AuditTrailLimit = 200

type AuditService struct {
	repo *repository.AuditRepo
}

func NewAuditService(r *repository.AuditRepo) *AuditService {
	return &AuditService{repo: r}
}

// Record appends one entry to the trail. A failed append is logged and
// swallowed: auditing must never turn a completed action into an error
// for the caller.
func (s *AuditService) Record(ctx context.Context, actor, action, outcome, sourceIP string) {
	e := &domain.AuditEntry{Actor: actor, Action: action, Outcome: outcome, SourceIP: sourceIP}
	if err := s.repo.Append(ctx, e); err != nil {
		log.Printf("[audit] append failed (action=%q): %v", action, err)
	}
}

func (s *AuditService) Recent(ctx context.Context) ([]domain.AuditEntry, error) {
	return s.repo.Recent(ctx, AuditTrailLimit)
}
