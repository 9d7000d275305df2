package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"

	"court-reservation-server/internal/domain"
	"court-reservation-server/internal/events"
	"court-reservation-server/internal/repository"
	"court-reservation-server/pkg/mq"
)

const (
	dayLayout   = "2006-01-02"
	clockLayout = "15:04"
)

type ReservationService struct {
	repo  *repository.ReservationRepo
	audit *AuditService
	pub   *mq.Publisher // nil when messaging is disabled
}

func NewReservationService(r *repository.ReservationRepo, audit *AuditService, pub *mq.Publisher) *ReservationService {
	return &ReservationService{repo: r, audit: audit, pub: pub}
}

type CreateInput struct {
	ClientID  uint
	CourtID   uint
	Date      string // 2006-01-02
	StartTime string // 15:04
	EndTime   string // 15:04
}

// normalizeRange parses and re-formats the date and both times so that
// stored values are always zero-padded, and rejects empty and inverted
// ranges before any conflict check runs.
func normalizeRange(date, start, end string) (string, string, string, error) {
	d, err := time.Parse(dayLayout, date)
	if err != nil {
		return "", "", "", domain.ErrInvalidTimeRange
	}
	st, err := time.Parse(clockLayout, start)
	if err != nil {
		return "", "", "", domain.ErrInvalidTimeRange
	}
	et, err := time.Parse(clockLayout, end)
	if err != nil {
		return "", "", "", domain.ErrInvalidTimeRange
	}
	if !et.After(st) {
		return "", "", "", domain.ErrInvalidTimeRange
	}
	return d.Format(dayLayout), st.Format(clockLayout), et.Format(clockLayout), nil
}

// Create validates the requested range, then runs the conflict check
// and insert in one transaction. Every attempt leaves exactly one audit
// entry; only a successful attempt leaves a reservation row.
func (s *ReservationService) Create(ctx context.Context, actor, sourceIP string, in CreateInput) (*domain.Reservation, error) {
	ctx, span := otel.Tracer("reservation").Start(ctx, "reservation.create")
	defer span.End()

	date, start, end, err := normalizeRange(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		s.audit.Record(ctx, actor,
			fmt.Sprintf("reservation attempt with invalid range (client %d court %d %q-%q)", in.ClientID, in.CourtID, in.StartTime, in.EndTime),
			domain.OutcomeFailure, sourceIP)
		return nil, err
	}

	res := &domain.Reservation{
		Date:      date,
		StartTime: start,
		EndTime:   end,
		ClientID:  in.ClientID,
		CourtID:   in.CourtID,
	}
	if err := s.repo.CreateWithNoOverlap(ctx, res); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			s.audit.Record(ctx, actor,
				fmt.Sprintf("conflicting reservation attempt (client %d court %d %s %s-%s)", in.ClientID, in.CourtID, date, start, end),
				domain.OutcomeFailure, sourceIP)
			s.publish(ctx, events.RKReservationRejected, events.ReservationRejected{
				ClientID: in.ClientID, CourtID: in.CourtID,
				Date: date, StartTime: start, EndTime: end, Reason: "conflict",
			})
			return nil, err
		}
		s.audit.Record(ctx, actor,
			fmt.Sprintf("reservation create failed (client %d court %d): %v", in.ClientID, in.CourtID, err),
			domain.OutcomeFailure, sourceIP)
		return nil, err
	}

	s.audit.Record(ctx, actor,
		fmt.Sprintf("reservation created id:%d client:%d court:%d", res.ID, res.ClientID, res.CourtID),
		domain.OutcomeSuccess, sourceIP)
	s.publish(ctx, events.RKReservationCreated, events.ReservationCreated{
		ReservationID: res.ID, ClientID: res.ClientID, CourtID: res.CourtID,
		Date: res.Date, StartTime: res.StartTime, EndTime: res.EndTime,
	})
	return res, nil
}

// Availability reports whether [start, end) on the court and date is
// free of conflicts. Pure read, no audit entry.
func (s *ReservationService) Availability(ctx context.Context, courtID uint, date, start, end string) (bool, error) {
	date, start, end, err := normalizeRange(date, start, end)
	if err != nil {
		return false, err
	}
	overlap, err := s.repo.HasOverlap(ctx, courtID, date, start, end)
	if err != nil {
		return false, err
	}
	return !overlap, nil
}

func (s *ReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.ListAll(ctx)
}

func (s *ReservationService) ListByClient(ctx context.Context, clientID uint) ([]domain.Reservation, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// publish is best-effort: the broker being down must not fail a booking
// that already committed.
func (s *ReservationService) publish(ctx context.Context, key string, v any) {
	if s.pub == nil {
		return
	}
	_ = s.pub.PublishJSON(ctx, key, v)
}
