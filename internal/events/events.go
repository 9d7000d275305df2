package events

import (
	"encoding/json"
	"fmt"
)

// Routing keys published on the reservation exchange.
const (
	RKReservationCreated  = "reservation.created"
	RKReservationRejected = "reservation.rejected"
	RKBackupCreated       = "backup.created"
)

// ReservationCreated carries enough to build a notification message.
type ReservationCreated struct {
	ReservationID uint   `json:"reservation_id"`
	ClientID      uint   `json:"client_id"`
	CourtID       uint   `json:"court_id"`
	Date          string `json:"date"`       // 2006-01-02
	StartTime     string `json:"start_time"` // 15:04
	EndTime       string `json:"end_time"`
}

type ReservationRejected struct {
	ClientID  uint   `json:"client_id"`
	CourtID   uint   `json:"court_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason"`
}

type BackupCreated struct {
	File string `json:"file"`
}

func Unmarshal[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
