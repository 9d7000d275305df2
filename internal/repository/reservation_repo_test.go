package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"court-reservation-server/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedPair(t *testing.T, db *gorm.DB) (clientID, courtID uint) {
	t.Helper()
	c := domain.Client{FirstName: "Ana", LastName: "Ruiz"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("client: %v", err)
	}
	k := domain.Court{Name: "Cancha 1", Category: "Tenis"}
	if err := db.Create(&k).Error; err != nil {
		t.Fatalf("court: %v", err)
	}
	return c.ID, k.ID
}

func mustReserve(t *testing.T, repo *ReservationRepo, clientID, courtID uint, date, start, end string) *domain.Reservation {
	t.Helper()
	r := &domain.Reservation{Date: date, StartTime: start, EndTime: end, ClientID: clientID, CourtID: courtID}
	if err := repo.CreateWithNoOverlap(context.Background(), r); err != nil {
		t.Fatalf("reserve %s %s-%s: %v", date, start, end, err)
	}
	return r
}

func TestHasOverlapHalfOpen(t *testing.T) {
	db := testDB(t)
	clientID, courtID := seedPair(t, db)
	repo := NewReservationRepo(db)
	mustReserve(t, repo, clientID, courtID, "2024-03-10", "10:00", "11:00")

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"touching after", "11:00", "12:00", false},
		{"touching before", "09:00", "10:00", false},
		{"straddles end", "10:30", "11:30", true},
		{"straddles start", "09:30", "10:30", true},
		{"contained", "10:15", "10:45", true},
		{"covers", "09:00", "12:00", true},
		{"disjoint", "12:00", "13:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.HasOverlap(context.Background(), courtID, "2024-03-10", tt.start, tt.end)
			if err != nil {
				t.Fatalf("has overlap: %v", err)
			}
			if got != tt.want {
				t.Errorf("[%s,%s): got %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestHasOverlapScopedToCourtAndDate(t *testing.T) {
	db := testDB(t)
	clientID, courtID := seedPair(t, db)
	repo := NewReservationRepo(db)
	mustReserve(t, repo, clientID, courtID, "2024-03-10", "10:00", "11:00")

	other := domain.Court{Name: "Cancha 2", Category: "Fútbol"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("court: %v", err)
	}

	if got, _ := repo.HasOverlap(context.Background(), other.ID, "2024-03-10", "10:00", "11:00"); got {
		t.Error("different court should not conflict")
	}
	if got, _ := repo.HasOverlap(context.Background(), courtID, "2024-03-11", "10:00", "11:00"); got {
		t.Error("different date should not conflict")
	}
}

func TestCreateWithNoOverlapRejectsConflict(t *testing.T) {
	db := testDB(t)
	clientID, courtID := seedPair(t, db)
	repo := NewReservationRepo(db)
	mustReserve(t, repo, clientID, courtID, "2024-03-10", "10:00", "11:00")

	r := &domain.Reservation{Date: "2024-03-10", StartTime: "10:30", EndTime: "11:30", ClientID: clientID, CourtID: courtID}
	err := repo.CreateWithNoOverlap(context.Background(), r)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	var n int64
	db.Model(&domain.Reservation{}).Count(&n)
	if n != 1 {
		t.Errorf("expected 1 reservation after rejected attempt, got %d", n)
	}
}

func TestCreateWithNoOverlapMissingRefs(t *testing.T) {
	db := testDB(t)
	clientID, courtID := seedPair(t, db)
	repo := NewReservationRepo(db)

	r := &domain.Reservation{Date: "2024-03-10", StartTime: "10:00", EndTime: "11:00", ClientID: 999, CourtID: courtID}
	if err := repo.CreateWithNoOverlap(context.Background(), r); !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}

	r = &domain.Reservation{Date: "2024-03-10", StartTime: "10:00", EndTime: "11:00", ClientID: clientID, CourtID: 999}
	if err := repo.CreateWithNoOverlap(context.Background(), r); !errors.Is(err, domain.ErrCourtNotFound) {
		t.Errorf("expected ErrCourtNotFound, got %v", err)
	}

	var n int64
	db.Model(&domain.Reservation{}).Count(&n)
	if n != 0 {
		t.Errorf("expected no reservations, got %d", n)
	}
}

func TestListOrdering(t *testing.T) {
	db := testDB(t)
	clientID, courtID := seedPair(t, db)
	repo := NewReservationRepo(db)
	mustReserve(t, repo, clientID, courtID, "2024-01-05", "10:00", "11:00")
	mustReserve(t, repo, clientID, courtID, "2024-02-01", "15:00", "16:00")
	mustReserve(t, repo, clientID, courtID, "2024-02-01", "08:00", "09:00")

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 reservations, got %d", len(all))
	}
	if all[0].Date != "2024-02-01" || all[0].StartTime != "08:00" {
		t.Errorf("first should be 2024-02-01 08:00, got %s %s", all[0].Date, all[0].StartTime)
	}
	if all[2].Date != "2024-01-05" {
		t.Errorf("last should be 2024-01-05, got %s", all[2].Date)
	}

	byClient, err := repo.ListByClient(context.Background(), clientID)
	if err != nil {
		t.Fatalf("list by client: %v", err)
	}
	if byClient[0].Date != "2024-02-01" {
		t.Errorf("history should start with the newest date, got %s", byClient[0].Date)
	}
}

func TestSnapshot(t *testing.T) {
	db := testDB(t)
	seedPair(t, db)

	path := filepath.Join(t.TempDir(), "snap.db")
	if err := Snapshot(context.Background(), db, path); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat snapshot: %v", err)
	}
	if info.Size() == 0 {
		t.Error("snapshot file is empty")
	}
}

func TestAuditRecentNewestFirst(t *testing.T) {
	db := testDB(t)
	repo := NewAuditRepo(db)
	for _, action := range []string{"first", "second", "third"} {
		if err := repo.Append(context.Background(), &domain.AuditEntry{
			Actor: "system", Action: action, Outcome: domain.OutcomeSuccess, SourceIP: "127.0.0.1",
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.Recent(context.Background(), 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Action != "third" || got[1].Action != "second" {
		t.Errorf("expected newest first, got %q then %q", got[0].Action, got[1].Action)
	}
}
