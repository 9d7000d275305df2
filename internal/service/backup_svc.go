package service

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"gorm.io/gorm"

	"court-reservation-server/internal/domain"
	"court-reservation-server/internal/events"
	"court-reservation-server/internal/repository"
	"court-reservation-server/pkg/mq"
)

// BackupService snapshots the database into a timestamped file using
// the storage engine's own export. No shell, no external dump tool.
type BackupService struct {
	db    *gorm.DB
	dir   string
	audit *AuditService
	pub   *mq.Publisher // nil when messaging is disabled
	now   func() time.Time
}

func NewBackupService(db *gorm.DB, dir string, audit *AuditService, pub *mq.Publisher) *BackupService {
	return &BackupService{db: db, dir: dir, audit: audit, pub: pub, now: time.Now}
}

// Run writes the snapshot and returns its file name. Success and
// failure are both audited.
func (s *BackupService) Run(ctx context.Context, actor, sourceIP string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.audit.Record(ctx, actor, "backup failed: "+err.Error(), domain.OutcomeFailure, sourceIP)
		return "", err
	}
	name := "backup_" + s.now().Format("20060102_150405") + ".db"
	if err := repository.Snapshot(ctx, s.db, filepath.Join(s.dir, name)); err != nil {
		s.audit.Record(ctx, actor, "backup failed: "+err.Error(), domain.OutcomeFailure, sourceIP)
		return "", err
	}
	s.audit.Record(ctx, actor, "backup created: "+name, domain.OutcomeSuccess, sourceIP)
	if s.pub != nil {
		_ = s.pub.PublishJSON(ctx, events.RKBackupCreated, events.BackupCreated{File: name})
	}
	return name, nil
}
