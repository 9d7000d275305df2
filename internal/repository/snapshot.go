package repository

import (
	"context"

	"gorm.io/gorm"

	"court-reservation-server/internal/domain"
)

// Snapshot writes a consistent copy of the database to path using the
// engine's own export (VACUUM INTO on sqlite). The target file either
// appears complete or not at all; there is no shelling out to external
// dump tools.
func Snapshot(ctx context.Context, db *gorm.DB, path string) error {
	if db.Dialector.Name() != "sqlite" {
		return domain.ErrSnapshotUnsupported
	}
	return db.WithContext(ctx).Exec("VACUUM INTO ?", path).Error
}
