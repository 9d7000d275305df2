package domain

import "errors"

var (
	// ErrConflict means the requested range overlaps an existing
	// reservation on the same court and date.
	ErrConflict = errors.New("reservation_conflict")

	// ErrInvalidTimeRange covers malformed dates/times and ranges
	// where start >= end.
	ErrInvalidTimeRange = errors.New("invalid_time_range")

	// ErrMissingFields means a registration form arrived without its
	// required fields.
	ErrMissingFields = errors.New("missing_required_fields")

	ErrClientNotFound = errors.New("client_not_found")
	ErrCourtNotFound  = errors.New("court_not_found")

	// ErrSnapshotUnsupported is returned when the configured database
	// driver has no in-engine snapshot capability.
	ErrSnapshotUnsupported = errors.New("snapshot_unsupported")
)
