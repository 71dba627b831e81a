package service

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is reported when an id does not resolve to a stored row.
	ErrNotFound = errors.New("record not found")
	// ErrRestricted is reported when a delete is blocked by dependent rows.
	ErrRestricted = errors.New("record still has dependent records")
)

// translate maps driver-level failures onto the service error taxonomy.
// Anything unrecognized passes through untouched and propagates to the
// top-level error handler.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrRestricted
	}
	return err
}
