// File: services/session/interface.go
package session

import (
	"context"

	"staycalc/models"
)

// Repository keeps one BookingFields record per session id.
//
// Get returns an empty record, not an error, for an unknown id. Callers do a
// plain read-modify-write: two concurrent turns on the same id can overwrite
// each other's update. That is accepted for a single-user chat flow.
type Repository interface {
	Get(ctx context.Context, sessionID string) (*models.BookingFields, error)
	Put(ctx context.Context, sessionID string, fields *models.BookingFields) error
	Delete(ctx context.Context, sessionID string) error
}
