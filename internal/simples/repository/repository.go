package repository

import (
	"context"
	"errors"

	"simples/internal/simples/model"
)

var ErrNotFound = errors.New("record not found")

type SystemRepository interface {
	// Find the first system row joined to the map whose external mapId
	// matches. Returns ErrNotFound when the join is empty.
	FindSystem(ctx context.Context, mapID, systemID string) (*model.SystemRecord, error)
	// Check that a connection can be acquired and answers.
	Ping(ctx context.Context) error
	// Release every pooled connection.
	Close() error
}
