package storage

import (
	"context"

	"github.com/tasktick/tasktick/internal/model"
)

// Repository persists the whole application state. Load never fails on a
// missing or unreadable document: the contract is to fall back to a fresh
// default state so a corrupt file can't brick the app.
type Repository interface {
	Load(ctx context.Context) (model.AppState, error)
	Save(ctx context.Context, state model.AppState) error
}
