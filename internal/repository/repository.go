package repository

import (
	"context"
	"errors"

	"algoconfig/internal/models"
)

// ErrNotFound is returned by id-addressed operations when no record
// with the given id exists in the collection.
var ErrNotFound = errors.New("config not found")

// Repository owns the canonical collection of algorithm configurations.
// Implementations load the collection once at construction and keep it
// durable after every mutation. Records passed to Insert must already
// carry their id and timestamps; the repository never assigns either.
type Repository interface {
	// ListConfigs returns all records in insertion order.
	ListConfigs(ctx context.Context) ([]models.AlgoConfig, error)
	// GetConfigByID returns the matching record, or ErrNotFound.
	GetConfigByID(ctx context.Context, id string) (*models.AlgoConfig, error)
	// InsertConfig appends a fully formed record and persists.
	InsertConfig(ctx context.Context, item *models.AlgoConfig) error
	// ReplaceConfig overwrites the record with the same id as item,
	// persists, and returns ErrNotFound if the id is absent. The
	// caller is responsible for preserving id and createdAt.
	ReplaceConfig(ctx context.Context, item *models.AlgoConfig) error
	// DeleteConfig removes the record by id and persists, or returns
	// ErrNotFound.
	DeleteConfig(ctx context.Context, id string) error
}
