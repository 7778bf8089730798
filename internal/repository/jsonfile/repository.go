// Package jsonfile persists the configuration collection as a single
// JSON array on disk, rewritten in full after every mutation. The
// in-memory slice stays authoritative for the process lifetime: a
// failed write is logged and served over, never surfaced to callers.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"algoconfig/internal/models"
	"algoconfig/internal/repository"
)

type Repository struct {
	path   string
	logger *zap.Logger

	mu      sync.Mutex
	configs []models.AlgoConfig
}

// New loads the backing file if present. A missing file starts an
// empty collection; an unreadable or corrupt file does too, with a
// warning, so a bad data file can never keep the service down.
func New(path string, logger *zap.Logger) *Repository {
	r := &Repository{path: path, logger: logger}
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read config store, starting empty",
				zap.String("path", path), zap.Error(err))
		}
		return r
	}
	if err := json.Unmarshal(b, &r.configs); err != nil {
		logger.Warn("could not parse config store, starting empty",
			zap.String("path", path), zap.Error(err))
		r.configs = nil
	}
	return r
}

func (r *Repository) ListConfigs(ctx context.Context) ([]models.AlgoConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AlgoConfig, len(r.configs))
	copy(out, r.configs)
	return out, nil
}

func (r *Repository) GetConfigByID(ctx context.Context, id string) (*models.AlgoConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].ID == id {
			item := r.configs[i]
			return &item, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *Repository) InsertConfig(ctx context.Context, item *models.AlgoConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs = append(r.configs, *item)
	r.persistLocked()
	return nil
}

func (r *Repository) ReplaceConfig(ctx context.Context, item *models.AlgoConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].ID == item.ID {
			r.configs[i] = *item
			r.persistLocked()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *Repository) DeleteConfig(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.configs {
		if r.configs[i].ID == id {
			r.configs = append(r.configs[:i], r.configs[i+1:]...)
			r.persistLocked()
			return nil
		}
	}
	return repository.ErrNotFound
}

// persistLocked rewrites the whole collection. Best effort: the caller
// already mutated memory, and a crash or write failure here only loses
// durability of the latest write, not the running collection.
func (r *Repository) persistLocked() {
	items := r.configs
	if items == nil {
		items = []models.AlgoConfig{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		r.logger.Warn("could not encode config store", zap.Error(err))
		return
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			r.logger.Warn("could not create config store directory",
				zap.String("dir", dir), zap.Error(err))
			return
		}
	}
	if err := os.WriteFile(r.path, b, 0o644); err != nil {
		r.logger.Warn("could not persist config store",
			zap.String("path", r.path), zap.Error(err))
	}
}
