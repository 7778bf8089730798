package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"algoconfig/internal/models"
	"algoconfig/internal/repository"
	"algoconfig/internal/validation"
)

// ConfigService gates every mutation behind validation and owns the
// server-assigned fields (id, createdAt, updatedAt). A payload that
// fails validation never reaches the repository.
type ConfigService struct {
	Repo   repository.Repository
	Logger *zap.Logger
}

func (s *ConfigService) List(ctx context.Context) ([]models.AlgoConfig, error) {
	return s.Repo.ListConfigs(ctx)
}

func (s *ConfigService) Get(ctx context.Context, id string) (*models.AlgoConfig, error) {
	return s.Repo.GetConfigByID(ctx, id)
}

// Create returns field errors (and no record) when the payload is
// invalid; the error return is reserved for repository failures.
func (s *ConfigService) Create(ctx context.Context, p models.ConfigPayload) (*models.AlgoConfig, validation.Errors, error) {
	if errs := validation.Validate(p); len(errs) > 0 {
		return nil, errs, nil
	}

	now := time.Now().UTC()
	item := &models.AlgoConfig{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(p.Name),
		Instrument:      p.Instrument,
		Timeframe:       p.Timeframe,
		EntryThreshold:  *p.EntryThreshold,
		ExitThreshold:   *p.ExitThreshold,
		MaxLossPercent:  *p.MaxLossPercent,
		MaxTradesPerDay: int(*p.MaxTradesPerDay),
		Enabled:         true,
		Notes:           p.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if p.Enabled != nil {
		item.Enabled = *p.Enabled
	}
	if p.StopLossEnabled != nil {
		item.StopLossEnabled = *p.StopLossEnabled
	}

	if err := s.Repo.InsertConfig(ctx, item); err != nil {
		return nil, nil, err
	}
	s.Logger.Info("config created", zap.String("id", item.ID), zap.String("name", item.Name))
	return item, nil, nil
}

// Update replaces the mutable fields wholesale, preserving id and
// createdAt and refreshing updatedAt. Omitted booleans keep their
// stored value so a partial form cannot silently disable a strategy.
func (s *ConfigService) Update(ctx context.Context, id string, p models.ConfigPayload) (*models.AlgoConfig, validation.Errors, error) {
	existing, err := s.Repo.GetConfigByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if errs := validation.Validate(p); len(errs) > 0 {
		return nil, errs, nil
	}

	item := &models.AlgoConfig{
		ID:              existing.ID,
		Name:            strings.TrimSpace(p.Name),
		Instrument:      p.Instrument,
		Timeframe:       p.Timeframe,
		EntryThreshold:  *p.EntryThreshold,
		ExitThreshold:   *p.ExitThreshold,
		MaxLossPercent:  *p.MaxLossPercent,
		MaxTradesPerDay: int(*p.MaxTradesPerDay),
		Enabled:         existing.Enabled,
		StopLossEnabled: existing.StopLossEnabled,
		Notes:           p.Notes,
		CreatedAt:       existing.CreatedAt,
		UpdatedAt:       time.Now().UTC(),
	}
	if p.Enabled != nil {
		item.Enabled = *p.Enabled
	}
	if p.StopLossEnabled != nil {
		item.StopLossEnabled = *p.StopLossEnabled
	}

	if err := s.Repo.ReplaceConfig(ctx, item); err != nil {
		return nil, nil, err
	}
	s.Logger.Info("config updated", zap.String("id", item.ID))
	return item, nil, nil
}

// Delete removes the record and returns it, or ErrNotFound. No
// validation beyond the existence check.
func (s *ConfigService) Delete(ctx context.Context, id string) (*models.AlgoConfig, error) {
	existing, err := s.Repo.GetConfigByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteConfig(ctx, id); err != nil {
		return nil, err
	}
	s.Logger.Info("config deleted", zap.String("id", id))
	return existing, nil
}
