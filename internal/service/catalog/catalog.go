// internal/service/catalog/catalog.go
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"humsafar-service/internal/domain/catalog"
	"humsafar-service/internal/domain/identity"
	"humsafar-service/internal/pkg/audit"
	"humsafar-service/internal/pkg/cache"
	xerrors "humsafar-service/internal/pkg/errors"
	"humsafar-service/internal/refdata"

	"go.uber.org/zap"
)

// listCacheKey caches the full catalog listing; invalidated on every write.
const listCacheKey = "catalog:models"

type CatalogService struct {
	modelRepo    catalog.Repository
	identityRepo identity.Repository
	cache        *cache.Cache
	logger       *zap.Logger
}

func NewCatalogService(modelRepo catalog.Repository, identityRepo identity.Repository, c *cache.Cache, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		modelRepo:    modelRepo,
		identityRepo: identityRepo,
		cache:        c,
		logger:       logger,
	}
}

// CreateModel validates and persists a new catalog entry. Model name
// defaults to "Unknown" and capacity to 2 when unspecified.
func (s *CatalogService) CreateModel(ctx context.Context, actorID string, req *catalog.CreateModelRequest) (*catalog.VehicleModel, error) {
	if strings.TrimSpace(req.Vendor) == "" {
		return nil, xerrors.Invalidf("vendor is required")
	}
	vehicleType := refdata.VehicleType(strings.ToUpper(req.Type))
	if !refdata.ValidVehicleType(vehicleType) {
		return nil, xerrors.Invalidf("unknown vehicle type %q", req.Type)
	}

	modelName := strings.TrimSpace(req.Model)
	if modelName == "" {
		modelName = catalog.DefaultModelName
	}

	capacity := catalog.DefaultCapacity
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, xerrors.Invalidf("capacity must be a positive integer")
		}
		capacity = *req.Capacity
	}

	m := &catalog.VehicleModel{
		Vendor:   req.Vendor,
		Model:    modelName,
		Type:     vehicleType,
		Capacity: capacity,
		Stamp:    audit.NewStamp(actorID, time.Now()),
	}

	if err := s.modelRepo.Create(ctx, m); err != nil {
		s.logger.Error("failed to create vehicle model", zap.Error(err))
		return nil, fmt.Errorf("failed to create vehicle model: %w", err)
	}

	s.cache.Invalidate(ctx, listCacheKey)
	s.logger.Info("vehicle model created",
		zap.Int64("model_id", m.ID),
		zap.String("vendor", m.Vendor),
		zap.String("model", m.Model),
	)

	return m, nil
}

// GetModel retrieves a catalog entry by ID
func (s *CatalogService) GetModel(ctx context.Context, id int64) (*catalog.VehicleModel, error) {
	return s.modelRepo.FindByID(ctx, id)
}

// ListModels returns the catalog ordered by vendor, served from the read
// cache when warm.
func (s *CatalogService) ListModels(ctx context.Context) ([]catalog.VehicleModel, error) {
	var cached []catalog.VehicleModel
	if hit, err := s.cache.Get(ctx, listCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	models, err := s.modelRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, listCacheKey, models)
	return models, nil
}

// UpdateModel patches a catalog entry and re-stamps updated_by, the field
// the delete rule is keyed off.
func (s *CatalogService) UpdateModel(ctx context.Context, actorID string, id int64, req *catalog.UpdateModelRequest) (*catalog.VehicleModel, error) {
	m, err := s.modelRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Vendor != nil {
		if strings.TrimSpace(*req.Vendor) == "" {
			return nil, xerrors.Invalidf("vendor cannot be cleared")
		}
		m.Vendor = *req.Vendor
	}
	if req.Model != nil {
		if strings.TrimSpace(*req.Model) == "" {
			m.Model = catalog.DefaultModelName
		} else {
			m.Model = *req.Model
		}
	}
	if req.Type != nil {
		vehicleType := refdata.VehicleType(strings.ToUpper(*req.Type))
		if !refdata.ValidVehicleType(vehicleType) {
			return nil, xerrors.Invalidf("unknown vehicle type %q", *req.Type)
		}
		m.Type = vehicleType
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, xerrors.Invalidf("capacity must be a positive integer")
		}
		m.Capacity = *req.Capacity
	}

	m.Touch(actorID, time.Now())

	if err := s.modelRepo.Update(ctx, m); err != nil {
		s.logger.Error("failed to update vehicle model", zap.Error(err))
		return nil, fmt.Errorf("failed to update vehicle model: %w", err)
	}

	s.cache.Invalidate(ctx, listCacheKey)
	s.logger.Info("vehicle model updated",
		zap.Int64("model_id", id),
		zap.String("actor_id", actorID),
	)

	return m, nil
}

// DeleteModel removes a catalog entry together with its dependent vehicles
// and their contracts. Deletion is permitted only when the identity
// recorded as the entry's last updater carries the staff flag; the
// caller's own privilege is not consulted.
func (s *CatalogService) DeleteModel(ctx context.Context, actorID string, id int64) error {
	m, err := s.modelRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	updater, err := s.identityRepo.FindByID(ctx, m.UpdatedBy)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrForbidden
		}
		return xerrors.Wrap(err, "updater lookup failed")
	}
	if !updater.IsStaff {
		return xerrors.ErrForbidden
	}

	if err := s.modelRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, listCacheKey)
	s.logger.Info("vehicle model deleted",
		zap.Int64("model_id", id),
		zap.String("actor_id", actorID),
		zap.String("authorized_by_updater", m.UpdatedBy),
	)

	return nil
}
