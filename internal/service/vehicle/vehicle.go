// internal/service/vehicle/vehicle.go
package vehicle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"humsafar-service/internal/domain/catalog"
	"humsafar-service/internal/domain/identity"
	"humsafar-service/internal/domain/vehicle"
	"humsafar-service/internal/pkg/audit"
	xerrors "humsafar-service/internal/pkg/errors"
	"humsafar-service/internal/refdata"

	"go.uber.org/zap"
)

type VehicleService struct {
	vehicleRepo  vehicle.Repository
	modelRepo    catalog.Repository
	identityRepo identity.Repository
	logger       *zap.Logger
}

func NewVehicleService(vehicleRepo vehicle.Repository, modelRepo catalog.Repository, identityRepo identity.Repository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo:  vehicleRepo,
		modelRepo:    modelRepo,
		identityRepo: identityRepo,
		logger:       logger,
	}
}

// RegisterVehicle validates and persists a new vehicle. The registration
// number must be unique; the color must be in the allow-list
// (case-insensitive) and is stored lowercased.
func (s *VehicleService) RegisterVehicle(ctx context.Context, actorID string, req *vehicle.RegisterVehicleRequest) (*vehicle.Vehicle, error) {
	regNo := strings.TrimSpace(req.RegistrationNumber)
	if regNo == "" {
		return nil, xerrors.Invalidf("registration number is required")
	}

	color := strings.TrimSpace(req.Color)
	if color == "" {
		color = vehicle.DefaultColor
	}
	if !refdata.ValidColor(color) {
		return nil, xerrors.Invalidf("color %q is not in the allowed color list", req.Color)
	}

	status := refdata.StatusAvailable
	if req.Status != "" {
		status = refdata.VehicleStatus(strings.ToUpper(req.Status))
		if !refdata.ValidVehicleStatus(status) {
			return nil, xerrors.Invalidf("unknown vehicle status %q", req.Status)
		}
	}

	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID = actorID
	}

	// Referenced rows must exist before the insert so the caller gets a
	// NotFound rather than a bare constraint error.
	if _, err := s.modelRepo.FindByID(ctx, req.ModelID); err != nil {
		return nil, xerrors.Wrap(err, "model lookup failed")
	}
	if _, err := s.identityRepo.FindByID(ctx, ownerID); err != nil {
		return nil, xerrors.Wrap(err, "owner lookup failed")
	}

	exists, err := s.vehicleRepo.ExistsByRegistration(ctx, regNo)
	if err != nil {
		return nil, fmt.Errorf("failed to check registration number: %w", err)
	}
	if exists {
		return nil, xerrors.Wrap(xerrors.ErrDuplicateEntry, fmt.Sprintf("registration number %s already exists", regNo))
	}

	now := time.Now()
	v := &vehicle.Vehicle{
		RegistrationNumber: regNo,
		Color:              strings.ToLower(color),
		ModelID:            req.ModelID,
		OwnerID:            ownerID,
		DateAdded:          now,
		Status:             status,
		Stamp:              audit.NewStamp(actorID, now),
	}

	// The unique constraint still backs this up if two registrations
	// race past the pre-check; exactly one insert wins.
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		if xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, xerrors.Wrap(err, fmt.Sprintf("registration number %s already exists", regNo))
		}
		s.logger.Error("failed to register vehicle", zap.Error(err))
		return nil, fmt.Errorf("failed to register vehicle: %w", err)
	}

	s.logger.Info("vehicle registered",
		zap.Int64("vehicle_id", v.ID),
		zap.String("registration_number", v.RegistrationNumber),
		zap.String("owner_id", v.OwnerID),
	)

	return v, nil
}

// GetVehicle retrieves a vehicle by ID
func (s *VehicleService) GetVehicle(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	return s.vehicleRepo.FindByID(ctx, id)
}

// GetVehicleByRegistration looks a vehicle up by its registration number
func (s *VehicleService) GetVehicleByRegistration(ctx context.Context, registrationNumber string) (*vehicle.Vehicle, error) {
	regNo := strings.TrimSpace(registrationNumber)
	if regNo == "" {
		return nil, xerrors.Invalidf("registration number is required")
	}
	return s.vehicleRepo.FindByRegistration(ctx, regNo)
}

// ListVehicles retrieves vehicles with optional filters
func (s *VehicleService) ListVehicles(ctx context.Context, filters *vehicle.VehicleListFilters) ([]vehicle.Vehicle, error) {
	if filters != nil {
		for _, st := range filters.Statuses {
			if !refdata.ValidVehicleStatus(refdata.VehicleStatus(strings.ToUpper(st))) {
				return nil, xerrors.Invalidf("unknown vehicle status %q", st)
			}
		}
	}
	return s.vehicleRepo.List(ctx, filters)
}

// UpdateStatus moves the vehicle to a new status. Any declared enum value
// is accepted; there is no restricted transition table.
func (s *VehicleService) UpdateStatus(ctx context.Context, actorID string, id int64, req *vehicle.UpdateStatusRequest) (*vehicle.Vehicle, error) {
	status := refdata.VehicleStatus(strings.ToUpper(req.Status))
	if !refdata.ValidVehicleStatus(status) {
		return nil, xerrors.Invalidf("unknown vehicle status %q", req.Status)
	}

	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Status = status
	v.Touch(actorID, time.Now())

	if err := s.vehicleRepo.UpdateStatus(ctx, v); err != nil {
		s.logger.Error("failed to update vehicle status", zap.Error(err))
		return nil, fmt.Errorf("failed to update vehicle status: %w", err)
	}

	s.logger.Info("vehicle status updated",
		zap.Int64("vehicle_id", id),
		zap.String("status", string(status)),
		zap.String("actor_id", actorID),
	)

	return v, nil
}

// DeleteVehicle removes a vehicle and, atomically with it, every contract
// that references it. Permitted only when the vehicle's owner identity
// carries the staff flag.
func (s *VehicleService) DeleteVehicle(ctx context.Context, actorID string, id int64) error {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	owner, err := s.identityRepo.FindByID(ctx, v.OwnerID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrForbidden
		}
		return xerrors.Wrap(err, "owner lookup failed")
	}
	if !owner.IsStaff {
		return xerrors.ErrForbidden
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("vehicle deleted",
		zap.Int64("vehicle_id", id),
		zap.String("registration_number", v.RegistrationNumber),
		zap.String("actor_id", actorID),
	)

	return nil
}
