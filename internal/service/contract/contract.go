// internal/service/contract/contract.go
package contract

import (
	"context"
	"fmt"
	"time"

	"humsafar-service/internal/domain/contract"
	"humsafar-service/internal/domain/identity"
	"humsafar-service/internal/domain/profile"
	"humsafar-service/internal/domain/vehicle"
	"humsafar-service/internal/pkg/audit"
	xerrors "humsafar-service/internal/pkg/errors"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type ContractService struct {
	contractRepo contract.Repository
	vehicleRepo  vehicle.Repository
	profileRepo  profile.Repository
	identityRepo identity.Repository
	logger       *zap.Logger
}

func NewContractService(contractRepo contract.Repository, vehicleRepo vehicle.Repository, profileRepo profile.Repository, identityRepo identity.Repository, logger *zap.Logger) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		vehicleRepo:  vehicleRepo,
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
		logger:       logger,
	}
}

// CreateContract validates and persists a new active cost-sharing
// agreement. Shares are percentages in [0, 100], the period must not be
// inverted, and the schedule document is stored exactly as received.
func (s *ContractService) CreateContract(ctx context.Context, actorID string, req *contract.CreateContractRequest) (*contract.Contract, error) {
	if req.FuelShare < 0 || req.FuelShare > 100 {
		return nil, xerrors.Invalidf("fuel share must be between 0 and 100")
	}
	if req.MaintenanceShare < 0 || req.MaintenanceShare > 100 {
		return nil, xerrors.Invalidf("maintenance share must be between 0 and 100")
	}

	start, err := time.Parse(dateLayout, req.EffectiveStartDate)
	if err != nil {
		return nil, xerrors.Invalidf("effective start date %q is not a valid date", req.EffectiveStartDate)
	}
	expiry, err := time.Parse(dateLayout, req.ExpiryDate)
	if err != nil {
		return nil, xerrors.Invalidf("expiry date %q is not a valid date", req.ExpiryDate)
	}
	if expiry.Before(start) {
		return nil, xerrors.Invalidf("expiry date precedes the effective start date")
	}

	if !contract.ValidSchedule(contract.Schedule(req.Schedule)) {
		return nil, xerrors.Invalidf("schedule must be a JSON object or array")
	}

	if _, err := s.vehicleRepo.FindByID(ctx, req.VehicleID); err != nil {
		return nil, xerrors.Wrap(err, "vehicle lookup failed")
	}
	if _, err := s.profileRepo.FindByID(ctx, req.CompanionProfileID); err != nil {
		return nil, xerrors.Wrap(err, "companion profile lookup failed")
	}

	c := &contract.Contract{
		VehicleID:          req.VehicleID,
		CompanionProfileID: req.CompanionProfileID,
		EffectiveStartDate: start,
		ExpiryDate:         expiry,
		IsActive:           true,
		FuelShare:          req.FuelShare,
		MaintenanceShare:   req.MaintenanceShare,
		Schedule:           contract.Schedule(req.Schedule),
		Stamp:              audit.NewStamp(actorID, time.Now()),
	}

	if err := s.contractRepo.Create(ctx, c); err != nil {
		s.logger.Error("failed to create contract", zap.Error(err))
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.logger.Info("contract created",
		zap.Int64("contract_id", c.ID),
		zap.Int64("vehicle_id", c.VehicleID),
		zap.Int64("companion_profile_id", c.CompanionProfileID),
	)

	return c, nil
}

// GetContract retrieves a contract by ID
func (s *ContractService) GetContract(ctx context.Context, id int64) (*contract.Contract, error) {
	return s.contractRepo.FindByID(ctx, id)
}

// ListContracts retrieves contracts with optional filters
func (s *ContractService) ListContracts(ctx context.Context, filters *contract.ContractListFilters) ([]contract.Contract, error) {
	return s.contractRepo.List(ctx, filters)
}

// TerminateContract flips the contract inactive. Termination is one-way
// and idempotent: an already-inactive contract is returned unchanged.
func (s *ContractService) TerminateContract(ctx context.Context, actorID string, id int64) (*contract.Contract, error) {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !c.IsActive {
		return c, nil
	}

	c.IsActive = false
	c.Touch(actorID, time.Now())

	if err := s.contractRepo.Terminate(ctx, c); err != nil {
		s.logger.Error("failed to terminate contract", zap.Error(err))
		return nil, fmt.Errorf("failed to terminate contract: %w", err)
	}

	s.logger.Info("contract terminated",
		zap.Int64("contract_id", id),
		zap.String("actor_id", actorID),
	)

	return c, nil
}

// DeleteContract hard-deletes a contract. Permitted only when the
// companion profile's identity carries the staff flag.
func (s *ContractService) DeleteContract(ctx context.Context, actorID string, id int64) error {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	companion, err := s.profileRepo.FindByID(ctx, c.CompanionProfileID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrForbidden
		}
		return xerrors.Wrap(err, "companion profile lookup failed")
	}

	companionIdentity, err := s.identityRepo.FindByID(ctx, companion.IdentityID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return xerrors.ErrForbidden
		}
		return xerrors.Wrap(err, "companion identity lookup failed")
	}
	if !companionIdentity.IsStaff {
		return xerrors.ErrForbidden
	}

	if err := s.contractRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("contract deleted",
		zap.Int64("contract_id", id),
		zap.String("actor_id", actorID),
	)

	return nil
}
