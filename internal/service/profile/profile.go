// internal/service/profile/profile.go
package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"humsafar-service/internal/domain/identity"
	"humsafar-service/internal/domain/profile"
	"humsafar-service/internal/pkg/audit"
	xerrors "humsafar-service/internal/pkg/errors"
	"humsafar-service/internal/refdata"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type ProfileService struct {
	profileRepo  profile.Repository
	identityRepo identity.Repository
	logger       *zap.Logger
}

func NewProfileService(profileRepo profile.Repository, identityRepo identity.Repository, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profileRepo:  profileRepo,
		identityRepo: identityRepo,
		logger:       logger,
	}
}

// CreateProfile validates the plain field values and persists a new active
// profile stamped to the acting identity. The profile is one-to-one with
// its identity record.
func (s *ProfileService) CreateProfile(ctx context.Context, actorID string, req *profile.CreateProfileRequest) (*profile.UserProfile, error) {
	identityID := req.IdentityID
	if identityID == "" {
		identityID = actorID
	}

	if strings.TrimSpace(req.PrimaryContact) == "" {
		return nil, xerrors.Invalidf("primary contact is required")
	}
	if strings.TrimSpace(req.Landmark) == "" {
		return nil, xerrors.Invalidf("landmark is required")
	}
	if !refdata.ValidTown(req.Town) {
		return nil, xerrors.Invalidf("town %q is not in the allowed town list", req.Town)
	}
	if !refdata.ValidGender(req.Gender) {
		return nil, xerrors.Invalidf("gender must be M or F")
	}
	role := refdata.UserRole(strings.ToUpper(req.Role))
	if !refdata.ValidRole(role) {
		return nil, xerrors.Invalidf("unknown role %q", req.Role)
	}
	birthdate, err := time.Parse(dateLayout, req.Birthdate)
	if err != nil {
		return nil, xerrors.Invalidf("birthdate %q is not a valid date", req.Birthdate)
	}

	// The identity record must already exist; profiles never create
	// accounts.
	if _, err := s.identityRepo.FindByID(ctx, identityID); err != nil {
		return nil, xerrors.Wrap(err, "identity lookup failed")
	}

	p := &profile.UserProfile{
		IdentityID:       identityID,
		Birthdate:        birthdate,
		Gender:           req.Gender,
		Role:             role,
		PrimaryContact:   req.PrimaryContact,
		AlternateContact: req.AlternateContact,
		Address:          req.Address,
		AddressLatitude:  req.AddressLatitude,
		AddressLongitude: req.AddressLongitude,
		Landmark:         req.Landmark,
		Town:             strings.ToUpper(strings.TrimSpace(req.Town)),
		Active:           true,
		Bio:              req.Bio,
		Stamp:            audit.NewStamp(actorID, time.Now()),
	}

	if err := s.profileRepo.Create(ctx, p); err != nil {
		if xerrors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, xerrors.Wrap(err, "identity already has a profile")
		}
		s.logger.Error("failed to create profile", zap.Error(err))
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("profile created",
		zap.Int64("profile_id", p.ID),
		zap.String("identity_id", p.IdentityID),
		zap.String("role", string(p.Role)),
	)

	return p, nil
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(ctx context.Context, id int64) (*profile.UserProfile, error) {
	return s.profileRepo.FindByID(ctx, id)
}

// GetProfileByIdentity retrieves the profile belonging to an identity
func (s *ProfileService) GetProfileByIdentity(ctx context.Context, identityID string) (*profile.UserProfile, error) {
	return s.profileRepo.FindByIdentity(ctx, identityID)
}

// ListProfiles retrieves profiles with optional filters
func (s *ProfileService) ListProfiles(ctx context.Context, filters *profile.ProfileListFilters) ([]profile.UserProfile, error) {
	return s.profileRepo.List(ctx, filters)
}

// UpdateProfile patches the editable fields. The active flag and
// deactivation timestamp cannot be reached from here.
func (s *ProfileService) UpdateProfile(ctx context.Context, actorID string, id int64, req *profile.UpdateProfileRequest) (*profile.UserProfile, error) {
	p, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PrimaryContact != nil {
		if strings.TrimSpace(*req.PrimaryContact) == "" {
			return nil, xerrors.Invalidf("primary contact cannot be cleared")
		}
		p.PrimaryContact = *req.PrimaryContact
	}
	if req.AlternateContact != nil {
		p.AlternateContact = req.AlternateContact
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.AddressLatitude != nil {
		p.AddressLatitude = req.AddressLatitude
	}
	if req.AddressLongitude != nil {
		p.AddressLongitude = req.AddressLongitude
	}
	if req.Landmark != nil {
		if strings.TrimSpace(*req.Landmark) == "" {
			return nil, xerrors.Invalidf("landmark cannot be cleared")
		}
		p.Landmark = *req.Landmark
	}
	if req.Town != nil {
		if !refdata.ValidTown(*req.Town) {
			return nil, xerrors.Invalidf("town %q is not in the allowed town list", *req.Town)
		}
		p.Town = strings.ToUpper(strings.TrimSpace(*req.Town))
	}
	if req.Bio != nil {
		p.Bio = *req.Bio
	}

	p.Touch(actorID, time.Now())

	if err := s.profileRepo.Update(ctx, p); err != nil {
		s.logger.Error("failed to update profile", zap.Error(err))
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info("profile updated",
		zap.Int64("profile_id", id),
		zap.String("actor_id", actorID),
	)

	return p, nil
}

// DeactivateProfile marks the profile inactive and records when. The
// operation is idempotent: an already-inactive profile is returned
// unchanged so the original deactivation timestamp is never overwritten.
func (s *ProfileService) DeactivateProfile(ctx context.Context, actorID string, id int64) (*profile.UserProfile, error) {
	p, err := s.profileRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !p.Active {
		return p, nil
	}

	now := time.Now()
	p.Active = false
	p.DateDeactivated = &now
	p.Touch(actorID, now)

	if err := s.profileRepo.Deactivate(ctx, p); err != nil {
		s.logger.Error("failed to deactivate profile", zap.Error(err))
		return nil, fmt.Errorf("failed to deactivate profile: %w", err)
	}

	s.logger.Info("profile deactivated",
		zap.Int64("profile_id", id),
		zap.String("actor_id", actorID),
	)

	return p, nil
}

// DeleteProfile hard-deletes a profile. Only a staff identity may do this;
// contracts naming the profile as companion are cascaded by the store.
func (s *ProfileService) DeleteProfile(ctx context.Context, actorID string, id int64) error {
	actor, err := s.identityRepo.FindByID(ctx, actorID)
	if err != nil {
		return xerrors.Wrap(err, "actor lookup failed")
	}
	if !actor.IsStaff {
		return xerrors.ErrForbidden
	}

	if err := s.profileRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("profile deleted",
		zap.Int64("profile_id", id),
		zap.String("actor_id", actorID),
	)

	return nil
}
