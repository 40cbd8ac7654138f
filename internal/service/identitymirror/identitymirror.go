// internal/service/identitymirror/identitymirror.go
package identitymirror

import (
	"context"
	"fmt"
	"time"

	"humsafar-service/internal/domain/identity"
	xerrors "humsafar-service/internal/pkg/errors"

	"go.uber.org/zap"
)

// IdentityService maintains the local mirror of externally-managed
// identities. Records are written from verified token claims only; the
// service never authenticates anyone itself.
type IdentityService struct {
	identityRepo identity.Repository
	logger       *zap.Logger
}

func NewIdentityService(identityRepo identity.Repository, logger *zap.Logger) *IdentityService {
	return &IdentityService{identityRepo: identityRepo, logger: logger}
}

// Mirror upserts the identity row from verified claims so that foreign
// keys onto identities always have a target. Called on every
// authenticated request.
func (s *IdentityService) Mirror(ctx context.Context, id, username, fullName string, isStaff bool) (*identity.Identity, error) {
	if id == "" {
		return nil, xerrors.Invalidf("identity id is required")
	}

	ident := &identity.Identity{
		ID:        id,
		Username:  username,
		FullName:  fullName,
		IsStaff:   isStaff,
		UpdatedOn: time.Now(),
	}

	if err := s.identityRepo.Upsert(ctx, ident); err != nil {
		s.logger.Error("failed to mirror identity", zap.Error(err), zap.String("identity_id", id))
		return nil, fmt.Errorf("failed to mirror identity: %w", err)
	}
	return ident, nil
}

// GetIdentity retrieves a mirrored identity by ID
func (s *IdentityService) GetIdentity(ctx context.Context, id string) (*identity.Identity, error) {
	return s.identityRepo.FindByID(ctx, id)
}

// DeleteIdentity removes a mirrored identity together with its profile,
// owned vehicles, and their contracts. Staff only.
func (s *IdentityService) DeleteIdentity(ctx context.Context, actorID, id string) error {
	actor, err := s.identityRepo.FindByID(ctx, actorID)
	if err != nil {
		return xerrors.Wrap(err, "actor lookup failed")
	}
	if !actor.IsStaff {
		return xerrors.ErrForbidden
	}

	if err := s.identityRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("identity deleted",
		zap.String("identity_id", id),
		zap.String("actor_id", actorID),
	)

	return nil
}
