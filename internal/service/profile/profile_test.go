package profile

import (
	"context"
	"testing"
	"time"

	"humsafar-service/internal/domain/identity"
	"humsafar-service/internal/domain/profile"
	xerrors "humsafar-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeIdentityRepo struct {
	identities map[string]*identity.Identity
}

func (f *fakeIdentityRepo) Upsert(_ context.Context, id *identity.Identity) error {
	f.identities[id.ID] = id
	return nil
}

func (f *fakeIdentityRepo) FindByID(_ context.Context, id string) (*identity.Identity, error) {
	ident, ok := f.identities[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return ident, nil
}

func (f *fakeIdentityRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.identities[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.identities, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[int64]*profile.UserProfile
	nextID   int64
}

func (f *fakeProfileRepo) Create(_ context.Context, p *profile.UserProfile) error {
	for _, existing := range f.profiles {
		if existing.IdentityID == p.IdentityID {
			return xerrors.ErrDuplicateEntry
		}
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id int64) (*profile.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) FindByIdentity(_ context.Context, identityID string) (*profile.UserProfile, error) {
	for _, p := range f.profiles {
		if p.IdentityID == identityID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeProfileRepo) Update(_ context.Context, p *profile.UserProfile) error {
	if _, ok := f.profiles[p.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *p
	f.profiles[p.ID] = &cp
	return nil
}

func (f *fakeProfileRepo) Deactivate(_ context.Context, p *profile.UserProfile) error {
	return f.Update(context.Background(), p)
}

func (f *fakeProfileRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.profiles[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileRepo) List(_ context.Context, _ *profile.ProfileListFilters) ([]profile.UserProfile, error) {
	out := []profile.UserProfile{}
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func newTestService() (*ProfileService, *fakeProfileRepo, *fakeIdentityRepo) {
	profiles := &fakeProfileRepo{profiles: map[int64]*profile.UserProfile{}}
	identities := &fakeIdentityRepo{identities: map[string]*identity.Identity{
		"user-1":  {ID: "user-1", Username: "asad", IsStaff: false},
		"admin-1": {ID: "admin-1", Username: "admin", IsStaff: true},
	}}
	return NewProfileService(profiles, identities, zap.NewNop()), profiles, identities
}

func validCreateRequest() *profile.CreateProfileRequest {
	return &profile.CreateProfileRequest{
		Birthdate:      "1995-04-12",
		Gender:         "M",
		Role:           "COMPANION",
		PrimaryContact: "+92-300-1234567",
		Landmark:       "Near the main gate",
		Town:           "gulshan",
	}
}

func TestCreateProfile(t *testing.T) {
	svc, _, _ := newTestService()

	p, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	if p.ID == 0 {
		t.Error("expected an assigned ID")
	}
	if p.IdentityID != "user-1" {
		t.Errorf("identity defaulted to %q, want acting identity", p.IdentityID)
	}
	if !p.Active {
		t.Error("new profile must start active")
	}
	if p.Town != "GULSHAN" {
		t.Errorf("town stored as %q, want normalized GULSHAN", p.Town)
	}
	if p.CreatedBy != "user-1" || p.UpdatedBy != "user-1" {
		t.Errorf("audit stamp = %q/%q, want acting identity on both", p.CreatedBy, p.UpdatedBy)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*profile.CreateProfileRequest)
	}{
		{"missing primary contact", func(r *profile.CreateProfileRequest) { r.PrimaryContact = " " }},
		{"missing landmark", func(r *profile.CreateProfileRequest) { r.Landmark = "" }},
		{"unknown town", func(r *profile.CreateProfileRequest) { r.Town = "ATLANTIS" }},
		{"bad gender", func(r *profile.CreateProfileRequest) { r.Gender = "X" }},
		{"bad role", func(r *profile.CreateProfileRequest) { r.Role = "DRIVER" }},
		{"bad birthdate", func(r *profile.CreateProfileRequest) { r.Birthdate = "12/04/1995" }},
	}

	svc, repo, _ := newTestService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			if _, err := svc.CreateProfile(context.Background(), "user-1", req); !xerrors.Is(err, xerrors.ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
	if len(repo.profiles) != 0 {
		t.Errorf("%d profiles persisted by rejected requests", len(repo.profiles))
	}
}

func TestCreateProfileUnknownIdentity(t *testing.T) {
	svc, _, _ := newTestService()
	req := validCreateRequest()
	req.IdentityID = "ghost"

	if _, err := svc.CreateProfile(context.Background(), "user-1", req); !xerrors.Is(err, xerrors.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCreateProfileDuplicateIdentity(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest()); err != nil {
		t.Fatalf("first CreateProfile: %v", err)
	}
	if _, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest()); !xerrors.Is(err, xerrors.ErrDuplicateEntry) {
		t.Errorf("got %v, want ErrDuplicateEntry", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService()
	p, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	town := "korangi"
	bio := "Commutes daily to Clifton"
	updated, err := svc.UpdateProfile(context.Background(), "admin-1", p.ID, &profile.UpdateProfileRequest{
		Town: &town,
		Bio:  &bio,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Town != "KORANGI" {
		t.Errorf("town = %q, want KORANGI", updated.Town)
	}
	if updated.Bio != bio {
		t.Errorf("bio = %q, want %q", updated.Bio, bio)
	}
	if updated.UpdatedBy != "admin-1" {
		t.Errorf("updated_by = %q, want admin-1", updated.UpdatedBy)
	}
	if updated.CreatedBy != "user-1" {
		t.Errorf("created_by = %q, must not change on update", updated.CreatedBy)
	}
}

func TestUpdateProfileCannotClearRequiredFields(t *testing.T) {
	svc, _, _ := newTestService()
	p, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	empty := ""
	if _, err := svc.UpdateProfile(context.Background(), "user-1", p.ID, &profile.UpdateProfileRequest{PrimaryContact: &empty}); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("clearing primary contact: got %v, want ErrInvalidInput", err)
	}
	if _, err := svc.UpdateProfile(context.Background(), "user-1", p.ID, &profile.UpdateProfileRequest{Landmark: &empty}); !xerrors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("clearing landmark: got %v, want ErrInvalidInput", err)
	}
}

func TestDeactivateProfileIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	p, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	first, err := svc.DeactivateProfile(context.Background(), "user-1", p.ID)
	if err != nil {
		t.Fatalf("DeactivateProfile: %v", err)
	}
	if first.Active {
		t.Error("profile still active after deactivation")
	}
	if first.DateDeactivated == nil {
		t.Fatal("deactivation timestamp not recorded")
	}

	time.Sleep(time.Millisecond)
	second, err := svc.DeactivateProfile(context.Background(), "admin-1", p.ID)
	if err != nil {
		t.Fatalf("second DeactivateProfile: %v", err)
	}
	if !second.DateDeactivated.Equal(*first.DateDeactivated) {
		t.Error("second deactivation moved the recorded timestamp")
	}
	if second.UpdatedBy != first.UpdatedBy {
		t.Error("second deactivation re-stamped the record")
	}
}

func TestDeleteProfileRequiresStaff(t *testing.T) {
	svc, repo, _ := newTestService()
	p, err := svc.CreateProfile(context.Background(), "user-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	if err := svc.DeleteProfile(context.Background(), "user-1", p.ID); !xerrors.Is(err, xerrors.ErrForbidden) {
		t.Errorf("non-staff delete: got %v, want ErrForbidden", err)
	}
	if _, ok := repo.profiles[p.ID]; !ok {
		t.Fatal("profile removed despite forbidden delete")
	}

	if err := svc.DeleteProfile(context.Background(), "admin-1", p.ID); err != nil {
		t.Fatalf("staff delete: %v", err)
	}
	if _, ok := repo.profiles[p.ID]; ok {
		t.Error("profile still present after staff delete")
	}
}
