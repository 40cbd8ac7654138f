package contract

import (
	"bytes"
	"context"
	"testing"
	"time"

	"humsafar-service/internal/domain/contract"
	"humsafar-service/internal/domain/identity"
	"humsafar-service/internal/domain/profile"
	"humsafar-service/internal/domain/vehicle"
	xerrors "humsafar-service/internal/pkg/errors"
	"humsafar-service/internal/refdata"

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
	delete(f.identities, id)
	return nil
}

type fakeProfileRepo struct {
	profiles map[int64]*profile.UserProfile
}

func (f *fakeProfileRepo) Create(_ context.Context, p *profile.UserProfile) error {
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id int64) (*profile.UserProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return p, nil
}

func (f *fakeProfileRepo) FindByIdentity(_ context.Context, identityID string) (*profile.UserProfile, error) {
	for _, p := range f.profiles {
		if p.IdentityID == identityID {
			return p, nil
		}
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeProfileRepo) Update(_ context.Context, p *profile.UserProfile) error     { return nil }
func (f *fakeProfileRepo) Deactivate(_ context.Context, p *profile.UserProfile) error { return nil }

func (f *fakeProfileRepo) Delete(_ context.Context, id int64) error {
	delete(f.profiles, id)
	return nil
}

func (f *fakeProfileRepo) List(_ context.Context, _ *profile.ProfileListFilters) ([]profile.UserProfile, error) {
	return nil, nil
}

type fakeVehicleRepo struct {
	vehicles map[int64]*vehicle.Vehicle
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) error {
	f.vehicles[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id int64) (*vehicle.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return v, nil
}

func (f *fakeVehicleRepo) FindByRegistration(_ context.Context, _ string) (*vehicle.Vehicle, error) {
	return nil, xerrors.ErrNotFound
}

func (f *fakeVehicleRepo) ExistsByRegistration(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func (f *fakeVehicleRepo) UpdateStatus(_ context.Context, v *vehicle.Vehicle) error { return nil }

func (f *fakeVehicleRepo) Delete(_ context.Context, id int64) error {
	delete(f.vehicles, id)
	return nil
}

func (f *fakeVehicleRepo) List(_ context.Context, _ *vehicle.VehicleListFilters) ([]vehicle.Vehicle, error) {
	return nil, nil
}

type fakeContractRepo struct {
	contracts map[int64]*contract.Contract
	nextID    int64
}

func (f *fakeContractRepo) Create(_ context.Context, c *contract.Contract) error {
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.contracts[c.ID] = &cp
	return nil
}

func (f *fakeContractRepo) FindByID(_ context.Context, id int64) (*contract.Contract, error) {
	c, ok := f.contracts[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeContractRepo) Terminate(_ context.Context, c *contract.Contract) error {
	if _, ok := f.contracts[c.ID]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *c
	f.contracts[c.ID] = &cp
	return nil
}

func (f *fakeContractRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.contracts[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(f.contracts, id)
	return nil
}

func (f *fakeContractRepo) List(_ context.Context, _ *contract.ContractListFilters) ([]contract.Contract, error) {
	out := []contract.Contract{}
	for _, c := range f.contracts {
		out = append(out, *c)
	}
	return out, nil
}

func newTestService() (*ContractService, *fakeContractRepo, *fakeIdentityRepo) {
	contracts := &fakeContractRepo{contracts: map[int64]*contract.Contract{}}
	vehicles := &fakeVehicleRepo{vehicles: map[int64]*vehicle.Vehicle{
		1: {ID: 1, RegistrationNumber: "ABC-123", OwnerID: "owner-1", Status: refdata.StatusAvailable},
	}}
	profiles := &fakeProfileRepo{profiles: map[int64]*profile.UserProfile{
		10: {ID: 10, IdentityID: "rider-1", Role: refdata.RoleCompanion, Active: true},
		11: {ID: 11, IdentityID: "admin-1", Role: refdata.RoleCompanion, Active: true},
	}}
	identities := &fakeIdentityRepo{identities: map[string]*identity.Identity{
		"owner-1": {ID: "owner-1", IsStaff: false},
		"rider-1": {ID: "rider-1", IsStaff: false},
		"admin-1": {ID: "admin-1", IsStaff: true},
	}}
	return NewContractService(contracts, vehicles, profiles, identities, zap.NewNop()), contracts, identities
}

func validCreateRequest() *contract.CreateContractRequest {
	return &contract.CreateContractRequest{
		VehicleID:          1,
		CompanionProfileID: 10,
		EffectiveStartDate: "2026-09-01",
		ExpiryDate:         "2026-12-31",
		FuelShare:          40,
		MaintenanceShare:   25,
		Schedule:           []byte(`{"mon": ["08:00", "17:30"], "fri": ["08:00"]}`),
	}
}

func TestCreateContract(t *testing.T) {
	svc, _, _ := newTestService()

	c, err := svc.CreateContract(context.Background(), "owner-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}
	if !c.IsActive {
		t.Error("new contract must start active")
	}
	if c.EffectiveStartDate.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("start date = %v", c.EffectiveStartDate)
	}
	if c.CreatedBy != "owner-1" || c.UpdatedBy != "owner-1" {
		t.Errorf("audit stamp = %q/%q, want acting identity on both", c.CreatedBy, c.UpdatedBy)
	}
}

// The schedule document must come back byte for byte as it went in,
// including key order and whitespace.
func TestScheduleStoredVerbatim(t *testing.T) {
	svc, _, _ := newTestService()

	raw := []byte(`{"z_last": 1,  "a_first": [true, null], "nested": {"k": "v"}}`)
	req := validCreateRequest()
	req.Schedule = raw

	c, err := svc.CreateContract(context.Background(), "owner-1", req)
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}
	if !bytes.Equal([]byte(c.Schedule), raw) {
		t.Errorf("schedule = %s, want the original bytes %s", c.Schedule, raw)
	}

	got, err := svc.GetContract(context.Background(), c.ID)
	if err != nil {
		t.Fatalf("GetContract: %v", err)
	}
	if !bytes.Equal([]byte(got.Schedule), raw) {
		t.Errorf("reloaded schedule = %s, want the original bytes %s", got.Schedule, raw)
	}
}

func TestCreateContractValidation(t *testing.T) {
	svc, repo, _ := newTestService()

	tests := []struct {
		name   string
		mutate func(*contract.CreateContractRequest)
		want   error
	}{
		{"fuel share over 100", func(r *contract.CreateContractRequest) { r.FuelShare = 101 }, xerrors.ErrInvalidInput},
		{"negative maintenance share", func(r *contract.CreateContractRequest) { r.MaintenanceShare = -1 }, xerrors.ErrInvalidInput},
		{"malformed start date", func(r *contract.CreateContractRequest) { r.EffectiveStartDate = "01-09-2026" }, xerrors.ErrInvalidInput},
		{"expiry before start", func(r *contract.CreateContractRequest) { r.ExpiryDate = "2026-08-01" }, xerrors.ErrInvalidInput},
		{"missing schedule", func(r *contract.CreateContractRequest) { r.Schedule = nil }, xerrors.ErrInvalidInput},
		{"scalar schedule", func(r *contract.CreateContractRequest) { r.Schedule = []byte(`"mondays"`) }, xerrors.ErrInvalidInput},
		{"malformed schedule", func(r *contract.CreateContractRequest) { r.Schedule = []byte(`{"mon":`) }, xerrors.ErrInvalidInput},
		{"unknown vehicle", func(r *contract.CreateContractRequest) { r.VehicleID = 99 }, xerrors.ErrNotFound},
		{"unknown companion", func(r *contract.CreateContractRequest) { r.CompanionProfileID = 99 }, xerrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)
			if _, err := svc.CreateContract(context.Background(), "owner-1", req); !xerrors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
	if len(repo.contracts) != 0 {
		t.Errorf("%d contracts persisted by rejected requests", len(repo.contracts))
	}
}

func TestCreateContractSingleDayPeriod(t *testing.T) {
	svc, _, _ := newTestService()
	req := validCreateRequest()
	req.EffectiveStartDate = "2026-09-01"
	req.ExpiryDate = "2026-09-01"

	if _, err := svc.CreateContract(context.Background(), "owner-1", req); err != nil {
		t.Fatalf("equal start and expiry must be accepted: %v", err)
	}
}

func TestTerminateContractIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService()
	c, err := svc.CreateContract(context.Background(), "owner-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}

	first, err := svc.TerminateContract(context.Background(), "owner-1", c.ID)
	if err != nil {
		t.Fatalf("TerminateContract: %v", err)
	}
	if first.IsActive {
		t.Error("contract still active after termination")
	}

	time.Sleep(time.Millisecond)
	second, err := svc.TerminateContract(context.Background(), "admin-1", c.ID)
	if err != nil {
		t.Fatalf("second TerminateContract: %v", err)
	}
	if second.UpdatedBy != first.UpdatedBy || !second.UpdatedOn.Equal(first.UpdatedOn) {
		t.Error("second termination re-stamped the record")
	}
}

func TestDeleteContractCompanionStaffGate(t *testing.T) {
	svc, repo, _ := newTestService()

	ordinary, err := svc.CreateContract(context.Background(), "owner-1", validCreateRequest())
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}
	staffReq := validCreateRequest()
	staffReq.CompanionProfileID = 11
	staffBacked, err := svc.CreateContract(context.Background(), "owner-1", staffReq)
	if err != nil {
		t.Fatalf("CreateContract: %v", err)
	}

	// The gate reads the companion's identity, not the caller's.
	if err := svc.DeleteContract(context.Background(), "admin-1", ordinary.ID); !xerrors.Is(err, xerrors.ErrForbidden) {
		t.Errorf("delete with non-staff companion: got %v, want ErrForbidden", err)
	}
	if _, ok := repo.contracts[ordinary.ID]; !ok {
		t.Fatal("contract removed despite forbidden delete")
	}

	if err := svc.DeleteContract(context.Background(), "rider-1", staffBacked.ID); err != nil {
		t.Fatalf("delete with staff companion: %v", err)
	}
	if _, ok := repo.contracts[staffBacked.ID]; ok {
		t.Error("contract still present after delete")
	}
}
