package company_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/core/company"
	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/sec"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	companies map[string]*company.Company
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{companies: map[string]*company.Company{}}
}

func (f *fakeRepository) Create(_ context.Context, co *company.Company) error {
	f.companies[co.ID] = co
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*company.Company, error) {
	co, ok := f.companies[id]
	if !ok {
		return nil, apperr.NotFound("Company")
	}
	copied := *co
	return &copied, nil
}

func (f *fakeRepository) FindByOwnerID(_ context.Context, ownerID string) (*company.Company, error) {
	for _, co := range f.companies {
		if co.OwnerID == ownerID {
			copied := *co
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Company")
}

func (f *fakeRepository) List(_ context.Context, limit, offset int) ([]*company.Company, int, error) {
	all := make([]*company.Company, 0, len(f.companies))
	for _, co := range f.companies {
		all = append(all, co)
	}
	return all, len(all), nil
}

func (f *fakeRepository) Update(_ context.Context, co *company.Company) error {
	if _, ok := f.companies[co.ID]; !ok {
		return apperr.NotFound("Company")
	}
	f.companies[co.ID] = co
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.companies[id]; !ok {
		return apperr.NotFound("Company")
	}
	delete(f.companies, id)
	return nil
}

func (f *fakeRepository) Verify(_ context.Context, id string) error {
	co, ok := f.companies[id]
	if !ok {
		return apperr.NotFound("Company")
	}
	co.IsVerified = true
	return nil
}

func newService() (*company.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return company.NewService(repo, logger), repo
}

func ownerPrincipal() *sec.AuthClaims {
	return &sec.AuthClaims{PrincipalID: "member-1", Kind: sec.KindUser, Role: sec.RoleMember}
}

func validInput() company.CreateInput {
	return company.CreateInput{
		Name:          "Acme Robotics",
		About:         "We build robots",
		BusinessModel: "B2B",
		NoOfEmployees: "10-100",
		FoundingDate:  time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		CoreTeam: []company.TeamMember{
			{MemberName: "An Nguyen", Designation: "CEO"},
		},
	}
}

func TestCreateCompany_OnePerOwner(t *testing.T) {
	service, _ := newService()

	_, err := service.CreateCompany(context.Background(), ownerPrincipal(), validInput())
	require.NoError(t, err)

	second := validInput()
	second.Name = "Acme Rockets"
	_, err = service.CreateCompany(context.Background(), ownerPrincipal(), second)
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE", apperr.As(err).Code)
}

func TestCreateCompany_StartsUnverified(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCompany(context.Background(), ownerPrincipal(), validInput())
	require.NoError(t, err)

	assert.False(t, created.IsVerified)
	assert.Equal(t, "member-1", created.OwnerID)
}

func TestCreateCompany_InvalidBusinessModel(t *testing.T) {
	service, _ := newService()

	input := validInput()
	input.BusinessModel = "P2P"

	_, err := service.CreateCompany(context.Background(), ownerPrincipal(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreateCompany_InvalidEmployeeRange(t *testing.T) {
	service, _ := newService()

	input := validInput()
	input.NoOfEmployees = "5-15"

	_, err := service.CreateCompany(context.Background(), ownerPrincipal(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreateCompany_RequiresPrincipal(t *testing.T) {
	service, _ := newService()

	_, err := service.CreateCompany(context.Background(), nil, validInput())
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

func TestVerifyCompany_Idempotent(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCompany(context.Background(), ownerPrincipal(), validInput())
	require.NoError(t, err)

	verified, err := service.VerifyCompany(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	again, err := service.VerifyCompany(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, again.IsVerified)
}

func TestUpdateCompany_ReplacesCoreTeam(t *testing.T) {
	service, repo := newService()

	created, err := service.CreateCompany(context.Background(), ownerPrincipal(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.CoreTeam = []company.TeamMember{
		{MemberName: "Binh Tran", Designation: "CTO"},
		{MemberName: "Chi Le", Designation: "COO"},
	}

	updated, err := service.UpdateCompany(context.Background(), created.ID, input)
	require.NoError(t, err)

	require.Len(t, updated.CoreTeam, 2)
	assert.Equal(t, "Binh Tran", repo.companies[created.ID].CoreTeam[0].MemberName)
}
