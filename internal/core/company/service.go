package company

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateInput holds the data for a new company listing.
type CreateInput struct {
	Name          string
	Logo          string
	About         string
	CategoryID    string
	SocialMedia   SocialMedia
	BusinessModel string
	LegalName     string
	Headquarter   string
	FoundingDate  time.Time
	NoOfEmployees string
	CoreTeam      []TeamMember
}

// CreateCompany persists a new listing on behalf of the authenticated
// principal. A principal can list at most one company; a second attempt
// is a duplicate regardless of the payload.
func (service *Service) CreateCompany(context context.Context, principal *sec.AuthClaims, input CreateInput) (*Company, error) {
	if principal == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	if err := validateCompany(&input); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByOwnerID(context, principal.PrincipalID); err == nil {
		return nil, apperr.Duplicate("Company already listed for this account")
	}

	newCompany := &Company{
		ID:            uuidv7.New(),
		OwnerID:       principal.PrincipalID,
		Name:          input.Name,
		Logo:          input.Logo,
		About:         input.About,
		CategoryID:    input.CategoryID,
		SocialMedia:   input.SocialMedia,
		BusinessModel: input.BusinessModel,
		LegalName:     input.LegalName,
		Headquarter:   input.Headquarter,
		FoundingDate:  input.FoundingDate,
		NoOfEmployees: input.NoOfEmployees,
		IsVerified:    false,
		CoreTeam:      input.CoreTeam,
	}

	if err := service.repo.Create(context, newCompany); err != nil {
		return nil, err
	}

	service.logger.Info("company_created",
		slog.String("company_id", newCompany.ID),
		slog.String("owner_id", newCompany.OwnerID),
	)
	return newCompany, nil
}

func (service *Service) ListCompanies(context context.Context, limit, offset int) ([]*Company, int, error) {
	return service.repo.List(context, limit, offset)
}

func (service *Service) GetCompany(context context.Context, id string) (*Company, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) GetCompanyByOwner(context context.Context, ownerID string) (*Company, error) {
	return service.repo.FindByOwnerID(context, ownerID)
}

// UpdateCompany overwrites a listing's fields. The last write wins; the
// core team is replaced wholesale.
func (service *Service) UpdateCompany(context context.Context, id string, input CreateInput) (*Company, error) {
	if err := validateCompany(&input); err != nil {
		return nil, err
	}

	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Logo = input.Logo
	current.About = input.About
	current.CategoryID = input.CategoryID
	current.SocialMedia = input.SocialMedia
	current.BusinessModel = input.BusinessModel
	current.LegalName = input.LegalName
	current.Headquarter = input.Headquarter
	current.FoundingDate = input.FoundingDate
	current.NoOfEmployees = input.NoOfEmployees
	current.CoreTeam = input.CoreTeam

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}

	service.logger.Info("company_updated", slog.String("company_id", current.ID))
	return current, nil
}

func (service *Service) DeleteCompany(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("company_deleted", slog.String("company_id", id))
	return nil
}

// VerifyCompany marks a listing as moderated. Idempotent, one-way.
func (service *Service) VerifyCompany(context context.Context, id string) (*Company, error) {
	if err := service.repo.Verify(context, id); err != nil {
		return nil, err
	}

	service.logger.Info("company_verified", slog.String("company_id", id))
	return service.repo.FindByID(context, id)
}

func validateCompany(input *CreateInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, 200).
		Required(FieldCategoryID, input.CategoryID).
		UUID(FieldCategoryID, input.CategoryID).
		Required(FieldBusinessModel, input.BusinessModel).
		OneOf(FieldBusinessModel, input.BusinessModel, BusinessModels...).
		Required(FieldLegalName, input.LegalName).
		Required(FieldHeadquarter, input.Headquarter).
		Required(FieldNoOfEmployees, input.NoOfEmployees).
		OneOf(FieldNoOfEmployees, input.NoOfEmployees, EmployeeRanges...).
		Custom(FieldFoundingDate, input.FoundingDate.IsZero(), "This field is required")

	for _, member := range input.CoreTeam {
		validator.Custom(FieldCoreTeam, member.MemberName == "", "Member name is required").
			Custom(FieldCoreTeam, member.Designation == "", "Member designation is required")
	}

	return validator.Err()
}
