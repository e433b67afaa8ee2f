package company

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/inkpress/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkpress/internal/platform/request"
	"github.com/taibuivan/inkpress/internal/platform/respond"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listCompanies)
	router.Get("/{id}", handler.getCompany)
	router.Get("/owner/{ownerId}", handler.getCompanyByOwner)

	// Any authenticated principal may list a company.
	router.With(middleware.RequireAuth).Post("/", handler.createCompany)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Put("/{id}", handler.updateCompany)
		adminRoute.Put("/{id}/verify", handler.verifyCompany)
		adminRoute.Delete("/{id}", handler.deleteCompany)
	})
}

type companyRequest struct {
	Name          string       `json:"name"`
	Logo          string       `json:"logo"`
	About         string       `json:"about"`
	CategoryID    string       `json:"category_id"`
	SocialMedia   SocialMedia  `json:"social_media"`
	BusinessModel string       `json:"business_model"`
	LegalName     string       `json:"legal_name"`
	Headquarter   string       `json:"headquarter"`
	FoundingDate  time.Time    `json:"founding_date"`
	NoOfEmployees string       `json:"no_of_employees"`
	CoreTeam      []TeamMember `json:"core_team"`
}

func (request companyRequest) toInput() CreateInput {
	return CreateInput{
		Name:          request.Name,
		Logo:          request.Logo,
		About:         request.About,
		CategoryID:    request.CategoryID,
		SocialMedia:   request.SocialMedia,
		BusinessModel: request.BusinessModel,
		LegalName:     request.LegalName,
		Headquarter:   request.Headquarter,
		FoundingDate:  request.FoundingDate,
		NoOfEmployees: request.NoOfEmployees,
		CoreTeam:      request.CoreTeam,
	}
}

func (handler *Handler) createCompany(writer http.ResponseWriter, request *http.Request) {
	var input companyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.service.CreateCompany(request.Context(), requestutil.Principal(request), input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) listCompanies(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	companies, total, err := handler.service.ListCompanies(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, companies, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCompany(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetCompany(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) getCompanyByOwner(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetCompanyByOwner(request.Context(), requestutil.ID(request, "ownerId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) updateCompany(writer http.ResponseWriter, request *http.Request) {
	var input companyRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.service.UpdateCompany(request.Context(), requestutil.ID(request, "id"), input.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) verifyCompany(writer http.ResponseWriter, request *http.Request) {
	verified, err := handler.service.VerifyCompany(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, verified)
}

func (handler *Handler) deleteCompany(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCompany(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
