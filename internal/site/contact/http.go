package contact

import (
	"net/http"

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
	// Anyone may submit a message.
	router.Post("/", handler.createContact)

	// The inbox itself is staff-only.
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Get("/", handler.listContacts)
		adminRoute.Get("/{id}", handler.getContact)
		adminRoute.Put("/{id}", handler.updateContact)
		adminRoute.Delete("/{id}", handler.deleteContact)
	})
}

type contactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

func (body contactRequest) toInput() Input {
	return Input{
		Name:        body.Name,
		Email:       body.Email,
		PhoneNumber: body.PhoneNumber,
		Subject:     body.Subject,
		Message:     body.Message,
	}
}

func (handler *Handler) createContact(writer http.ResponseWriter, request *http.Request) {
	var body contactRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	created, err := handler.service.CreateContact(request.Context(), body.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) listContacts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	contacts, total, err := handler.service.ListContacts(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, contacts, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getContact(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetContact(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

func (handler *Handler) updateContact(writer http.ResponseWriter, request *http.Request) {
	var body contactRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	updated, err := handler.service.UpdateContact(request.Context(), requestutil.ID(request, "id"), body.toInput())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) deleteContact(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteContact(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
