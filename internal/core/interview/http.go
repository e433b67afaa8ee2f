package interview

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkpress/internal/platform/request"
	"github.com/taibuivan/inkpress/internal/platform/respond"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/pagination"
)

// Multipart field names for the two interview images.
const (
	profileImageField   = "profile_image"
	interviewImageField = "interview_image"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listInterviews)
	router.Get("/{id}", handler.getInterview)

	// Admin only; interviews are staff-curated.
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createInterview)
		adminRoute.Put("/{id}", handler.updateInterview)
		adminRoute.Delete("/{id}", handler.deleteInterview)
	})
}

type interviewRequest struct {
	Title       string `json:"title"`
	PersonName  string `json:"person_name"`
	Designation string `json:"designation"`
	Excerpt     string `json:"excerpt"`
	QA          []QA   `json:"qa"`
}

func (handler *Handler) createInterview(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInterview(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateInterview(request.Context(), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) updateInterview(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeInterview(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateInterview(request.Context(), requestutil.ID(request, "id"), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) deleteInterview(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteInterview(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) listInterviews(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	interviews, total, err := handler.service.ListInterviews(request.Context(), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, interviews, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getInterview(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetInterview(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// decodeInterview accepts either a JSON body or a multipart form. In
// multipart bodies the Q&A pairs travel as a JSON array under "qa".
func decodeInterview(request *http.Request) (*Input, error) {
	if strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data") {
		input := &Input{
			Title:       requestutil.FormValue(request, "title"),
			PersonName:  requestutil.FormValue(request, "person_name"),
			Designation: requestutil.FormValue(request, "designation"),
			Excerpt:     requestutil.FormValue(request, "excerpt"),
		}

		if raw := requestutil.FormValue(request, "qa"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &input.QA); err != nil {
				return nil, validate.ErrInvalidJSON
			}
		}

		profile, err := formUpload(request, profileImageField)
		if err != nil {
			return nil, err
		}
		input.ProfileImage = profile

		cover, err := formUpload(request, interviewImageField)
		if err != nil {
			return nil, err
		}
		input.InterviewImage = cover
		return input, nil
	}

	var body interviewRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	return &Input{
		Title:       body.Title,
		PersonName:  body.PersonName,
		Designation: body.Designation,
		Excerpt:     body.Excerpt,
		QA:          body.QA,
	}, nil
}

// formUpload reads the named file part. A missing part is not an error,
// but an oversized or unreadable one is.
func formUpload(request *http.Request, name string) (*Upload, error) {
	_ = request.ParseMultipartForm(constants.MaxUploadMemory)
	if request.MultipartForm == nil || len(request.MultipartForm.File[name]) == 0 {
		return nil, nil
	}

	data, filename, err := requestutil.FormFile(request, name)
	if err != nil {
		return nil, err
	}
	return &Upload{Data: data, Filename: filename}, nil
}
