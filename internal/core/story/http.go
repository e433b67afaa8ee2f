package story

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/inkpress/internal/platform/constants"
	"github.com/taibuivan/inkpress/internal/platform/middleware"
	requestutil "github.com/taibuivan/inkpress/internal/platform/request"
	"github.com/taibuivan/inkpress/internal/platform/respond"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/convert"
	"github.com/taibuivan/inkpress/pkg/pagination"
	"github.com/taibuivan/inkpress/pkg/pointer"
	"github.com/taibuivan/inkpress/pkg/query"
)

// imageField is the multipart field name for the story cover image.
const imageField = "story_image"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listStories)
	router.Get("/startup", handler.listStartupStories)
	router.Get("/{id}", handler.getStory)
	router.Get("/owner/{ownerId}", handler.listStoriesByOwner)

	// Any authenticated principal may submit a story.
	router.With(middleware.RequireAuth).Post("/", handler.createStory)

	// Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Put("/{id}", handler.updateStory)
		adminRoute.Put("/{id}/verify", handler.verifyStory)
		adminRoute.Delete("/{id}", handler.deleteStory)
	})
}

type createStoryRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CategoryID      string `json:"category_id"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"` // comma separated
	IsFeatured      bool   `json:"is_featured"`
}

type updateStoryRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	CategoryID      *string `json:"category_id"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	MetaKeywords    *string `json:"meta_keywords"`
	IsFeatured      *bool   `json:"is_featured"`
}

// createStory accepts either a JSON body or a multipart form with an
// optional image part under "story_image".
func (handler *Handler) createStory(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeCreate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateStory(request.Context(), requestutil.Principal(request), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) updateStory(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeUpdate(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateStory(request.Context(), requestutil.ID(request, "id"), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) deleteStory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteStory(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) verifyStory(writer http.ResponseWriter, request *http.Request) {
	verified, err := handler.service.VerifyStory(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, verified)
}

func (handler *Handler) listStories(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	stories, total, err := handler.service.ListStories(request.Context(), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, stories, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listStartupStories(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	stories, total, err := handler.service.ListStartupStories(request.Context(), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, stories, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listStoriesByOwner(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	stories, total, err := handler.service.ListStoriesByOwner(request.Context(),
		requestutil.ID(request, "ownerId"), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, stories, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStory(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetStory(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// # Body decoding

func isMultipart(request *http.Request) bool {
	return strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data")
}

func decodeCreate(request *http.Request) (*CreateInput, error) {
	if isMultipart(request) {
		input := &CreateInput{
			Title:           requestutil.FormValue(request, "title"),
			Description:     requestutil.FormValue(request, "description"),
			CategoryID:      requestutil.FormValue(request, "category_id"),
			MetaTitle:       requestutil.FormValue(request, "meta_title"),
			MetaDescription: requestutil.FormValue(request, "meta_description"),
			MetaKeywords:    query.StringSlice(requestutil.FormValue(request, "meta_keywords")),
			IsFeatured:      convert.ToBool(requestutil.FormValue(request, "is_featured")),
		}

		upload, err := formUpload(request, imageField)
		if err != nil {
			return nil, err
		}
		input.Image = upload
		return input, nil
	}

	var body createStoryRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	return &CreateInput{
		Title:           body.Title,
		Description:     body.Description,
		CategoryID:      body.CategoryID,
		MetaTitle:       body.MetaTitle,
		MetaDescription: body.MetaDescription,
		MetaKeywords:    query.StringSlice(body.MetaKeywords),
		IsFeatured:      body.IsFeatured,
	}, nil
}

func decodeUpdate(request *http.Request) (*UpdateInput, error) {
	if isMultipart(request) {
		input := &UpdateInput{
			Title:           formField(request, "title"),
			Description:     formField(request, "description"),
			CategoryID:      formField(request, "category_id"),
			MetaTitle:       formField(request, "meta_title"),
			MetaDescription: formField(request, "meta_description"),
		}

		if keywords := formField(request, "meta_keywords"); keywords != nil {
			input.MetaKeywords = query.StringSlice(*keywords)
		}
		if featured := formField(request, "is_featured"); featured != nil {
			input.IsFeatured = pointer.To(convert.ToBool(*featured))
		}
		upload, err := formUpload(request, imageField)
		if err != nil {
			return nil, err
		}
		input.Image = upload
		return input, nil
	}

	var body updateStoryRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	input := &UpdateInput{
		Title:           body.Title,
		Description:     body.Description,
		CategoryID:      body.CategoryID,
		MetaTitle:       body.MetaTitle,
		MetaDescription: body.MetaDescription,
		IsFeatured:      body.IsFeatured,
	}
	if body.MetaKeywords != nil {
		input.MetaKeywords = query.StringSlice(*body.MetaKeywords)
	}
	return input, nil
}

// formField returns the named text field, or nil when the part is absent.
// Absence and empty string are different things for partial updates.
func formField(request *http.Request, name string) *string {
	_ = request.ParseMultipartForm(constants.MaxUploadMemory)
	if request.MultipartForm == nil {
		return nil
	}
	if values, ok := request.MultipartForm.Value[name]; ok && len(values) > 0 {
		return &values[0]
	}
	return nil
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
