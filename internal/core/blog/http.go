package blog

import (
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

// imageField is the multipart field name for the blog cover image.
const imageField = "blog_image"

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listBlogs)
	router.Get("/{id}", handler.getBlog)

	// Admin only; editorial posts are staff-authored.
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireAdmin)

		adminRoute.Post("/", handler.createBlog)
		adminRoute.Put("/{id}", handler.updateBlog)
		adminRoute.Delete("/{id}", handler.deleteBlog)
	})
}

type blogRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	BlogImageAlt    string `json:"blog_image_alt"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	CategoryID      string `json:"category_id"`
}

func (handler *Handler) createBlog(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeBlog(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateBlog(request.Context(), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created)
}

func (handler *Handler) updateBlog(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeBlog(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.UpdateBlog(request.Context(), requestutil.ID(request, "id"), *input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, updated)
}

func (handler *Handler) deleteBlog(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteBlog(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

func (handler *Handler) listBlogs(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	search := request.URL.Query().Get("search")

	blogs, total, err := handler.service.ListBlogs(request.Context(), search, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, blogs, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getBlog(writer http.ResponseWriter, request *http.Request) {
	found, err := handler.service.GetBlog(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, found)
}

// decodeBlog accepts either a JSON body or a multipart form with the image
// part under "blog_image".
func decodeBlog(request *http.Request) (*CreateInput, error) {
	if strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data") {
		input := &CreateInput{
			Title:           requestutil.FormValue(request, "title"),
			Description:     requestutil.FormValue(request, "description"),
			BlogImageAlt:    requestutil.FormValue(request, "blog_image_alt"),
			MetaTitle:       requestutil.FormValue(request, "meta_title"),
			MetaDescription: requestutil.FormValue(request, "meta_description"),
			MetaKeywords:    requestutil.FormValue(request, "meta_keywords"),
			CategoryID:      requestutil.FormValue(request, "category_id"),
		}

		upload, err := formUpload(request, imageField)
		if err != nil {
			return nil, err
		}
		input.Image = upload
		return input, nil
	}

	var body blogRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		return nil, validate.ErrInvalidJSON
	}

	return &CreateInput{
		Title:           body.Title,
		Description:     body.Description,
		BlogImageAlt:    body.BlogImageAlt,
		MetaTitle:       body.MetaTitle,
		MetaDescription: body.MetaDescription,
		MetaKeywords:    body.MetaKeywords,
		CategoryID:      body.CategoryID,
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
