package blog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/assets"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

// assetFolder is the object-storage prefix for blog images.
const assetFolder = "blogs"

type Service struct {
	repo     Repository
	uploader assets.Uploader
	logger   *slog.Logger
}

func NewService(repo Repository, uploader assets.Uploader, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		uploader: uploader,
		logger:   logger,
	}
}

// Upload carries an optional image payload alongside create/update input.
type Upload struct {
	Data     []byte
	Filename string
}

// CreateInput holds the data for a new blog post.
type CreateInput struct {
	Title           string
	Description     string
	BlogImageAlt    string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	CategoryID      string
	Image           *Upload
}

// CreateBlog persists a new editorial post. The cover image is mandatory;
// editorial posts never ship without one.
func (service *Service) CreateBlog(context context.Context, input CreateInput) (*Blog, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 300).
		Required(FieldDescription, input.Description).
		Required(FieldCategoryID, input.CategoryID).
		UUID(FieldCategoryID, input.CategoryID).
		Custom(FieldBlogImage, input.Image == nil, "A cover image is required")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	imageURL, err := service.uploader.Upload(context, input.Image.Data, input.Image.Filename, assetFolder)
	if err != nil {
		return nil, apperr.Upstream("asset host", err)
	}

	newBlog := &Blog{
		ID:              uuidv7.New(),
		Title:           input.Title,
		Description:     input.Description,
		BlogImage:       imageURL,
		BlogImageAlt:    input.BlogImageAlt,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
		CategoryID:      input.CategoryID,
	}

	if err := service.repo.Create(context, newBlog); err != nil {
		return nil, err
	}

	service.logger.Info("blog_created", slog.String("blog_id", newBlog.ID))
	return newBlog, nil
}

func (service *Service) ListBlogs(context context.Context, search string, limit, offset int) ([]*Blog, int, error) {
	return service.repo.List(context, Filter{Search: search}, limit, offset)
}

func (service *Service) GetBlog(context context.Context, id string) (*Blog, error) {
	return service.repo.FindByID(context, id)
}

// UpdateBlog overwrites a post's fields; a new image, when supplied,
// replaces the stored URL.
func (service *Service) UpdateBlog(context context.Context, id string, input CreateInput) (*Blog, error) {
	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		Required(FieldDescription, input.Description).
		Required(FieldCategoryID, input.CategoryID).
		UUID(FieldCategoryID, input.CategoryID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	current.Title = input.Title
	current.Description = input.Description
	current.BlogImageAlt = input.BlogImageAlt
	current.MetaTitle = input.MetaTitle
	current.MetaDescription = input.MetaDescription
	current.MetaKeywords = input.MetaKeywords
	current.CategoryID = input.CategoryID

	if input.Image != nil {
		imageURL, err := service.uploader.Upload(context, input.Image.Data, input.Image.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		current.BlogImage = imageURL
	}

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}

	service.logger.Info("blog_updated", slog.String("blog_id", current.ID))
	return current, nil
}

func (service *Service) DeleteBlog(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("blog_deleted", slog.String("blog_id", id))
	return nil
}
