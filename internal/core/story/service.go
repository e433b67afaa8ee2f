package story

import (
	"context"
	"log/slog"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/assets"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

// startupCategoryName is the reserved category whose stories are split out
// of the public feed onto their own endpoint.
const startupCategoryName = "Startup"

// assetFolder is the object-storage prefix for story images.
const assetFolder = "stories"

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

// CreateInput holds the data for a new story submission.
type CreateInput struct {
	Title           string
	Description     string
	CategoryID      string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	IsFeatured      bool
	Image           *Upload
}

// CreateStory persists a new story on behalf of the authenticated principal.
//
// The owner id is stamped from the token, never from the payload. Stories
// created by administrators skip moderation and start verified; member
// submissions start unverified. The image upload, when present, happens
// before the database write: an upload failure aborts the whole operation.
func (service *Service) CreateStory(context context.Context, principal *sec.AuthClaims, input CreateInput) (*Story, error) {
	if principal == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 300).
		Required(FieldDescription, input.Description).
		Required(FieldCategoryID, input.CategoryID).
		UUID(FieldCategoryID, input.CategoryID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	imageURL := ""
	if input.Image != nil {
		url, err := service.uploader.Upload(context, input.Image.Data, input.Image.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		imageURL = url
	}

	newStory := &Story{
		ID:              uuidv7.New(),
		Title:           input.Title,
		Description:     input.Description,
		CategoryID:      input.CategoryID,
		OwnerID:         principal.PrincipalID,
		IsVerified:      principal.Kind == sec.KindAdmin,
		IsFeatured:      input.IsFeatured,
		StoryImage:      imageURL,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		MetaKeywords:    input.MetaKeywords,
	}

	if err := service.repo.Create(context, newStory); err != nil {
		return nil, err
	}

	service.logger.Info("story_created",
		slog.String("story_id", newStory.ID),
		slog.String("owner_id", newStory.OwnerID),
		slog.Bool("is_verified", newStory.IsVerified),
	)
	return newStory, nil
}

// UpdateInput holds the partial fields for a story update.
//
// Nil pointers mean "keep the current value".
type UpdateInput struct {
	Title           *string
	Description     *string
	CategoryID      *string
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    []string
	IsFeatured      *bool
	Image           *Upload
}

// UpdateStory applies a partial update. The last write wins.
func (service *Service) UpdateStory(context context.Context, id string, input UpdateInput) (*Story, error) {
	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		current.Title = *input.Title
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.CategoryID != nil {
		current.CategoryID = *input.CategoryID
	}
	if input.MetaTitle != nil {
		current.MetaTitle = *input.MetaTitle
	}
	if input.MetaDescription != nil {
		current.MetaDescription = *input.MetaDescription
	}
	if input.MetaKeywords != nil {
		current.MetaKeywords = input.MetaKeywords
	}
	if input.IsFeatured != nil {
		current.IsFeatured = *input.IsFeatured
	}
	if input.Image != nil {
		url, err := service.uploader.Upload(context, input.Image.Data, input.Image.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		current.StoryImage = url
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, current.Title).
		Required(FieldDescription, current.Description).
		Required(FieldCategoryID, current.CategoryID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}

	service.logger.Info("story_updated", slog.String("story_id", current.ID))
	return current, nil
}

func (service *Service) DeleteStory(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("story_deleted", slog.String("story_id", id))
	return nil
}

// ListStories returns the public feed: every story except those in the
// reserved "Startup" category. When that category does not exist the feed
// is simply unfiltered.
func (service *Service) ListStories(context context.Context, search string, limit, offset int) ([]*Story, int, error) {
	filter := Filter{Search: search}

	if startupID, err := service.repo.FindCategoryIDByName(context, startupCategoryName); err == nil {
		filter.ExcludeCategoryID = startupID
	}

	return service.repo.List(context, filter, limit, offset)
}

// ListStartupStories returns only the reserved "Startup" category.
//
// Unlike the public feed, a missing category here is an error: the endpoint
// has nothing meaningful to serve without it.
func (service *Service) ListStartupStories(context context.Context, search string, limit, offset int) ([]*Story, int, error) {
	startupID, err := service.repo.FindCategoryIDByName(context, startupCategoryName)
	if err != nil {
		return nil, 0, apperr.NotFound("Startup category")
	}

	return service.repo.List(context, Filter{Search: search, CategoryID: startupID}, limit, offset)
}

// ListStoriesByOwner returns every story belonging to one principal id.
func (service *Service) ListStoriesByOwner(context context.Context, ownerID, search string, limit, offset int) ([]*Story, int, error) {
	return service.repo.List(context, Filter{Search: search, OwnerID: ownerID}, limit, offset)
}

func (service *Service) GetStory(context context.Context, id string) (*Story, error) {
	return service.repo.FindByID(context, id)
}

// VerifyStory marks a story as moderated. The flag only moves one way;
// re-verifying is a harmless no-op.
func (service *Service) VerifyStory(context context.Context, id string) (*Story, error) {
	if err := service.repo.Verify(context, id); err != nil {
		return nil, err
	}

	service.logger.Info("story_verified", slog.String("story_id", id))
	return service.repo.FindByID(context, id)
}
