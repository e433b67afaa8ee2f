package interview

import (
	"context"
	"log/slog"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/assets"
	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

// assetFolder is the object-storage prefix for interview images.
const assetFolder = "interviews"

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

// Input holds the data for a new or updated interview. Both image uploads
// are optional; placeholders fill in for missing ones on create.
type Input struct {
	Title          string
	PersonName     string
	Designation    string
	Excerpt        string
	QA             []QA
	ProfileImage   *Upload
	InterviewImage *Upload
}

func (service *Service) CreateInterview(context context.Context, input Input) (*Interview, error) {
	if err := validateInterview(input); err != nil {
		return nil, err
	}

	newInterview := &Interview{
		ID:             uuidv7.New(),
		Title:          input.Title,
		PersonName:     input.PersonName,
		Designation:    input.Designation,
		ProfileImage:   DefaultProfileImage,
		Excerpt:        input.Excerpt,
		InterviewImage: DefaultInterviewImage,
		QA:             input.QA,
	}

	if input.ProfileImage != nil {
		url, err := service.uploader.Upload(context, input.ProfileImage.Data, input.ProfileImage.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		newInterview.ProfileImage = url
	}
	if input.InterviewImage != nil {
		url, err := service.uploader.Upload(context, input.InterviewImage.Data, input.InterviewImage.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		newInterview.InterviewImage = url
	}

	if err := service.repo.Create(context, newInterview); err != nil {
		return nil, err
	}

	service.logger.Info("interview_created",
		slog.String("interview_id", newInterview.ID),
		slog.String("person_name", newInterview.PersonName))
	return newInterview, nil
}

func (service *Service) ListInterviews(context context.Context, search string, limit, offset int) ([]*Interview, int, error) {
	return service.repo.List(context, Filter{Search: search}, limit, offset)
}

func (service *Service) GetInterview(context context.Context, id string) (*Interview, error) {
	return service.repo.FindByID(context, id)
}

// UpdateInterview overwrites an interview's fields and its Q&A section.
// Stored image URLs survive unless a replacement upload arrives.
func (service *Service) UpdateInterview(context context.Context, id string, input Input) (*Interview, error) {
	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := validateInterview(input); err != nil {
		return nil, err
	}

	current.Title = input.Title
	current.PersonName = input.PersonName
	current.Designation = input.Designation
	current.Excerpt = input.Excerpt
	current.QA = input.QA

	if input.ProfileImage != nil {
		url, err := service.uploader.Upload(context, input.ProfileImage.Data, input.ProfileImage.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		current.ProfileImage = url
	}
	if input.InterviewImage != nil {
		url, err := service.uploader.Upload(context, input.InterviewImage.Data, input.InterviewImage.Filename, assetFolder)
		if err != nil {
			return nil, apperr.Upstream("asset host", err)
		}
		current.InterviewImage = url
	}

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}

	service.logger.Info("interview_updated", slog.String("interview_id", current.ID))
	return current, nil
}

func (service *Service) DeleteInterview(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("interview_deleted", slog.String("interview_id", id))
	return nil
}

func validateInterview(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.Title).
		MaxLen(FieldTitle, input.Title, 300).
		Required(FieldPersonName, input.PersonName).
		Required(FieldExcerpt, input.Excerpt).
		Custom(FieldQA, len(input.QA) == 0, "At least one question is required")

	for _, pair := range input.QA {
		validator.Custom(FieldQA, pair.Question == "", "Each entry needs a question").
			Custom(FieldQA, pair.Answer == "", "Each entry needs an answer")
	}

	return validator.Err()
}
