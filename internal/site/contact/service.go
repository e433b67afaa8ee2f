package contact

import (
	"context"
	"log/slog"

	"github.com/taibuivan/inkpress/internal/platform/validate"
	"github.com/taibuivan/inkpress/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input holds a submitted or corrected contact message.
type Input struct {
	Name        string
	Email       string
	PhoneNumber string
	Subject     string
	Message     string
}

func (service *Service) CreateContact(context context.Context, input Input) (*Contact, error) {
	if err := validateContact(input); err != nil {
		return nil, err
	}

	newContact := &Contact{
		ID:          uuidv7.New(),
		Name:        input.Name,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Subject:     input.Subject,
		Message:     input.Message,
	}

	if err := service.repo.Create(context, newContact); err != nil {
		return nil, err
	}

	service.logger.Info("contact_received", slog.String("contact_id", newContact.ID))
	return newContact, nil
}

func (service *Service) ListContacts(context context.Context, limit, offset int) ([]*Contact, int, error) {
	return service.repo.List(context, limit, offset)
}

func (service *Service) GetContact(context context.Context, id string) (*Contact, error) {
	return service.repo.FindByID(context, id)
}

func (service *Service) UpdateContact(context context.Context, id string, input Input) (*Contact, error) {
	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := validateContact(input); err != nil {
		return nil, err
	}

	current.Name = input.Name
	current.Email = input.Email
	current.PhoneNumber = input.PhoneNumber
	current.Subject = input.Subject
	current.Message = input.Message

	if err := service.repo.Update(context, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (service *Service) DeleteContact(context context.Context, id string) error {
	return service.repo.Delete(context, id)
}

func validateContact(input Input) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldSubject, input.Subject).
		Required(FieldMessage, input.Message).
		MaxLen(FieldMessage, input.Message, 5000)

	return validator.Err()
}
