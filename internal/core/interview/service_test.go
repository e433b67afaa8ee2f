package interview_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/core/interview"
	"github.com/taibuivan/inkpress/internal/platform/apperr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	interviews map[string]*interview.Interview
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{interviews: map[string]*interview.Interview{}}
}

func (f *fakeRepository) Create(_ context.Context, iv *interview.Interview) error {
	f.interviews[iv.ID] = iv
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*interview.Interview, error) {
	iv, ok := f.interviews[id]
	if !ok {
		return nil, apperr.NotFound("Interview")
	}
	copied := *iv
	return &copied, nil
}

func (f *fakeRepository) List(_ context.Context, filter interview.Filter, limit, offset int) ([]*interview.Interview, int, error) {
	all := make([]*interview.Interview, 0, len(f.interviews))
	for _, iv := range f.interviews {
		all = append(all, iv)
	}
	return all, len(all), nil
}

func (f *fakeRepository) Update(_ context.Context, iv *interview.Interview) error {
	if _, ok := f.interviews[iv.ID]; !ok {
		return apperr.NotFound("Interview")
	}
	f.interviews[iv.ID] = iv
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.interviews[id]; !ok {
		return apperr.NotFound("Interview")
	}
	delete(f.interviews, id)
	return nil
}

// fakeUploader echoes back a deterministic URL per filename.
type fakeUploader struct{}

func (fakeUploader) Upload(_ context.Context, _ []byte, filename, folder string) (string, error) {
	return "https://assets.inkpress.app/" + folder + "/" + filename, nil
}

func newService() (*interview.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return interview.NewService(repo, fakeUploader{}, logger), repo
}

func validInput() interview.Input {
	return interview.Input{
		Title:      "How we bootstrapped to profitability",
		PersonName: "An Nguyen",
		Excerpt:    "A conversation about frugal growth",
		QA: []interview.QA{
			{Question: "Why bootstrap?", Answer: "Control and focus."},
		},
	}
}

func TestCreateInterview_AppliesPlaceholderImages(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateInterview(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, interview.DefaultProfileImage, created.ProfileImage)
	assert.Equal(t, interview.DefaultInterviewImage, created.InterviewImage)
}

func TestCreateInterview_UsesUploadsWhenPresent(t *testing.T) {
	service, _ := newService()

	input := validInput()
	input.ProfileImage = &interview.Upload{Data: []byte("a"), Filename: "face.jpg"}
	input.InterviewImage = &interview.Upload{Data: []byte("b"), Filename: "office.jpg"}

	created, err := service.CreateInterview(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, "https://assets.inkpress.app/interviews/face.jpg", created.ProfileImage)
	assert.Equal(t, "https://assets.inkpress.app/interviews/office.jpg", created.InterviewImage)
}

func TestCreateInterview_RequiresQA(t *testing.T) {
	service, _ := newService()

	input := validInput()
	input.QA = nil

	_, err := service.CreateInterview(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestCreateInterview_RejectsEmptyAnswer(t *testing.T) {
	service, _ := newService()

	input := validInput()
	input.QA = []interview.QA{{Question: "Why?", Answer: ""}}

	_, err := service.CreateInterview(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestUpdateInterview_ReplacesQAKeepsImages(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateInterview(context.Background(), validInput())
	require.NoError(t, err)

	input := validInput()
	input.QA = []interview.QA{
		{Question: "What next?", Answer: "International expansion."},
		{Question: "Regrets?", Answer: "None worth naming."},
	}

	updated, err := service.UpdateInterview(context.Background(), created.ID, input)
	require.NoError(t, err)

	require.Len(t, updated.QA, 2)
	assert.Equal(t, created.ProfileImage, updated.ProfileImage)
}
