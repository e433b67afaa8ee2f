package story_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkpress/internal/platform/apperr"
	"github.com/taibuivan/inkpress/internal/platform/sec"
	"github.com/taibuivan/inkpress/internal/core/story"
)

const testCategoryID = "018f4e7a-0000-7000-8000-000000000001"

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	stories    map[string]*story.Story
	categories map[string]string // lowercase name -> id
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		stories:    map[string]*story.Story{},
		categories: map[string]string{},
	}
}

func (f *fakeRepository) Create(_ context.Context, st *story.Story) error {
	f.stories[st.ID] = st
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id string) (*story.Story, error) {
	st, ok := f.stories[id]
	if !ok {
		return nil, apperr.NotFound("Story")
	}
	copied := *st
	return &copied, nil
}

func (f *fakeRepository) List(_ context.Context, filter story.Filter, limit, offset int) ([]*story.Story, int, error) {
	matched := make([]*story.Story, 0)
	for _, st := range f.stories {
		if filter.OwnerID != "" && st.OwnerID != filter.OwnerID {
			continue
		}
		if filter.CategoryID != "" && st.CategoryID != filter.CategoryID {
			continue
		}
		if filter.ExcludeCategoryID != "" && st.CategoryID == filter.ExcludeCategoryID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(st.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, st)
	}

	total := len(matched)
	if offset >= total {
		return []*story.Story{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeRepository) Update(_ context.Context, st *story.Story) error {
	if _, ok := f.stories[st.ID]; !ok {
		return apperr.NotFound("Story")
	}
	f.stories[st.ID] = st
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.stories[id]; !ok {
		return apperr.NotFound("Story")
	}
	delete(f.stories, id)
	return nil
}

func (f *fakeRepository) Verify(_ context.Context, id string) error {
	st, ok := f.stories[id]
	if !ok {
		return apperr.NotFound("Story")
	}
	st.IsVerified = true
	return nil
}

func (f *fakeRepository) FindCategoryIDByName(_ context.Context, name string) (string, error) {
	id, ok := f.categories[strings.ToLower(name)]
	if !ok {
		return "", apperr.NotFound("Category")
	}
	return id, nil
}

// fakeUploader records uploads and can be told to fail.
type fakeUploader struct {
	fail    bool
	uploads int
}

func (f *fakeUploader) Upload(_ context.Context, _ []byte, filename, folder string) (string, error) {
	if f.fail {
		return "", errors.New("bucket unreachable")
	}
	f.uploads++
	return "https://assets.inkpress.app/" + folder + "/" + filename, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func memberPrincipal() *sec.AuthClaims {
	return &sec.AuthClaims{PrincipalID: "member-1", Kind: sec.KindUser, Role: sec.RoleMember}
}

func adminPrincipal() *sec.AuthClaims {
	return &sec.AuthClaims{PrincipalID: "admin-1", Kind: sec.KindAdmin, Role: sec.RoleAdmin}
}

func validInput() story.CreateInput {
	return story.CreateInput{
		Title:       "Our journey",
		Description: "How it all began",
		CategoryID:  testCategoryID,
	}
}

func TestCreateStory_StampsOwnerFromPrincipal(t *testing.T) {
	repo := newFakeRepository()
	service := story.NewService(repo, &fakeUploader{}, discardLogger())

	created, err := service.CreateStory(context.Background(), memberPrincipal(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "member-1", created.OwnerID)
	assert.False(t, created.IsVerified, "member submissions start unverified")
}

func TestCreateStory_AdminStartsVerified(t *testing.T) {
	repo := newFakeRepository()
	service := story.NewService(repo, &fakeUploader{}, discardLogger())

	created, err := service.CreateStory(context.Background(), adminPrincipal(), validInput())
	require.NoError(t, err)

	assert.True(t, created.IsVerified, "admin submissions skip moderation")
}

func TestCreateStory_RequiresPrincipal(t *testing.T) {
	service := story.NewService(newFakeRepository(), &fakeUploader{}, discardLogger())

	_, err := service.CreateStory(context.Background(), nil, validInput())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UNAUTHORIZED", ae.Code)
}

func TestCreateStory_UploadFailureAborts(t *testing.T) {
	repo := newFakeRepository()
	service := story.NewService(repo, &fakeUploader{fail: true}, discardLogger())

	input := validInput()
	input.Image = &story.Upload{Data: []byte("png"), Filename: "cover.png"}

	_, err := service.CreateStory(context.Background(), memberPrincipal(), input)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "UPSTREAM_ERROR", ae.Code)
	assert.Empty(t, repo.stories, "nothing persisted after a failed upload")
}

func TestCreateStory_ValidatesInput(t *testing.T) {
	service := story.NewService(newFakeRepository(), &fakeUploader{}, discardLogger())

	input := validInput()
	input.Title = ""

	_, err := service.CreateStory(context.Background(), memberPrincipal(), input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

func TestVerifyStory_Idempotent(t *testing.T) {
	repo := newFakeRepository()
	service := story.NewService(repo, &fakeUploader{}, discardLogger())

	created, err := service.CreateStory(context.Background(), memberPrincipal(), validInput())
	require.NoError(t, err)

	verified, err := service.VerifyStory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	// A second verify succeeds and changes nothing.
	again, err := service.VerifyStory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, again.IsVerified)
}

func TestListStories_ExcludesStartupCategory(t *testing.T) {
	repo := newFakeRepository()
	startupID := "018f4e7a-0000-7000-8000-00000000beef"
	repo.categories["startup"] = startupID
	service := story.NewService(repo, &fakeUploader{}, discardLogger())

	regular := validInput()
	_, err := service.CreateStory(context.Background(), memberPrincipal(), regular)
	require.NoError(t, err)

	startup := validInput()
	startup.CategoryID = startupID
	_, err = service.CreateStory(context.Background(), memberPrincipal(), startup)
	require.NoError(t, err)

	feed, total, err := service.ListStories(context.Background(), "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, feed, 1)
	assert.Equal(t, testCategoryID, feed[0].CategoryID)
}

func TestListStartupStories_MissingCategory(t *testing.T) {
	service := story.NewService(newFakeRepository(), &fakeUploader{}, discardLogger())

	_, _, err := service.ListStartupStories(context.Background(), "", 20, 0)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestListStartupStories_OnlyStartup(t *testing.T) {
	repo := newFakeRepository()
	startupID := "018f4e7a-0000-7000-8000-00000000beef"
	repo.categories["startup"] = startupID
	service := story.NewService(repo, &fakeUploader{}, discardLogger())

	regular := validInput()
	_, err := service.CreateStory(context.Background(), memberPrincipal(), regular)
	require.NoError(t, err)

	startup := validInput()
	startup.CategoryID = startupID
	_, err = service.CreateStory(context.Background(), memberPrincipal(), startup)
	require.NoError(t, err)

	stories, total, err := service.ListStartupStories(context.Background(), "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, stories, 1)
	assert.Equal(t, startupID, stories[0].CategoryID)
}

func TestUpdateStory_PartialUpdate(t *testing.T) {
	repo := newFakeRepository()
	service := story.NewService(repo, &fakeUploader{}, discardLogger())

	created, err := service.CreateStory(context.Background(), memberPrincipal(), validInput())
	require.NoError(t, err)

	newTitle := "A better title"
	updated, err := service.UpdateStory(context.Background(), created.ID, story.UpdateInput{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "A better title", updated.Title)
	assert.Equal(t, created.Description, updated.Description, "untouched fields survive")
	assert.Equal(t, created.OwnerID, updated.OwnerID)
}
