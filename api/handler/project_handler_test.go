package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"devfinder/api/middleware"
	"devfinder/internal/entity"
	"devfinder/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProjectRepo struct {
	projects []entity.Project
}

func (r *recordingProjectRepo) Create(_ context.Context, project *entity.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	r.projects = append(r.projects, *project)
	return nil
}

func (r *recordingProjectRepo) FindOwned(_ context.Context, id uuid.UUID, userID uuid.UUID) (*entity.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id && r.projects[i].UserID == userID {
			copied := r.projects[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *recordingProjectRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]entity.Project, error) {
	var owned []entity.Project
	for _, project := range r.projects {
		if project.UserID == userID {
			owned = append(owned, project)
		}
	}
	return owned, nil
}

func (r *recordingProjectRepo) Update(_ context.Context, project *entity.Project) error {
	for i := range r.projects {
		if r.projects[i].ID == project.ID {
			r.projects[i] = *project
		}
	}
	return nil
}

type recordingImageStore struct {
	keys []string
}

func (s *recordingImageStore) Upload(_ context.Context, key string, _ string, _ []byte) (string, error) {
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func newProjectHandlerFixture(t *testing.T) (*ProjectHandler, *recordingProjectRepo, *recordingImageStore, uuid.UUID) {
	t.Helper()
	users := newMemoryUserRepo()
	user := entity.User{Name: "Ruan Costa", Email: "ruan@example.com", Role: entity.UserRoleCandidate}
	require.NoError(t, users.Create(context.Background(), &user))

	projects := &recordingProjectRepo{}
	images := &recordingImageStore{}
	svc := service.NewProjectService(projects, users, images, service.RealClock{})
	return NewProjectHandler(svc, validator.New(), nil), projects, images, user.ID
}

// postProjectForm submits a multipart create-project request with one
// attached image of the given size, authenticated as userID.
func postProjectForm(t *testing.T, h *ProjectHandler, userID uuid.UUID, imageSize int) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("title", "Encurtador de URLs"))
	require.NoError(t, writer.WriteField("description", "Um encurtador de URLs escrito em Go."))
	require.NoError(t, writer.WriteField("link", "https://example.com/projeto"))
	part, err := writer.CreateFormFile("images", "capa.png")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte{0x42}, imageSize))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/"+userID.String()+"/criar-projeto", &body)
	request.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	recorder := httptest.NewRecorder()
	c := e.NewContext(request, recorder)
	c.SetParamNames("userId")
	c.SetParamValues(userID.String())
	middleware.SetAuthContext(c, userID, "ruan@example.com", string(entity.UserRoleCandidate))
	require.NoError(t, h.CreateProject(c))
	return recorder
}

func TestCreateProject_WithImage(t *testing.T) {
	t.Parallel()

	h, projects, images, userID := newProjectHandlerFixture(t)
	recorder := postProjectForm(t, h, userID, 512)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, projects.projects, 1)
	assert.Len(t, images.keys, 1)
}

func TestCreateProject_ImageTooLarge(t *testing.T) {
	t.Parallel()

	h, projects, images, userID := newProjectHandlerFixture(t)
	recorder := postProjectForm(t, h, userID, maxImageBytes+1)
	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "10 MB")
	assert.Empty(t, projects.projects)
	assert.Empty(t, images.keys)
}

func TestCreateProject_ImageAtLimit(t *testing.T) {
	t.Parallel()

	h, projects, images, userID := newProjectHandlerFixture(t)
	recorder := postProjectForm(t, h, userID, maxImageBytes)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Len(t, projects.projects, 1)
	assert.Len(t, images.keys, 1)
}
