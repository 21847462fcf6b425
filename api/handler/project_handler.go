package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"devfinder/internal/dto"
	"devfinder/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const maxImageBytes = 10 << 20

var errImageTooLarge = errors.New("image exceeds size limit")

var projectFieldMessages = map[string]string{
	"Title":       "O título do projeto é obrigatório.",
	"Description": "A descrição deve ter no máximo 2000 caracteres.",
	"Link":        "O projeto deve possuir um link válido para ser acessado.",
	"Repository":  "Insira uma URL válida.",
}

type ProjectHandler struct {
	Service  *service.ProjectService
	Validate *validator.Validate
	Logger   logrus.FieldLogger
}

func NewProjectHandler(svc *service.ProjectService, validate *validator.Validate, logger logrus.FieldLogger) *ProjectHandler {
	return &ProjectHandler{Service: svc, Validate: validate, Logger: logger}
}

// CreateProject accepts a multipart form: text fields plus any number
// of files under "images".
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	userID, ok := authorizedParamID(c, "userId")
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}

	req := dto.CreateProjectRequest{
		Title:       formValue(form, "title"),
		Description: formValue(form, "description"),
		Link:        formValue(form, "link"),
		Stack:       form.Value["stack"],
	}
	if repository := formValue(form, "repository"); repository != "" {
		req.Repository = &repository
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrors(err, projectFieldMessages))
	}

	uploads, err := readImageUploads(form.File["images"])
	if errors.Is(err, errImageTooLarge) {
		return writeMessage(c, http.StatusBadRequest, "Cada imagem deve ter no máximo 10 MB")
	}
	if err != nil {
		return writeMessage(c, http.StatusBadRequest, "Erro ao ler as imagens enviadas")
	}

	_, err = h.Service.Create(c.Request().Context(), userID, service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Repository:  req.Repository,
		Stack:       req.Stack,
	}, uploads)
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusCreated, "Projeto criado com sucesso")
}

func (h *ProjectHandler) GetProjects(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	projects, err := h.Service.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.ProjectListResponse{
		Message:  "Projetos carregados com sucesso",
		Projects: dto.ProjectResponsesFromEntities(projects),
	})
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	userID, ok := authorizedParamID(c, "userId")
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}

	var req dto.UpdateProjectRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrors(err, projectFieldMessages))
	}

	err = h.Service.Update(c.Request().Context(), userID, projectID, service.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Repository:  req.Repository,
		Stack:       req.Stack,
		Images:      req.Images,
	})
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusAccepted, "Projeto editado com sucesso")
}

func formValue(form *multipart.Form, key string) string {
	values := form.Value[key]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func readImageUploads(files []*multipart.FileHeader) ([]service.ImageUpload, error) {
	uploads := make([]service.ImageUpload, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			return nil, err
		}
		// Read one byte past the limit so an oversized file is rejected
		// rather than truncated.
		data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
		file.Close()
		if err != nil {
			return nil, err
		}
		if len(data) > maxImageBytes {
			return nil, errImageTooLarge
		}
		uploads = append(uploads, service.ImageUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}
	return uploads, nil
}
