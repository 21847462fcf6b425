package handler

import (
	"net/http"

	"devfinder/api/middleware"
	"devfinder/internal/dto"
	"devfinder/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var jobFieldMessages = map[string]string{
	"Title":       "O título da vaga é obrigatório.",
	"Description": "A descrição da vaga é obrigatória.",
	"Salary":      "O salário da vaga é obrigatório.",
	"Mode":        "A modalidade da vaga é obrigatória.",
}

type JobHandler struct {
	Service  *service.JobService
	Validate *validator.Validate
	Logger   logrus.FieldLogger
}

func NewJobHandler(svc *service.JobService, validate *validator.Validate, logger logrus.FieldLogger) *JobHandler {
	return &JobHandler{Service: svc, Validate: validate, Logger: logger}
}

func (h *JobHandler) CreateJob(c echo.Context) error {
	recruiterID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}

	var req dto.CreateJobRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrors(err, jobFieldMessages))
	}

	_, err := h.Service.Create(c.Request().Context(), service.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Mode:        req.Mode,
		Type:        req.Type,
		Remote:      req.Remote,
		Stack:       req.Stack,
		Benefits:    req.Benefits,
		Skills:      req.Skills,
		RecruiterID: recruiterID,
	})
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusCreated, "Vaga criada com sucesso!")
}

func (h *JobHandler) ApplyToJob(c echo.Context) error {
	candidateID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	opportunityID, err := uuid.Parse(c.Param("opportunityId"))
	if err != nil {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	if err := h.Service.Apply(c.Request().Context(), opportunityID, candidateID); err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusOK, "Candidatura realizada com sucesso")
}

func (h *JobHandler) DeleteJob(c echo.Context) error {
	recruiterID, ok := authorizedParamID(c, "recruiterId")
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	jobID, err := uuid.Parse(c.Param("jobId"))
	if err != nil {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	if err := h.Service.Delete(c.Request().Context(), jobID, recruiterID); err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusOK, "Vaga excluída com sucesso")
}

func (h *JobHandler) ListJobs(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	jobs, err := h.Service.List(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.JobListResponse{
		Message: "Vagas carregadas com sucesso",
		Jobs:    dto.JobResponsesFromEntities(jobs),
	})
}
