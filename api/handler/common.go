package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"devfinder/internal/dto"
	"devfinder/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	internalErrorMessage = "Erro interno do servidor"
	unauthorizedMessage  = "Usuário(a) não possui permissão para realizar essa ação"
)

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, dto.MessageResponse{Message: message})
}

// writeServiceError is the single point where service sentinels become
// HTTP statuses. Unknown users and missing resources intentionally
// surface as 401, not 404.
func writeServiceError(c echo.Context, logger logrus.FieldLogger, err error) error {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		return writeMessage(c, http.StatusUnauthorized, "Email já cadastrado")
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeMessage(c, http.StatusBadRequest, "Email ou senha incorretos")
	case errors.Is(err, service.ErrUnknownUser):
		return writeMessage(c, http.StatusUnauthorized, "Email ou senha incorretos")
	case errors.Is(err, service.ErrCodeExpired):
		return writeMessage(c, http.StatusBadRequest, "O código fornecido expirou")
	case errors.Is(err, service.ErrCodeIncorrect):
		return writeMessage(c, http.StatusBadRequest, "O código fornecido está incorreto")
	case errors.Is(err, service.ErrUnauthorized):
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	case errors.Is(err, service.ErrUploadFailed):
		return writeMessage(c, http.StatusInternalServerError, "Erro ao enviar as imagens")
	case errors.Is(err, service.ErrInvalidInput):
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if logger != nil {
		logger.WithError(err).Error("unhandled service error")
	}
	return writeMessage(c, http.StatusInternalServerError, internalErrorMessage)
}

// validationErrors turns validator failures into the per-field payload
// the clients expect. messages maps struct field names to a
// user-facing message; fields without one get a generic fallback.
func validationErrors(err error, messages map[string]string) []dto.FieldError {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []dto.FieldError{{Field: "body", Message: "Requisição inválida"}}
	}
	result := make([]dto.FieldError, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		message, ok := messages[fieldError.Field()]
		if !ok {
			message = "Campo inválido"
		}
		result = append(result, dto.FieldError{Field: fieldError.Field(), Message: message})
	}
	return result
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
