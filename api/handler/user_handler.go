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

var userFieldMessages = map[string]string{
	"Name":     "O nome deve ter no mínimo 4 caracteres.",
	"Email":    "Insira um email válido.",
	"Password": "A senha deve ter no mínimo 8 caracteres e uma letra maiúscula.",
	"Role":     "O usuário deve ter um tipo de perfil.",
	"Code":     "O código deve ter 6 caracteres.",
}

type UserHandler struct {
	Service  *service.AuthService
	Validate *validator.Validate
	Logger   logrus.FieldLogger
}

func NewUserHandler(svc *service.AuthService, validate *validator.Validate, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{Service: svc, Validate: validate, Logger: logger}
}

func (h *UserHandler) CreateAccount(c echo.Context) error {
	var req dto.CreateAccountRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrors(err, userFieldMessages))
	}

	result, err := h.Service.Register(c.Request().Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusCreated, dto.CreateAccountResponse{
		Message: "Usuário criado com sucesso",
		User:    dto.UserResponseFromSummary(result.User),
		Token:   result.Token,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if err := h.Validate.Struct(req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Email ou senha incorretos")
	}

	result, err := h.Service.Login(c.Request().Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}

	if result.TwoStepsAuth {
		// The session token is withheld until the code is confirmed.
		return c.JSON(http.StatusAccepted, dto.LoginResponse{
			Message:      "Código enviado com sucesso",
			TwoStepsAuth: true,
		})
	}
	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message:      "Login realizado com sucesso",
		User:         dto.UserResponseFromSummary(result.User),
		Token:        result.Token,
		TwoStepsAuth: false,
	})
}

func (h *UserHandler) ConfirmCode(c echo.Context) error {
	var req dto.ConfirmCodeRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrors(err, userFieldMessages))
	}

	result, err := h.Service.ConfirmCode(c.Request().Context(), service.ConfirmCodeInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.ConfirmCodeResponse{
		Message: "Login realizado com sucesso",
		User:    dto.UserResponseFromSummary(result.User),
		Token:   result.Token,
	})
}

// VerifyToken sits behind the authenticated gate; reaching it means
// the bearer token resolved to a live user.
func (h *UserHandler) VerifyToken(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID, ok := authorizedParamID(c, "id")
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}

	var req dto.UpdateUserRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeMessage(c, http.StatusBadRequest, "Requisição inválida")
	}
	if err := h.Validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, validationErrors(err, userFieldMessages))
	}

	err := h.Service.UpdateProfile(c.Request().Context(), userID, service.ProfileUpdateInput{
		Name:   req.Name,
		Email:  req.Email,
		Resume: req.Resume,
		Skills: req.Skills,
		Stack:  req.Stack,
	})
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusAccepted, "Usuário editado com sucesso")
}

func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, ok := authorizedParamID(c, "id")
	if !ok {
		return writeMessage(c, http.StatusUnauthorized, unauthorizedMessage)
	}
	if err := h.Service.DeleteAccount(c.Request().Context(), userID); err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return writeMessage(c, http.StatusOK, "Usuário excluído com sucesso")
}

// authorizedParamID parses a path parameter as a user id and checks it
// matches the authenticated identity.
func authorizedParamID(c echo.Context, param string) (uuid.UUID, bool) {
	paramID, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, false
	}
	authID, ok := middleware.UserIDFromContext(c)
	if !ok || authID != paramID {
		return uuid.Nil, false
	}
	return paramID, true
}
