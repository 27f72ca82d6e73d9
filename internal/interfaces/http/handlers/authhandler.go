package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmgate/internal/application/user/usecases"
	"farmgate/internal/interfaces/http/middleware"
	"farmgate/internal/shared/logger"
	"farmgate/internal/shared/utils"
)

type AuthHandler struct {
	registerUC      registerUseCase
	loginUC         loginUseCase
	verifyEmailUC   verifyEmailUseCase
	requestResetUC  requestPasswordResetUseCase
	resetPasswordUC resetPasswordUseCase
	getUserUC       getUserUseCase
	logger          logger.Interface
}

func NewAuthHandler(
	registerUC registerUseCase,
	loginUC loginUseCase,
	verifyEmailUC verifyEmailUseCase,
	requestResetUC requestPasswordResetUseCase,
	resetPasswordUC resetPasswordUseCase,
	getUserUC getUserUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		loginUC:         loginUC,
		verifyEmailUC:   verifyEmailUC,
		requestResetUC:  requestResetUC,
		resetPasswordUC: resetPasswordUC,
		getUserUC:       getUserUC,
		logger:          logger.NewLogger(),
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type RequestPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RegisterCommand{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	}

	result, err := h.registerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "registration successful, check your email for a verification code")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for verify email", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.VerifyEmailCommand{
		Email: req.Email,
		Code:  req.Code,
	}

	result, err := h.verifyEmailUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "email verified", result)
}

func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for password reset request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.RequestPasswordResetCommand{Email: req.Email}

	// Always reply the same way so the endpoint cannot be used to
	// probe which emails are registered.
	if err := h.requestResetUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the address is registered, a reset code has been sent", nil)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reset password", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResetPasswordCommand{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password updated", nil)
}

func (h *AuthHandler) GetMe(c *gin.Context) {
	result, err := h.getUserUC.Execute(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user retrieved", result)
}
