package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/carhub-dev/carhub-api/internal/application"
	"github.com/carhub-dev/carhub-api/pkg/response"
	"github.com/carhub-dev/carhub-api/pkg/validation"
)

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	ContactNumber string `json:"contactNumber"`
	Password      string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

// CreateUser POST /api/CreateUser
func (h *AccountHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	_, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Password:      req.Password,
	})
	if err != nil {
		if ve, ok := application.AsValidationError(err); ok {
			response.Error(c, http.StatusBadRequest, "invalid payload", ve.Fields)
			return
		}
		if errors.Is(err, application.ErrDuplicateEmail) {
			response.Error(c, http.StatusConflict, "User with given email already exists!", nil)
			return
		}
		h.Logger.WithError(err).Error("user registration failed")
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.OK(c, nil)
}

// Login POST /api/LoginUser
func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusBadRequest, "Invalid email or password. Please try again.", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
		return
	}
	response.OK(c, gin.H{"authToken": token})
}
