package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/shoppy/storefront/internal/application"
	"github.com/shoppy/storefront/pkg/response"
	"github.com/shoppy/storefront/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validation.ToDetails(err)})
		return
	}

	token, err := h.Svc.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			response.Fail(c, http.StatusBadRequest, "Existing User Found With Same Email Address")
			return
		}
		h.Logger.WithError(err).Error("signup failed")
		response.Fail(c, http.StatusInternalServerError, "Error saving user")
		return
	}
	response.Token(c, token)
}

// Login handles POST /login.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validation.ToDetails(err)})
		return
	}

	token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, userapp.ErrUnknownEmail):
			response.Fail(c, http.StatusBadRequest, "Wrong Email ID")
		case errors.Is(err, userapp.ErrWrongPassword):
			response.Fail(c, http.StatusBadRequest, "Wrong Password")
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}
	response.Token(c, token)
}
