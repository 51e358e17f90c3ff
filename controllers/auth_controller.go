package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type registerPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, a valid email and a password of at least 6 characters are required")
		return
	}

	user, token, err := ac.auth.Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			utils.JSONError(c, http.StatusConflict, services.ErrEmailTaken.Error())
		case errors.Is(err, services.ErrValidation):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := ac.auth.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, services.ErrBadCredentials.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}
