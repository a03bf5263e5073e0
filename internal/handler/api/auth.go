package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	reqdto "tourdesk/internal/handler/dto/request"
	resdto "tourdesk/internal/handler/dto/response"
	"tourdesk/internal/handler/middleware"
	"tourdesk/internal/pkg/config"
	"tourdesk/internal/pkg/cookie"
	"tourdesk/internal/usecase"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
	tokenTTL    time.Duration
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		ttl = 24 * time.Hour
	}
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
		tokenTTL:    ttl,
	}
}

// @Summary Staff login
// @Description Login with configured staff email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	token, authorized, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookie(c, h.cookieCfg, token, h.tokenTTL)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: token,
		Staff:       authorized,
	})
}

// @Summary Staff logout
// @Description Logout current staff session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current staff
// @Description Get the authenticated staff member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} usecase.AuthorizedStaff
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not authenticated",
		})
		return
	}

	authorized, err := h.authUseCase.GetCurrentStaff(c.Request.Context(), staffID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStaffNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Staff account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, authorized)
}
