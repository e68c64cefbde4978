package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sweepstats/sweepstats/internal/api/apierr"
	"github.com/sweepstats/sweepstats/internal/api/middleware"
	"github.com/sweepstats/sweepstats/internal/api/request"
	"github.com/sweepstats/sweepstats/internal/api/response"
	"github.com/sweepstats/sweepstats/internal/services/auth"
	"github.com/sweepstats/sweepstats/internal/services/token"
)

// UserHandler handles account and token endpoints
type UserHandler struct {
	authService  *auth.Service
	tokenService *token.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service, tokenService *token.Service) *UserHandler {
	return &UserHandler{
		authService:  authService,
		tokenService: tokenService,
	}
}

// Register handles POST /api/v1/users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username and password are required"))
		return
	}

	user, err := h.authService.Register(r.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	accessToken, err := h.tokenService.Issue(user.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponse{
		User:        response.UserFromModel(user),
		AccessToken: accessToken,
	})
}

// Login handles POST /api/v1/users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" || req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username and password are required"))
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	accessToken, err := h.tokenService.Issue(user.ID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponse{
		User:        response.UserFromModel(user),
		AccessToken: accessToken,
	})
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.MustGetUserID(r.Context())

	user, err := h.authService.GetByID(r.Context(), userID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// Refresh handles POST /api/v1/tokens/refresh.
// The auth middleware has already validated the presented token, so a
// fresh one is issued without re-presenting the password.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	accessToken, err := h.tokenService.Refresh(middleware.GetToken(r.Context()))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TokenResponse{AccessToken: accessToken})
}
