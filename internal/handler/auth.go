package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/nkraeva/task-tracker-api/internal/auth"
	"github.com/nkraeva/task-tracker-api/internal/repo"
	"github.com/nkraeva/task-tracker-api/internal/service"
	"github.com/nkraeva/task-tracker-api/pkg/respond"
)

type AuthHandler struct {
	service *service.AuthService
	tokens  *auth.TokenManager
	logger  *zap.Logger
}

func NewAuthHandler(srv *service.AuthService, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: srv,
		tokens:  tokens,
		logger:  logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	if _, err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusCreated, "User registered successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	h.logger.Info("login attempt", zap.String("username", req.Username))

	user, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	// Session-токен дополняет ответ, тело контракта не меняется.
	if token, err := h.tokens.Generate(user); err != nil {
		h.logger.Error("failed to sign session token", zap.Error(err))
	} else {
		http.SetCookie(w, &http.Cookie{
			Name:     "session_token",
			Value:    token,
			Path:     "/",
			HttpOnly: true, // недоступна из JS
		})
	}

	respond.JSON(w, r, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorDuplicate):
		respond.Error(w, r, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		respond.Error(w, r, http.StatusUnauthorized, "Invalid username or password")
	case errors.Is(err, repo.ErrorUnavailable):
		h.logger.Error("store unreachable", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Database connection failed")
	default:
		h.logger.Error("store query failed", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Database query failed")
	}
}
