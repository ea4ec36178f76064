package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nkraeva/task-tracker-api/internal/repo"
	"github.com/nkraeva/task-tracker-api/internal/service"
	"github.com/nkraeva/task-tracker-api/pkg/respond"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

type createTaskRequest struct {
	Title  string `json:"title"`
	UserID int64  `json:"user_id"`
}

type updateTaskRequest struct {
	Status string `json:"status"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	task, err := h.service.Create(r.Context(), req.Title, req.UserID)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	// created_at проставляет база, в ответ создания оно не входит.
	respond.JSON(w, r, http.StatusCreated, map[string]interface{}{
		"id":     task.ID,
		"title":  task.Title,
		"status": task.Status,
	})
}

// List отдает задачи пользователя; {id} в этом маршруте - идентификатор
// пользователя. Несуществующий пользователь дает пустой список, не ошибку.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	tasks, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Updated")
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}

	respond.Message(w, r, http.StatusOK, "Deleted")
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorUnavailable):
		h.logger.Error("store unreachable", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Database connection failed")
	default:
		h.logger.Error("store query failed", zap.Error(err))
		respond.Error(w, r, http.StatusInternalServerError, "Database query failed")
	}
}
