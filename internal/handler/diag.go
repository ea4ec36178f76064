package handler

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/nkraeva/task-tracker-api/internal/service"
)

var diagPage = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Task Tracker API</title></head>
<body>
  <h1>Task Tracker API</h1>
  <p>DB Status: <strong>{{.Status}}</strong></p>
  {{if .ErrMsg}}<p>{{.ErrMsg}}</p>{{end}}
  <p>Registered Users: {{.UserCount}}</p>
</body>
</html>
`))

type DiagHandler struct {
	service *service.DiagService
	logger  *zap.Logger
}

func NewDiagHandler(srv *service.DiagService, logger *zap.Logger) *DiagHandler {
	return &DiagHandler{
		service: srv,
		logger:  logger,
	}
}

// Home всегда отвечает 200: состояние хранилища попадает в саму страницу.
func (h *DiagHandler) Home(w http.ResponseWriter, r *http.Request) {
	report := h.service.Check(r.Context())

	h.logger.Info("diagnostic check",
		zap.String("db_status", report.Status),
		zap.Int("user_count", report.UserCount))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := diagPage.Execute(w, report); err != nil {
		h.logger.Error("failed to render diagnostic page", zap.Error(err))
	}
}
