package handler

import (
	"mime"
	"net/http"
	"strings"

	"github.com/nkraeva/task-tracker-api/pkg/respond"
)

// RequireJSON пропускает только запросы с Content-Type application/json
// (или его +json вариантами). Проверяется заголовок, тело разбирают хэндлеры.
func RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || (mt != "application/json" && !strings.HasSuffix(mt, "+json")) {
			respond.Error(w, r, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
			return
		}
		next.ServeHTTP(w, r)
	})
}
