package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router собирает маршруты приложения. Проверка Content-Type стоит только
// на маршрутах с JSON-телом; GET и DELETE принимаются без заголовка.
func Router(auth *AuthHandler, tasks *TaskHandler, diag *DiagHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", diag.Home)

	r.Group(func(r chi.Router) {
		r.Use(RequireJSON)
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
		r.Post("/tasks", tasks.Create)
		r.Put("/tasks/{id:[0-9]+}", tasks.Update)
	})

	r.Get("/tasks/{id:[0-9]+}", tasks.List)
	r.Delete("/tasks/{id:[0-9]+}", tasks.Delete)

	return r
}
