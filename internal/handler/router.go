package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(tasks *TaskHandler, assistant *AssistantHandler) http.Handler {
	r := chi.NewRouter() // Создаем роутер
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"ok"}`)
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Post("/", tasks.Create)
		r.Get("/", tasks.List)
		r.Get("/{id}", tasks.Get)
		r.Patch("/{id}", tasks.Update)
		r.Delete("/{id}", tasks.Delete)
		r.Post("/{id}/toggle", tasks.ToggleComplete)
	})

	r.Route("/api/assistant", func(r chi.Router) {
		r.Get("/context", assistant.Context)
		r.Get("/actions", assistant.Actions)
		r.Post("/actions/{action}", assistant.Invoke)
	})

	return r
}
