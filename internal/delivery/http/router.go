package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventledger/internal/delivery/http/controllers"
	"eventledger/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes. The {$}
// suffix pins each pattern to the exact trailing-slash path the API uses.
func NewRouter(eventController *controllers.EventController, userController *controllers.UserController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /api/events/{$}", eventController.List)
	mux.HandleFunc("POST /api/events/{$}", eventController.Create)
	mux.HandleFunc("GET /api/events/{id}/{$}", eventController.GetByID)
	mux.HandleFunc("DELETE /api/events/{id}/{$}", eventController.Delete)
	mux.HandleFunc("POST /api/events/{id}/add_user/{$}", eventController.AddUser)

	// Users
	mux.HandleFunc("POST /api/users/{$}", userController.Create)
	mux.HandleFunc("GET /api/users/{id}/{$}", userController.GetByID)

	// Health
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
