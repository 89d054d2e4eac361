package http

import (
	"net/http"

	"eventpulse/internal/delivery/http/controllers"
	"eventpulse/internal/delivery/http/helpers"

	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(feedController *controllers.FeedController, nativeController *controllers.NativeEventController) *http.ServeMux {
	mux := http.NewServeMux()

	// Public feed
	mux.HandleFunc("GET /events", feedController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", feedController.GetEventByID)
	mux.HandleFunc("GET /events/{eventID}/related", feedController.RelatedEvents)

	// Manage area
	mux.HandleFunc("GET /manage/events", nativeController.ListEvents)
	mux.HandleFunc("POST /manage/events", nativeController.CreateEvent)
	mux.HandleFunc("GET /manage/events/{eventID}", nativeController.GetEventByID)
	mux.HandleFunc("PATCH /manage/events/{eventID}", nativeController.UpdateEvent)
	mux.HandleFunc("DELETE /manage/events/{eventID}", nativeController.DeleteEvent)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
