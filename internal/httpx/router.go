package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pragadeesh891/trolley/internal/httpx/middlewares"
)

// NewRouter mounts every trolley endpoint on a chi router.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/pair", handler.Pair)
		r.Post("/barcode", handler.Barcode)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", handler.GetSession)
			r.Delete("/", handler.EndSession)
			r.Post("/items", handler.AddItem)
			r.Get("/bill", handler.GetBill)
			r.Post("/checkout", handler.Checkout)
		})

		r.Post("/translate", handler.Translate)
		r.Post("/detect-language", handler.DetectLanguage)
		r.Post("/voice-command", handler.VoiceCommand)
		r.Post("/trolley-control", handler.TrolleyControl)
	})

	return r
}
