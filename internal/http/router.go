package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"

	"momentum/internal/auth"
	"momentum/internal/config"
	"momentum/internal/goalarea"
	"momentum/internal/http/handler"
	mw "momentum/internal/http/middleware"
	"momentum/internal/voice"
	"momentum/internal/win"
)

func NewRouter(cfg config.Config, db *gorm.DB, transcriber voice.Transcriber, extractor *voice.Extractor) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(mw.RequestLogging)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	areaSvc := &goalarea.Service{DB: db}
	winSvc := &win.Service{DB: db}
	captureSvc := &voice.Service{DB: db}

	winH := &handler.WinHandler{Svc: winSvc}
	areaH := &handler.GoalAreaHandler{Svc: areaSvc}
	momentumH := &handler.MomentumHandler{Areas: areaSvc, Wins: winSvc}
	voiceH := &handler.VoiceHandler{Transcriber: transcriber, Extractor: extractor, Captures: captureSvc}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"status":    "ok",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireUser)

			r.Route("/wins", func(r chi.Router) {
				r.Post("/", winH.Create)
				r.Get("/weekly", winH.Weekly)
				r.Get("/vault", winH.Vault)
				r.Get("/log", winH.Log)
			})

			r.Route("/goal-areas", func(r chi.Router) {
				r.Get("/", areaH.List)
				r.Patch("/{id}", areaH.Update)
			})

			r.Get("/momentum", momentumH.Get)

			r.Route("/voice", func(r chi.Router) {
				r.Post("/process", voiceH.Process)
				r.Post("/transcribe-only", voiceH.TranscribeOnly)
				r.Get("/captures", voiceH.ListCaptures)
			})
		})
	})

	return r
}
