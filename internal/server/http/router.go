package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router 挂上 /api/*、/ws 和静态页面
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.handlePing)
		r.Post("/new_game", h.handleNewGame)
		r.Post("/state", h.handleState)
		r.Post("/legal", h.handleLegal)
		r.Post("/play", h.handlePlay)
		r.Post("/ai_move", h.handleAiMove)
		r.Post("/undo", h.handleUndo)
	})
	r.Get("/ws", h.handleWS)

	if h.cfg.WebDir != "" {
		RegisterStaticRoutes(r, h.cfg.WebDir, h.cfg.MobileWebDir)
	}
	return r
}
