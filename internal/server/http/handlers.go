package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"xiangqi/internal/config"
	"xiangqi/internal/game"
	sessions "xiangqi/internal/server/game"
)

// Handler 持有会话表和推送 hub；路由见 router.go
type Handler struct {
	cfg config.Config
	mgr *sessions.Manager
	hub *Hub
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{
		cfg: cfg,
		mgr: sessions.NewManager(cfg.NewEngine()),
		hub: NewHub(),
	}
}

func (h *Handler) Sessions() *sessions.Manager { return h.mgr }

func (h *Handler) Hub() *Hub { return h.hub }

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) session(w http.ResponseWriter, id string) (*sessions.Session, bool) {
	sess, err := h.mgr.Get(id)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

func (h *Handler) snapshot(sess *sessions.Session) StateResponse {
	var st StateResponse
	_ = sess.With(func(g *game.Game) error {
		st = stateOf(sess.ID, g)
		return nil
	})
	return st
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]bool{"ok": true})
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sess := h.mgr.NewGame()
	log.Printf("[server] new game %s", sess.ID)
	writeJSON(w, h.snapshot(sess))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	sess, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	writeJSON(w, h.snapshot(sess))
}

func (h *Handler) handleLegal(w http.ResponseWriter, r *http.Request) {
	var req LegalRequest
	if !decode(w, r, &req) {
		return
	}
	sess, ok := h.session(w, req.GameID)
	if !ok {
		return
	}
	resp := LegalResponse{Piece: req.Piece}
	_ = sess.With(func(g *game.Game) error {
		resp.Destinations = g.LegalDestinations(req.Piece)
		return nil
	})
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	sess, ok := h.session(w, req.GameID)
	if !ok {
		return
	}

	var resp ActionResponse
	_ = sess.With(func(g *game.Game) error {
		rec, err := g.ApplyMove(req.Piece, req.To)
		if err != nil {
			resp.Reason = err.Error()
		} else {
			resp.Applied = true
			resp.Move = recordToDTO(rec)
		}
		resp.State = stateOf(sess.ID, g)
		return nil
	})
	if resp.Applied {
		h.hub.Publish(sess.ID, resp.State)
	}
	writeJSON(w, resp)
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !decode(w, r, &req) {
		return
	}
	sess, ok := h.session(w, req.GameID)
	if !ok {
		return
	}

	depth := req.Depth
	if depth <= 0 {
		d, err := h.cfg.DepthFor(req.Difficulty)
		if err != nil {
			http.Error(w, "unknown difficulty", http.StatusBadRequest)
			return
		}
		depth = d
	}
	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	ctx := r.Context()
	if t := h.cfg.AITimeout(); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t)
		defer cancel()
	}

	var resp ActionResponse
	_ = sess.With(func(g *game.Game) error {
		side := g.Turn()
		if req.Side != "" {
			s, ok := parseSide(req.Side)
			if !ok {
				resp.Reason = "unknown side"
				resp.State = stateOf(sess.ID, g)
				return nil
			}
			side = s
		}

		rec, moved, err := g.RequestAIMove(ctx, side, depth, seed)
		switch {
		case err != nil:
			resp.Reason = err.Error()
			if errors.Is(err, context.DeadlineExceeded) {
				log.Printf("[ai] game %s: search timed out at depth %d", sess.ID, depth)
			}
		case !moved:
			resp.Reason = "no moves"
		default:
			resp.Applied = true
			resp.Move = recordToDTO(rec)
		}
		resp.State = stateOf(sess.ID, g)
		return nil
	})
	if resp.Applied {
		h.hub.Publish(sess.ID, resp.State)
	}
	writeJSON(w, resp)
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decode(w, r, &req) {
		return
	}
	sess, ok := h.session(w, req.GameID)
	if !ok {
		return
	}

	var resp ActionResponse
	_ = sess.With(func(g *game.Game) error {
		resp.Applied = g.Undo()
		if !resp.Applied {
			resp.Reason = "nothing to undo"
		}
		resp.State = stateOf(sess.ID, g)
		return nil
	})
	if resp.Applied {
		h.hub.Publish(sess.ID, resp.State)
	}
	writeJSON(w, resp)
}
