// Package httpapi exposes the dispatch actions over a local HTTP API so
// other tools on the machine (editors, scripts, panels) can create shares
// and read the history.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sharepad/sharepad/internal/dispatch"
	"github.com/sharepad/sharepad/internal/history"
	"github.com/sharepad/sharepad/internal/logging"
)

// Handler serves the action surface over HTTP.
type Handler struct {
	router *dispatch.Router
	log    logging.Logger
}

func NewHandler(router *dispatch.Router, log logging.Logger) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	return &Handler{router: router, log: log}
}

// Routes assembles the chi router with the standard middleware stack.
func Routes(router *dispatch.Router, log logging.Logger) *chi.Mux {
	h := NewHandler(router, log)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/shares", h.CreateShare)
		r.Get("/shares", h.ListShares)
		r.Get("/shares/search", h.SearchShares)
		r.Delete("/shares", h.ClearShares)
		r.Get("/logs", h.Logs)
	})

	return r
}

type createRequest struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	res := h.router.Ping(r.Context(), dispatch.Ping{})
	h.json(w, http.StatusOK, res)
}

// CreateShare uploads the posted text. The response body is always the full
// ShareLinkResult; the HTTP status mirrors the outcome so plain curl usage
// works without parsing.
func (h *Handler) CreateShare(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.json(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res := h.router.CreateShareLink(r.Context(), dispatch.CreateShareLink{Text: req.Text})
	h.json(w, shareStatus(res), res)
}

func shareStatus(res dispatch.ShareLinkResult) int {
	switch {
	case res.Success:
		return http.StatusCreated
	case res.StatusCode == 429:
		return http.StatusTooManyRequests
	case res.StatusCode >= 500:
		return http.StatusBadGateway
	default:
		return http.StatusBadRequest
	}
}

func (h *Handler) ListShares(w http.ResponseWriter, r *http.Request) {
	res, err := h.router.GetShareHistory(r.Context(), dispatch.GetShareHistory{})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, res)
}

// SearchShares filters the history by ?q= substring and optional ?from= /
// ?to= RFC3339 bounds.
func (h *Handler) SearchShares(w http.ResponseWriter, r *http.Request) {
	filter := history.Filter{Query: r.URL.Query().Get("q")}

	if v := r.URL.Query().Get("from"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.json(w, http.StatusBadRequest, errorResponse{Error: "invalid 'from' timestamp"})
			return
		}
		filter.From = ts
	}
	if v := r.URL.Query().Get("to"); v != "" {
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			h.json(w, http.StatusBadRequest, errorResponse{Error: "invalid 'to' timestamp"})
			return
		}
		filter.To = ts
	}

	res, err := h.router.SearchShareHistory(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, res)
}

func (h *Handler) ClearShares(w http.ResponseWriter, r *http.Request) {
	res, err := h.router.ClearShareHistory(r.Context(), dispatch.ClearShareHistory{})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, res)
}

func (h *Handler) Logs(w http.ResponseWriter, r *http.Request) {
	h.json(w, http.StatusOK, h.router.GetLogs(r.Context(), dispatch.GetLogs{}))
}

func (h *Handler) json(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// fail logs the underlying error and answers with a generic message; raw
// internals never reach a surface.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error(r.Context(), "request failed", "path", r.URL.Path, "err", err)
	h.json(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

// Server wraps http.Server with sane timeouts for the local API.
type Server struct {
	srv *http.Server
	log logging.Logger
}

func NewServer(addr string, router *dispatch.Router, log logging.Logger) *Server {
	if log == nil {
		log = logging.Nop()
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           Routes(router, log),
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.log.Info(context.Background(), "http api listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
