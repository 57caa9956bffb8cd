package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/pktfmt/internal/diagram"
	"github.com/muurk/pktfmt/internal/fields"
	"github.com/muurk/pktfmt/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// ProtocolInfo is one entry of the protocol index resource.
type ProtocolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ResolveFunc maps a protocol name to its inline field definition. The
// command wires this to the user registry and the builtin table.
type ResolveFunc func(name string) (definition string, err error)

// RenderRequest is the JSON body accepted by the render endpoint and the
// live-preview socket. Exactly one of Protocol or Definition must be set.
type RenderRequest struct {
	Protocol   string `json:"protocol,omitempty"`
	Definition string `json:"definition,omitempty"`
	BitsPerRow int    `json:"bits_per_row,omitempty"`
	Ruler      *bool  `json:"ruler,omitempty"`
	Style      string `json:"style,omitempty"`
}

// RenderResponse carries either the rendered diagram or an error message.
type RenderResponse struct {
	Diagram string `json:"diagram,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Server renders diagrams over HTTP.
type Server struct {
	addr    string
	index   []ProtocolInfo
	resolve ResolveFunc
}

// New creates a diagram server listening on addr.
func New(addr string, index []ProtocolInfo, resolve ResolveFunc) *Server {
	return &Server{
		addr:    addr,
		index:   index,
		resolve: resolve,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Serving diagrams", zap.String("addr", s.addr))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		logging.Info("Server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	}
}

// routes builds the HTTP mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/protocols", s.handleProtocols)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

func (s *Server) handleProtocols(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "GET only", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.index); err != nil {
		logging.Error("Failed to encode protocol index", zap.Error(err))
	}
	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusOK)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, RenderResponse{Error: "invalid request body: " + err.Error()})
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusBadRequest)
		return
	}

	out, err := s.render(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, RenderResponse{Error: err.Error()})
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{Diagram: out})
	logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, http.StatusOK)
}

// render turns one request into diagram text.
func (s *Server) render(req RenderRequest) (string, error) {
	var definition string

	switch {
	case req.Protocol != "" && req.Definition != "":
		return "", errors.New("set either 'protocol' or 'definition', not both")
	case req.Protocol != "":
		resolved, err := s.resolve(req.Protocol)
		if err != nil {
			return "", err
		}
		definition = resolved
	case req.Definition != "":
		definition = req.Definition
	default:
		return "", errors.New("one of 'protocol' or 'definition' is required")
	}

	fieldList, err := fields.ParseInline(definition)
	if err != nil {
		logging.LogParseError(definition, err)
		return "", err
	}

	cfg := diagram.Config{
		BitsPerRow: req.BitsPerRow,
		ShowRuler:  true,
		Theme:      diagram.ThemeNamed(req.Style),
	}
	if cfg.BitsPerRow == 0 {
		cfg.BitsPerRow = diagram.DefaultBitsPerRow
	}
	if cfg.BitsPerRow < 0 {
		return "", fmt.Errorf("bits_per_row must be positive, got %d", cfg.BitsPerRow)
	}
	if req.Ruler != nil {
		cfg.ShowRuler = *req.Ruler
	}

	out := diagram.Render(fieldList, cfg)
	logging.LogRender("http", len(fieldList), cfg.BitsPerRow, cfg.Theme.Name)
	return out, nil
}

func writeJSON(w http.ResponseWriter, status int, body RenderResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("Failed to encode response", zap.Error(err))
	}
}
