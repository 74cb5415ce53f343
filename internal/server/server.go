// Package server hosts the live editor: an HTTP shell page, a
// websocket channel applying edits to the shared session, and JSON
// endpoints for snapshot import/export, uploads, markdown import, and
// the writing assist.
package server

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/assist"
	"github.com/scholarfolio/scholarfolio/internal/config"
	"github.com/scholarfolio/scholarfolio/internal/export"
	"github.com/scholarfolio/scholarfolio/internal/mdimport"
	"github.com/scholarfolio/scholarfolio/internal/render"
	"github.com/scholarfolio/scholarfolio/internal/session"
)

// Server wires the editor session to HTTP and websocket transports.
type Server struct {
	cfg     *config.Config
	sess    *session.EditorSession
	assist  *assist.Client
	ids     scholarfolio.IDSource
	debug   bool
	watcher *Watcher
}

// New creates a server around an existing session.
func New(cfg *config.Config, sess *session.EditorSession) *Server {
	return &Server{
		cfg:    cfg,
		sess:   sess,
		assist: assist.New(cfg.Assist),
		ids:    scholarfolio.UUIDSource{},
		debug:  cfg.Server.Debug,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleEditor)
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/api/snapshot", s.handleSnapshot)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/api/import/markdown", s.handleMarkdownImport)
	assistLimit := RateLimit(1, 3)
	mux.Handle("/api/assist/bio", assistLimit(http.HandlerFunc(s.handleAssistBio)))
	mux.Handle("/api/assist/interests", assistLimit(http.HandlerFunc(s.handleAssistInterests)))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	var h http.Handler = mux
	h = SecurityHeaders()(h)
	h = GzipMiddleware()(h)
	h = RequestLogger(s.debug)(h)
	return h
}

// ListenAndServe starts the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	addr := s.cfg.Server.Addr()
	log.Printf("[HTTP] Editor listening on http://%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleEditor serves the editor shell with the first render inlined.
func (s *Server) handleEditor(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page := render.Page(s.sess.Profile(), render.Options{
		Mode:         render.ModeInteractive,
		Theme:        s.sess.Theme(),
		PrimaryColor: s.sess.PrimaryColor(),
		ActivePageID: s.sess.ActivePageID(),
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := editorShell.Execute(w, map[string]any{
		"Content":       template.HTML(page),
		"HasAssist":     s.assist.HasCredential(),
		"Themes":        scholarfolio.ThemeIDs(),
		"CurrentTheme":  s.sess.Theme(),
		"PrimaryColor":  s.sess.PrimaryColor(),
		"PaletteGroups": render.Palettes(),
		"Fonts":         render.Fonts(),
	}); err != nil {
		log.Printf("[HTTP] editor shell: %v", err)
	}
}

// handleSnapshot exposes the live document as a snapshot file. GET
// downloads it, POST imports one.
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		raw, err := json.MarshalIndent(s.sess.Snapshot(), "", "  ")
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="site.json"`)
		w.Write(raw)
	case http.MethodPost:
		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 20<<20))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.sess.ImportSnapshot(raw); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.writeRenderJSON(w)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleExport streams the static artifact.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	snap := s.sess.Snapshot()
	out, err := export.Build(snap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(snap.Profile)))
	w.Write(out)
}

// handleMarkdownImport turns an uploaded markdown document into a new
// page appended to the profile.
func (s *Server) handleMarkdownImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 5<<20))
	if err != nil {
		http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
		return
	}
	page, err := mdimport.Import(raw, s.ids)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.sess.AppendPage(page)
	s.writeRenderJSON(w)
}

type assistRequest struct {
	Text      string   `json:"text,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

func (s *Server) handleAssistBio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "decode: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]string{"text": s.assist.OptimizeBio(r.Context(), req.Text)})
}

func (s *Server) handleAssistInterests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req assistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "decode: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{"interests": s.assist.SuggestResearchInterests(r.Context(), req.Interests)})
}

// writeRenderJSON replies with the freshly rendered interactive page
// plus the session flags the client chrome needs.
func (s *Server) writeRenderJSON(w http.ResponseWriter) {
	writeJSON(w, s.renderState())
}

func (s *Server) renderState() map[string]any {
	return map[string]any{
		"html": render.Page(s.sess.Profile(), render.Options{
			Mode:         render.ModeInteractive,
			Theme:        s.sess.Theme(),
			PrimaryColor: s.sess.PrimaryColor(),
			ActivePageID: s.sess.ActivePageID(),
			SearchQuery:  s.sess.SearchQuery(),
		}),
		"activePageId": s.sess.ActivePageID(),
		"theme":        s.sess.Theme(),
		"primaryColor": s.sess.PrimaryColor(),
		"canUndo":      s.sess.CanUndo(),
		"canRedo":      s.sess.CanRedo(),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] encode response: %v", err)
	}
}
