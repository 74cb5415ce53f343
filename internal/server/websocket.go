package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	scholarfolio "github.com/scholarfolio/scholarfolio"
	"github.com/scholarfolio/scholarfolio/internal/docpath"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in development
	},
}

// MessageEnvelope is one edit command from the client. Action selects
// the session mutation; the remaining fields carry its arguments.
type MessageEnvelope struct {
	Action    string          `json:"action"`
	Path      string          `json:"path,omitempty"`
	Value     json.RawMessage `json:"value,omitempty"`
	Updates   []UpdateEntry   `json:"updates,omitempty"`
	PageID    string          `json:"pageId,omitempty"`
	BlockID   string          `json:"blockId,omitempty"`
	BlockType string          `json:"blockType,omitempty"`
	LinkID    string          `json:"linkId,omitempty"`
	MatchText string          `json:"matchText,omitempty"`
	Element   string          `json:"elementType,omitempty"`
	Delta     int             `json:"delta,omitempty"`
	Query     string          `json:"query,omitempty"`
}

// UpdateEntry is one path/value pair inside an updateMany envelope.
type UpdateEntry struct {
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value"`
}

// handleWebSocket upgrades the connection and applies edit commands
// until the client goes away. Every command is answered with the full
// re-rendered editor state; failed commands get an error reply and
// leave the document untouched.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Failed to upgrade connection: %v", err)
		return
	}
	defer conn.Close()
	if s.debug {
		log.Printf("[WS] Client connected: %s", r.RemoteAddr)
	}

	for {
		var env MessageEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WS] Read error: %v", err)
			}
			return
		}
		if s.debug {
			log.Printf("[WS] Action %q path %q", env.Action, env.Path)
		}

		if errMsg := s.apply(env); errMsg != "" {
			if err := conn.WriteJSON(map[string]any{"type": "error", "error": errMsg}); err != nil {
				log.Printf("[WS] Write error: %v", err)
				return
			}
			continue
		}
		state := s.renderState()
		state["type"] = "render"
		if err := conn.WriteJSON(state); err != nil {
			log.Printf("[WS] Write error: %v", err)
			return
		}
	}
}

// apply dispatches one envelope to the session. It returns an error
// message for the client, or "" on success. Unresolvable paths are
// reported but never fatal.
func (s *Server) apply(env MessageEnvelope) string {
	switch env.Action {
	case "update":
		var v any
		if err := json.Unmarshal(env.Value, &v); err != nil {
			return "bad value: " + err.Error()
		}
		if !s.sess.UpdateByPath(env.Path, v) {
			return "path did not resolve: " + env.Path
		}
	case "updateMany":
		updates := make([]docpath.Update, 0, len(env.Updates))
		for _, u := range env.Updates {
			var v any
			if err := json.Unmarshal(u.Value, &v); err != nil {
				continue
			}
			updates = append(updates, docpath.Update{Path: docpath.Parse(u.Path), Value: v})
		}
		if s.sess.UpdateMany(updates) == 0 {
			return "no update resolved"
		}
	case "removeAt":
		if !s.sess.RemoveAt(env.Path) {
			return "path did not resolve: " + env.Path
		}
	case "insertItem":
		if !s.sess.InsertItem(env.Path) {
			return "block not found: " + env.Path
		}
	case "addPage":
		s.sess.AddPage()
	case "deletePage":
		if err := s.sess.DeletePage(env.PageID); err != nil {
			return err.Error()
		}
	case "addBlock":
		if err := s.sess.AddBlock(env.PageID, scholarfolio.BlockType(env.BlockType)); err != nil {
			return err.Error()
		}
	case "deleteBlock":
		if !s.sess.DeleteBlock(env.PageID, env.BlockID) {
			return "block not found"
		}
	case "moveBlock":
		if !s.sess.MoveBlock(env.PageID, env.BlockID, env.Delta) {
			return "cannot move block"
		}
	case "addInlineLink":
		if !s.sess.AddInlineLink(env.Path, env.MatchText) {
			return "item not found: " + env.Path
		}
	case "removeInlineLink":
		if !s.sess.RemoveInlineLink(env.Path, env.LinkID) {
			return "link not found"
		}
	case "undo":
		s.sess.Undo()
	case "redo":
		s.sess.Redo()
	case "setTheme":
		s.sess.SetTheme(scholarfolio.ThemeID(rawString(env.Value)))
	case "setPrimaryColor":
		s.sess.SetPrimaryColor(rawString(env.Value))
	case "setActivePage":
		if err := s.sess.SetActivePage(env.PageID); err != nil {
			return err.Error()
		}
	case "select":
		s.sess.Select(env.Element, env.Path)
	case "clearSelection":
		s.sess.ClearSelection()
	case "setSearch":
		s.sess.SetSearchQuery(env.Query)
	default:
		return "unknown action: " + env.Action
	}
	return ""
}

// rawString reads a JSON string value, tolerating bare text.
func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}
