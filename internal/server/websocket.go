package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/pktfmt/internal/logging"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// handleWebSocket serves the live-preview socket. Each incoming message is a
// RenderRequest; every message gets a RenderResponse back, carrying either
// the diagram or the parse error so editors can show feedback per keystroke.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	defer conn.Close()

	logging.Info("Live preview connected", zap.String("remote_addr", r.RemoteAddr))

	for {
		var req RenderRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logging.Warn("Live preview read failed",
					zap.String("remote_addr", r.RemoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		var resp RenderResponse
		out, err := s.render(req)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Diagram = out
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			logging.Warn("Live preview write failed",
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			return
		}
		logging.LogWebSocketMessage(r.RemoteAddr, "sent", len(resp.Diagram))
	}
}
