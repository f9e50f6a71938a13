package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to
// ConnectionManager. Origins are checked against the configured allowlist;
// an empty allowlist only admits same-origin clients.
func (s *Server) wsHandler(c *gin.Context) {
	opts := &websocket.AcceptOptions{}
	if s.cfg != nil {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
