package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/userdash/dashboard-backend/internal/domain/ports"
	"github.com/userdash/dashboard-backend/internal/handlers/dto"
	"github.com/userdash/dashboard-backend/internal/handlers/middleware"
	"github.com/userdash/dashboard-backend/internal/realtime"
)

// WSHandler streams wall activity to the acting user over a websocket.
type WSHandler struct {
	hub      *realtime.Hub
	logger   ports.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler. Origin checking is delegated
// to the CORS layer.
func NewWSHandler(hub *realtime.Hub, logger ports.Logger) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Feed upgrades the connection and pushes every message and comment
// addressed to the acting user until the client disconnects.
//
//	@Summary	Subscribe to wall activity
//	@Tags		messages
//	@Security	BearerAuth
//	@Router		/ws [get]
func (h *WSHandler) Feed(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		dto.Respond(c, dto.UnauthorizedProblem(c))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	events, cancel := h.hub.Subscribe(actor.UserID)
	defer cancel()

	// Drain client frames so pings and close frames are processed;
	// the feed is write-only from the application's point of view.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case event, open := <-events:
			if !open {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug("websocket write failed", "user_id", actor.UserID, "error", err)
				return
			}
		}
	}
}
