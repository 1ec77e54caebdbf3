package feed

import (
	"log"
	"net/http"

	"heiwahouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS allow-list at the middleware layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

// RegisterAdminRoutes wires the live dashboard feed; the caller applies the
// admin auth middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/feed", h.Connect)
}

func (h *Handler) Connect(c *gin.Context) {
	adminID := c.GetInt64("admin_id")
	if adminID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("feed_upgrade_failed admin_id=%d error=%q", adminID, err)
		return
	}

	h.hub.Register(adminID, conn)
	log.Printf("feed_connected admin_id=%d online=%d", adminID, h.hub.OnlineCount())

	// Drain reads so close frames are processed; the feed is push-only.
	go func() {
		defer h.hub.Unregister(adminID)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
