package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Momin010/MominOS-9u/internal/domain/dock"
	"github.com/Momin010/MominOS-9u/internal/domain/launcher"
	"github.com/Momin010/MominOS-9u/internal/domain/registry"
	"github.com/Momin010/MominOS-9u/internal/domain/wm"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/logging"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/monitoring"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Recorder receives stream connection events for metrics export.
type Recorder interface {
	WSConnected()
	WSDisconnected()
	WSMessage(msgType string)
}

// Handler manages renderer stream connections.
type Handler struct {
	wm       *wm.Manager
	dock     *dock.Dock
	launcher *launcher.Launcher
	catalog  *registry.Manager
	metrics  Recorder
	logger   *logging.Logger
}

// NewHandler creates a new stream handler.
func NewHandler(
	wmgr *wm.Manager,
	d *dock.Dock,
	l *launcher.Launcher,
	catalog *registry.Manager,
	logger *logging.Logger,
) *Handler {
	return &Handler{
		wm:       wmgr,
		dock:     d,
		launcher: l,
		catalog:  catalog,
		logger:   logger,
	}
}

// WithMetrics adds metrics tracking to the handler.
func (h *Handler) WithMetrics(metrics Recorder) *Handler {
	h.metrics = metrics
	return h
}

var _ Recorder = (*monitoring.Metrics)(nil)

// conn wraps a websocket connection with a write lock so the clock
// ticker and the message loop never interleave frames.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

func (c *conn) send(data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(data)
}

// HandleConnection upgrades the request and runs the message loop.
func (h *Handler) HandleConnection(c *gin.Context) {
	wsConn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer wsConn.Close()

	if h.metrics != nil {
		h.metrics.WSConnected()
		defer h.metrics.WSDisconnected()
	}

	cn := &conn{ws: wsConn}

	cn.send(map[string]interface{}{
		"type":    "system",
		"message": "Connected to MominOS Shell Engine",
	})
	h.pushSnapshot(cn)

	// Cosmetic clock tick. The renderer shows it in the top bar; nothing
	// in the engine depends on it.
	done := make(chan struct{})
	defer close(done)
	go h.runClock(cn, done)

	for {
		var msg types.WSMessage
		if err := wsConn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}

		if h.metrics != nil {
			h.metrics.WSMessage(msg.Type)
		}

		switch msg.Type {
		case "pointer_down":
			h.handlePointerDown(cn, msg)
		case "pointer_move":
			h.handlePointerMove(cn, msg)
		case "pointer_up":
			h.handlePointerUp(cn, msg)
		case "viewport":
			h.handleViewport(cn, msg)
		case "open_app":
			h.handleOpenApp(cn, msg)
		case "launcher_filter":
			h.handleLauncherFilter(cn, msg)
		case "ping":
			cn.send(map[string]interface{}{"type": "pong"})
		default:
			h.sendError(cn, "unknown message type")
		}
	}
}

// handlePointerDown begins the interaction matching the named target.
func (h *Handler) handlePointerDown(cn *conn, msg types.WSMessage) {
	if msg.Pointer == nil || msg.Target == nil {
		h.sendError(cn, "pointer_down requires pointer and target")
		return
	}

	var started bool
	switch msg.Target.Kind {
	case types.TargetWindow:
		started = h.wm.BeginDrag(msg.Target.WindowID, *msg.Pointer)
	case types.TargetHandle:
		started = h.wm.BeginResize(msg.Target.WindowID, msg.Target.Handle, *msg.Pointer)
	case types.TargetDock:
		started = h.wm.BeginDockDrag()
	default:
		h.sendError(cn, "unknown pointer target")
		return
	}

	if started {
		h.pushSnapshot(cn)
	}
}

func (h *Handler) handlePointerMove(cn *conn, msg types.WSMessage) {
	if msg.Pointer == nil {
		return
	}
	h.wm.PointerMove(*msg.Pointer)
	h.pushSnapshot(cn)
}

func (h *Handler) handlePointerUp(cn *conn, msg types.WSMessage) {
	if msg.Pointer == nil {
		return
	}
	h.wm.PointerUp(*msg.Pointer)
	h.pushSnapshot(cn)
}

// handleViewport records the renderer's reported surface size.
func (h *Handler) handleViewport(cn *conn, msg types.WSMessage) {
	if msg.Viewport == nil || msg.Viewport.Width <= 0 || msg.Viewport.Height <= 0 {
		h.sendError(cn, "viewport requires positive dimensions")
		return
	}
	h.wm.SetViewport(*msg.Viewport)
	h.pushSnapshot(cn)
}

func (h *Handler) handleOpenApp(cn *conn, msg types.WSMessage) {
	entry, ok := h.catalog.Get(msg.AppID)
	if !ok {
		h.sendError(cn, "unknown app")
		return
	}

	win, created := h.wm.Open(entry)
	h.launcher.Dismiss()
	cn.send(map[string]interface{}{
		"type":    "window_opened",
		"window":  win,
		"created": created,
	})
	h.pushSnapshot(cn)
}

func (h *Handler) handleLauncherFilter(cn *conn, msg types.WSMessage) {
	cn.send(map[string]interface{}{
		"type":  "launcher_apps",
		"query": msg.Query,
		"apps":  h.launcher.Filter(msg.Query),
	})
}

// pushSnapshot sends the full renderable desktop state.
func (h *Handler) pushSnapshot(cn *conn) {
	windows := h.wm.List()
	cn.send(map[string]interface{}{
		"type":             "state",
		"windows":          windows,
		"active_window_id": h.wm.ActiveID(),
		"interaction":      h.wm.InteractionKind(),
		"snap_zones":       h.wm.SnapZonesVisible(),
		"dock":             h.dock.State(windows),
		"launcher_visible": h.launcher.Visible(),
	})
}

// runClock pushes a formatted clock line once per second until the
// connection goes away.
func (h *Handler) runClock(cn *conn, done <-chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if err := cn.send(map[string]interface{}{
				"type": "clock",
				"time": now.Format("15:04:05"),
				"date": now.Format("Mon Jan 2"),
			}); err != nil {
				return
			}
		}
	}
}

func (h *Handler) sendError(cn *conn, msg string) {
	cn.send(map[string]interface{}{
		"type":    "error",
		"message": msg,
	})
}
