package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Momin010/MominOS-9u/internal/domain/dock"
	"github.com/Momin010/MominOS-9u/internal/domain/launcher"
	"github.com/Momin010/MominOS-9u/internal/domain/registry"
	"github.com/Momin010/MominOS-9u/internal/domain/session"
	"github.com/Momin010/MominOS-9u/internal/domain/wm"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/monitoring"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
	"github.com/Momin010/MominOS-9u/internal/shared/utils"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	wm       *wm.Manager
	dock     *dock.Dock
	launcher *launcher.Launcher
	catalog  *registry.Manager
	gate     *session.Gate
	metrics  *monitoring.Metrics
}

// NewHandlers creates a new handler set.
func NewHandlers(
	wmgr *wm.Manager,
	d *dock.Dock,
	l *launcher.Launcher,
	catalog *registry.Manager,
	gate *session.Gate,
	metrics *monitoring.Metrics,
) *Handlers {
	return &Handlers{
		wm:       wmgr,
		dock:     d,
		launcher: l,
		catalog:  catalog,
		gate:     gate,
		metrics:  metrics,
	}
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "MominOS Shell Engine",
		"version": "0.2.0",
	})
}

// Health handles detailed health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"window_manager": h.wm.Stats(),
		"catalog":        h.catalog.Stats(),
		"session_active": h.gate.Active() != nil,
	})
}

// ListIdentities returns the selectable login identities.
func (h *Handlers) ListIdentities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"identities": h.gate.Identities(),
	})
}

// Login starts a session for the selected identity.
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		IdentityID string `json:"identity_id" binding:"required"`
		Credential string `json:"credential"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateID(req.IdentityID, "identity_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateCredential(req.Credential); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := h.gate.Login(req.IdentityID, req.Credential)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, session.ErrUnknownIdentity):
			status = http.StatusNotFound
		case errors.Is(err, session.ErrSessionActive):
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordLogin()
	}

	c.JSON(http.StatusOK, gin.H{
		"session": sess,
	})
}

// Logout ends the active session.
func (h *Handlers) Logout(c *gin.Context) {
	if err := h.gate.Logout(); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordLogout()
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSession returns the active session, if any.
func (h *Handlers) GetSession(c *gin.Context) {
	sess := h.gate.Active()
	if sess == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// ListWindows lists all managed windows in z-order.
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"windows": h.wm.List(),
		"stats":   h.wm.Stats(),
	})
}

// GetWindow returns a single window by id.
func (h *Handlers) GetWindow(c *gin.Context) {
	windowID := c.Param("id")

	if err := utils.ValidateID(windowID, "window_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	win, ok := h.wm.Get(windowID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found"})
		return
	}
	c.JSON(http.StatusOK, win)
}

// FocusWindow raises a window to the top of the z-order.
func (h *Handlers) FocusWindow(c *gin.Context) {
	h.windowCommand(c, h.wm.Focus)
}

// CloseWindow removes a window.
func (h *Handlers) CloseWindow(c *gin.Context) {
	h.windowCommand(c, h.wm.Close)
}

// MinimizeWindow hides a window from rendering.
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	h.windowCommand(c, h.wm.Minimize)
}

// MaximizeWindow toggles a window's maximized state.
func (h *Handlers) MaximizeWindow(c *gin.Context) {
	h.windowCommand(c, h.wm.Maximize)
}

// windowCommand runs a total window operation and reports its outcome.
func (h *Handlers) windowCommand(c *gin.Context, op func(string) bool) {
	windowID := c.Param("id")

	if err := utils.ValidateID(windowID, "window_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   op(windowID),
		"window_id": windowID,
	})
}

// SnapWindow moves a window into a snap zone's target geometry.
func (h *Handlers) SnapWindow(c *gin.Context) {
	windowID := c.Param("id")

	if err := utils.ValidateID(windowID, "window_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Zone string `json:"zone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	zone := types.SnapZone(req.Zone)
	switch zone {
	case types.SnapLeftHalf, types.SnapRightHalf,
		types.SnapTopLeft, types.SnapTopRight,
		types.SnapBottomLeft, types.SnapBottomRight,
		types.SnapMaximize:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown snap zone"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   h.wm.Snap(windowID, zone),
		"window_id": windowID,
		"zone":      zone,
	})
}

// OpenApp launches a catalog entry as a window.
func (h *Handlers) OpenApp(c *gin.Context) {
	appID := c.Param("id")

	if err := utils.ValidateID(appID, "app_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, ok := h.catalog.Get(appID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}

	win, created := h.wm.Open(entry)
	h.launcher.Dismiss()
	c.JSON(http.StatusOK, gin.H{
		"window":  win,
		"created": created,
	})
}

// ListCatalog returns the app catalog in registration order.
func (h *Handlers) ListCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"apps":  h.catalog.Entries(),
		"stats": h.catalog.Stats(),
	})
}

// GetCatalogApp returns a catalog entry with its resolved provider.
func (h *Handlers) GetCatalogApp(c *gin.Context) {
	appID := c.Param("id")

	if err := utils.ValidateID(appID, "app_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, ok := h.catalog.Get(appID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}

	provider, ok := h.catalog.ResolveApp(appID)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "app has no content provider"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"app":      entry,
		"provider": provider,
	})
}

// GetDock returns the renderable dock snapshot.
func (h *Handlers) GetDock(c *gin.Context) {
	c.JSON(http.StatusOK, h.dock.State(h.wm.List()))
}

// SetDockAnchor moves the dock to an explicit anchor.
func (h *Handlers) SetDockAnchor(c *gin.Context) {
	var req struct {
		Anchor string `json:"anchor" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anchor := types.DockAnchor(req.Anchor)
	switch anchor {
	case types.AnchorBottom, types.AnchorTop, types.AnchorLeft, types.AnchorRight,
		types.AnchorTopLeft, types.AnchorTopRight,
		types.AnchorBottomLeft, types.AnchorBottomRight:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dock anchor"})
		return
	}

	h.dock.SetAnchor(anchor)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"anchor":  anchor,
	})
}

// ShowLauncher opens the launcher overlay.
func (h *Handlers) ShowLauncher(c *gin.Context) {
	h.launcher.Show()
	c.JSON(http.StatusOK, gin.H{"visible": true})
}

// DismissLauncher closes the launcher overlay without a selection.
func (h *Handlers) DismissLauncher(c *gin.Context) {
	h.launcher.Dismiss()
	c.JSON(http.StatusOK, gin.H{"visible": false})
}

// FilterLauncher returns catalog entries matching the query.
func (h *Handlers) FilterLauncher(c *gin.Context) {
	query := c.Query("q")

	if err := utils.ValidateQuery(query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"apps":    h.launcher.Filter(query),
		"visible": h.launcher.Visible(),
	})
}

// SelectLauncherApp opens the selected entry and dismisses the overlay.
func (h *Handlers) SelectLauncherApp(c *gin.Context) {
	var req struct {
		AppID string `json:"app_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateID(req.AppID, "app_id", true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	win, ok := h.launcher.Select(req.AppID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"window": win,
	})
}
