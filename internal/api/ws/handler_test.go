package ws

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Momin010/MominOS-9u/internal/domain/dock"
	"github.com/Momin010/MominOS-9u/internal/domain/launcher"
	"github.com/Momin010/MominOS-9u/internal/domain/registry"
	"github.com/Momin010/MominOS-9u/internal/domain/wm"
	"github.com/Momin010/MominOS-9u/internal/infrastructure/logging"
	"github.com/Momin010/MominOS-9u/internal/shared/types"
)

type fixture struct {
	server *httptest.Server
	conn   *websocket.Conn
	wm     *wm.Manager
}

func setup(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := registry.NewManager()
	require.NoError(t, registry.NewSeeder(catalog, "").SeedDefaults())

	d := dock.New(catalog.Entries(), 6, 100)
	wmgr := wm.NewManager(types.Size{Width: 1920, Height: 1080}, wm.DefaultLayout()).WithDock(d)
	l := launcher.New(catalog, wmgr)

	handler := NewHandler(wmgr, d, l, catalog, logging.NewDevelopment())

	router := gin.New()
	router.GET("/stream", handler.HandleConnection)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &fixture{server: server, conn: conn, wm: wmgr}
}

// readType reads messages until one of the wanted type arrives,
// skipping clock ticks and interleaved snapshots.
func (f *fixture) readType(t *testing.T, want string) map[string]interface{} {
	t.Helper()

	deadline := time.Now().Add(5 * time.Second)
	require.NoError(t, f.conn.SetReadDeadline(deadline))

	for time.Now().Before(deadline) {
		var msg map[string]interface{}
		require.NoError(t, f.conn.ReadJSON(&msg))
		if msg["type"] == want {
			return msg
		}
	}
	t.Fatalf("no %q message received", want)
	return nil
}

func (f *fixture) write(t *testing.T, msg interface{}) {
	t.Helper()
	require.NoError(t, f.conn.WriteJSON(msg))
}

func TestConnectSendsWelcomeAndState(t *testing.T) {
	f := setup(t)

	welcome := f.readType(t, "system")
	assert.Contains(t, welcome["message"], "Connected")

	state := f.readType(t, "state")
	assert.Empty(t, state["windows"])
	assert.Equal(t, "idle", state["interaction"])

	dockState := state["dock"].(map[string]interface{})
	assert.Equal(t, "bottom", dockState["anchor"])
}

func TestPingPong(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	f.write(t, map[string]interface{}{"type": "ping"})
	f.readType(t, "pong")
}

func TestUnknownMessageType(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	f.write(t, map[string]interface{}{"type": "teleport"})
	errMsg := f.readType(t, "error")
	assert.Equal(t, "unknown message type", errMsg["message"])
}

func TestOpenApp(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	f.write(t, types.WSMessage{Type: "open_app", AppID: "terminal"})
	opened := f.readType(t, "window_opened")
	assert.Equal(t, true, opened["created"])

	win := opened["window"].(map[string]interface{})
	assert.Equal(t, "Terminal", win["title"])

	state := f.readType(t, "state")
	assert.Len(t, state["windows"], 1)

	f.write(t, types.WSMessage{Type: "open_app", AppID: "nope"})
	f.readType(t, "error")
}

func TestViewport(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	f.write(t, types.WSMessage{Type: "viewport", Viewport: &types.Size{Width: 2560, Height: 1440}})
	f.readType(t, "state")
	assert.Equal(t, types.Size{Width: 2560, Height: 1440}, f.wm.Viewport())

	f.write(t, types.WSMessage{Type: "viewport", Viewport: &types.Size{Width: 0, Height: -1}})
	f.readType(t, "error")
}

func TestDragGesture(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	f.write(t, types.WSMessage{Type: "open_app", AppID: "editor"})
	opened := f.readType(t, "window_opened")
	win := opened["window"].(map[string]interface{})
	windowID := win["id"].(string)
	frame := win["frame"].(map[string]interface{})
	startX := int(frame["x"].(float64))
	startY := int(frame["y"].(float64))

	grab := types.Point{X: startX + 50, Y: startY + 10}
	f.write(t, types.WSMessage{
		Type:    "pointer_down",
		Pointer: &grab,
		Target:  &types.PointerTarget{Kind: types.TargetWindow, WindowID: windowID},
	})
	state := f.readType(t, "state")
	assert.Equal(t, "drag-window", state["interaction"])

	moved := types.Point{X: grab.X + 100, Y: grab.Y + 60}
	f.write(t, types.WSMessage{Type: "pointer_move", Pointer: &moved})
	f.readType(t, "state")

	f.write(t, types.WSMessage{Type: "pointer_up", Pointer: &moved})
	state = f.readType(t, "state")
	assert.Equal(t, "idle", state["interaction"])

	got, ok := f.wm.Get(windowID)
	require.True(t, ok)
	assert.Equal(t, startX+100, got.Frame.X)
	assert.Equal(t, startY+60, got.Frame.Y)
}

func TestLauncherFilter(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	f.write(t, types.WSMessage{Type: "launcher_filter", Query: "calc"})
	resp := f.readType(t, "launcher_apps")
	apps := resp["apps"].([]interface{})
	require.Len(t, apps, 1)
	assert.Equal(t, "Calculator", apps[0].(map[string]interface{})["name"])
}

func TestClockTicks(t *testing.T) {
	f := setup(t)
	f.readType(t, "state")

	tick := f.readType(t, "clock")
	assert.NotEmpty(t, tick["time"])
	assert.NotEmpty(t, tick["date"])
}
