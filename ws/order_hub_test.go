package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Techkepper/PoskepperApi/pkg/events"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*OrderHub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	hub := NewOrderHub(logger, "")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	r := gin.New()
	r.GET("/ws/ordenes", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/ordenes"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestOrderHubBroadcastsToEveryClient(t *testing.T) {
	hub, url := startHub(t)
	a, b := dial(t, url), dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(events.OrderStatusChanged, map[string]any{"idOrden": 5, "estado": "Servida"})

	for _, conn := range []*websocket.Conn{a, b} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var got struct {
			Event string         `json:"event"`
			Data  map[string]any `json:"data"`
		}
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, "estadoOrden", got.Event)
		assert.Equal(t, float64(5), got.Data["idOrden"])
		assert.Equal(t, "Servida", got.Data["estado"])
	}
}

func TestOrderHubForgetsClosedClients(t *testing.T) {
	hub, url := startHub(t)
	conn := dial(t, url)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestOrderHubPublishWithoutClients(t *testing.T) {
	hub, _ := startHub(t)
	assert.NotPanics(t, func() { hub.Publish(events.NewOrder, []int{1}) })
}

func TestOrderHubRejectsForeignOrigin(t *testing.T) {
	logger, _ := test.NewNullLogger()
	hub := NewOrderHub(logger, "http://localhost:5000")
	req := httptest.NewRequest("GET", "/ws/ordenes", nil)

	req.Header.Set("Origin", "http://evil.example")
	assert.False(t, hub.upgrader.CheckOrigin(req))
	req.Header.Set("Origin", "http://localhost:5000")
	assert.True(t, hub.upgrader.CheckOrigin(req))
}
