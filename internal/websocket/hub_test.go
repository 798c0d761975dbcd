package websocket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/N05TR4/gdt-sistema/internal/events"
	"github.com/N05TR4/gdt-sistema/internal/platform/logger"

	"github.com/gin-gonic/gin"
	gws "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.Discard())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	router := gin.New()
	router.GET("/ws", func(c *gin.Context) { ServeWs(hub, c) })
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *gws.Conn {
	t.Helper()
	conn, _, err := gws.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// readEvents collects n events. Queued events may arrive newline-joined in
// a single frame.
func readEvents(t *testing.T, conn *gws.Conn, n int) []events.Event {
	t.Helper()
	var out []events.Event
	for len(out) < n {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		for _, line := range bytes.Split(data, []byte{'\n'}) {
			var e events.Event
			require.NoError(t, json.Unmarshal(line, &e))
			out = append(out, e)
		}
	}
	return out
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub, url := startHub(t)
	all := dial(t, url)
	filtered := dial(t, url+"?taxpayer_id=1-01-00000-2")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	ctx := context.Background()
	require.NoError(t, hub.Publish(ctx, events.Event{Type: events.TypeCreated, TaxpayerID: "101000001", FilingNumber: "DECL-2025-000001"}))
	require.NoError(t, hub.Publish(ctx, events.Event{Type: events.TypeFiled, TaxpayerID: "101000002", FilingNumber: "DECL-2025-000002"}))

	got := readEvents(t, all, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "DECL-2025-000001", got[0].FilingNumber)
	assert.Equal(t, "DECL-2025-000002", got[1].FilingNumber)

	only := readEvents(t, filtered, 1)
	require.Len(t, only, 1)
	assert.Equal(t, events.TypeFiled, only[0].Type)
	assert.Equal(t, "101000002", only[0].TaxpayerID)
}

func TestServeWsRejectsBadTaxpayerFilter(t *testing.T) {
	_, url := startHub(t)
	_, resp, err := gws.DefaultDialer.Dial(url+"?taxpayer_id=abc", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPublishAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(logger.Discard())
	stopped := make(chan struct{})
	go func() { hub.Run(ctx); close(stopped) }()
	cancel()
	<-stopped

	// Fill the buffer so the send cannot succeed.
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.broadcast <- message{}
	}
	err := hub.Publish(context.Background(), events.Event{Type: events.TypeApproved})
	assert.Error(t, err)
}
