package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jvboschetti/acai-storefront/internal/realtime"
	"github.com/jvboschetti/acai-storefront/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The admin panel is served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

const (
	wsWriteWait    = 5 * time.Second
	wsPingInterval = 30 * time.Second
)

// AdminOrdersFeed upgrades to a websocket and pings the client every
// time the orders table changes. The client reacts by refetching the
// list; no payload is sent.
func AdminOrdersFeed(hub *realtime.Hub, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote the HTTP error.
			logg.Warn(r.Context(), "orders feed upgrade failed")
			return
		}
		defer conn.Close()

		ctx := r.Context()
		logg.Info(ctx, "orders feed client connected")

		// Buffer one pending notification; the client refetches the
		// whole list anyway, so coalescing bursts is fine.
		changes := make(chan struct{}, 1)
		unsubscribe := hub.Subscribe(func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
		defer unsubscribe()

		// Drain client frames so close/pong handling works, and tear
		// the subscription down when the peer goes away.
		readerDone := make(chan struct{})
		go func() {
			defer close(readerDone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := conn.WriteJSON(map[string]string{"type": "connected"}); err != nil {
			return
		}

		pingTicker := time.NewTicker(wsPingInterval)
		defer pingTicker.Stop()

		for {
			select {
			case <-changes:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(map[string]string{"type": "orders_changed"}); err != nil {
					return
				}
			case <-pingTicker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-readerDone:
				logg.Info(ctx, "orders feed client disconnected")
				return
			case <-ctx.Done():
				return
			}
		}
	}
}
