package bookings

import (
	"log"
	"net/http"
	"time"

	"cadenza/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LiveStream pushes booking status changes to the admin dashboard over a
// websocket. Each connection subscribes to LiveUpdates for its lifetime.
func LiveStream(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[bookings] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan models.Booking, 16)
	cancel := LiveUpdates.Subscribe(func(b models.Booking) {
		select {
		case send <- b:
		default:
			// slow consumer drops updates rather than blocking the notifier
		}
	})
	defer cancel()

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
		case booking := <-send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(booking); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
