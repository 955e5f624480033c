package main

import (
	"github.com/ecstatic-morse/zmk/kscan"
	"github.com/gorilla/websocket"
	"sync"
)

// Hub fans synthesized key events out to websocket viewers.
type Hub struct {
	locker  sync.Locker
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		locker:  &sync.Mutex{},
		clients: map[*websocket.Conn]struct{}{},
	}
}

// Handle registers conn and blocks until the peer goes away. Inbound
// messages are discarded, the stream is one-way.
func (h *Hub) Handle(conn *websocket.Conn) {
	h.locker.Lock()
	h.clients[conn] = struct{}{}
	h.locker.Unlock()

	defer func() {
		h.locker.Lock()
		delete(h.clients, conn)
		h.locker.Unlock()
		_ = conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			return
		}
	}
}

func (h *Hub) Broadcast(event kscan.Event) {
	h.locker.Lock()
	defer h.locker.Unlock()

	for conn := range h.clients {
		err := conn.WriteJSON(event)
		if err != nil {
			log.Println("write event to client:", err)
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}
