// Package ws carries the realtime interaction channel: pointer events in,
// gesture and story feedback out, plus announcement broadcasts to everyone.
package ws

import (
	"encoding/json"
	"log"
	"sync"

	"heartdrop/internal/domain"
	"heartdrop/internal/store"
)

// Hub maintains the set of active clients and broadcasts messages to them.
type Hub struct {
	// Register requests from the clients.
	Register chan *Client

	// Unregister requests from clients.
	Unregister chan *Client

	// Inbound messages fanned out to every client.
	Broadcast chan []byte

	// Sessions lets the hub forget a collection once the last ephemeral
	// connection for that session is gone.
	Sessions *store.Manager

	// Ephemeral mirrors the likes persistence policy: true means a session's
	// like overlay dies with its last connection.
	Ephemeral bool

	clients map[*Client]bool

	mutex          sync.Mutex
	sessionClients map[string][]*Client
}

func NewHub(sessions *store.Manager, ephemeral bool) *Hub {
	return &Hub{
		Register:       make(chan *Client),
		Unregister:     make(chan *Client),
		Broadcast:      make(chan []byte),
		Sessions:       sessions,
		Ephemeral:      ephemeral,
		clients:        make(map[*Client]bool),
		sessionClients: make(map[string][]*Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			h.trackRegister(client)
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
				h.trackUnregister(client)
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer: evict with the same bookkeeping a
					// normal unregister gets, or the session map leaks it.
					delete(h.clients, client)
					client.closeSend()
					h.trackUnregister(client)
				}
			}
		}
	}
}

func (h *Hub) trackRegister(client *Client) {
	h.mutex.Lock()
	h.sessionClients[client.SessionID] = append(h.sessionClients[client.SessionID], client)
	count := len(h.sessionClients[client.SessionID])
	h.mutex.Unlock()

	log.Printf("session %s connected (connections: %d)", client.SessionID, count)
}

func (h *Hub) trackUnregister(client *Client) {
	h.mutex.Lock()
	conns := h.sessionClients[client.SessionID]
	for i, c := range conns {
		if c == client {
			h.sessionClients[client.SessionID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	count := len(h.sessionClients[client.SessionID])
	if count == 0 {
		delete(h.sessionClients, client.SessionID)
	}
	h.mutex.Unlock()

	if count == 0 && h.Ephemeral && h.Sessions != nil {
		h.Sessions.Drop(client.SessionID)
	}
	log.Printf("session %s disconnected (connections: %d)", client.SessionID, count)
}

// BroadcastAnnouncement pushes an updated banner to every connected client.
// Satisfies services.Broadcaster.
func (h *Hub) BroadcastAnnouncement(a domain.Announcement) {
	msg, _ := json.Marshal(map[string]any{
		"type":    EvtAnnouncement,
		"message": a.Message,
		"visible": a.Visible,
	})
	go func() { h.Broadcast <- msg }()
}
