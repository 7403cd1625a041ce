// Package hub is the live event feed between the server and a user's open
// host shells. One room per drawing; every event is a fan-out notification
// (snapshot saved, clipboard published). There is no operation merging here:
// the feed keeps one user's windows coherent, it does not make the editor
// collaborative.
package hub

import (
	"encoding/json"
	"log/slog"
	"sync"
)

type room struct {
	drawingID string
	clients   map[string]*Client // clientID -> client
}

func newRoom(drawingID string) *room {
	return &room{
		drawingID: drawingID,
		clients:   make(map[string]*Client),
	}
}

type Hub struct {
	mu         sync.RWMutex
	rooms      map[string]*room // drawingID -> room
	register   chan *Client
	unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]*room),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	rm, ok := h.rooms[client.DrawingID]
	if !ok {
		rm = newRoom(client.DrawingID)
		h.rooms[client.DrawingID] = rm
	}
	rm.clients[client.ClientID] = client
	h.mu.Unlock()

	welcome, _ := json.Marshal(WelcomePayload{ClientID: client.ClientID})
	client.Send(&Message{Type: TypeWelcome, Payload: welcome})

	joinPayload, _ := json.Marshal(ShellPayload{ClientID: client.ClientID})
	h.broadcast(client.DrawingID, &Message{
		Type:    TypeShellJoin,
		UserID:  client.UserID,
		Payload: joinPayload,
	}, client.ClientID)

	slog.Info("shell connected", "user", client.UserID, "drawing", client.DrawingID)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	rm, ok := h.rooms[client.DrawingID]
	if !ok {
		h.mu.Unlock()
		return
	}

	delete(rm.clients, client.ClientID)
	client.closeSend()

	if len(rm.clients) == 0 {
		delete(h.rooms, client.DrawingID)
	}
	h.mu.Unlock()

	leavePayload, _ := json.Marshal(ShellPayload{ClientID: client.ClientID})
	h.broadcast(client.DrawingID, &Message{
		Type:    TypeShellLeave,
		UserID:  client.UserID,
		Payload: leavePayload,
	}, "")

	slog.Info("shell disconnected", "user", client.UserID, "drawing", client.DrawingID)
}

func (h *Hub) handleMessage(sender *Client, msg *Message) {
	switch msg.Type {
	case TypeClipboardUpdate:
		// Relay published clipboard content to the user's other shells.
		h.broadcast(sender.DrawingID, msg, sender.ClientID)
	default:
		slog.Warn("unknown message type", "type", msg.Type, "user", sender.UserID)
	}
}

// BroadcastDrawingUpdate tells every shell on a drawing that a new snapshot
// version exists.
func (h *Hub) BroadcastDrawingUpdate(drawingID string, version int32) {
	payload, _ := json.Marshal(DrawingUpdatePayload{Version: version})
	h.broadcast(drawingID, &Message{
		Type:      TypeDrawingUpdate,
		DrawingID: drawingID,
		Payload:   payload,
	}, "")
}

func (h *Hub) broadcast(drawingID string, msg *Message, excludeClientID string) {
	h.mu.RLock()
	rm, ok := h.rooms[drawingID]
	if !ok {
		h.mu.RUnlock()
		return
	}

	clients := make([]*Client, 0, len(rm.clients))
	for _, c := range rm.clients {
		if c.ClientID != excludeClientID {
			clients = append(clients, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.Send(msg)
	}
}
