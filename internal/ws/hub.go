package ws

import "sync"

// Hub tracks which clients joined which rooms. A room is just a string key;
// it exists as long as at least one client has joined it.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Join(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[roomID] = room
	}
	room[client] = struct{}{}
	client.rooms[roomID] = struct{}{}
}

// Remove detaches the client from every room it joined. Called once when the
// connection goes away.
func (h *Hub) Remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID := range client.rooms {
		if room, ok := h.rooms[roomID]; ok {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}
	client.rooms = make(map[string]struct{})
}

// BroadcastToRoom delivers the payload to every client in the room, the sender
// included. A client whose send buffer is full is dropped rather than allowed
// to stall the room.
func (h *Hub) BroadcastToRoom(roomID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[roomID] {
		if !client.trySend(payload) {
			go client.Close()
		}
	}
}
