package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tripvisito/internal/services"
	"tripvisito/pkg/utils"
)

const (
	eventJoinChat       = "join_chat"
	eventSendMessage    = "send_message"
	eventReceiveMessage = "receive_message"
	eventError          = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients connect from a separate origin; access control happens
	// via the token, not the Origin header.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type inboundEvent struct {
	Event string `json:"event"`
	Data  struct {
		Room    string `json:"room"`
		Message string `json:"message"`
	} `json:"data"`
}

type outboundEvent struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Handler upgrades authenticated connections and routes chat events between
// the hub and the chat service.
type Handler struct {
	hub         *Hub
	chatService services.ChatServiceInterface
}

func NewHandler(hub *Hub, chatService services.ChatServiceInterface) *Handler {
	return &Handler{hub: hub, chatService: chatService}
}

// Serve is the gin endpoint. The access token rides in the "token" query
// parameter since browsers cannot set headers on websocket upgrades.
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Unauthorized: No token provided")
		return
	}

	claims, err := utils.ValidateAccessToken(token)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid access token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws: upgrade failed: %v", err)
		return
	}

	client := newClient(h.hub, conn, claims.Subject)
	log.Printf("ws: user %s connected", client.userID)

	go client.writePump()
	client.readPump(h.dispatch)

	log.Printf("ws: user %s disconnected", client.userID)
}

func (h *Handler) dispatch(client *Client, payload []byte) {
	var event inboundEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		h.sendError(client, "malformed event")
		return
	}

	switch event.Event {
	case eventJoinChat:
		if event.Data.Room == "" {
			h.sendError(client, "room is required")
			return
		}
		h.hub.Join(event.Data.Room, client)
	case eventSendMessage:
		h.handleSendMessage(client, event)
	default:
		h.sendError(client, "unknown event: "+event.Event)
	}
}

// handleSendMessage persists first, then broadcasts the stored record to the
// whole room, sender included. The sender identity always comes from the
// token, never from the payload.
func (h *Handler) handleSendMessage(client *Client, event inboundEvent) {
	saved, err := h.chatService.SaveMessage(context.Background(), event.Data.Room, client.userID, event.Data.Message)
	if err != nil {
		log.Printf("ws: failed to save message from %s: %v", client.userID, err)
		h.sendError(client, "message could not be delivered")
		return
	}

	payload, err := json.Marshal(outboundEvent{Event: eventReceiveMessage, Data: saved})
	if err != nil {
		return
	}
	h.hub.BroadcastToRoom(saved.Room, payload)
}

func (h *Handler) sendError(client *Client, message string) {
	payload, err := json.Marshal(outboundEvent{
		Event: eventError,
		Data:  gin.H{"message": message},
	})
	if err != nil {
		return
	}
	client.trySend(payload)
}
