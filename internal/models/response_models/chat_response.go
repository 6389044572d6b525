package response_models

// ChatMessageResponse mirrors the payload broadcast over the socket, so REST
// history and live messages deserialize identically on the client.
type ChatMessageResponse struct {
	ID        string `json:"_id"`
	Room      string `json:"room"`
	SenderID  string `json:"senderId"`
	Message   string `json:"message"`
	TimeStamp int64  `json:"timeStamp"`
}
