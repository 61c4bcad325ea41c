package chat

// request payload for one conversation turn
type ChatRequest struct {
	ChatInput string `json:"chat_input" binding:"required"`
	SessionID string `json:"session_id" binding:"required"`
}

// response payload with the assistant's reply
type ChatResponse struct {
	Output string `json:"output"`
}

// response payload for a freshly issued session
type SessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
}
