package coachHandler

import (
	"ProjectWafeer/internal/api/coach"
	"time"

	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

const wsReadTimeout = 5 * time.Minute

// handleChatWebSocket runs the chat loop over a socket. Each inbound frame is
// one ChatRequest; closing the socket cancels the in-flight turn.
func (h *CoachHandler) handleChatWebSocket(c *websocket.Conn) {
	h.log.Info("Coach chat WebSocket client connected")
	defer h.log.Info("Coach chat WebSocket client disconnected")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		var req coach.ChatRequest
		if err := c.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Coach chat WebSocket error: %v", err)
			}
			break
		}

		if err := h.validator.Struct(req); err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				break
			}
			continue
		}

		turnCtx, turnCancel := context.WithTimeout(ctx, insightTimeout)
		reply, err := h.coachService.Chat(turnCtx, req)
		turnCancel()
		if err != nil {
			if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
				break
			}
			continue
		}

		if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
			break
		}
		if err := c.WriteJSON(reply); err != nil {
			break
		}
	}
}
