package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamRecording godoc
// @Summary      실시간 녹음 스트리밍 (WebSocket)
// @Description  MediaRecorder chunk를 binary frame으로 보내고, 끝나면 text frame "stop"을 보냅니다.
// @Description  서버는 모든 chunk를 이어 붙여 녹음 파일에 저장한 뒤 JSON text frame으로 결과를 응답하고 연결을 닫습니다.
// @Description  "stop" 없이 연결이 끊기면 받은 데이터는 버려집니다.
// @Tags         Recordings
// @Success      101 {string} string "101 Switching Protocols"
// @Router       /ws/recordings [get]
func (h *RecordingHandler) StreamRecording(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("StreamRecording(): Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	log.Printf("StreamRecording(): session %s connected from %s", sessionID, c.ClientIP())
	h.manageStreamSession(c.Request.Context(), conn, sessionID)
}
