package handler

import (
	"context"
	"errors"
	"log"
	"strings"

	"AudioRecordingServer/internal/archiver"
	"AudioRecordingServer/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const stopCommand = "stop"

func (h *RecordingHandler) manageStreamSession(ctx context.Context, conn *websocket.Conn, sessionID string) {
	arch, err := archiver.NewArchiver(h.tempDir, sessionID)
	if err != nil {
		log.Printf("manageStreamSession(): Failed to create archiver: %v", err)
		writeStreamReply(conn, gin.H{"error": err.Error()})
		return
	}
	defer arch.Discard()

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("manageStreamSession(): session %s closed without stop, discarding %d bytes: %v", sessionID, arch.Size(), err)
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			if err := arch.Write(message); err != nil {
				log.Printf("manageStreamSession(): session %s: %v", sessionID, err)
				writeStreamReply(conn, gin.H{"error": err.Error()})
				return
			}
		case websocket.TextMessage:
			if strings.TrimSpace(string(message)) != stopCommand {
				log.Printf("manageStreamSession(): Unsupported text message from session %s: %q", sessionID, message)
				continue
			}
			h.finishStream(ctx, conn, arch)
			return
		}
	}
}

func (h *RecordingHandler) finishStream(ctx context.Context, conn *websocket.Conn, arch *archiver.Archiver) {
	res, err := arch.Commit(h.sink)
	switch {
	case errors.Is(err, archiver.ErrEmptyTrack):
		writeStreamReply(conn, gin.H{"message": msgNoAudio})
	case err != nil:
		writeStreamReply(conn, gin.H{"error": err.Error()})
	default:
		h.logRecording(ctx, models.Recording{Source: models.SourceStream}, res)
		writeStreamReply(conn, gin.H{"message": msgRecordingSaved})
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := conn.WriteMessage(websocket.CloseMessage, closeMsg); err != nil {
		log.Printf("finishStream(): failed to send close frame: %v", err)
	}
}

func writeStreamReply(conn *websocket.Conn, body gin.H) {
	if err := conn.WriteJSON(body); err != nil {
		log.Printf("writeStreamReply(): %v", err)
	}
}
