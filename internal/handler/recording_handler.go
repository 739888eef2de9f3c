/**
* Name: 			recording_handler.go
* Description: 		녹음 업로드 HTTP 핸들러
* Workflow: 		multipart "audio" 수신, 파일 저장, 업로드 기록 조회
 */
package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"AudioRecordingServer/internal/models"
	"AudioRecordingServer/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	audioField = "audio"

	msgRecordingSaved = "Recording received and saved successfully"
	msgNoAudio        = "No audio data received"

	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// RecordLog stores metadata about each successful write.
type RecordLog interface {
	CreateRecording(ctx context.Context, rec models.Recording) error
	ListRecordings(ctx context.Context, limit int) ([]models.Recording, error)
}

type RecordingHandler struct {
	sink    *storage.RecordingSink
	records RecordLog
	tempDir string
}

func NewRecordingHandler(sink *storage.RecordingSink, records RecordLog, tempDir string) *RecordingHandler {
	return &RecordingHandler{
		sink:    sink,
		records: records,
		tempDir: tempDir,
	}
}

type MessageResponse struct {
	Message string `json:"message" example:"Recording received and saved successfully"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"mkdir /data: permission denied"`
}

type HistoryResponse struct {
	Recordings []models.Recording `json:"recordings"`
}

// UploadRecording godoc
// @Summary      녹음 업로드
// @Description  multipart "audio" 필드의 오디오를 고정 경로 파일에 저장합니다. 이전 파일은 덮어씁니다.
// @Tags         Recordings
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio formData file true "녹음 파일"
// @Success      200 {object} handler.MessageResponse
// @Failure      400 {object} handler.MessageResponse "audio 필드 없음 또는 비어 있음"
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/recordings [post]
func (h *RecordingHandler) UploadRecording(c *gin.Context) {
	fileHeader, err := c.FormFile(audioField)
	if err != nil || fileHeader.Size == 0 {
		handleError(c, models.ErrNoAudio)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		handleError(c, err)
		return
	}
	defer f.Close()

	res, err := h.sink.Save(f)
	if err != nil {
		handleError(c, err)
		return
	}

	h.logRecording(c.Request.Context(), models.Recording{
		Source:       models.SourceUpload,
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
	}, res)

	c.JSON(http.StatusOK, gin.H{"message": msgRecordingSaved})
}

// ListRecordings godoc
// @Summary      업로드 기록 조회
// @Description  저장에 성공한 녹음의 메타데이터를 최신순으로 반환합니다.
// @Tags         Recordings
// @Produce      json
// @Param        limit query int false "최대 개수 (1-500, 기본 50)"
// @Success      200 {object} handler.HistoryResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/recordings [get]
func (h *RecordingHandler) ListRecordings(c *gin.Context) {
	records, err := h.records.ListRecordings(c.Request.Context(), parseLimit(c.Query("limit")))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Recordings: records})
}

// 파일은 이미 저장됐으므로 기록 실패는 응답에 영향을 주지 않는다
func (h *RecordingHandler) logRecording(ctx context.Context, rec models.Recording, res storage.SaveResult) {
	rec.ID = uuid.NewString()
	rec.Size = res.Size
	rec.Checksum = res.Checksum
	rec.FilePath = res.Path
	rec.CreatedAt = time.Now()

	if err := h.records.CreateRecording(ctx, rec); err != nil {
		log.Printf("[ERROR] logRecording(): failed to save recording metadata: %v", err)
		return
	}
	log.Printf("logRecording(): %s recording %s saved, %d bytes", rec.Source, rec.ID, rec.Size)
}

func handleError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrNoAudio) {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgNoAudio})
		return
	}
	log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func parseLimit(value string) int {
	if value == "" {
		return defaultHistoryLimit
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 && n <= maxHistoryLimit {
		return n
	}
	return defaultHistoryLimit
}
