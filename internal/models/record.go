package models

import "time"

// 녹음 저장 출처
const (
	SourceUpload = "upload"
	SourceStream = "stream"
)

// Recording is one successful write of the recording file.
type Recording struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	OriginalName string    `json:"original_name"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	Checksum     string    `json:"checksum"`
	FilePath     string    `json:"file_path"`
	CreatedAt    time.Time `json:"created_at"`
}
