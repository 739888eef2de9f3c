package archiver

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"AudioRecordingServer/internal/storage"
)

var ErrEmptyTrack = errors.New("track is empty")

// Archiver buffers one streaming session's audio chunks in a temp track file
// until they are committed to the recording sink or discarded.
type Archiver struct {
	sessionID string
	trackFile *os.File
	trackPath string
	size      int64
}

func NewArchiver(tempDir, sessionID string) (*Archiver, error) {
	if err := os.MkdirAll(tempDir, 0755); err != nil {
		return nil, fmt.Errorf("NewArchiver(): failed to create temp directory: %w", err)
	}
	trackPath := filepath.Join(tempDir, fmt.Sprintf("%s_track.part", sessionID))
	trackFile, err := os.Create(trackPath)
	if err != nil {
		return nil, fmt.Errorf("NewArchiver(): failed to create track file: %w", err)
	}

	log.Printf("NewArchiver(): Created temp track for session %s, %s", sessionID, trackPath)
	return &Archiver{
		sessionID: sessionID,
		trackFile: trackFile,
		trackPath: trackPath,
	}, nil
}

// 수신한 chunk를 임시 트랙 파일에 이어 붙인다
func (a *Archiver) Write(chunk []byte) error {
	n, err := a.trackFile.Write(chunk)
	a.size += int64(n)
	if err != nil {
		return fmt.Errorf("Archiver.Write(): failed to write chunk: %w", err)
	}
	return nil
}

func (a *Archiver) Size() int64 {
	return a.size
}

func (a *Archiver) TrackPath() string {
	return a.trackPath
}

// Commit copies the whole track into the sink and removes the temp file.
// The temp file is removed even when the copy fails.
func (a *Archiver) Commit(sink *storage.RecordingSink) (storage.SaveResult, error) {
	defer a.Discard()

	if a.size == 0 {
		return storage.SaveResult{}, ErrEmptyTrack
	}
	if _, err := a.trackFile.Seek(0, io.SeekStart); err != nil {
		return storage.SaveResult{}, fmt.Errorf("Archiver.Commit(): failed to rewind track: %w", err)
	}

	res, err := sink.Save(a.trackFile)
	if err != nil {
		log.Printf("Archiver.Commit(): session %s: %v", a.sessionID, err)
		return storage.SaveResult{}, err
	}
	log.Printf("Archiver.Commit(): session %s saved %d bytes to %s", a.sessionID, res.Size, res.Path)
	return res, nil
}

// Discard closes and deletes the temp track. Safe to call more than once.
func (a *Archiver) Discard() {
	if a.trackFile == nil {
		return
	}
	a.trackFile.Close()
	a.trackFile = nil
	if err := os.Remove(a.trackPath); err != nil && !os.IsNotExist(err) {
		log.Printf("Archiver.Discard(): failed to remove %s: %v", a.trackPath, err)
	}
}
