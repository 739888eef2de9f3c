/**
* Name: 			recording_sink.go
* Description: 		고정 경로 녹음 파일 저장소
* Workflow: 		디렉터리 생성, 파일 덮어쓰기, 체크섬 계산
 */

package storage

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"AudioRecordingServer/internal/models"

	"golang.org/x/crypto/blake2b"
)

// SaveResult describes the bytes that ended up in the recording file.
type SaveResult struct {
	Path     string
	Size     int64
	Checksum string
}

// RecordingSink owns the single recording file. Every Save replaces it.
type RecordingSink struct {
	dir      string
	filename string
	mu       sync.Mutex
}

func NewRecordingSink(dir, filename string) *RecordingSink {
	return &RecordingSink{dir: dir, filename: filename}
}

func (s *RecordingSink) Path() string {
	return filepath.Join(s.dir, s.filename)
}

// Save writes r to the recording file, truncating whatever was there.
// Concurrent calls are serialized so the file always holds one whole payload.
func (s *RecordingSink) Save(r io.Reader) (SaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return SaveResult{}, fmt.Errorf("RecordingSink.Save(): failed to create directory: %w: %w", models.ErrStorage, err)
	}

	path := s.Path()
	f, err := os.Create(path)
	if err != nil {
		return SaveResult{}, fmt.Errorf("RecordingSink.Save(): failed to create file: %w: %w", models.ErrStorage, err)
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return SaveResult{}, err
	}
	n, err := io.Copy(io.MultiWriter(f, h), r)
	if err != nil {
		return SaveResult{}, fmt.Errorf("RecordingSink.Save(): failed to write file: %w: %w", models.ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		return SaveResult{}, fmt.Errorf("RecordingSink.Save(): failed to close file: %w: %w", models.ErrStorage, err)
	}

	return SaveResult{
		Path:     path,
		Size:     n,
		Checksum: hex.EncodeToString(h.Sum(nil)),
	}, nil
}

// CheckWritable는 서버 시작 전에 저장 디렉터리에 쓸 수 있는지 확인한다.
// 기존 녹음 파일은 건드리지 않는다.
func (s *RecordingSink) CheckWritable() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("RecordingSink.CheckWritable(): %w: %w", models.ErrStorage, err)
	}
	probe, err := os.CreateTemp(s.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("RecordingSink.CheckWritable(): %w: %w", models.ErrStorage, err)
	}
	name := probe.Name()
	if err := probe.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("RecordingSink.CheckWritable(): close probe: %w: %w", models.ErrStorage, err)
	}
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("RecordingSink.CheckWritable(): remove probe: %w: %w", models.ErrStorage, err)
	}
	return nil
}
