package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"AudioRecordingServer/internal/models"
)

func TestRecordingSinkCreatesDirectoryAndWrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "recordings")
	sink := NewRecordingSink(dir, "recorded_audio.wav")

	payload := []byte("RIFF....WAVEfmt ")
	res, err := sink.Save(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if res.Path != filepath.Join(dir, "recorded_audio.wav") {
		t.Fatalf("path = %q", res.Path)
	}
	if res.Size != int64(len(payload)) {
		t.Fatalf("size = %d, want %d", res.Size, len(payload))
	}
	if len(res.Checksum) != 64 {
		t.Fatalf("checksum %q is not hex blake2b-256", res.Checksum)
	}

	got, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("file content mismatch")
	}
}

func TestRecordingSinkOverwrites(t *testing.T) {
	sink := NewRecordingSink(t.TempDir(), "recorded_audio.wav")

	payloads := [][]byte{
		bytes.Repeat([]byte("first-"), 100),
		[]byte("second"),
		[]byte("third payload"),
	}
	var sums []string
	for _, p := range payloads {
		res, err := sink.Save(bytes.NewReader(p))
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		sums = append(sums, res.Checksum)
	}

	got, err := os.ReadFile(sink.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, payloads[len(payloads)-1]) {
		t.Fatalf("file holds %q, want only the last payload", got)
	}
	if sums[0] == sums[1] || sums[1] == sums[2] {
		t.Fatalf("checksums should differ per payload: %v", sums)
	}
}

func TestRecordingSinkConcurrentSavesNeverInterleave(t *testing.T) {
	sink := NewRecordingSink(t.TempDir(), "recorded_audio.wav")

	const writers = 8
	payloads := make([][]byte, writers)
	for i := range payloads {
		payloads[i] = bytes.Repeat([]byte{byte('a' + i)}, 64<<10)
	}

	var wg sync.WaitGroup
	for _, p := range payloads {
		wg.Add(1)
		go func(p []byte) {
			defer wg.Done()
			if _, err := sink.Save(bytes.NewReader(p)); err != nil {
				t.Errorf("save: %v", err)
			}
		}(p)
	}
	wg.Wait()

	got, err := os.ReadFile(sink.Path())
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range payloads {
		if bytes.Equal(got, p) {
			return
		}
	}
	t.Fatalf("file does not equal any single payload (len %d)", len(got))
}

func TestRecordingSinkDirectoryIsAFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	sink := NewRecordingSink(filepath.Join(blocker, "recordings"), "recorded_audio.wav")
	_, err := sink.Save(strings.NewReader("audio"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, models.ErrStorage) {
		t.Fatalf("error %v should wrap ErrStorage", err)
	}
}

func TestRecordingSinkFilenameIsADirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "recorded_audio.wav"), 0755); err != nil {
		t.Fatal(err)
	}

	sink := NewRecordingSink(dir, "recorded_audio.wav")
	if _, err := sink.Save(strings.NewReader("audio")); !errors.Is(err, models.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestRecordingSinkCheckWritable(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	sink := NewRecordingSink(dir, "recorded_audio.wav")
	if err := sink.CheckWritable(); err != nil {
		t.Fatalf("check writable: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("probe file left behind: %v", entries)
	}

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := NewRecordingSink(blocker, "x.wav").CheckWritable(); !errors.Is(err, models.ErrStorage) {
		t.Fatalf("expected storage error, got %v", err)
	}
}
