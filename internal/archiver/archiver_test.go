package archiver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"AudioRecordingServer/internal/storage"
)

func TestArchiverCommitConcatenatesChunks(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "temp")
	sink := storage.NewRecordingSink(t.TempDir(), "recorded_audio.wav")

	a, err := NewArchiver(tempDir, "session-1")
	if err != nil {
		t.Fatal(err)
	}
	for _, chunk := range []string{"one-", "two-", "three"} {
		if err := a.Write([]byte(chunk)); err != nil {
			t.Fatal(err)
		}
	}
	if a.Size() != int64(len("one-two-three")) {
		t.Fatalf("size = %d", a.Size())
	}

	res, err := a.Commit(sink)
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if res.Size != a.Size() {
		t.Fatalf("saved %d bytes, buffered %d", res.Size, a.Size())
	}
	got, err := os.ReadFile(sink.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "one-two-three" {
		t.Fatalf("file = %q", got)
	}
	if _, err := os.Stat(a.TrackPath()); !os.IsNotExist(err) {
		t.Fatalf("temp track should be removed after commit")
	}
}

func TestArchiverCommitEmptyTrack(t *testing.T) {
	sink := storage.NewRecordingSink(t.TempDir(), "recorded_audio.wav")
	a, err := NewArchiver(t.TempDir(), "empty")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Commit(sink); !errors.Is(err, ErrEmptyTrack) {
		t.Fatalf("expected ErrEmptyTrack, got %v", err)
	}
	if _, err := os.Stat(sink.Path()); !os.IsNotExist(err) {
		t.Fatalf("sink should be untouched")
	}
}

func TestArchiverDiscard(t *testing.T) {
	a, err := NewArchiver(t.TempDir(), "gone")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Write([]byte("partial")); err != nil {
		t.Fatal(err)
	}
	a.Discard()
	a.Discard()
	if _, err := os.Stat(a.TrackPath()); !os.IsNotExist(err) {
		t.Fatalf("temp track should be removed")
	}
}
