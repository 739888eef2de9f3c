package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"AudioRecordingServer/internal/config"
	"AudioRecordingServer/internal/handler"
	"AudioRecordingServer/internal/server"
	"AudioRecordingServer/internal/storage"
)

// @title        Audio Recording Server API
// @version      1.0
// @description  브라우저에서 녹음한 오디오를 받아 고정 경로 파일로 저장하는 서버
// @BasePath     /
func main() {
	cfg := config.Load()

	sink := storage.NewRecordingSink(cfg.RecordingsDir, cfg.RecordingFilename)
	if err := sink.CheckWritable(); err != nil {
		log.Fatalf("main(): recording destination is not writable: %v", err)
	}
	log.Printf("main(): recordings will be saved to %s", sink.Path())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("main(): %v", err)
	}
	defer db.Close()

	recordings := handler.NewRecordingHandler(sink, storage.NewRecordStore(db), cfg.TempDir)
	router := server.NewRouter(cfg, recordings)

	if err := server.New(cfg, router).Run(ctx); err != nil {
		log.Printf("main(): server stopped with error: %v", err)
		stop()
		db.Close()
		os.Exit(1)
	}
}
