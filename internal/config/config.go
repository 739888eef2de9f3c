/**
* Name: 			config.go
* Description: 		서버 실행 설정
* Workflow: 		.env 로드, 환경변수 읽기, 기본값 적용
 */

package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultListenAddr        = "0.0.0.0:5000"
	defaultRecordingsDir     = "data/recordings"
	defaultRecordingFilename = "recorded_audio.wav"
	defaultTempDir           = "data/temp_recordings"
	defaultDatabasePath      = "data/recordings.db"
	defaultRateLimitRPS      = 10
	defaultRateLimitBurst    = 20
	defaultMultipartMemoryMB = 32
	defaultShutdownTimeout   = 10 * time.Second
)

type Config struct {
	ListenAddr        string
	Debug             bool
	RecordingsDir     string
	RecordingFilename string
	TempDir           string
	DatabasePath      string
	RateLimitRPS      float64
	RateLimitBurst    int
	MaxMultipartBytes int64
	ShutdownTimeout   time.Duration
}

// Load는 .env 파일(있으면)과 환경변수에서 설정을 읽는다.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config.Load(): No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv는 .env 파일 없이 현재 환경변수만으로 설정을 만든다.
func FromEnv() Config {
	return Config{
		ListenAddr:        getEnv("LISTEN_ADDR", defaultListenAddr),
		Debug:             getBool("DEBUG", true),
		RecordingsDir:     getEnv("RECORDINGS_DIR", defaultRecordingsDir),
		RecordingFilename: getEnv("RECORDING_FILENAME", defaultRecordingFilename),
		TempDir:           getEnv("TEMP_DIR", defaultTempDir),
		DatabasePath:      getEnv("DATABASE_PATH", defaultDatabasePath),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst:    getInt("RATE_LIMIT_BURST", defaultRateLimitBurst),
		MaxMultipartBytes: int64(getInt("MAX_MULTIPART_MEMORY_MB", defaultMultipartMemoryMB)) << 20,
		ShutdownTimeout:   getSeconds("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("config: invalid %s=%q, using %t", key, value, fallback)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("config: invalid %s=%q, using %d", key, value, fallback)
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("config: invalid %s=%q, using %g", key, value, fallback)
	}
	return fallback
}

func getSeconds(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
