package models

import "errors"

var (
	ErrNoAudio = errors.New("no audio data received")
	ErrStorage = errors.New("recording storage failure")
)
