package tui

import "time"

const (
	sessionRequestTimeout = 10 * time.Second
	chatRequestTimeout    = 60 * time.Second
)
