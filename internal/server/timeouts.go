package server

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	// writeTimeout covers an upstream fetch plus a model call on explain-play.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second

	redisDialTimeout = 3 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
