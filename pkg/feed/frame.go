// Package feed turns channel frames from a transport into typed notifications.
package feed

// Frame is one channel notification as it comes off the wire.
type Frame struct {
	Channel string
	Data    []byte
}

// Source delivers frames until it is closed. Frames is closed after the last frame.
type Source interface {
	Frames() <-chan Frame
	Close() error
}
