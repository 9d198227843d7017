// Package zmqmon reports ZeroMQ socket connection state.
package zmqmon

import (
	"fmt"
	"sync/atomic"

	"github.com/pebbe/zmq4"
	"go.uber.org/zap"
)

// Run reads socket events published on addr and reports connect/close on online.
// It returns when the monitor stops or the zmq context is terminated.
func Run(zmqCtx *zmq4.Context, addr string, online chan<- bool, logger *zap.Logger) {
	defer close(online)

	s, err := zmqCtx.NewSocket(zmq4.PAIR)
	if err != nil {
		logger.Error("zmq-monitor: fail create new socket", zap.Error(err))
		return
	}
	if err = s.SetLinger(0); err != nil {
		logger.Error("zmq-monitor: fail setLinger", zap.Error(err))
	}
	defer func() {
		if err = s.Close(); err != nil {
			logger.Error("zmq-monitor: fail close socket", zap.Error(err))
		}
	}()

	if err = s.Connect(addr); err != nil {
		logger.Error("zmq-monitor: fail connect", zap.Error(err))
		return
	}

	for {
		event, address, _, err := s.RecvEvent(0)
		if err != nil {
			if zmq4.AsErrno(err) != zmq4.ETERM {
				logger.Error("zmq-monitor: fail receive event", zap.Error(err))
			}
			return
		}
		switch {
		case event == zmq4.EVENT_CONNECTED:
			logger.Info("zmq-monitor: connection established", zap.String("addr", address))
			online <- true
		case event == zmq4.EVENT_CONNECT_DELAYED:
			logger.Warn("zmq-monitor: trying to connect", zap.String("addr", address))
		case event == zmq4.EVENT_CONNECT_RETRIED:
			logger.Warn("zmq-monitor: retry connect", zap.String("addr", address))
		case event == zmq4.EVENT_CLOSED || event == zmq4.EVENT_DISCONNECTED:
			logger.Warn("zmq-monitor: closed", zap.String("addr", address))
			online <- false
		case event.String() == "<NONE>":
			logger.Warn("zmq-monitor: stop monitor")
			return
		default:
			logger.Debug("zmq-monitor: unprocessed event", zap.String("addr", address), zap.String("event", event.String()))
		}
	}
}

var monitorID int64

// NextAddr returns a fresh inproc endpoint for a socket monitor.
func NextAddr() string {
	nextID := atomic.AddInt64(&monitorID, 1)
	return fmt.Sprintf("inproc://monitor_t.%d", nextID)
}

// Shutdown closes sock when set and terminates zmqCtx, which also stops its monitor.
// Constructors call it on their error paths.
func Shutdown(zmqCtx *zmq4.Context, sock *zmq4.Socket, logger *zap.Logger) {
	if sock != nil {
		if err := sock.Close(); err != nil {
			logger.Error("zmq: fail close socket", zap.Error(err))
		}
	}
	if err := zmqCtx.Term(); err != nil {
		logger.Error("zmq: fail terminate context", zap.Error(err))
	}
}
