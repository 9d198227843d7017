package feed

import (
	"bytes"
	"sync/atomic"
	"time"

	"github.com/pebbe/zmq4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.heather.loc/helios/deribit/internal/zmqmon"
	"go.uber.org/zap"
)

var messageCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "feed_zmq_message_count",
	Help: "zmq feed income message counters",
}, []string{"gate", "type"})

func init() {
	prometheus.MustRegister(messageCounters)
}

const (
	zmqPollInterval = 10 * time.Millisecond
	// HeartbeatTopic is published by the relay to report it is alive.
	HeartbeatTopic  = ".HEARTBEAT"
	frameSeparator  = 0
)

// ZmqSource receives channel frames from an XPUB relay. Each message is the channel name,
// a zero byte and the notification data.
type ZmqSource struct {
	logger  *zap.Logger
	addr    string
	zmqCtx  *zmq4.Context
	frames  chan Frame
	control chan []byte
	closing chan struct{}
	done    chan struct{}
	isReady uint32
}

func newXSubSocket(zmqCtx *zmq4.Context, monitorAddr, addr, publicKey string) (*zmq4.Socket, error) {
	sock, err := zmqCtx.NewSocket(zmq4.XSUB)
	if err != nil {
		return nil, errors.WithMessage(err, "fail create socket")
	}
	defer func() {
		if err != nil {
			_ = sock.Close()
		}
	}()

	if err = sock.Monitor(monitorAddr, zmq4.EVENT_ALL); err != nil {
		return nil, errors.WithMessage(err, "fail set monitor address")
	}

	if err = sock.SetReconnectIvl(time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set reconnect interval")
	}
	if err = sock.SetConnectTimeout(time.Duration(5) * time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set connect timeout")
	}
	if err = sock.SetHeartbeatIvl(time.Duration(10) * time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set heartbeat interval")
	}
	if err = sock.SetHeartbeatTimeout(time.Duration(20) * time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set heartbeat timeout")
	}
	if err = sock.SetLinger(0); err != nil {
		return nil, errors.WithMessage(err, "fail set linger timeout")
	}
	if err = sock.SetRcvhwm(100000); err != nil {
		return nil, errors.WithMessage(err, "fail set receive buffer messages count")
	}

	if publicKey != "" {
		var keyPublic, keySecret string
		keyPublic, keySecret, err = zmq4.NewCurveKeypair()
		if err != nil {
			return nil, errors.WithMessage(err, "fail generate curve pair")
		}
		if err = sock.ClientAuthCurve(publicKey, keyPublic, keySecret); err != nil {
			return nil, errors.WithMessage(err, "fail set auth curve")
		}
	}

	if err = sock.Connect(addr); err != nil {
		return nil, errors.WithMessage(err, "fail connect "+addr)
	}

	return sock, nil
}

// NewZmqSource connects to addr and subscribes to the heartbeat and to every topic prefix.
// An empty topic subscribes to everything.
func NewZmqSource(logger *zap.Logger, addr, publicKey string, topics ...string) (*ZmqSource, error) {
	zmqCtx, err := zmq4.NewContext()
	if err != nil {
		return nil, errors.WithMessage(err, "fail create zmq context")
	}
	monitorAddr := zmqmon.NextAddr()
	online := make(chan bool)
	go zmqmon.Run(zmqCtx, monitorAddr, online, logger)

	sock, err := newXSubSocket(zmqCtx, monitorAddr, addr, publicKey)
	if err != nil {
		zmqmon.Shutdown(zmqCtx, nil, logger)
		return nil, errors.WithMessage(err, "fail create xsub socket")
	}

	for _, topic := range append([]string{HeartbeatTopic}, topics...) {
		if _, err = sock.SendBytes(subscribeMessage(true, topic), zmq4.DONTWAIT); err != nil {
			zmqmon.Shutdown(zmqCtx, sock, logger)
			return nil, errors.WithMessage(err, "fail send subscription "+topic)
		}
	}

	s := &ZmqSource{
		logger:  logger,
		addr:    addr,
		zmqCtx:  zmqCtx,
		frames:  make(chan Frame, 1000),
		control: make(chan []byte, 16),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}

	go s.handleMonitor(online)
	go s.loop(sock)

	return s, nil
}

func subscribeMessage(subscribe bool, topic string) []byte {
	msg := make([]byte, 0, len(topic)+1)
	if subscribe {
		msg = append(msg, 1)
	} else {
		msg = append(msg, 0)
	}
	return append(msg, topic...)
}

func (s *ZmqSource) Frames() <-chan Frame {
	return s.frames
}

// IsReady return connection ready state.
// If connection established and heartbeat is received, then true
func (s *ZmqSource) IsReady() bool {
	return atomic.LoadUint32(&s.isReady) == 1
}

func (s *ZmqSource) String() string {
	return "XSUB:" + s.addr
}

func (s *ZmqSource) setReady(val bool) {
	var state uint32
	if val {
		state = 1
	}
	if atomic.SwapUint32(&s.isReady, state) != state {
		if val {
			s.logger.Info("zmq: connection ready", zap.String("addr", s.addr))
		} else {
			s.logger.Warn("zmq: connection closed", zap.String("addr", s.addr))
		}
	}
}

func (s *ZmqSource) handleMonitor(online chan bool) {
	for status := range online {
		if !status {
			s.setReady(false)
		}
	}
}

// Subscribe adds a topic prefix.
func (s *ZmqSource) Subscribe(topic string) error {
	return s.sendControl(subscribeMessage(true, topic))
}

// Unsubscribe drops a topic prefix added before.
func (s *ZmqSource) Unsubscribe(topic string) error {
	return s.sendControl(subscribeMessage(false, topic))
}

func (s *ZmqSource) sendControl(msg []byte) error {
	select {
	case <-s.done:
		return errSourceClosed
	default:
	}
	s.logger.Info("zmq: subscription", zap.String("addr", s.addr), zap.ByteString("topic", msg[1:]), zap.Bool("on", msg[0] == 1))
	select {
	case s.control <- msg:
		return nil
	case <-s.done:
		return errSourceClosed
	}
}

// Close stops the loop, closes Frames and terminates the zmq context.
func (s *ZmqSource) Close() error {
	select {
	case <-s.closing:
		return errSourceClosed
	default:
		close(s.closing)
	}
	<-s.done
	return s.zmqCtx.Term()
}

func (s *ZmqSource) loop(sock *zmq4.Socket) {
	defer close(s.done)
	defer close(s.frames)
	defer func() {
		if err := sock.Close(); err != nil {
			s.logger.Error("zmq: fail close socket", zap.Error(err))
		}
	}()

	poller := zmq4.NewPoller()
	poller.Add(sock, zmq4.POLLIN)

	for {
		select {
		case <-s.closing:
			return
		case msg := <-s.control:
			if _, err := sock.SendBytes(msg, zmq4.DONTWAIT); err != nil {
				s.logger.Error("zmq: fail send subscription payload", zap.Error(err))
			}
			continue
		default:
		}

		polled, err := poller.Poll(zmqPollInterval)
		if err != nil {
			s.logger.Error("zmq: poll error", zap.Error(err), zap.String("addr", s.addr))
			return
		}
		if len(polled) == 0 {
			continue
		}

		msg, err := sock.RecvBytes(0)
		if err != nil {
			s.logger.Error("zmq: receive data error", zap.Error(err), zap.String("addr", s.addr))
			continue
		}
		if frame, ok := s.parse(msg); ok {
			select {
			case s.frames <- frame:
			case <-s.closing:
				return
			}
		}
	}
}

func (s *ZmqSource) parse(msg []byte) (Frame, bool) {
	if bytes.HasPrefix(msg, []byte(HeartbeatTopic)) {
		messageCounters.WithLabelValues(s.addr, "heartbeat").Inc()
		s.logger.Debug("zmq: heartbeat", zap.String("addr", s.addr))
		s.setReady(true)
		return Frame{}, false
	}
	sep := bytes.IndexByte(msg, frameSeparator)
	if sep <= 0 {
		messageCounters.WithLabelValues(s.addr, "malformed").Inc()
		s.logger.Error("zmq: income < "+string(msg), zap.String("addr", s.addr))
		return Frame{}, false
	}
	messageCounters.WithLabelValues(s.addr, "frame").Inc()
	data := make([]byte, len(msg)-sep-1)
	copy(data, msg[sep+1:])
	return Frame{Channel: string(msg[:sep]), Data: data}, true
}
