package rpc

import (
	"context"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pebbe/zmq4"
	"github.com/pkg/errors"
	"gitlab.heather.loc/helios/deribit/internal/zmqmon"
	"go.uber.org/zap"
)

const zmqPollInterval = 10 * time.Millisecond

type outgoingRequest struct {
	method string
	data   []byte
	sent   chan error
}

// ZmqTransport sends JSON-RPC requests through a DEALER socket to a relay in front of the venue.
// The relay answers with the venue's response envelope. The socket is owned by a single loop.
type ZmqTransport struct {
	logger   *zap.Logger
	addr     string
	zmqCtx   *zmq4.Context
	pending  *pendingCalls
	outgoing chan outgoingRequest
	closing  chan struct{}
	done     chan struct{}
	isReady  uint32
}

func newDealerSocket(zmqCtx *zmq4.Context, monitorAddr, addr, publicKey string) (*zmq4.Socket, error) {
	sock, err := zmqCtx.NewSocket(zmq4.DEALER)
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
	if err = sock.SetSndhwm(100000); err != nil {
		return nil, errors.WithMessage(err, "fail set send buffer messages count")
	}
	if err = sock.SetLinger(0); err != nil {
		return nil, errors.WithMessage(err, "fail set linger timeout")
	}
	if err = sock.SetConnectTimeout(time.Duration(5) * time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set connect timeout")
	}
	if err = sock.SetHeartbeatIvl(time.Duration(2) * time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set heartbeat interval")
	}
	if err = sock.SetHeartbeatTimeout(time.Duration(5) * time.Second); err != nil {
		return nil, errors.WithMessage(err, "fail set heartbeat timeout")
	}

	if publicKey != "" {
		// auth zmq using curve algorithm
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

// NewZmqTransport connects to addr (tcp://host:port). publicKey enables curve auth when set.
func NewZmqTransport(logger *zap.Logger, addr, publicKey string) (*ZmqTransport, error) {
	zmqCtx, err := zmq4.NewContext()
	if err != nil {
		return nil, errors.WithMessage(err, "fail create zmq context")
	}
	monitorAddr := zmqmon.NextAddr()
	online := make(chan bool)
	go zmqmon.Run(zmqCtx, monitorAddr, online, logger)

	sock, err := newDealerSocket(zmqCtx, monitorAddr, addr, publicKey)
	if err != nil {
		zmqmon.Shutdown(zmqCtx, nil, logger)
		return nil, errors.WithMessage(err, "fail create dealer socket")
	}

	t := &ZmqTransport{
		logger:   logger,
		addr:     addr,
		zmqCtx:   zmqCtx,
		pending:  newPendingCalls(),
		outgoing: make(chan outgoingRequest),
		closing:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	go func() {
		for status := range online {
			t.setReady(status)
		}
	}()
	go t.loop(sock)

	return t, nil
}

// IsReady reports whether the relay connection is established.
func (t *ZmqTransport) IsReady() bool {
	return atomic.LoadUint32(&t.isReady) == 1
}

func (t *ZmqTransport) setReady(val bool) {
	var state uint32
	if val {
		state = 1
	}
	if atomic.SwapUint32(&t.isReady, state) != state {
		if val {
			t.logger.Info("zmq: connection ready", zap.String("addr", t.addr))
		} else {
			t.logger.Warn("zmq: connection closed", zap.String("addr", t.addr))
		}
	}
}

func (t *ZmqTransport) String() string {
	return "DEALER:" + t.addr
}

func (t *ZmqTransport) Call(ctx context.Context, method string, params []byte) ([]byte, error) {
	id := NextID()
	done, err := t.pending.add(id)
	if err != nil {
		return nil, err
	}

	data, err := jsoniter.Marshal(RequestEnvelope{JSONRPC: Version, ID: id, Method: method, Params: params})
	if err != nil {
		t.pending.remove(id)
		return nil, errors.WithMessage(err, "fail marshal request "+method)
	}

	req := outgoingRequest{method: method, data: data, sent: make(chan error, 1)}
	select {
	case t.outgoing <- req:
	case <-t.done:
		t.pending.remove(id)
		return nil, ErrClosed
	case <-ctx.Done():
		t.pending.remove(id)
		return nil, ctx.Err()
	}
	if err = <-req.sent; err != nil {
		t.pending.remove(id)
		return nil, errors.WithMessage(err, "fail send via zmq "+method)
	}
	return t.pending.wait(ctx, id, done)
}

// Close stops the loop, fails pending calls and terminates the zmq context.
func (t *ZmqTransport) Close() error {
	select {
	case <-t.closing:
	default:
		close(t.closing)
	}
	<-t.done
	return t.zmqCtx.Term()
}

func (t *ZmqTransport) loop(sock *zmq4.Socket) {
	defer close(t.done)
	defer func() {
		t.pending.failAll(ErrClosed)
		if err := sock.Close(); err != nil {
			t.logger.Error("zmq: fail close socket", zap.Error(err))
		}
	}()

	poller := zmq4.NewPoller()
	poller.Add(sock, zmq4.POLLIN)

	for {
		select {
		case <-t.closing:
			return
		case req := <-t.outgoing:
			t.logger.Debug("zmq: send", zap.ByteString("msg", req.data), zap.String("gate", t.addr))
			_, err := sock.SendBytes(req.data, zmq4.DONTWAIT)
			if err != nil {
				t.logger.Error("zmq: fail send", zap.String("method", req.method), zap.String("gate", t.addr), zap.Error(err))
			}
			req.sent <- err
			continue
		default:
		}

		polled, err := poller.Poll(zmqPollInterval)
		if err != nil {
			t.logger.Error("zmq: poll error", zap.Error(err), zap.String("addr", t.addr))
			return
		}
		if len(polled) == 0 {
			continue
		}

		msg, err := sock.RecvBytes(0)
		if err != nil {
			t.logger.Error("zmq: receive data error", zap.Error(err), zap.String("addr", t.addr))
			continue
		}
		t.handleMessage(msg)
	}
}

func (t *ZmqTransport) handleMessage(data []byte) {
	var msg message
	if err := jsoniter.Unmarshal(data, &msg); err != nil {
		messageCounters.WithLabelValues("zmq", "malformed").Inc()
		t.logger.Error("zmq: parse fail message", zap.Error(err), zap.ByteString("msg", data))
		return
	}
	if !msg.isResponse() {
		t.logger.Warn("zmq: unprocessed message", zap.ByteString("msg", data))
		return
	}
	messageCounters.WithLabelValues("zmq", "response").Inc()
	if !t.pending.resolve(msg.response()) {
		t.logger.Debug("zmq: response without caller", zap.Uint64("id", *msg.ID))
	}
}
