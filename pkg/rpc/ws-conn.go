package rpc

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"go.uber.org/zap"
	"nhooyr.io/websocket"
)

var messageCounters = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "rpc_message_count",
	Help: "rpc income message counters",
}, []string{"transport", "type"})

func init() {
	prometheus.MustRegister(messageCounters)
}

const (
	wsReadLimit        = 1 << 22
	notificationBuffer = 1000
	heartbeatTimeout   = 5 * time.Second
)

// Conn is a JSON-RPC session over one WebSocket connection. Responses are matched to calls by id,
// channel notifications are delivered on Notifications and test requests are answered.
type Conn struct {
	ws            *websocket.Conn
	url           string
	logger        *zap.Logger
	pending       *pendingCalls
	notifications chan Notification
	closing       chan struct{}
	closeOnce     sync.Once
	done          chan struct{}
}

// Dial connects to url and starts reading.
func Dial(ctx context.Context, logger *zap.Logger, url string) (*Conn, error) {
	ws, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "fail dial "+url)
	}
	ws.SetReadLimit(wsReadLimit)

	c := &Conn{
		ws:            ws,
		url:           url,
		logger:        logger,
		pending:       newPendingCalls(),
		notifications: make(chan Notification, notificationBuffer),
		closing:       make(chan struct{}),
		done:          make(chan struct{}),
	}
	go c.readMessages()
	logger.Info("ws: connected", zap.String("url", url))
	return c, nil
}

// Notifications is closed when the connection ends.
func (c *Conn) Notifications() <-chan Notification {
	return c.notifications
}

func (c *Conn) Call(ctx context.Context, method string, params []byte) ([]byte, error) {
	id := NextID()
	done, err := c.pending.add(id)
	if err != nil {
		return nil, err
	}

	data, err := jsoniter.Marshal(RequestEnvelope{JSONRPC: Version, ID: id, Method: method, Params: params})
	if err != nil {
		c.pending.remove(id)
		return nil, errors.WithMessage(err, "fail marshal request "+method)
	}

	c.logger.Debug("ws: send", zap.ByteString("msg", data), zap.String("url", c.url))
	if err = c.ws.Write(ctx, websocket.MessageText, data); err != nil {
		c.pending.remove(id)
		return nil, errors.WithMessage(err, "fail send "+method)
	}
	return c.pending.wait(ctx, id, done)
}

// Close ends the session. Notifications nobody reads any more are dropped.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		close(c.closing)
	})
	err := c.ws.Close(websocket.StatusNormalClosure, "")
	<-c.done
	return err
}

func (c *Conn) readMessages() {
	defer close(c.done)
	defer close(c.notifications)

	for {
		_, data, err := c.ws.Read(context.Background())
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure {
				c.logger.Warn("ws: connection lost", zap.String("url", c.url), zap.Error(err))
			}
			c.pending.failAll(ErrClosed)
			return
		}

		var msg message
		if err = jsoniter.Unmarshal(data, &msg); err != nil {
			messageCounters.WithLabelValues("ws", "malformed").Inc()
			c.logger.Error("ws: parse fail message", zap.Error(err), zap.ByteString("msg", data))
			continue
		}

		switch {
		case msg.isResponse():
			messageCounters.WithLabelValues("ws", "response").Inc()
			if !c.pending.resolve(msg.response()) {
				c.logger.Debug("ws: response without caller", zap.Uint64("id", *msg.ID))
			}
		case msg.Method == SubscriptionMethod:
			messageCounters.WithLabelValues("ws", "notification").Inc()
			var params NotificationParams
			if err = jsoniter.Unmarshal(msg.Params, &params); err != nil {
				c.logger.Error("ws: parse fail notification", zap.Error(err), zap.ByteString("msg", data))
				continue
			}
			select {
			case c.notifications <- Notification{JSONRPC: Version, Method: msg.Method, Params: params}:
			case <-c.closing:
				c.pending.failAll(ErrClosed)
				return
			}
		case msg.Method == heartbeatMethod:
			messageCounters.WithLabelValues("ws", "heartbeat").Inc()
			c.answerHeartbeat(msg.Params)
		default:
			c.logger.Warn("ws: unprocessed message", zap.ByteString("msg", data))
		}
	}
}

// answerHeartbeat replies to a test_request so the venue keeps the session.
func (c *Conn) answerHeartbeat(params []byte) {
	var hb struct {
		Type string `json:"type"`
	}
	if err := jsoniter.Unmarshal(params, &hb); err != nil || hb.Type != "test_request" {
		return
	}

	env, err := NewRequestEnvelope(NextID(), models.TestRequest{})
	if err != nil {
		c.logger.Error("ws: fail build test request", zap.Error(err))
		return
	}
	data, err := jsoniter.Marshal(env)
	if err != nil {
		c.logger.Error("ws: fail marshal test request", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), heartbeatTimeout)
	defer cancel()
	if err = c.ws.Write(ctx, websocket.MessageText, data); err != nil {
		c.logger.Warn("ws: fail answer heartbeat", zap.Error(err))
	}
}
