package feed

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gitlab.heather.loc/helios/deribit/pkg/rpc"
	"go.uber.org/zap"
)

// WSSource subscribes to channels over a WebSocket session and forwards their notifications.
type WSSource struct {
	logger *zap.Logger
	conn    *rpc.Conn
	frames  chan Frame
	closing chan struct{}
	once    sync.Once
	done    chan struct{}
}

// NewWSSource dials url and subscribes to channels. A non-zero heartbeat (seconds) enables
// venue test requests, which the connection answers itself.
func NewWSSource(ctx context.Context, logger *zap.Logger, url string, channels []string, heartbeat uint64) (*WSSource, error) {
	conn, err := rpc.Dial(ctx, logger, url)
	if err != nil {
		return nil, err
	}
	s := &WSSource{
		logger: logger,
		conn:   conn,
		frames:  make(chan Frame, notificationBuffer),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.forward()

	if heartbeat > 0 {
		if _, err = rpc.Call[models.OkResponse](ctx, logger, conn, models.SetHeartbeatRequest{Interval: heartbeat}); err != nil {
			_ = s.Close()
			return nil, errors.WithMessage(err, "fail set heartbeat")
		}
	}
	if len(channels) > 0 {
		if _, err = s.Subscribe(ctx, channels...); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return s, nil
}

const notificationBuffer = 1000

// Conn exposes the underlying session for calls other than subscription management.
func (s *WSSource) Conn() *rpc.Conn {
	return s.conn
}

func (s *WSSource) Frames() <-chan Frame {
	return s.frames
}

// Subscribe adds channels and returns the ones the venue accepted.
// user.* channels go through private/subscribe.
func (s *WSSource) Subscribe(ctx context.Context, channels ...string) ([]string, error) {
	public, private := splitChannels(channels)
	var accepted []string
	if len(public) > 0 {
		resp, err := rpc.Call[models.SubscribeResponse](ctx, s.logger, s.conn, models.PublicSubscribeRequest{Channels: public})
		if err != nil {
			return nil, errors.WithMessage(err, "fail subscribe")
		}
		accepted = append(accepted, *resp...)
	}
	if len(private) > 0 {
		resp, err := rpc.Call[models.SubscribeResponse](ctx, s.logger, s.conn, models.PrivateSubscribeRequest{Channels: private})
		if err != nil {
			return accepted, errors.WithMessage(err, "fail subscribe private")
		}
		accepted = append(accepted, *resp...)
	}
	s.logger.Info("ws-source: subscribed", zap.Strings("channels", accepted))
	return accepted, nil
}

// Unsubscribe drops channels and returns the ones the venue released.
func (s *WSSource) Unsubscribe(ctx context.Context, channels ...string) ([]string, error) {
	public, private := splitChannels(channels)
	var released []string
	if len(public) > 0 {
		resp, err := rpc.Call[models.SubscribeResponse](ctx, s.logger, s.conn, models.PublicUnsubscribeRequest{Channels: public})
		if err != nil {
			return nil, errors.WithMessage(err, "fail unsubscribe")
		}
		released = append(released, *resp...)
	}
	if len(private) > 0 {
		resp, err := rpc.Call[models.SubscribeResponse](ctx, s.logger, s.conn, models.PrivateUnsubscribeRequest{Channels: private})
		if err != nil {
			return released, errors.WithMessage(err, "fail unsubscribe private")
		}
		released = append(released, *resp...)
	}
	s.logger.Info("ws-source: unsubscribed", zap.Strings("channels", released))
	return released, nil
}

func splitChannels(channels []string) (public, private []string) {
	for _, ch := range channels {
		if IsPrivate(ch) {
			private = append(private, ch)
		} else {
			public = append(public, ch)
		}
	}
	return public, private
}

// Close ends the session and closes Frames. Frames nobody reads any more are dropped.
func (s *WSSource) Close() error {
	s.once.Do(func() {
		close(s.closing)
	})
	err := s.conn.Close()
	<-s.done
	return err
}

func (s *WSSource) forward() {
	defer close(s.done)
	defer close(s.frames)
	for n := range s.conn.Notifications() {
		select {
		case s.frames <- Frame{Channel: n.Params.Channel, Data: []byte(n.Params.Data)}:
		case <-s.closing:
			return
		}
	}
}
