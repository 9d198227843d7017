package rpc

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type configZmqTransport struct {
	Addr string
	Key  string
}

func parseDsnZmq(dsn string) (*configZmqTransport, error) {
	u, err := url.Parse(strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if u.Hostname() == "" {
		return nil, errors.New("host is empty")
	}
	if u.Port() == "" {
		return nil, errors.New("port is empty")
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return nil, errors.WithMessage(err, "invalid port value")
	}
	return &configZmqTransport{
		Addr: "tcp://" + u.Hostname() + ":" + strconv.Itoa(port),
		Key:  u.Query().Get("key"),
	}, nil
}

type configMockTransport struct {
	Fixtures bool
}

func parseDsnMock(dsn string) (*configMockTransport, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	return &configMockTransport{Fixtures: u.Query().Get("fixtures") == "true"}, nil
}

// NewTransport opens the transport named by dsn:
//
//	mock://?fixtures=true
//	ws://host/ws/api/v2, wss://host/ws/api/v2
//	zmq://host:port?key=<curve server public key>
func NewTransport(ctx context.Context, logger *zap.Logger, dsn string) (Connection, error) {
	switch {
	case strings.HasPrefix(dsn, "mock://"):
		cfg, err := parseDsnMock(dsn)
		if err != nil {
			return nil, errors.WithMessage(err, "fail parse mock dsn")
		}
		transport := NewMockTransport(logger)
		if cfg.Fixtures {
			transport.SetupFixtures()
		}
		return transport, nil

	case strings.HasPrefix(dsn, "ws://"), strings.HasPrefix(dsn, "wss://"):
		conn, err := Dial(ctx, logger, dsn)
		if err != nil {
			return nil, err
		}
		return conn, nil

	case strings.HasPrefix(dsn, "zmq://"):
		cfg, err := parseDsnZmq(dsn)
		if err != nil {
			return nil, errors.WithMessage(err, "fail parse zmq dsn")
		}
		transport, err := NewZmqTransport(logger, cfg.Addr, cfg.Key)
		if err != nil {
			return nil, err
		}
		return transport, nil
	}

	return nil, errors.New("config not supported")
}
