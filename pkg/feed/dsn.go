package feed

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type configZmqSource struct {
	Addr   string
	Key    string
	Topics []string
}

func parseDsnZmq(dsn string) (*configZmqSource, error) {
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
	query := u.Query()
	return &configZmqSource{
		Addr:   "tcp://" + u.Hostname() + ":" + strconv.Itoa(port),
		Key:    query.Get("key"),
		Topics: splitList(query.Get("topics")),
	}, nil
}

type configWSSource struct {
	URL       string
	Channels  []string
	Heartbeat uint64
}

func parseDsnWS(dsn string) (*configWSSource, error) {
	u, err := url.Parse(strings.TrimSpace(dsn))
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, errors.New("host is empty")
	}
	query := u.Query()
	cfg := &configWSSource{Channels: splitList(query.Get("channels"))}
	if hb := query.Get("heartbeat"); hb != "" {
		cfg.Heartbeat, err = strconv.ParseUint(hb, 10, 64)
		if err != nil {
			return nil, errors.WithMessage(err, "invalid heartbeat value")
		}
	}
	query.Del("channels")
	query.Del("heartbeat")
	u.RawQuery = query.Encode()
	cfg.URL = u.String()
	return cfg, nil
}

type configMockSource struct {
	Fixtures bool
}

func parseDsnMock(dsn string) (*configMockSource, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	return &configMockSource{Fixtures: u.Query().Get("fixtures") == "true"}, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}

// NewSource opens the frame source named by dsn:
//
//	mock://?fixtures=true
//	zmq://host:port?topics=book.,ticker.&key=<curve server public key>
//	ws://host/ws/api/v2?channels=book.BTC-PERPETUAL.100ms,quote.BTC-PERPETUAL&heartbeat=30
func NewSource(ctx context.Context, logger *zap.Logger, dsn string) (Source, error) {
	switch {
	case strings.HasPrefix(dsn, "mock://"):
		cfg, err := parseDsnMock(dsn)
		if err != nil {
			return nil, errors.WithMessage(err, "fail parse mock dsn")
		}
		source := NewMockSource(logger)
		if cfg.Fixtures {
			source.SetupFixtures()
		}
		return source, nil

	case strings.HasPrefix(dsn, "zmq://"):
		cfg, err := parseDsnZmq(dsn)
		if err != nil {
			return nil, errors.WithMessage(err, "fail parse zmq dsn")
		}
		source, err := NewZmqSource(logger, cfg.Addr, cfg.Key, cfg.Topics...)
		if err != nil {
			return nil, err
		}
		return source, nil

	case strings.HasPrefix(dsn, "ws://"), strings.HasPrefix(dsn, "wss://"):
		cfg, err := parseDsnWS(dsn)
		if err != nil {
			return nil, errors.WithMessage(err, "fail parse ws dsn")
		}
		source, err := NewWSSource(ctx, logger, cfg.URL, cfg.Channels, cfg.Heartbeat)
		if err != nil {
			return nil, err
		}
		return source, nil
	}

	return nil, errors.New("config not supported")
}
