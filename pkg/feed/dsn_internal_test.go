package feed

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"gotest.tools/assert"
)

func TestParseDsnZmq(t *testing.T) {
	cfg, err := parseDsnZmq("zmq://127.0.0.1:5601?topics=book.,ticker.BTC-PERPETUAL&key=secret")
	assert.NilError(t, err)
	assert.Equal(t, cfg.Addr, "tcp://127.0.0.1:5601")
	assert.Equal(t, cfg.Key, "secret")
	assert.DeepEqual(t, cfg.Topics, []string{"book.", "ticker.BTC-PERPETUAL"})

	cfg, err = parseDsnZmq(" zmq://relay:5601 ")
	assert.NilError(t, err)
	assert.Assert(t, cfg.Topics == nil)

	_, err = parseDsnZmq("zmq://:5601")
	assert.Error(t, err, "host is empty")
	_, err = parseDsnZmq("zmq://relay")
	assert.Error(t, err, "port is empty")
}

func TestParseDsnWS(t *testing.T) {
	cfg, err := parseDsnWS("wss://www.deribit.com/ws/api/v2?channels=quote.BTC-PERPETUAL,book.BTC-PERPETUAL.100ms&heartbeat=30")
	assert.NilError(t, err)
	assert.Equal(t, cfg.URL, "wss://www.deribit.com/ws/api/v2")
	assert.DeepEqual(t, cfg.Channels, []string{"quote.BTC-PERPETUAL", "book.BTC-PERPETUAL.100ms"})
	assert.Equal(t, cfg.Heartbeat, uint64(30))

	cfg, err = parseDsnWS("ws://localhost:8080/ws?token=abc")
	assert.NilError(t, err)
	assert.Equal(t, cfg.URL, "ws://localhost:8080/ws?token=abc")
	assert.Equal(t, cfg.Heartbeat, uint64(0))

	_, err = parseDsnWS("ws://localhost/ws?heartbeat=often")
	assert.ErrorContains(t, err, "invalid heartbeat value")
	_, err = parseDsnWS("ws:///ws")
	assert.Error(t, err, "host is empty")
}

func TestParseDsnMock(t *testing.T) {
	cfg, err := parseDsnMock("mock://?fixtures=true")
	assert.NilError(t, err)
	assert.Assert(t, cfg.Fixtures)

	cfg, err = parseDsnMock("mock://")
	assert.NilError(t, err)
	assert.Assert(t, !cfg.Fixtures)
}

func TestNewSource(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	source, err := NewSource(context.Background(), logger, "mock://")
	assert.NilError(t, err)
	_, ok := source.(*MockSource)
	assert.Assert(t, ok)
	assert.NilError(t, source.Close())

	_, err = NewSource(context.Background(), logger, "kafka://localhost:9092")
	assert.Error(t, err, "config not supported")

	_, err = NewSource(context.Background(), logger, "zmq://relay")
	assert.Error(t, err, "fail parse zmq dsn: port is empty")
}
