package feed

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const mockSourceBuffer = 100

var errSourceClosed = errors.New("feed: source closed")

// MockSource delivers frames pushed by hand.
type MockSource struct {
	logger *zap.Logger
	mx     sync.Mutex
	closed bool
	frames chan Frame
}

func NewMockSource(logger *zap.Logger) *MockSource {
	return &MockSource{
		logger: logger,
		frames: make(chan Frame, mockSourceBuffer),
	}
}

func (m *MockSource) Frames() <-chan Frame {
	return m.frames
}

// Push queues a frame. It blocks when the buffer is full.
func (m *MockSource) Push(channel string, data []byte) error {
	m.mx.Lock()
	defer m.mx.Unlock()
	if m.closed {
		return errSourceClosed
	}
	m.logger.Debug("mock-source: push", zap.String("channel", channel))
	m.frames <- Frame{Channel: channel, Data: data}
	return nil
}

func (m *MockSource) Close() error {
	m.mx.Lock()
	defer m.mx.Unlock()
	if m.closed {
		return errSourceClosed
	}
	m.closed = true
	close(m.frames)
	return nil
}

var fixtureFrames = []Frame{
	{Channel: "deribit_price_index.btc_usd", Data: []byte(`{"timestamp":1550588002899,"price":3937.89,"index_name":"btc_usd"}`)},
	{Channel: "book.BTC-PERPETUAL.100ms", Data: []byte(`{"type":"snapshot","timestamp":1554373962454,` +
		`"instrument_name":"BTC-PERPETUAL","change_id":297217,"bids":[["new",5042.34,30],["new",5041.94,20]],` +
		`"asks":[["new",5042.64,40],["new",5043.3,40]]}`)},
	{Channel: "book.BTC-PERPETUAL.100ms", Data: []byte(`{"type":"change","timestamp":1554373911330,` +
		`"prev_change_id":297217,"instrument_name":"BTC-PERPETUAL","change_id":297218,` +
		`"bids":[["delete",5041.94,0],["change",5042.34,10]],"asks":[["new",5042.5,5]]}`)},
	{Channel: "quote.BTC-PERPETUAL", Data: []byte(`{"timestamp":1550658624149,"instrument_name":"BTC-PERPETUAL",` +
		`"best_bid_price":5042.34,"best_bid_amount":10,"best_ask_price":5042.5,"best_ask_amount":5}`)},
	{Channel: "perpetual.BTC-PERPETUAL.raw", Data: []byte(`{"timestamp":1571386349530,"interest":0.004999511380756577,"index_price":7872.88}`)},
}

// SetupFixtures queues a short sample session: an index update, a book snapshot and change,
// a quote and a funding update.
func (m *MockSource) SetupFixtures() {
	for _, frame := range fixtureFrames {
		if err := m.Push(frame.Channel, frame.Data); err != nil {
			m.logger.Error("mock-source: fail push fixture", zap.Error(err))
			return
		}
	}
}
