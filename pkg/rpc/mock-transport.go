package rpc

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type expectation struct {
	result []byte
	err    error
}

// RecordedCall is one request seen by MockTransport.
type RecordedCall struct {
	Method string
	Params []byte
}

// MockTransport answers calls from queued expectations, falling back to fixtures when enabled.
type MockTransport struct {
	logger        *zap.Logger
	expectationMx sync.Mutex
	expectations  map[string][]expectation
	calls         []RecordedCall
	fixtures      map[string][]byte
}

func NewMockTransport(logger *zap.Logger) *MockTransport {
	return &MockTransport{
		logger:       logger,
		expectations: make(map[string][]expectation),
	}
}

// Expect queues result as the next answer to method.
func (m *MockTransport) Expect(method string, result []byte) {
	m.addExpectation(method, expectation{result: result})
}

// ExpectError queues err as the next answer to method.
func (m *MockTransport) ExpectError(method string, err error) {
	m.addExpectation(method, expectation{err: err})
}

// SetupFixtures answers session and support methods without expectations.
func (m *MockTransport) SetupFixtures() {
	m.expectationMx.Lock()
	defer m.expectationMx.Unlock()
	m.fixtures = map[string][]byte{
		"public/test":                          []byte(`{"version":"1.2.26"}`),
		"public/hello":                         []byte(`{"version":"1.2.26"}`),
		"public/get_time":                      []byte(`1700000000000`),
		"public/set_heartbeat":                 []byte(`"ok"`),
		"public/disable_heartbeat":             []byte(`"ok"`),
		"public/unsubscribe_all":               []byte(`"ok"`),
		"private/enable_cancel_on_disconnect":  []byte(`"ok"`),
		"private/disable_cancel_on_disconnect": []byte(`"ok"`),
		"private/cancel_all":                   []byte(`"ok"`),
	}
}

// Calls returns the requests seen so far.
func (m *MockTransport) Calls() []RecordedCall {
	m.expectationMx.Lock()
	defer m.expectationMx.Unlock()
	return append([]RecordedCall(nil), m.calls...)
}

func (m *MockTransport) IsEmptyExpectations() bool {
	m.expectationMx.Lock()
	defer m.expectationMx.Unlock()
	return len(m.expectations) == 0
}

func (m *MockTransport) addExpectation(method string, expect expectation) {
	m.expectationMx.Lock()
	defer m.expectationMx.Unlock()
	m.expectations[method] = append(m.expectations[method], expect)
}

func (m *MockTransport) Call(ctx context.Context, method string, params []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.expectationMx.Lock()
	defer m.expectationMx.Unlock()
	m.calls = append(m.calls, RecordedCall{Method: method, Params: append([]byte(nil), params...)})

	list, ok := m.expectations[method]
	if !ok {
		if result, ok := m.fixtures[method]; ok {
			return result, nil
		}
		err := errors.New("expectations not found for method " + method)
		m.logger.Error("mock-transport: expectations", zap.Error(err))
		return nil, err
	}
	m.expectations[method] = list[1:]
	if len(m.expectations[method]) == 0 {
		delete(m.expectations, method)
	}
	m.logger.Debug("mock-transport: call", zap.String("method", method), zap.ByteString("params", params))
	return list[0].result, list[0].err
}

func (m *MockTransport) Close() error {
	return nil
}
