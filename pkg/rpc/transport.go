package rpc

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Transport carries one encoded request to the venue and returns the raw result member of the
// matching response. A venue error reply comes back as *Error.
type Transport interface {
	Call(ctx context.Context, method string, params []byte) ([]byte, error)
}

// ErrClosed is returned for calls on, or pending at, a closed transport.
var ErrClosed = errors.New("rpc: transport closed")

// pendingCalls routes responses to their waiting callers by request id.
type pendingCalls struct {
	mx    sync.Mutex
	calls map[uint64]chan *ResponseEnvelope
	err   error
}

func newPendingCalls() *pendingCalls {
	return &pendingCalls{calls: make(map[uint64]chan *ResponseEnvelope)}
}

func (p *pendingCalls) add(id uint64) (chan *ResponseEnvelope, error) {
	p.mx.Lock()
	defer p.mx.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	done := make(chan *ResponseEnvelope, 1)
	p.calls[id] = done
	return done, nil
}

func (p *pendingCalls) remove(id uint64) {
	p.mx.Lock()
	defer p.mx.Unlock()
	delete(p.calls, id)
}

// resolve hands resp to its caller; false means nobody waits for it.
func (p *pendingCalls) resolve(resp *ResponseEnvelope) bool {
	p.mx.Lock()
	defer p.mx.Unlock()
	done, ok := p.calls[resp.ID]
	if !ok {
		return false
	}
	delete(p.calls, resp.ID)
	done <- resp
	return true
}

// failAll releases every waiting caller with err and refuses new calls.
func (p *pendingCalls) failAll(err error) {
	p.mx.Lock()
	defer p.mx.Unlock()
	if p.err != nil {
		return
	}
	p.err = err
	for id, done := range p.calls {
		close(done)
		delete(p.calls, id)
	}
}

func (p *pendingCalls) wait(ctx context.Context, id uint64, done chan *ResponseEnvelope) ([]byte, error) {
	select {
	case <-ctx.Done():
		p.remove(id)
		return nil, ctx.Err()
	case resp, ok := <-done:
		if !ok {
			p.mx.Lock()
			err := p.err
			p.mx.Unlock()
			return nil, err
		}
		if resp.Error != nil {
			return nil, resp.Error
		}
		return resp.Result, nil
	}
}

// Connection is a Transport bound to a live connection.
type Connection interface {
	Transport
	Close() error
}
