package rpc

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pebbe/zmq4"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"go.uber.org/zap"
	"gotest.tools/assert"
)

func generateListenAddr() string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		panic(fmt.Sprintf("zmqtest: failed to listen on a port: %v", err))
	}
	l.Close()
	return "tcp://" + l.Addr().String()
}

func TestZmqTransport_Call(t *testing.T) {
	timeout := time.After(10 * time.Second)
	done := make(chan bool)

	go func() {
		defer func() {
			done <- true
		}()
		testRelayEndpoint := generateListenAddr()
		zmqCtx, err := zmq4.NewContext()
		assert.NilError(t, err)
		defer func() {
			assert.NilError(t, zmqCtx.Term())
		}()

		relay, err := zmqCtx.NewSocket(zmq4.ROUTER)
		assert.NilError(t, err)
		assert.NilError(t, relay.SetLinger(0))
		assert.NilError(t, relay.Bind(testRelayEndpoint))

		relayDone := make(chan bool)
		go func() {
			defer func() {
				assert.Check(t, relay.Close())
				relayDone <- true
			}()
			replies := map[string]string{
				"public/get_time":    `"result":1700000000000`,
				"private/cancel_all": `"error":{"code":10028,"message":"too_many_requests"}`,
			}
			for i := 0; i < len(replies); i++ {
				parts, err := relay.RecvMessageBytes(0)
				if !assert.Check(t, err) {
					return
				}
				var req RequestEnvelope
				assert.Check(t, jsoniter.Unmarshal(parts[len(parts)-1], &req))
				reply := `{"jsonrpc":"2.0","id":` + strconv.FormatUint(req.ID, 10) + `,` + replies[req.Method] + `}`
				_, err = relay.SendMessage(parts[0], reply)
				assert.Check(t, err)
			}
		}()

		logger, _ := zap.NewDevelopment()
		transport, err := NewZmqTransport(logger, testRelayEndpoint, "")
		assert.NilError(t, err)
		assert.Equal(t, transport.String(), "DEALER:"+testRelayEndpoint)

		ctx := context.Background()
		t.Run("result", func(t *testing.T) {
			ts, err := Call[models.Timestamp](ctx, logger, transport, models.GetTimeRequest{})
			assert.NilError(t, err)
			assert.Equal(t, *ts, models.TimestampFromUint64(1700000000000))
			assert.Check(t, transport.IsReady(), "ready state")
		})

		t.Run("venue error", func(t *testing.T) {
			_, err := Call[models.CancelResponse](ctx, logger, transport, models.CancelAllRequest{})
			assert.Assert(t, IsErrorCode(err, ErrorTooManyRequests))
		})

		<-relayDone
		assert.NilError(t, transport.Close())

		_, err = transport.Call(ctx, "public/test", nil)
		assert.Equal(t, err, ErrClosed)
	}()

	select {
	case <-timeout:
		t.Fatal("zmq transport calls not finish in time")
	case <-done:
	}
}

func TestNewZmqTransport_BadAddress(t *testing.T) {
	timeout := time.After(10 * time.Second)
	done := make(chan bool)
	go func() {
		defer func() {
			done <- true
		}()
		log, _ := zap.NewDevelopment()
		for i := 0; i < 3; i++ {
			transport, err := NewZmqTransport(log, "bogus://x", "")
			assert.ErrorContains(t, err, "fail create dealer socket")
			assert.Assert(t, transport == nil)
		}
	}()

	select {
	case <-timeout:
		t.Fatal("zmq transport constructor did not release its context")
	case <-done:
	}
}
