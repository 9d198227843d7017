package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gitlab.heather.loc/helios/deribit/pkg/feed"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gitlab.heather.loc/helios/deribit/pkg/models/subscription"
	"gitlab.heather.loc/helios/deribit/pkg/rpc"
	"go.uber.org/zap"
	"gotest.tools/assert"
	"nhooyr.io/websocket"
)

// serveSubscriptions echoes every subscribe call and publishes one quote after the first one.
func serveSubscriptions(t *testing.T, seen chan<- rpc.RequestEnvelope) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "")

		ctx := r.Context()
		published := false
		for {
			_, data, err := c.Read(ctx)
			if err != nil {
				return
			}
			var req rpc.RequestEnvelope
			assert.Check(t, jsoniter.Unmarshal(data, &req))
			seen <- req

			result := `"ok"`
			if strings.HasSuffix(req.Method, "subscribe") {
				var params struct {
					Channels []string `json:"channels"`
				}
				assert.Check(t, jsoniter.Unmarshal(req.Params, &params))
				channels, _ := jsoniter.Marshal(params.Channels)
				result = string(channels)
			}
			reply := `{"jsonrpc":"2.0","id":` + strconv.FormatUint(req.ID, 10) + `,"result":` + result + `}`
			assert.Check(t, c.Write(ctx, websocket.MessageText, []byte(reply)))

			if req.Method == "public/subscribe" && !published {
				published = true
				assert.Check(t, c.Write(ctx, websocket.MessageText, []byte(`{"jsonrpc":"2.0","method":"subscription",`+
					`"params":{"channel":"quote.BTC-PERPETUAL","data":{"timestamp":1550658624149,`+
					`"instrument_name":"BTC-PERPETUAL","best_bid_price":5042.34,"best_bid_amount":10,`+
					`"best_ask_price":5042.5,"best_ask_amount":5}}}`)))
			}
		}
	}
}

func TestWSSource(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	seen := make(chan rpc.RequestEnvelope, 10)
	server := httptest.NewServer(serveSubscriptions(t, seen))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	dsn := "ws" + strings.TrimPrefix(server.URL, "http") + "?channels=quote.BTC-PERPETUAL&heartbeat=10"
	source, err := feed.NewSource(ctx, logger, dsn)
	assert.NilError(t, err)
	ws := source.(*feed.WSSource)

	t.Run("setup", func(t *testing.T) {
		req := <-seen
		assert.Equal(t, req.Method, "public/set_heartbeat")
		assert.Equal(t, string(req.Params), `{"interval":10}`)
		req = <-seen
		assert.Equal(t, req.Method, "public/subscribe")
		assert.Equal(t, string(req.Params), `{"channels":["quote.BTC-PERPETUAL"]}`)
	})

	t.Run("frames", func(t *testing.T) {
		d := feed.NewDispatcher(logger, source)
		go func() {
			_ = d.Run(ctx)
		}()
		n := <-d.Notifications()
		assert.Equal(t, n.Channel, "quote.BTC-PERPETUAL")
		quote := n.Payload.(subscription.QuoteData)
		assert.Equal(t, *quote.BestAskPrice, 5042.5)
	})

	t.Run("private split", func(t *testing.T) {
		accepted, err := ws.Subscribe(ctx, "ticker.BTC-PERPETUAL.raw", "user.orders.BTC-PERPETUAL.raw")
		assert.NilError(t, err)
		assert.DeepEqual(t, accepted, []string{"ticker.BTC-PERPETUAL.raw", "user.orders.BTC-PERPETUAL.raw"})
		assert.Equal(t, (<-seen).Method, "public/subscribe")
		assert.Equal(t, (<-seen).Method, "private/subscribe")

		released, err := ws.Unsubscribe(ctx, "user.orders.BTC-PERPETUAL.raw")
		assert.NilError(t, err)
		assert.DeepEqual(t, released, []string{"user.orders.BTC-PERPETUAL.raw"})
		assert.Equal(t, (<-seen).Method, "private/unsubscribe")
	})

	_ = source.Close()
	_, err = rpc.Call[models.Timestamp](ctx, logger, ws.Conn(), models.GetTimeRequest{})
	assert.Equal(t, err, rpc.ErrClosed)
}

func TestWSSource_CloseWithUnreadFrames(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const pushed = 2005
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "")
		for i := 0; i < pushed; i++ {
			msg := `{"jsonrpc":"2.0","method":"subscription","params":{"channel":"perpetual.BTC-PERPETUAL.raw",` +
				`"data":{"timestamp":1571386349530,"interest":0.0049,"index_price":7872.88}}}`
			if err = c.Write(ctx, websocket.MessageText, []byte(msg)); err != nil {
				return
			}
		}
		for {
			if _, _, err = c.Read(ctx); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	source, err := feed.NewWSSource(ctx, logger, "ws"+strings.TrimPrefix(server.URL, "http"), nil, 0)
	assert.NilError(t, err)

	full := func() bool {
		return len(source.Frames()) == cap(source.Frames()) &&
			len(source.Conn().Notifications()) == cap(source.Conn().Notifications())
	}
	for !full() && ctx.Err() == nil {
		time.Sleep(10 * time.Millisecond)
	}

	closed := make(chan bool)
	go func() {
		_ = source.Close()
		closed <- true
	}()
	select {
	case <-closed:
	case <-ctx.Done():
		t.Fatal("close blocked by unread frames")
	}
}
