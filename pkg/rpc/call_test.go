package rpc_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gitlab.heather.loc/helios/deribit/pkg/rpc"
	"go.uber.org/zap"
	"gotest.tools/assert"
)

const testCancelledOrderJSON = `{"order_id":"ETH-100234","instrument_name":"BTC-PERPETUAL","direction":"buy",
"amount":10,"filled_amount":0,"average_price":0,"price":50000,"order_type":"limit",
"order_state":"cancelled","time_in_force":"good_til_cancelled","max_show":10,"post_only":false,
"reduce_only":false,"is_liquidation":false,"api":true,"creation_timestamp":1700000000000,
"last_update_timestamp":1700000000001,"commission":0,"profit_loss":0,"cancel_reason":"user_request"}`

func TestCall_TypedResponse(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	transport := rpc.NewMockTransport(logger)

	transport.Expect("private/cancel", []byte(testCancelledOrderJSON))
	order, err := rpc.Call[models.Order](ctx, logger, transport, models.CancelRequest{OrderID: "ETH-100234"})
	assert.NilError(t, err)
	assert.Equal(t, order.OrderState, models.OrderStateCancelled)
	assert.Equal(t, *order.CancelReason, "user_request")

	calls := transport.Calls()
	assert.Equal(t, len(calls), 1)
	assert.Equal(t, calls[0].Method, "private/cancel")
	assert.Equal(t, string(calls[0].Params), `{"order_id":"ETH-100234"}`)
	assert.Assert(t, transport.IsEmptyExpectations())
}

func TestCall_EmptyRequestSendsNoParams(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	transport := rpc.NewMockTransport(logger)

	transport.Expect("private/cancel_all", []byte(`"ok"`))
	ok, err := rpc.Call[models.CancelResponse](ctx, logger, transport, models.CancelAllRequest{})
	assert.NilError(t, err)
	assert.Equal(t, *ok, models.Ok)
	assert.Assert(t, transport.Calls()[0].Params == nil)
}

func TestCall_DecodeError(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	transport := rpc.NewMockTransport(logger)

	transport.Expect("private/get_positions", []byte(`[{"instrument_name":"BTC-PERPETUAL"}]`))
	_, err := rpc.Call[[]models.Position](ctx, logger, transport, models.GetPositionsRequest{Currency: models.CurrencyBTC})
	var decodeErr *models.DecodeError
	assert.Assert(t, errors.As(err, &decodeErr))
	assert.Equal(t, decodeErr.Family, "private/get_positions")

	transport.Expect("public/get_time", []byte(`"yesterday"`))
	_, err = rpc.Call[models.Timestamp](ctx, logger, transport, models.GetTimeRequest{})
	assert.Error(t, err, `decode public/get_time: unsupported timestamp: "yesterday"`)
}

func TestCall_VenueError(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	transport := rpc.NewMockTransport(logger)

	transport.ExpectError("private/buy", &rpc.Error{Code: rpc.ErrorNotEnoughFunds, Message: "not_enough_funds"})
	_, err := rpc.Call[models.BuyResponse](ctx, logger, transport, models.BuyLimit("BTC-PERPETUAL", 10, 50000))
	assert.Assert(t, rpc.IsErrorCode(err, rpc.ErrorNotEnoughFunds))

	_, err = rpc.Call[models.SellResponse](ctx, logger, transport, models.SellMarket("BTC-PERPETUAL", 10))
	assert.ErrorContains(t, err, "expectations not found for method private/sell")
}

func TestCall_Fixtures(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()
	transport, err := rpc.NewTransport(ctx, logger, "mock://?fixtures=true")
	assert.NilError(t, err)
	defer transport.Close()

	ts, err := rpc.Call[models.Timestamp](ctx, logger, transport, models.GetTimeRequest{})
	assert.NilError(t, err)
	assert.Equal(t, *ts, models.TimestampFromUint64(1700000000000))

	ok, err := rpc.Call[models.OkResponse](ctx, logger, transport, models.SetHeartbeatRequest{Interval: 10})
	assert.NilError(t, err)
	assert.Equal(t, *ok, models.Ok)

	version, err := rpc.Call[models.TestResponse](ctx, logger, transport, models.TestRequest{})
	assert.NilError(t, err)
	assert.Equal(t, version.Version, "1.2.26")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = rpc.Call[models.TestResponse](cancelled, logger, transport, models.TestRequest{})
	assert.Equal(t, err, context.Canceled)
}

func TestNextID(t *testing.T) {
	first := rpc.NextID()
	second := rpc.NextID()
	assert.Assert(t, second > first)
}
