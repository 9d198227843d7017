package feed_test

import (
	"context"
	"testing"
	"time"

	"gitlab.heather.loc/helios/deribit/pkg/feed"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gitlab.heather.loc/helios/deribit/pkg/models/subscription"
	"go.uber.org/zap"
	"gotest.tools/assert"
)

func collect(t *testing.T, d *feed.Dispatcher) []feed.Notification {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errs := make(chan error, 1)
	go func() {
		errs <- d.Run(ctx)
	}()

	var result []feed.Notification
	for n := range d.Notifications() {
		result = append(result, n)
	}
	assert.NilError(t, <-errs)
	return result
}

func TestDispatcher_Fixtures(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	source, err := feed.NewSource(context.Background(), logger, "mock://?fixtures=true")
	assert.NilError(t, err)
	assert.NilError(t, source.Close())

	notifications := collect(t, feed.NewDispatcher(logger, source))
	assert.Equal(t, len(notifications), 5)

	index := notifications[0].Payload.(subscription.DeribitPriceIndexData)
	assert.Equal(t, index.IndexName, "btc_usd")

	snapshot := notifications[1].Payload.(subscription.BookData)
	assert.Equal(t, snapshot.Type, subscription.BookTypeSnapshot)
	assert.Equal(t, len(snapshot.Bids), 2)

	change := notifications[2].Payload.(subscription.BookData)
	assert.Equal(t, *change.PrevChangeID, snapshot.ChangeID)
	assert.Equal(t, change.Bids[0].Action, subscription.DeltaActionDelete)
	assert.Equal(t, change.Bids[0].Price, 5041.94)

	assert.Equal(t, notifications[3].Payload.Family(), subscription.FamilyQuote)
	assert.Equal(t, notifications[4].Channel, "perpetual.BTC-PERPETUAL.raw")
}

func TestDispatcher_DropsBadFrames(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	source := feed.NewMockSource(logger)

	assert.NilError(t, source.Push("quote.BTC-PERPETUAL", []byte(`{"timestamp":1}`)))
	assert.NilError(t, source.Push("chart.trades.BTC-PERPETUAL.1", []byte(`{}`)))
	assert.NilError(t, source.Push("book.BTC-PERPETUAL.raw", []byte(`{"type":"change","timestamp":1,`+
		`"instrument_name":"BTC-PERPETUAL","change_id":2,"bids":[["delete",100,3]],"asks":[]}`)))
	assert.NilError(t, source.Push("deribit_price_index.eth_usd",
		[]byte(`{"timestamp":1550588002899,"price":140.5,"index_name":"eth_usd"}`)))
	assert.NilError(t, source.Close())
	assert.Error(t, source.Push("quote.BTC-PERPETUAL", []byte(`{}`)), "feed: source closed")

	notifications := collect(t, feed.NewDispatcher(logger, source))
	assert.Equal(t, len(notifications), 1)
	assert.Equal(t, notifications[0].Channel, "deribit_price_index.eth_usd")
	assert.Equal(t, notifications[0].Payload.(subscription.DeribitPriceIndexData).Timestamp,
		models.TimestampFromUint64(1550588002899))
}

func TestDispatcher_Cancel(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	source := feed.NewMockSource(logger)
	d := feed.NewDispatcher(logger, source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, d.Run(ctx), context.Canceled)

	_, open := <-d.Notifications()
	assert.Assert(t, !open)
}
