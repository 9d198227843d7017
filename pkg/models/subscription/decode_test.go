package subscription_test

import (
	"encoding/json"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gitlab.heather.loc/helios/deribit/pkg/models/subscription"
	"gotest.tools/assert"
)

const testTickerJSON = `{"instrument_name":"BTC-PERPETUAL","timestamp":1700000000000,"state":"open",
"best_bid_price":50000,"best_bid_amount":10,"best_ask_price":50000.5,"best_ask_amount":2,
"last_price":50000,"index_price":50001,"mark_price":50000.2,"min_price":49000,"max_price":51000,
"open_interest":1200,"current_funding":0,"funding_8h":0.0001,"estimated_delivery_price":50001}`

const testOrderJSON = `{"order_id":"ETH-100234","instrument_name":"BTC-PERPETUAL","direction":"buy",
"amount":10,"filled_amount":0,"average_price":0,"price":"market_price","order_type":"market",
"order_state":"open","time_in_force":"good_til_cancelled","max_show":10,"post_only":false,
"reduce_only":false,"is_liquidation":false,"api":true,"creation_timestamp":1700000000000,
"last_update_timestamp":1700000000001,"commission":0,"profit_loss":0}`

func TestDecode_Ticker(t *testing.T) {
	payload, err := subscription.Decode(subscription.FamilyTicker, []byte(testTickerJSON))
	assert.NilError(t, err)

	ticker := payload.(subscription.TickerData)
	assert.Equal(t, ticker.State, models.InstrumentStateOpen)
	assert.Assert(t, ticker.Stats == nil, "stats may be omitted entirely")
	assert.Assert(t, ticker.Greeks == nil)
	assert.Equal(t, *ticker.EstimatedDeliveryPrice, 50001.0)

	withNested := testTickerJSON[:len(testTickerJSON)-1] +
		`,"stats":{"volume":100,"volume_usd":5000000,"low":49000,"high":51000,"price_change":0.5},` +
		`"greeks":{"delta":1,"gamma":0,"rho":0,"theta":0,"vega":0}}`
	payload, err = subscription.Decode(subscription.FamilyTicker, []byte(withNested))
	assert.NilError(t, err)
	ticker = payload.(subscription.TickerData)
	assert.Equal(t, *ticker.Stats.VolumeUSD, 5000000.0)
	assert.Equal(t, ticker.Greeks.Delta, 1.0)

	brokenStats := testTickerJSON[:len(testTickerJSON)-1] + `,"stats":{"low":1}}`
	_, err = subscription.Decode(subscription.FamilyTicker, []byte(brokenStats))
	assert.Error(t, err, "decode ticker.stats.volume: required field is absent")

	_, err = subscription.Decode(subscription.FamilyTicker, []byte(`{"instrument_name":"BTC-PERPETUAL"}`))
	assert.Error(t, err, "decode ticker.timestamp: required field is absent")
}

func TestDecode_NullElements(t *testing.T) {
	_, err := subscription.Decode(subscription.FamilyUserTrades, []byte(`[null]`))
	assert.Error(t, err, "decode user_trades[0]: expected object, got: null")

	_, err = subscription.Decode(subscription.FamilyUserOrders, []byte(`[`+testOrderJSON+`,null]`))
	assert.Error(t, err, "decode user_orders[1]: expected object, got: null")

	_, err = subscription.Decode(subscription.FamilyQuote, []byte(` null`))
	assert.Error(t, err, "decode quote: null payload")
}

func TestDecode_NestedEnumField(t *testing.T) {
	badDirection := strings.Replace(testOrderJSON, `"direction":"buy"`, `"direction":"up"`, 1)

	_, err := subscription.Decode(subscription.FamilyUserOrders, []byte(badDirection))
	var decodeErr *models.DecodeError
	assert.Assert(t, errors.As(err, &decodeErr))
	assert.Equal(t, decodeErr.Family, "user_orders")
	assert.Equal(t, decodeErr.Field, "direction")
	assert.Equal(t, decodeErr.Reason, `unsupported direction: "up"`)

	_, err = subscription.Decode(subscription.FamilyUserOrders, []byte(`[`+testOrderJSON+`,`+badDirection+`]`))
	assert.Error(t, err, `decode user_orders[1].direction: unsupported direction: "up"`)

	badState := strings.Replace(testTickerJSON, `"state":"open"`, `"state":"halted"`, 1)
	_, err = subscription.Decode(subscription.FamilyTicker, []byte(badState))
	assert.Error(t, err, `decode ticker.state: unsupported instrument state: "halted"`)
}

func TestDecode_UserOrders(t *testing.T) {
	payload, err := subscription.Decode(subscription.FamilyUserOrders, []byte(testOrderJSON))
	assert.NilError(t, err)
	orders := payload.(subscription.UserOrdersData)
	assert.Equal(t, len(orders), 1)
	assert.Assert(t, orders[0].IsMarketPrice())

	payload, err = subscription.Decode(subscription.FamilyUserOrders, []byte(`[`+testOrderJSON+`,`+testOrderJSON+`]`))
	assert.NilError(t, err)
	assert.Equal(t, len(payload.(subscription.UserOrdersData)), 2)

	_, err = subscription.Decode(subscription.FamilyUserOrders, []byte(`null`))
	assert.Error(t, err, "decode user_orders: null payload")

	_, err = subscription.Decode(subscription.FamilyUserOrders, []byte(`{"order_id":"1"}`))
	var decodeErr *models.DecodeError
	assert.Assert(t, errors.As(err, &decodeErr))
	assert.Equal(t, decodeErr.Family, "user_orders")
}

func TestDecode_Families(t *testing.T) {
	cases := []struct {
		family subscription.Family
		raw    string
	}{
		{subscription.FamilyAnnouncements, `{"action":"new","body":"maintenance","id":1532593832021,
"important":true,"publication_timestamp":1532593832021,"title":"Example"}`},
		{subscription.FamilyDeribitPriceIndex, `{"timestamp":1550588002899,"price":3937.89,"index_name":"btc_usd"}`},
		{subscription.FamilyDeribitPriceRanking, `[{"weight":14.29,"timestamp":1573202284040,
"price":9109.35,"original_price":9109.35,"identifier":"bitfinex","enabled":true},
{"weight":0,"timestamp":1573202284040,"price":null,"original_price":null,"identifier":"bitstamp","enabled":false}]`},
		{subscription.FamilyEstimatedExpirationPrice, `{"seconds":180929,"price":3939.73,"is_estimated":false}`},
		{subscription.FamilyMarkPriceOptions, `[{"timestamp":1622470378005,"mark_price":0.0333,
"iv":0.9,"instrument_name":"BTC-2JUN21-37000-P"}]`},
		{subscription.FamilyPerpetual, `{"timestamp":1571386349530,"interest":0.004999511380756577,"index_price":7872.88}`},
		{subscription.FamilyQuote, `{"timestamp":1550658624149,"instrument_name":"BTC-PERPETUAL",
"best_bid_price":3914.97,"best_bid_amount":40,"best_ask_price":null,"best_ask_amount":0}`},
		{subscription.FamilyTrades, `[{"trade_seq":30289432,"trade_id":"48079254","timestamp":1590484156350,
"tick_direction":0,"price":8950,"mark_price":8948.9,"instrument_name":"BTC-PERPETUAL",
"index_price":8955.88,"direction":"sell","amount":10}]`},
		{subscription.FamilyUserPortfolio, `{"total_pl":0.00000425,"session_upl":0.00000425,
"session_rpl":-2e-8,"projected_maintenance_margin":0.00009141,"projected_initial_margin":0.00012542,
"projected_delta_total":0.0043,"portfolio_margining_enabled":false,"options_vega":0,
"options_value":0,"options_theta":0,"options_session_upl":0,"options_session_rpl":0,
"options_pl":0,"options_gamma":0,"options_delta":0,"margin_balance":0.2340038,
"maintenance_margin":0.00009141,"initial_margin":0.00012542,"futures_session_upl":0.00000425,
"futures_session_rpl":-2e-8,"futures_pl":0.00000425,"equity":0.2340038,"delta_total":0.0043,
"currency":"BTC","balance":0.2339996,"available_withdrawal_funds":0.2338742,"available_funds":0.2338742}`},
		{subscription.FamilyUserTrades, `[{"trade_id":"BTC-1","trade_seq":1,"timestamp":1700000000002,
"tick_direction":0,"state":"filled","self_trade":false,"price":50000,"amount":10,"direction":"buy",
"order_id":"ETH-100234","order_type":"limit","matching_id":null,"liquidity":"maker",
"instrument_name":"BTC-PERPETUAL","index_price":50010.5,"fee_currency":"BTC","fee":-0.0001}]`},
	}

	for _, c := range cases {
		payload, err := subscription.Decode(c.family, []byte(c.raw))
		assert.NilError(t, err, c.family.String())
		assert.Equal(t, payload.Family(), c.family)

		_, err = subscription.Decode(c.family, []byte(`"garbage"`))
		assert.ErrorContains(t, err, "decode "+c.family.String(), "wrong shape is a decode error")
	}
}

func TestDecode_ShapesAreIndependent(t *testing.T) {
	// a quote is not a valid perpetual update
	_, err := subscription.Decode(subscription.FamilyPerpetual, []byte(`{"timestamp":1550658624149,
"instrument_name":"BTC-PERPETUAL","best_bid_price":3914.97,"best_bid_amount":40,
"best_ask_price":3914.98,"best_ask_amount":1}`))
	assert.Error(t, err, "decode perpetual.interest: required field is absent")

	_, err = subscription.Decode(subscription.Family(99), []byte(`{}`))
	assert.ErrorContains(t, err, "unknown family 99")

	payload, err := subscription.Decode(subscription.FamilyPerpetual, []byte(`{"timestamp":1,
"interest":0.1,"index_price":7872.88,"extra":{"nested":[1,2]}}`))
	assert.NilError(t, err)
	assert.Equal(t, payload.(subscription.PerpetualData).IndexPrice, 7872.88)
}

func TestFamily_JSON(t *testing.T) {
	assert.Equal(t, len(subscription.Families()), 14)

	for _, family := range subscription.Families() {
		val, err := json.Marshal(family)
		assert.NilError(t, err)

		var decoded subscription.Family
		assert.NilError(t, jsoniter.Unmarshal(val, &decoded))
		assert.Equal(t, decoded, family)

		parsed, err := subscription.FamilyStrToType(family.String())
		assert.NilError(t, err)
		assert.Equal(t, parsed, family)
	}

	var family subscription.Family
	err := json.Unmarshal([]byte(`"orderbook"`), &family)
	assert.ErrorContains(t, err, `unsupported family: "orderbook"`)

	_, err = subscription.FamilyStrToType("markprice")
	assert.ErrorContains(t, err, "unsupported family: markprice")
}

func BenchmarkDecode_Book(b *testing.B) {
	raw := []byte(`{"type":"change","timestamp":1554373911330,"prev_change_id":297217,
"instrument_name":"BTC-PERPETUAL","change_id":297218,"bids":[["delete",5042.64,0],["change",5043.5,7250]],
"asks":[["new",5045.5,8],["change",5046,1110],["delete",5047,0]]}`)

	for i := 0; i < b.N; i++ {
		_, err := subscription.Decode(subscription.FamilyBook, raw)
		if err != nil {
			b.Fatal("fail decode book", err)
		}
	}
}
