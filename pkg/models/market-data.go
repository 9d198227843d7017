package models

import "strconv"

// PriceLevel is one aggregated book level, encoded as [price, amount].
type PriceLevel struct {
	Price  float64
	Amount float64
}

func (l PriceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{l.Price, l.Amount})
}

func (l *PriceLevel) UnmarshalJSON(data []byte) error {
	var raw []float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return &DecodeError{Reason: "price level: " + err.Error()}
	}
	if len(raw) != 2 {
		return &DecodeError{Reason: "price level expects 2 elements, got " + strconv.Itoa(len(raw))}
	}
	l.Price, l.Amount = raw[0], raw[1]
	return nil
}

// Stats is the rolling 24h summary attached to tickers and order books.
type Stats struct {
	Volume      float64  `json:"volume"`
	VolumeUSD   *float64 `json:"volume_usd,omitempty"`
	Low         *float64 `json:"low"`
	High        *float64 `json:"high"`
	PriceChange *float64 `json:"price_change"`
}

func (s *Stats) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, "volume"); err != nil {
		return err
	}
	type plain Stats
	return DecodePlain(data, (*plain)(s))
}

// Greeks are present for options only.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Rho   float64 `json:"rho"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

func (g *Greeks) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, "delta", "gamma", "rho", "theta", "vega"); err != nil {
		return err
	}
	type plain Greeks
	return DecodePlain(data, (*plain)(g))
}

type GetIndexRequest struct {
	Currency Currency `json:"currency"`
}

func (GetIndexRequest) Method() string {
	return "public/get_index"
}

func (GetIndexRequest) NewResponse() *IndexResponse {
	return new(IndexResponse)
}

// IndexResponse carries the index price keyed by currency plus the estimated delivery price.
type IndexResponse struct {
	Prices                 map[Currency]float64
	EstimatedDeliveryPrice float64
}

func (r IndexResponse) MarshalJSON() ([]byte, error) {
	raw := make(map[string]float64, len(r.Prices)+1)
	for currency, price := range r.Prices {
		raw[currency.String()] = price
	}
	raw["edp"] = r.EstimatedDeliveryPrice
	return json.Marshal(raw)
}

func (r *IndexResponse) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, "edp"); err != nil {
		return err
	}
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Prices = make(map[Currency]float64, len(raw)-1)
	for key, price := range raw {
		if key == "edp" {
			r.EstimatedDeliveryPrice = price
			continue
		}
		currency, err := CurrencyStrToType(key)
		if err != nil {
			return err
		}
		r.Prices[currency] = price
	}
	return nil
}

type GetInstrumentsRequest struct {
	Currency Currency   `json:"currency"`
	Kind     *AssetKind `json:"kind,omitempty"`
	Expired  bool       `json:"expired,omitempty"`
}

func (GetInstrumentsRequest) Method() string {
	return "public/get_instruments"
}

func (GetInstrumentsRequest) NewResponse() *[]Instrument {
	return new([]Instrument)
}

type Instrument struct {
	InstrumentName      string      `json:"instrument_name"`
	Kind                AssetKind   `json:"kind"`
	BaseCurrency        Currency    `json:"base_currency"`
	QuoteCurrency       Currency    `json:"quote_currency"`
	SettlementCurrency  *Currency   `json:"settlement_currency,omitempty"`
	IsActive            bool        `json:"is_active"`
	CreationTimestamp   Timestamp   `json:"creation_timestamp"`
	ExpirationTimestamp Timestamp   `json:"expiration_timestamp"`
	SettlementPeriod    *string     `json:"settlement_period,omitempty"`
	TickSize            float64     `json:"tick_size"`
	ContractSize        float64     `json:"contract_size"`
	MinTradeAmount      float64     `json:"min_trade_amount"`
	MakerCommission     *float64    `json:"maker_commission,omitempty"`
	TakerCommission     *float64    `json:"taker_commission,omitempty"`
	Strike              *float64    `json:"strike,omitempty"`
	OptionType          *OptionType `json:"option_type,omitempty"`
}

var instrumentRequired = []string{
	"instrument_name", "kind", "base_currency", "quote_currency", "is_active",
	"creation_timestamp", "expiration_timestamp", "tick_size", "contract_size",
	"min_trade_amount",
}

func (i *Instrument) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, instrumentRequired...); err != nil {
		return err
	}
	type plain Instrument
	return DecodePlain(data, (*plain)(i))
}

type GetOrderBookRequest struct {
	InstrumentName string `json:"instrument_name"`
	Depth          uint64 `json:"depth,omitempty"`
}

func (GetOrderBookRequest) Method() string {
	return "public/get_order_book"
}

func (GetOrderBookRequest) NewResponse() *OrderBook {
	return new(OrderBook)
}

// OrderBook is a one-off book snapshot with market statistics.
type OrderBook struct {
	InstrumentName  string          `json:"instrument_name"`
	Timestamp       Timestamp       `json:"timestamp"`
	ChangeID        uint64          `json:"change_id"`
	State           InstrumentState `json:"state"`
	Bids            []PriceLevel    `json:"bids"`
	Asks            []PriceLevel    `json:"asks"`
	BestBidPrice    *float64        `json:"best_bid_price"`
	BestBidAmount   float64         `json:"best_bid_amount"`
	BestAskPrice    *float64        `json:"best_ask_price"`
	BestAskAmount   float64         `json:"best_ask_amount"`
	IndexPrice      float64         `json:"index_price"`
	MarkPrice       float64         `json:"mark_price"`
	LastPrice       *float64        `json:"last_price"`
	MinPrice        float64         `json:"min_price"`
	MaxPrice        float64         `json:"max_price"`
	OpenInterest    float64         `json:"open_interest"`
	SettlementPrice *float64        `json:"settlement_price,omitempty"`
	DeliveryPrice   *float64        `json:"delivery_price,omitempty"`
	Funding8h       *float64        `json:"funding_8h,omitempty"`
	CurrentFunding  *float64        `json:"current_funding,omitempty"`
	UnderlyingPrice *float64        `json:"underlying_price,omitempty"`
	UnderlyingIndex *string         `json:"underlying_index,omitempty"`
	Stats           *Stats          `json:"stats,omitempty"`
	Greeks          *Greeks         `json:"greeks,omitempty"`
}

var orderBookRequired = []string{
	"instrument_name", "timestamp", "change_id", "state", "bids", "asks", "best_bid_amount",
	"best_ask_amount", "index_price", "mark_price", "min_price", "max_price", "open_interest",
}

func (b *OrderBook) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, orderBookRequired...); err != nil {
		return err
	}
	type plain OrderBook
	return DecodePlain(data, (*plain)(b))
}
