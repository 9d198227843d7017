package models

// OrderPrice is "market_price" for market orders and a number otherwise.
type OrderPrice = Either[string, float64]

const MarketPrice = "market_price"

// Order is one snapshot of an order; every update from the venue is a fresh value.
type Order struct {
	OrderID             string         `json:"order_id"`
	InstrumentName      string         `json:"instrument_name"`
	Direction           Direction      `json:"direction"`
	Amount              float64        `json:"amount"`
	FilledAmount        float64        `json:"filled_amount"`
	AveragePrice        float64        `json:"average_price"`
	Price               OrderPrice     `json:"price"`
	OrderType           OrderType      `json:"order_type"`
	OrderState          OrderState     `json:"order_state"`
	TimeInForce         TimeInForce    `json:"time_in_force"`
	MaxShow             float64        `json:"max_show"`
	PostOnly            bool           `json:"post_only"`
	ReduceOnly          bool           `json:"reduce_only"`
	IsLiquidation       bool           `json:"is_liquidation"`
	API                 bool           `json:"api"`
	Label               *string        `json:"label,omitempty"`
	CreationTimestamp   Timestamp      `json:"creation_timestamp"`
	LastUpdateTimestamp Timestamp      `json:"last_update_timestamp"`
	Commission          float64        `json:"commission"`
	ProfitLoss          float64        `json:"profit_loss"`
	StopPrice           *float64       `json:"stop_price,omitempty"`
	Trigger             *Trigger       `json:"trigger,omitempty"`
	Triggered           *bool          `json:"triggered,omitempty"`
	Replaced            *bool          `json:"replaced,omitempty"`
	Advanced            *AdvanceOption `json:"advanced,omitempty"`
	CancelReason        *string        `json:"cancel_reason,omitempty"`
}

var orderRequired = []string{
	"order_id", "instrument_name", "direction", "amount", "filled_amount", "average_price",
	"price", "order_type", "order_state", "time_in_force", "max_show", "post_only",
	"reduce_only", "is_liquidation", "api", "creation_timestamp", "last_update_timestamp",
	"commission", "profit_loss",
}

// IsMarketPrice reports whether the order carries the market price sentinel.
func (o *Order) IsMarketPrice() bool {
	s, ok := o.Price.Left()
	return ok && s == MarketPrice
}

func (o *Order) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, orderRequired...); err != nil {
		return err
	}
	type plain Order
	return DecodePlain(data, (*plain)(o))
}

// Trade is a fill of one of the user's orders.
type Trade struct {
	TradeID        string     `json:"trade_id"`
	TradeSeq       int64      `json:"trade_seq"`
	Timestamp      Timestamp  `json:"timestamp"`
	TickDirection  int64      `json:"tick_direction"`
	State          OrderState `json:"state"`
	SelfTrade      bool       `json:"self_trade"`
	Price          float64    `json:"price"`
	Amount         float64    `json:"amount"`
	Direction      Direction  `json:"direction"`
	OrderID        string     `json:"order_id"`
	OrderType      OrderType  `json:"order_type"`
	MatchingID     *string    `json:"matching_id"`
	Liquidity      Role       `json:"liquidity"`
	Label          *string    `json:"label,omitempty"`
	InstrumentName string     `json:"instrument_name"`
	IndexPrice     float64    `json:"index_price"`
	MarkPrice      *float64   `json:"mark_price,omitempty"`
	FeeCurrency    Currency   `json:"fee_currency"`
	Fee            float64    `json:"fee"`
}

var tradeRequired = []string{
	"trade_id", "trade_seq", "timestamp", "tick_direction", "state", "self_trade", "price",
	"amount", "direction", "order_id", "order_type", "liquidity", "instrument_name",
	"index_price", "fee_currency", "fee",
}

func (t *Trade) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, tradeRequired...); err != nil {
		return err
	}
	type plain Trade
	return DecodePlain(data, (*plain)(t))
}

// TradeResponse is the result of order placement and edit.
type TradeResponse struct {
	Trades []Trade `json:"trades"`
	Order  Order   `json:"order"`
}

func (r *TradeResponse) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, "trades", "order"); err != nil {
		return err
	}
	type plain TradeResponse
	return DecodePlain(data, (*plain)(r))
}
