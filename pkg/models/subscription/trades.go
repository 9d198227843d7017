package subscription

import "gitlab.heather.loc/helios/deribit/pkg/models"

// PublicTrade is one print of trades.<instrument>.<interval>.
type PublicTrade struct {
	TradeID        string           `json:"trade_id"`
	TradeSeq       uint64           `json:"trade_seq"`
	InstrumentName string           `json:"instrument_name"`
	Timestamp      models.Timestamp `json:"timestamp"`
	TickDirection  int64            `json:"tick_direction"`
	Direction      models.Direction `json:"direction"`
	Price          float64          `json:"price"`
	Amount         float64          `json:"amount"`
	IndexPrice     float64          `json:"index_price"`
	MarkPrice      *float64         `json:"mark_price,omitempty"`
	Iv             *float64         `json:"iv,omitempty"`
	Liquidation    *string          `json:"liquidation,omitempty"`
	BlockTradeID   *string          `json:"block_trade_id,omitempty"`
}

var publicTradeRequired = []string{
	"trade_id", "trade_seq", "instrument_name", "timestamp", "tick_direction", "direction",
	"price", "amount", "index_price",
}

func (t *PublicTrade) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, publicTradeRequired...); err != nil {
		return err
	}
	type plain PublicTrade
	return models.DecodePlain(data, (*plain)(t))
}

type TradesData []PublicTrade
