package subscription

import "gitlab.heather.loc/helios/deribit/pkg/models"

// TickerData is a ticker.<instrument>.<interval> notification. Stats and Greeks are nil when the
// venue leaves them out; when present they are decoded in full.
type TickerData struct {
	InstrumentName         string                 `json:"instrument_name"`
	Timestamp              models.Timestamp       `json:"timestamp"`
	State                  models.InstrumentState `json:"state"`
	BestBidPrice           *float64               `json:"best_bid_price"`
	BestBidAmount          float64                `json:"best_bid_amount"`
	BestAskPrice           *float64               `json:"best_ask_price"`
	BestAskAmount          float64                `json:"best_ask_amount"`
	LastPrice              *float64               `json:"last_price"`
	IndexPrice             float64                `json:"index_price"`
	MarkPrice              float64                `json:"mark_price"`
	MinPrice               float64                `json:"min_price"`
	MaxPrice               float64                `json:"max_price"`
	OpenInterest           float64                `json:"open_interest"`
	EstimatedDeliveryPrice *float64               `json:"estimated_delivery_price,omitempty"`
	SettlementPrice        *float64               `json:"settlement_price,omitempty"`
	DeliveryPrice          *float64               `json:"delivery_price,omitempty"`
	Funding8h              *float64               `json:"funding_8h,omitempty"`
	CurrentFunding         *float64               `json:"current_funding,omitempty"`
	InterestValue          *float64               `json:"interest_value,omitempty"`
	MarkIv                 *float64               `json:"mark_iv,omitempty"`
	BidIv                  *float64               `json:"bid_iv,omitempty"`
	AskIv                  *float64               `json:"ask_iv,omitempty"`
	UnderlyingPrice        *float64               `json:"underlying_price,omitempty"`
	UnderlyingIndex        *string                `json:"underlying_index,omitempty"`
	Stats                  *models.Stats          `json:"stats,omitempty"`
	Greeks                 *models.Greeks         `json:"greeks,omitempty"`
}

var tickerRequired = []string{
	"instrument_name", "timestamp", "state", "best_bid_amount", "best_ask_amount",
	"index_price", "mark_price", "min_price", "max_price", "open_interest",
}

func (t *TickerData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, tickerRequired...); err != nil {
		return err
	}
	type plain TickerData
	return models.DecodePlain(data, (*plain)(t))
}
