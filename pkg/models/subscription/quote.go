package subscription

import "gitlab.heather.loc/helios/deribit/pkg/models"

// QuoteData is the best bid and ask of quote.<instrument>. Prices are null on an empty side.
type QuoteData struct {
	InstrumentName string           `json:"instrument_name"`
	Timestamp      models.Timestamp `json:"timestamp"`
	BestBidPrice   *float64         `json:"best_bid_price"`
	BestBidAmount  float64          `json:"best_bid_amount"`
	BestAskPrice   *float64         `json:"best_ask_price"`
	BestAskAmount  float64          `json:"best_ask_amount"`
}

func (q *QuoteData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "instrument_name", "timestamp", "best_bid_amount", "best_ask_amount"); err != nil {
		return err
	}
	type plain QuoteData
	return models.DecodePlain(data, (*plain)(q))
}
