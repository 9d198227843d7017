package subscription

import "gitlab.heather.loc/helios/deribit/pkg/models"

// DeribitPriceIndexData is a deribit_price_index.<index_name> notification.
type DeribitPriceIndexData struct {
	IndexName string           `json:"index_name"`
	Price     float64          `json:"price"`
	Timestamp models.Timestamp `json:"timestamp"`
}

func (d *DeribitPriceIndexData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "index_name", "price", "timestamp"); err != nil {
		return err
	}
	type plain DeribitPriceIndexData
	return models.DecodePlain(data, (*plain)(d))
}

// PriceRankingEntry is the contribution of one exchange to an index.
type PriceRankingEntry struct {
	Identifier    string           `json:"identifier"`
	Enabled       bool             `json:"enabled"`
	Weight        float64          `json:"weight"`
	Price         *float64         `json:"price"`
	OriginalPrice *float64         `json:"original_price"`
	Timestamp     models.Timestamp `json:"timestamp"`
}

func (e *PriceRankingEntry) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "identifier", "enabled", "weight", "timestamp"); err != nil {
		return err
	}
	type plain PriceRankingEntry
	return models.DecodePlain(data, (*plain)(e))
}

type DeribitPriceRankingData []PriceRankingEntry

type EstimatedExpirationPriceData struct {
	Seconds     uint64  `json:"seconds"`
	Price       float64 `json:"price"`
	IsEstimated bool    `json:"is_estimated"`
}

func (d *EstimatedExpirationPriceData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "seconds", "price", "is_estimated"); err != nil {
		return err
	}
	type plain EstimatedExpirationPriceData
	return models.DecodePlain(data, (*plain)(d))
}

type MarkPriceOption struct {
	InstrumentName string           `json:"instrument_name"`
	MarkPrice      float64          `json:"mark_price"`
	Iv             float64          `json:"iv"`
	Timestamp      models.Timestamp `json:"timestamp"`
}

func (m *MarkPriceOption) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "instrument_name", "mark_price", "iv", "timestamp"); err != nil {
		return err
	}
	type plain MarkPriceOption
	return models.DecodePlain(data, (*plain)(m))
}

// MarkPriceOptionData is a markprice.options.<index_name> notification.
type MarkPriceOptionData []MarkPriceOption

// PerpetualData is the perpetual.<instrument>.<interval> funding update.
type PerpetualData struct {
	Interest   float64          `json:"interest"`
	IndexPrice float64          `json:"index_price"`
	Timestamp  models.Timestamp `json:"timestamp"`
}

func (d *PerpetualData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "interest", "index_price", "timestamp"); err != nil {
		return err
	}
	type plain PerpetualData
	return models.DecodePlain(data, (*plain)(d))
}
