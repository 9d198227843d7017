package subscription

import (
	"bytes"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"gitlab.heather.loc/helios/deribit/pkg/models"
)

// OrderBookDelta is one change to a price level. Size is nil when the wire omits it, which is
// only legal for deletes.
type OrderBookDelta struct {
	Action DeltaAction
	Price  float64
	Size   *float64
}

func Insert(price, size float64) OrderBookDelta {
	return OrderBookDelta{Action: DeltaActionInsert, Price: price, Size: &size}
}

func Change(price, size float64) OrderBookDelta {
	return OrderBookDelta{Action: DeltaActionChange, Price: price, Size: &size}
}

func Delete(price float64) OrderBookDelta {
	return OrderBookDelta{Action: DeltaActionDelete, Price: price}
}

// MarshalJSON writes the venue triple [action, price, amount].
func (d OrderBookDelta) MarshalJSON() ([]byte, error) {
	var size float64
	if d.Size != nil {
		size = *d.Size
	}
	return json.Marshal([3]interface{}{d.Action, d.Price, size})
}

// UnmarshalJSON accepts the triple and the {"action","price","size"} object.
func (d *OrderBookDelta) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		return d.unmarshalTriple(data)
	}
	if err := models.RequireFields(data, "action", "price"); err != nil {
		return err
	}
	var obj struct {
		Action DeltaAction `json:"action"`
		Price  float64     `json:"price"`
		Size   *float64    `json:"size"`
	}
	if err := models.DecodePlain(data, &obj); err != nil {
		return err
	}
	*d = OrderBookDelta{Action: obj.Action, Price: obj.Price, Size: obj.Size}
	return nil
}

func isNull(data []byte) bool {
	return string(data) == "null"
}

func (d *OrderBookDelta) unmarshalTriple(data []byte) error {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return &models.DecodeError{Reason: "delta expects 3 elements, got " + strconv.Itoa(len(raw))}
	}
	for i := range raw {
		raw[i] = bytes.TrimSpace(raw[i])
	}
	var result OrderBookDelta
	if err := result.Action.UnmarshalJSON(raw[0]); err != nil {
		return err
	}
	if isNull(raw[1]) {
		return &models.DecodeError{Field: "price", Reason: "required field is absent"}
	}
	if err := json.Unmarshal(raw[1], &result.Price); err != nil {
		return &models.DecodeError{Field: "price", Reason: "expected number, got: " + string(raw[1])}
	}
	if !isNull(raw[2]) {
		var size float64
		if err := json.Unmarshal(raw[2], &size); err != nil {
			return &models.DecodeError{Field: "size", Reason: "expected number, got: " + string(raw[2])}
		}
		result.Size = &size
	}
	*d = result
	return nil
}

// Validate applies the per action size rule.
func (d OrderBookDelta) Validate() error {
	switch d.Action {
	case DeltaActionInsert, DeltaActionChange:
		if d.Size == nil {
			return &models.DecodeError{Field: "size", Reason: d.Action.String() + " requires a size"}
		}
		if s := *d.Size; math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
			return &models.DecodeError{Field: "size", Reason: "size must be finite and non-negative: " + strconv.FormatFloat(s, 'g', -1, 64)}
		}
	case DeltaActionDelete:
		if d.Size != nil && *d.Size != 0 {
			return &models.DecodeError{Field: "size", Reason: "delete carries non-zero size: " + strconv.FormatFloat(*d.Size, 'g', -1, 64)}
		}
	}
	return nil
}

// BookData is one book.<instrument>.<interval> notification. Deltas must be applied in order.
type BookData struct {
	Type           BookType         `json:"type"`
	Timestamp      models.Timestamp `json:"timestamp"`
	InstrumentName string           `json:"instrument_name"`
	ChangeID       uint64           `json:"change_id"`
	PrevChangeID   *uint64          `json:"prev_change_id,omitempty"`
	Bids           []OrderBookDelta `json:"bids"`
	Asks           []OrderBookDelta `json:"asks"`
}

var bookRequired = []string{"type", "timestamp", "instrument_name", "change_id", "bids", "asks"}

func (b *BookData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, bookRequired...); err != nil {
		return err
	}
	type plain BookData
	return models.DecodePlain(data, (*plain)(b))
}

func (b BookData) Validate() error {
	if err := validateSide("bids", b.Bids); err != nil {
		return err
	}
	return validateSide("asks", b.Asks)
}

func validateSide(side string, deltas []OrderBookDelta) error {
	for i, d := range deltas {
		if err := d.Validate(); err != nil {
			decodeErr := models.AsDecodeError("", err)
			decodeErr.Field = side + "[" + strconv.Itoa(i) + "]." + decodeErr.Field
			return decodeErr
		}
	}
	return nil
}

// GroupedBookData is a book.<instrument>.<group>.<depth>.<interval> notification: full levels
// aggregated by price bucket.
type GroupedBookData struct {
	Timestamp      models.Timestamp    `json:"timestamp"`
	InstrumentName string              `json:"instrument_name"`
	ChangeID       uint64              `json:"change_id"`
	Bids           []models.PriceLevel `json:"bids"`
	Asks           []models.PriceLevel `json:"asks"`
}

func (b *GroupedBookData) UnmarshalJSON(data []byte) error {
	if err := models.RequireFields(data, "timestamp", "instrument_name", "change_id", "bids", "asks"); err != nil {
		return err
	}
	type plain GroupedBookData
	return models.DecodePlain(data, (*plain)(b))
}
