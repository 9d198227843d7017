package models

// TradeRequest is the order placement payload shared by buy and sell.
// Build it with TradeMarket or TradeLimit; the remaining fields are free to tune afterwards.
type TradeRequest struct {
	InstrumentName string         `json:"instrument_name"`
	Amount         float64        `json:"amount"`
	Type           OrderType      `json:"type"`
	Label          *string        `json:"label,omitempty"`
	Price          *float64       `json:"price,omitempty"`
	TimeInForce    TimeInForce    `json:"time_in_force"`
	MaxShow        *float64       `json:"max_show,omitempty"`
	PostOnly       bool           `json:"post_only"`
	ReduceOnly     bool           `json:"reduce_only"`
	StopPrice      *float64       `json:"stop_price,omitempty"`
	Trigger        *Trigger       `json:"trigger,omitempty"`
	Advanced       *AdvanceOption `json:"advanced,omitempty"`
}

// TradeMarket is a market order: no price, good til cancelled.
func TradeMarket(instrumentName string, amount float64) TradeRequest {
	return TradeRequest{
		InstrumentName: instrumentName,
		Amount:         amount,
		Type:           OrderTypeMarket,
		TimeInForce:    TimeInForceGoodTilCancelled,
	}
}

// TradeLimit is a limit order at price, good til cancelled.
func TradeLimit(instrumentName string, amount float64, price float64) TradeRequest {
	return TradeRequest{
		InstrumentName: instrumentName,
		Amount:         amount,
		Type:           OrderTypeLimit,
		Price:          &price,
		TimeInForce:    TimeInForceGoodTilCancelled,
	}
}

type BuyRequest TradeRequest

type BuyResponse TradeResponse

func BuyMarket(instrumentName string, amount float64) BuyRequest {
	return BuyRequest(TradeMarket(instrumentName, amount))
}

func BuyLimit(instrumentName string, amount float64, price float64) BuyRequest {
	return BuyRequest(TradeLimit(instrumentName, amount, price))
}

func (BuyRequest) Method() string {
	return "private/buy"
}

func (BuyRequest) NewResponse() *BuyResponse {
	return new(BuyResponse)
}

func (r *BuyResponse) UnmarshalJSON(data []byte) error {
	return (*TradeResponse)(r).UnmarshalJSON(data)
}

type SellRequest TradeRequest

type SellResponse TradeResponse

func SellMarket(instrumentName string, amount float64) SellRequest {
	return SellRequest(TradeMarket(instrumentName, amount))
}

func SellLimit(instrumentName string, amount float64, price float64) SellRequest {
	return SellRequest(TradeLimit(instrumentName, amount, price))
}

func (SellRequest) Method() string {
	return "private/sell"
}

func (SellRequest) NewResponse() *SellResponse {
	return new(SellResponse)
}

func (r *SellResponse) UnmarshalJSON(data []byte) error {
	return (*TradeResponse)(r).UnmarshalJSON(data)
}

// EditRequest changes price or amount of a resting order.
type EditRequest struct {
	OrderID    string         `json:"order_id"`
	Amount     float64        `json:"amount"`
	Price      float64        `json:"price"`
	PostOnly   bool           `json:"post_only,omitempty"`
	ReduceOnly bool           `json:"reduce_only,omitempty"`
	StopPrice  *float64       `json:"stop_price,omitempty"`
	Advanced   *AdvanceOption `json:"advanced,omitempty"`
}

func (EditRequest) Method() string {
	return "private/edit"
}

func (EditRequest) NewResponse() *TradeResponse {
	return new(TradeResponse)
}

type CancelRequest struct {
	OrderID string `json:"order_id"`
}

func (CancelRequest) Method() string {
	return "private/cancel"
}

func (CancelRequest) NewResponse() *Order {
	return new(Order)
}

// CancelAllRequest cancels every open order of the session's account.
type CancelAllRequest struct {
	emptyParams
}

func (CancelAllRequest) Method() string {
	return "private/cancel_all"
}

func (CancelAllRequest) NewResponse() *CancelResponse {
	return new(CancelResponse)
}

type CancelAllByInstrumentRequest struct {
	InstrumentName string          `json:"instrument_name"`
	Type           CancelOrderType `json:"type"`
}

func (CancelAllByInstrumentRequest) Method() string {
	return "private/cancel_all_by_instrument"
}

func (CancelAllByInstrumentRequest) NewResponse() *CancelResponse {
	return new(CancelResponse)
}

type CancelAllByCurrencyRequest struct {
	Currency Currency        `json:"currency"`
	Kind     AssetKind       `json:"kind"`
	Type     CancelOrderType `json:"type"`
}

func (CancelAllByCurrencyRequest) Method() string {
	return "private/cancel_all_by_currency"
}

func (CancelAllByCurrencyRequest) NewResponse() *CancelResponse {
	return new(CancelResponse)
}

type GetOpenOrdersByInstrumentRequest struct {
	InstrumentName string `json:"instrument_name"`
}

func (GetOpenOrdersByInstrumentRequest) Method() string {
	return "private/get_open_orders_by_instrument"
}

func (GetOpenOrdersByInstrumentRequest) NewResponse() *[]Order {
	return new([]Order)
}
