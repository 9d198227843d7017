package models

type OrderType uint8

const (
	OrderTypeLimit OrderType = iota
	OrderTypeMarket
	OrderTypeStopLimit
	OrderTypeStopMarket
	OrderTypeTakeLimit
	OrderTypeTakeMarket
	OrderTypeTrailingStop
	OrderTypeLiquidation
)

var orderTypeTable = newEnumTable("order type", "limit", "market", "stop_limit", "stop_market", "take_limit", "take_market", "trailing_stop", "liquidation")

func (ot OrderType) String() string {
	return orderTypeTable.str(uint8(ot))
}

func (ot OrderType) MarshalJSON() ([]byte, error) {
	return orderTypeTable.marshal(uint8(ot))
}

func (ot *OrderType) UnmarshalJSON(data []byte) error {
	v, err := orderTypeTable.unmarshal(data)
	if err != nil {
		return err
	}
	*ot = OrderType(v)
	return nil
}

func OrderTypeStrToType(value string) (OrderType, error) {
	v, err := orderTypeTable.parse(value)
	return OrderType(v), err
}
