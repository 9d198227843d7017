package models

type CancelOrderType uint8

const (
	CancelOrderTypeAll CancelOrderType = iota
	CancelOrderTypeLimit
	CancelOrderTypeStop
)

var cancelOrderTypeTable = newEnumTable("cancel order type", "all", "limit", "stop")

func (cot CancelOrderType) String() string {
	return cancelOrderTypeTable.str(uint8(cot))
}

func (cot CancelOrderType) MarshalJSON() ([]byte, error) {
	return cancelOrderTypeTable.marshal(uint8(cot))
}

func (cot *CancelOrderType) UnmarshalJSON(data []byte) error {
	v, err := cancelOrderTypeTable.unmarshal(data)
	if err != nil {
		return err
	}
	*cot = CancelOrderType(v)
	return nil
}

func CancelOrderTypeStrToType(value string) (CancelOrderType, error) {
	v, err := cancelOrderTypeTable.parse(value)
	return CancelOrderType(v), err
}
