package models

type OrderState uint8

const (
	OrderStateOpen OrderState = iota
	OrderStateFilled
	OrderStateRejected
	OrderStateCancelled
	OrderStateUntriggered
	OrderStateTriggered
	OrderStateArchive
)

var orderStateTable = newEnumTable("order state", "open", "filled", "rejected", "cancelled", "untriggered", "triggered", "archive")

func (os OrderState) String() string {
	return orderStateTable.str(uint8(os))
}

func (os OrderState) MarshalJSON() ([]byte, error) {
	return orderStateTable.marshal(uint8(os))
}

func (os *OrderState) UnmarshalJSON(data []byte) error {
	v, err := orderStateTable.unmarshal(data)
	if err != nil {
		return err
	}
	*os = OrderState(v)
	return nil
}

func OrderStateStrToType(value string) (OrderState, error) {
	v, err := orderStateTable.parse(value)
	return OrderState(v), err
}
