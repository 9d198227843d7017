package models

// Direction of an order, trade or position. Positions without exposure report zero.
type Direction uint8

const (
	DirectionBuy Direction = iota
	DirectionSell
	DirectionZero
)

var directionTable = newEnumTable("direction", "buy", "sell", "zero")

func (d Direction) String() string {
	return directionTable.str(uint8(d))
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return directionTable.marshal(uint8(d))
}

func (d *Direction) UnmarshalJSON(data []byte) error {
	v, err := directionTable.unmarshal(data)
	if err != nil {
		return err
	}
	*d = Direction(v)
	return nil
}

func DirectionStrToType(value string) (Direction, error) {
	v, err := directionTable.parse(value)
	return Direction(v), err
}
