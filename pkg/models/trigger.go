package models

type Trigger uint8

const (
	TriggerIndexPrice Trigger = iota
	TriggerMarkPrice
	TriggerLastPrice
)

var triggerTable = newEnumTable("trigger", "index_price", "mark_price", "last_price")

func (t Trigger) String() string {
	return triggerTable.str(uint8(t))
}

func (t Trigger) MarshalJSON() ([]byte, error) {
	return triggerTable.marshal(uint8(t))
}

func (t *Trigger) UnmarshalJSON(data []byte) error {
	v, err := triggerTable.unmarshal(data)
	if err != nil {
		return err
	}
	*t = Trigger(v)
	return nil
}

func TriggerStrToType(value string) (Trigger, error) {
	v, err := triggerTable.parse(value)
	return Trigger(v), err
}
