package models

type InstrumentState uint8

const (
	InstrumentStateOpen InstrumentState = iota
	InstrumentStateClosed
)

var instrumentStateTable = newEnumTable("instrument state", "open", "closed")

func (is InstrumentState) String() string {
	return instrumentStateTable.str(uint8(is))
}

func (is InstrumentState) MarshalJSON() ([]byte, error) {
	return instrumentStateTable.marshal(uint8(is))
}

func (is *InstrumentState) UnmarshalJSON(data []byte) error {
	v, err := instrumentStateTable.unmarshal(data)
	if err != nil {
		return err
	}
	*is = InstrumentState(v)
	return nil
}

func InstrumentStateStrToType(value string) (InstrumentState, error) {
	v, err := instrumentStateTable.parse(value)
	return InstrumentState(v), err
}
