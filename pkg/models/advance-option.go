package models

type AdvanceOption uint8

const (
	AdvanceOptionUSD AdvanceOption = iota
	AdvanceOptionImplv
)

var advanceOptionTable = newEnumTable("advance option", "usd", "implv")

func (ao AdvanceOption) String() string {
	return advanceOptionTable.str(uint8(ao))
}

func (ao AdvanceOption) MarshalJSON() ([]byte, error) {
	return advanceOptionTable.marshal(uint8(ao))
}

func (ao *AdvanceOption) UnmarshalJSON(data []byte) error {
	v, err := advanceOptionTable.unmarshal(data)
	if err != nil {
		return err
	}
	*ao = AdvanceOption(v)
	return nil
}

func AdvanceOptionStrToType(value string) (AdvanceOption, error) {
	v, err := advanceOptionTable.parse(value)
	return AdvanceOption(v), err
}
