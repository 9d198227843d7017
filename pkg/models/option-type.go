package models

type OptionType uint8

const (
	OptionTypeCall OptionType = iota
	OptionTypePut
)

var optionTypeTable = newEnumTable("option type", "call", "put")

func (ot OptionType) String() string {
	return optionTypeTable.str(uint8(ot))
}

func (ot OptionType) MarshalJSON() ([]byte, error) {
	return optionTypeTable.marshal(uint8(ot))
}

func (ot *OptionType) UnmarshalJSON(data []byte) error {
	v, err := optionTypeTable.unmarshal(data)
	if err != nil {
		return err
	}
	*ot = OptionType(v)
	return nil
}

func OptionTypeStrToType(value string) (OptionType, error) {
	v, err := optionTypeTable.parse(value)
	return OptionType(v), err
}
