package models

type AssetKind uint8

const (
	AssetKindFuture AssetKind = iota
	AssetKindOption
	AssetKindSpot
	AssetKindFutureCombo
	AssetKindOptionCombo
	AssetKindAny
)

var assetKindTable = newEnumTable("asset kind", "future", "option", "spot", "future_combo", "option_combo", "any")

func (ak AssetKind) String() string {
	return assetKindTable.str(uint8(ak))
}

func (ak AssetKind) MarshalJSON() ([]byte, error) {
	return assetKindTable.marshal(uint8(ak))
}

func (ak *AssetKind) UnmarshalJSON(data []byte) error {
	v, err := assetKindTable.unmarshal(data)
	if err != nil {
		return err
	}
	*ak = AssetKind(v)
	return nil
}

func AssetKindStrToType(value string) (AssetKind, error) {
	v, err := assetKindTable.parse(value)
	return AssetKind(v), err
}
