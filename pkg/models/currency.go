package models

// Currency keeps the venue's upper case spelling on the wire ("BTC", "ETH"),
// unlike the other enums which use lower_snake_case.
type Currency uint8

const (
	CurrencyBTC Currency = iota
	CurrencyETH
	CurrencyUSDC
	CurrencyUSDT
)

var currencyTable = newEnumTable("currency", "BTC", "ETH", "USDC", "USDT")

func (c Currency) String() string {
	return currencyTable.str(uint8(c))
}

func (c Currency) MarshalJSON() ([]byte, error) {
	return currencyTable.marshal(uint8(c))
}

func (c *Currency) UnmarshalJSON(data []byte) error {
	v, err := currencyTable.unmarshal(data)
	if err != nil {
		return err
	}
	*c = Currency(v)
	return nil
}

func CurrencyStrToType(value string) (Currency, error) {
	v, err := currencyTable.parse(value)
	return Currency(v), err
}
