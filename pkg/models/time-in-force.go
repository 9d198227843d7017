package models

type TimeInForce uint8

const (
	TimeInForceGoodTilCancelled  TimeInForce = iota // rests until filled or cancelled by user request
	TimeInForceGoodTilDay                           // expires at the end of the trading session (08:00 UTC)
	TimeInForceFillOrKill                           // fully filled or cancelled
	TimeInForceImmediateOrCancel                    // may fill partially, the rest is cancelled
)

var timeInForceTable = newEnumTable("time in force", "good_til_cancelled", "good_til_day", "fill_or_kill", "immediate_or_cancel")

func (tif TimeInForce) String() string {
	return timeInForceTable.str(uint8(tif))
}

func (tif TimeInForce) MarshalJSON() ([]byte, error) {
	return timeInForceTable.marshal(uint8(tif))
}

func (tif *TimeInForce) UnmarshalJSON(data []byte) error {
	v, err := timeInForceTable.unmarshal(data)
	if err != nil {
		return err
	}
	*tif = TimeInForce(v)
	return nil
}

func TimeInForceStrToType(value string) (TimeInForce, error) {
	v, err := timeInForceTable.parse(value)
	return TimeInForce(v), err
}
