package models

// OkResponse is the bare "ok" result returned by session, subscription and cancel methods.
type OkResponse uint8

const (
	Ok OkResponse = iota
)

var okResponseTable = newEnumTable("ok response", "ok")

func (or OkResponse) String() string {
	return okResponseTable.str(uint8(or))
}

func (or OkResponse) MarshalJSON() ([]byte, error) {
	return okResponseTable.marshal(uint8(or))
}

func (or *OkResponse) UnmarshalJSON(data []byte) error {
	v, err := okResponseTable.unmarshal(data)
	if err != nil {
		return err
	}
	*or = OkResponse(v)
	return nil
}

func OkResponseStrToType(value string) (OkResponse, error) {
	v, err := okResponseTable.parse(value)
	return OkResponse(v), err
}

// CancelResponse is the result of the cancel-all family.
type CancelResponse = OkResponse
