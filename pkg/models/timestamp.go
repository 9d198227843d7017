package models

import (
	"time"

	"lukechampine.com/uint128"
)

// Timestamp is an unsigned 128-bit epoch value in milliseconds. The wire carries it as a bare
// integer literal, which does not fit float64 or int64 in every producer.
type Timestamp uint128.Uint128

func TimestampFromUint64(ms uint64) Timestamp {
	return Timestamp(uint128.From64(ms))
}

func TimestampFromTime(t time.Time) Timestamp {
	return TimestampFromUint64(uint64(t.UnixMilli()))
}

func (t Timestamp) Uint128() uint128.Uint128 {
	return uint128.Uint128(t)
}

// Time converts milliseconds to time.Time; values that do not fit int64 give the zero time.
func (t Timestamp) Time() time.Time {
	if t.Hi != 0 || t.Lo > 1<<63-1 {
		return time.Time{}
	}
	return time.UnixMilli(int64(t.Lo))
}

func (t Timestamp) String() string {
	return uint128.Uint128(t).String()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || len(data) > 39 {
		return unsupported("timestamp", data)
	}
	for _, c := range data {
		if c < '0' || c > '9' {
			return unsupported("timestamp", data)
		}
	}
	v, err := uint128.FromString(string(data))
	if err != nil {
		return unsupported("timestamp", data)
	}
	*t = Timestamp(v)
	return nil
}
