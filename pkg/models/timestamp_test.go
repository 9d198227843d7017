package models_test

import (
	"encoding/json"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"gitlab.heather.loc/helios/deribit/pkg/models"
	"gotest.tools/assert"
	"lukechampine.com/uint128"
)

type testTimestampData struct {
	Timestamp models.Timestamp `json:"timestamp"`
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var obj testTimestampData

	err := json.Unmarshal([]byte(`{"timestamp":1700000000000}`), &obj)
	assert.NilError(t, err)
	assert.Equal(t, obj.Timestamp, models.TimestampFromUint64(1700000000000))
	assert.Assert(t, obj.Timestamp.Time().Equal(time.UnixMilli(1700000000000)))

	err = jsoniter.Unmarshal([]byte(`{"timestamp":340282366920938463463374607431768211455}`), &obj)
	assert.NilError(t, err)
	assert.Equal(t, obj.Timestamp.Uint128(), uint128.Max)
	assert.Assert(t, obj.Timestamp.Time().IsZero())

	for _, bad := range []string{`null`, `1.5`, `-1`, `"123"`, `1e3`, `340282366920938463463374607431768211456`, `1234567890123456789012345678901234567890`} {
		err = json.Unmarshal([]byte(`{"timestamp":`+bad+`}`), &obj)
		assert.ErrorContains(t, err, "unsupported timestamp", bad)
	}
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	val, err := json.Marshal(testTimestampData{models.Timestamp(uint128.New(1, 1))})
	assert.NilError(t, err)
	assert.Equal(t, string(val), `{"timestamp":18446744073709551617}`)

	ts := models.TimestampFromTime(time.UnixMilli(1547549876902))
	val, err = jsoniter.Marshal(ts)
	assert.NilError(t, err)
	assert.Equal(t, string(val), `1547549876902`)
	assert.Equal(t, ts.String(), "1547549876902")
}
