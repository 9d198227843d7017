package subscription

import (
	"bytes"
	"strconv"

	"gitlab.heather.loc/helios/deribit/pkg/models"
)

type DeltaAction uint8

const (
	DeltaActionInsert DeltaAction = iota
	DeltaActionChange
	DeltaActionDelete

	deltaActionInsertStr = "new"
	deltaActionChangeStr = "change"
	deltaActionDeleteStr = "delete"
)

var (
	deltaActionInsertByte      = []byte(`"new"`)
	deltaActionInsertAliasByte = []byte(`"insert"`)
	deltaActionChangeByte      = []byte(`"change"`)
	deltaActionDeleteByte      = []byte(`"delete"`)
)

func (da DeltaAction) String() string {
	switch da {
	case DeltaActionInsert:
		return deltaActionInsertStr
	case DeltaActionChange:
		return deltaActionChangeStr
	case DeltaActionDelete:
		return deltaActionDeleteStr
	}
	panic("invalid delta action string conversion" + strconv.Itoa(int(da)))
}

func (da DeltaAction) MarshalJSON() ([]byte, error) {
	switch da {
	case DeltaActionInsert:
		return deltaActionInsertByte, nil
	case DeltaActionChange:
		return deltaActionChangeByte, nil
	case DeltaActionDelete:
		return deltaActionDeleteByte, nil
	}
	return nil, &models.DecodeError{Reason: "invalid delta action json conversion: " + strconv.Itoa(int(da))}
}

func (da *DeltaAction) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, deltaActionInsertByte) || bytes.Equal(data, deltaActionInsertAliasByte) {
		*da = DeltaActionInsert
		return nil
	}

	if bytes.Equal(data, deltaActionChangeByte) {
		*da = DeltaActionChange
		return nil
	}

	if bytes.Equal(data, deltaActionDeleteByte) {
		*da = DeltaActionDelete
		return nil
	}

	return &models.DecodeError{Field: "action", Reason: "unsupported delta action: " + string(data)}
}

func DeltaActionStrToType(value string) (DeltaAction, error) {
	switch value {
	case deltaActionInsertStr, "insert":
		return DeltaActionInsert, nil
	case deltaActionChangeStr:
		return DeltaActionChange, nil
	case deltaActionDeleteStr:
		return DeltaActionDelete, nil
	}
	return 0, &models.DecodeError{Field: "action", Reason: "unsupported delta action: " + value}
}

// BookType tells a full snapshot from an incremental change.
type BookType uint8

const (
	BookTypeSnapshot BookType = iota
	BookTypeChange

	bookTypeSnapshotStr = "snapshot"
	bookTypeChangeStr   = "change"
)

var (
	bookTypeSnapshotByte = []byte(`"snapshot"`)
	bookTypeChangeByte   = []byte(`"change"`)
)

func (bt BookType) String() string {
	switch bt {
	case BookTypeSnapshot:
		return bookTypeSnapshotStr
	case BookTypeChange:
		return bookTypeChangeStr
	}
	panic("invalid book type string conversion" + strconv.Itoa(int(bt)))
}

func (bt BookType) MarshalJSON() ([]byte, error) {
	switch bt {
	case BookTypeSnapshot:
		return bookTypeSnapshotByte, nil
	case BookTypeChange:
		return bookTypeChangeByte, nil
	}
	return nil, &models.DecodeError{Reason: "invalid book type json conversion: " + strconv.Itoa(int(bt))}
}

func (bt *BookType) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, bookTypeSnapshotByte) {
		*bt = BookTypeSnapshot
		return nil
	}

	if bytes.Equal(data, bookTypeChangeByte) {
		*bt = BookTypeChange
		return nil
	}

	return &models.DecodeError{Field: "type", Reason: "unsupported book type: " + string(data)}
}
