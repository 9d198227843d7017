package models

import (
	"reflect"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type unmarshaler interface {
	UnmarshalJSON(data []byte) error
}

var unmarshalerType = reflect.TypeOf((*unmarshaler)(nil)).Elem()

// Unmarshal decodes data into v. A v with its own decoder is called directly so that a
// *DecodeError it returns reaches the caller intact.
func Unmarshal(data []byte, v interface{}) error {
	if u, ok := v.(unmarshaler); ok {
		return u.UnmarshalJSON(data)
	}
	return DecodePlain(data, v)
}

// DecodePlain decodes data into v with the shared codec. On failure the member that broke the
// decode is looked up again so the error carries its path (order.direction, trades[0].price).
func DecodePlain(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if located := locate(data, reflect.TypeOf(v).Elem()); located != nil {
		return located
	}
	return &DecodeError{Reason: err.Error()}
}

// locate decodes data as t member by member and returns the first failure, nil if none.
func locate(data []byte, t reflect.Type) *DecodeError {
	if t.Kind() == reflect.Ptr {
		if isNull(data) {
			return nil
		}
		t = t.Elem()
	}
	if reflect.PtrTo(t).Implements(unmarshalerType) {
		err := reflect.New(t).Interface().(unmarshaler).UnmarshalJSON(data)
		if err == nil {
			return nil
		}
		return AsDecodeError("", err)
	}

	switch t.Kind() {
	case reflect.Slice:
		if isNull(data) {
			return nil
		}
		var items []jsoniter.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return &DecodeError{Reason: "expected list, got: " + truncate(data)}
		}
		for i, item := range items {
			if err := locate(item, t.Elem()); err != nil {
				return err.under("[" + strconv.Itoa(i) + "]")
			}
		}
		return nil
	case reflect.Struct:
		var members map[string]jsoniter.RawMessage
		if err := json.Unmarshal(data, &members); err != nil {
			return &DecodeError{Reason: "expected object, got: " + truncate(data)}
		}
		return locateMembers(members, t)
	}

	if err := json.Unmarshal(data, reflect.New(t).Interface()); err != nil {
		return &DecodeError{Reason: "expected " + t.Kind().String() + ", got: " + truncate(data)}
	}
	return nil
}

func locateMembers(members map[string]jsoniter.RawMessage, t reflect.Type) *DecodeError {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" && field.Anonymous && field.Type.Kind() == reflect.Struct {
			if err := locateMembers(members, field.Type); err != nil {
				return err
			}
			continue
		}
		if name == "" {
			name = field.Name
		}
		raw, ok := members[name]
		if !ok {
			continue
		}
		if err := locate(raw, field.Type); err != nil {
			return err.under(name)
		}
	}
	return nil
}

// RequireFields fails when data is not an object or one of fields is absent or null.
// Custom decoders run it before the plain decode so the error names the field.
func RequireFields(data []byte, fields ...string) error {
	obj := jsoniter.Get(data)
	if obj.ValueType() != jsoniter.ObjectValue {
		return &DecodeError{Reason: "expected object, got: " + truncate(data)}
	}
	for _, field := range fields {
		switch obj.Get(field).ValueType() {
		case jsoniter.InvalidValue, jsoniter.NilValue:
			return missingField(field)
		}
	}
	return nil
}

func truncate(data []byte) string {
	if len(data) > 64 {
		return string(data[:64]) + "..."
	}
	return string(data)
}

func isNull(data []byte) bool {
	return len(data) == 4 && string(data) == "null"
}

// enumTable keeps the wire spelling of one closed enum, indexed by its uint8 value.
type enumTable struct {
	name   string
	names  []string
	quoted [][]byte
}

func newEnumTable(name string, names ...string) enumTable {
	quoted := make([][]byte, len(names))
	for i, n := range names {
		quoted[i] = []byte(strconv.Quote(n))
	}
	return enumTable{name: name, names: names, quoted: quoted}
}

func (t enumTable) str(v uint8) string {
	if int(v) < len(t.names) {
		return t.names[v]
	}
	panic("invalid " + t.name + " string conversion" + strconv.Itoa(int(v)))
}

func (t enumTable) marshal(v uint8) ([]byte, error) {
	if int(v) < len(t.quoted) {
		return t.quoted[v], nil
	}
	return nil, &DecodeError{Reason: "invalid " + t.name + " json conversion: " + strconv.Itoa(int(v))}
}

func (t enumTable) unmarshal(data []byte) (uint8, error) {
	for i, q := range t.quoted {
		if string(data) == string(q) {
			return uint8(i), nil
		}
	}
	return 0, unsupported(t.name, data)
}

func (t enumTable) parse(value string) (uint8, error) {
	for i, n := range t.names {
		if n == value {
			return uint8(i), nil
		}
	}
	return 0, unsupported(t.name, []byte(value))
}
