package models

import "reflect"

// Either holds a value whose wire type varies between two shapes, e.g. a price that is either
// the "market_price" sentinel or a number.
//
// Decoding tries L, then R. A value matching neither shape, or matching both (null, for
// example, decodes into almost anything), is rejected.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func NewLeft[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func NewRight[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Equal lets go-cmp based assertions compare values with unexported state.
func (e Either[L, R]) Equal(o Either[L, R]) bool {
	if e.isRight != o.isRight {
		return false
	}
	if e.isRight {
		return reflect.DeepEqual(e.right, o.right)
	}
	return reflect.DeepEqual(e.left, o.left)
}

func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	if e.isRight {
		return json.Marshal(e.right)
	}
	return json.Marshal(e.left)
}

func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	var left L
	var right R
	leftErr := json.Unmarshal(data, &left)
	rightErr := json.Unmarshal(data, &right)

	switch {
	case leftErr == nil && rightErr == nil:
		return &DecodeError{Reason: "ambiguous value matches both shapes: " + truncate(data)}
	case leftErr == nil:
		*e = Either[L, R]{left: left}
	case rightErr == nil:
		*e = Either[L, R]{right: right, isRight: true}
	default:
		return &DecodeError{Reason: "value matches neither shape: " + truncate(data)}
	}
	return nil
}
