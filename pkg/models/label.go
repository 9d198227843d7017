package models

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
)

// LabelMaxLength is the longest order label the venue stores.
const LabelMaxLength = 64

// LabelGenerate returns a random 32 character label to tag an order with.
func LabelGenerate() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic("fail get random for generate order label: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// LabelSequence returns a label built from a local sequence number.
func LabelSequence(prefix string, seq uint64) string {
	return prefix + strconv.FormatUint(seq, 10)
}

// LabelStrToType checks label and returns a pointer ready for TradeRequest.Label.
func LabelStrToType(label string) (*string, error) {
	if label == "" {
		return nil, &DecodeError{Field: "label", Reason: "empty label"}
	}
	if len(label) > LabelMaxLength {
		return nil, &DecodeError{Field: "label", Reason: "too long label: " + label}
	}
	return &label, nil
}
