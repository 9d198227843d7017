package rpc

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ErrorCode is the numeric code of a venue error reply.
type ErrorCode int

const (
	ErrorAuthorizationRequired  ErrorCode = 10000
	ErrorGeneric                ErrorCode = 10001
	ErrorQtyTooLow              ErrorCode = 10002
	ErrorOrderOverlap           ErrorCode = 10003
	ErrorOrderNotFound          ErrorCode = 10004
	ErrorPriceTooLow            ErrorCode = 10005
	ErrorPriceTooHigh           ErrorCode = 10007
	ErrorNotEnoughFunds         ErrorCode = 10009
	ErrorAlreadyClosed          ErrorCode = 10010
	ErrorPriceNotAllowed        ErrorCode = 10011
	ErrorBookClosed             ErrorCode = 10012
	ErrorTooManyRequests        ErrorCode = 10028
	ErrorRetry                  ErrorCode = 10040
	ErrorInvalidArguments       ErrorCode = 11029
	ErrorNotOpenOrder           ErrorCode = 11044
	ErrorBadRequest             ErrorCode = 11050
	ErrorInvalidCredentials     ErrorCode = 13004
	ErrorUnauthorized           ErrorCode = 13009
	ErrorNotFound               ErrorCode = 13020
	ErrorForbidden              ErrorCode = 13021
	ErrorTemporarilyUnavailable ErrorCode = 13028
	ErrorMissingParams          ErrorCode = -32000
	ErrorInvalidParams          ErrorCode = -32602
	ErrorMethodNotFound         ErrorCode = -32601
	ErrorParse                  ErrorCode = -32700
)

var errorMapping = map[ErrorCode]string{
	ErrorAuthorizationRequired:  "authorization_required",
	ErrorGeneric:                "error",
	ErrorQtyTooLow:              "qty_too_low",
	ErrorOrderOverlap:           "order_overlap",
	ErrorOrderNotFound:          "order_not_found",
	ErrorPriceTooLow:            "price_too_low",
	ErrorPriceTooHigh:           "price_too_high",
	ErrorNotEnoughFunds:         "not_enough_funds",
	ErrorAlreadyClosed:          "already_closed",
	ErrorPriceNotAllowed:        "price_not_allowed",
	ErrorBookClosed:             "book_closed",
	ErrorTooManyRequests:        "too_many_requests",
	ErrorRetry:                  "retry",
	ErrorInvalidArguments:       "invalid_arguments",
	ErrorNotOpenOrder:           "not_open_order",
	ErrorBadRequest:             "bad_request",
	ErrorInvalidCredentials:     "invalid_credentials",
	ErrorUnauthorized:           "unauthorized",
	ErrorNotFound:               "not_found",
	ErrorForbidden:              "forbidden",
	ErrorTemporarilyUnavailable: "temporarily_unavailable",
	ErrorMissingParams:          "missing_params",
	ErrorInvalidParams:          "invalid_params",
	ErrorMethodNotFound:         "method_not_found",
	ErrorParse:                  "parse_error",
}

// String gives the venue's name of the code, or "unknown".
func (c ErrorCode) String() string {
	if name, ok := errorMapping[c]; ok {
		return name
	}
	return "unknown"
}

// Error is the error member of a response envelope.
type Error struct {
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return "rpc error " + strconv.Itoa(int(e.Code)) + " " + e.Code.String() + ": " + e.Message
}

// IsErrorCode reports whether err carries a venue error with code.
func IsErrorCode(err error, code ErrorCode) bool {
	var rpcErr *Error
	return errors.As(err, &rpcErr) && rpcErr.Code == code
}
