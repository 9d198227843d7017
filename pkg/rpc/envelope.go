package rpc

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gitlab.heather.loc/helios/deribit/pkg/models"
)

// Version is the JSON-RPC protocol version spoken by the venue.
const Version = "2.0"

// SubscriptionMethod is the method of every channel notification.
const SubscriptionMethod = "subscription"

const heartbeatMethod = "heartbeat"

// Method is implemented by every request in pkg/models.
type Method interface {
	Method() string
}

type RequestEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// NewRequestEnvelope wraps req for sending. Empty requests leave params out unless they ask for
// another form.
func NewRequestEnvelope(id uint64, req Method) (RequestEnvelope, error) {
	params, err := models.EncodeParams(req)
	if err != nil {
		return RequestEnvelope{}, errors.WithMessage(err, "fail encode params of "+req.Method())
	}
	return RequestEnvelope{JSONRPC: Version, ID: id, Method: req.Method(), Params: params}, nil
}

type ResponseEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	UsIn    uint64          `json:"usIn,omitempty"`
	UsOut   uint64          `json:"usOut,omitempty"`
	UsDiff  uint64          `json:"usDiff,omitempty"`
	Testnet bool            `json:"testnet"`
}

type NotificationParams struct {
	Channel string          `json:"channel"`
	Data    json.RawMessage `json:"data"`
}

// Notification is a server push: a channel update or a heartbeat.
type Notification struct {
	JSONRPC string             `json:"jsonrpc"`
	Method  string             `json:"method"`
	Params  NotificationParams `json:"params"`
}

// message is any inbound frame before it is told apart.
type message struct {
	ID     *uint64         `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

func (m *message) isResponse() bool {
	return m.ID != nil && m.Method == ""
}

func (m *message) response() *ResponseEnvelope {
	return &ResponseEnvelope{JSONRPC: Version, ID: *m.ID, Result: m.Result, Error: m.Error}
}
