package models

// SetHeartbeatRequest asks the venue to send test requests every interval seconds.
type SetHeartbeatRequest struct {
	Interval uint64 `json:"interval"`
}

func (SetHeartbeatRequest) Method() string {
	return "public/set_heartbeat"
}

func (SetHeartbeatRequest) NewResponse() *OkResponse {
	return new(OkResponse)
}

type DisableHeartbeatRequest struct {
	emptyParams
}

func (DisableHeartbeatRequest) Method() string {
	return "public/disable_heartbeat"
}

func (DisableHeartbeatRequest) NewResponse() *OkResponse {
	return new(OkResponse)
}

type EnableCancelOnDisconnectRequest struct {
	emptyParams
}

func (EnableCancelOnDisconnectRequest) Method() string {
	return "private/enable_cancel_on_disconnect"
}

func (EnableCancelOnDisconnectRequest) NewResponse() *OkResponse {
	return new(OkResponse)
}

type DisableCancelOnDisconnectRequest struct {
	emptyParams
}

func (DisableCancelOnDisconnectRequest) Method() string {
	return "private/disable_cancel_on_disconnect"
}

func (DisableCancelOnDisconnectRequest) NewResponse() *OkResponse {
	return new(OkResponse)
}
