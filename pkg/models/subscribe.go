package models

// SubscribeResponse lists the channels the venue accepted.
type SubscribeResponse []string

type PublicSubscribeRequest struct {
	Channels []string `json:"channels"`
}

func (PublicSubscribeRequest) Method() string {
	return "public/subscribe"
}

func (PublicSubscribeRequest) NewResponse() *SubscribeResponse {
	return new(SubscribeResponse)
}

// PrivateSubscribeRequest is required for user.* channels.
type PrivateSubscribeRequest struct {
	Channels []string `json:"channels"`
}

func (PrivateSubscribeRequest) Method() string {
	return "private/subscribe"
}

func (PrivateSubscribeRequest) NewResponse() *SubscribeResponse {
	return new(SubscribeResponse)
}

type PublicUnsubscribeRequest struct {
	Channels []string `json:"channels"`
}

func (PublicUnsubscribeRequest) Method() string {
	return "public/unsubscribe"
}

func (PublicUnsubscribeRequest) NewResponse() *SubscribeResponse {
	return new(SubscribeResponse)
}

type PrivateUnsubscribeRequest struct {
	Channels []string `json:"channels"`
}

func (PrivateUnsubscribeRequest) Method() string {
	return "private/unsubscribe"
}

func (PrivateUnsubscribeRequest) NewResponse() *SubscribeResponse {
	return new(SubscribeResponse)
}

type UnsubscribeAllRequest struct {
	emptyParams
}

func (UnsubscribeAllRequest) Method() string {
	return "public/unsubscribe_all"
}

func (UnsubscribeAllRequest) NewResponse() *OkResponse {
	return new(OkResponse)
}
