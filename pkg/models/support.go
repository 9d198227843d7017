package models

// GetTimeRequest returns the venue clock in milliseconds.
type GetTimeRequest struct {
	emptyParams
}

func (GetTimeRequest) Method() string {
	return "public/get_time"
}

func (GetTimeRequest) NewResponse() *Timestamp {
	return new(Timestamp)
}

type TestRequest struct {
	emptyParams
}

func (TestRequest) Method() string {
	return "public/test"
}

func (TestRequest) NewResponse() *TestResponse {
	return new(TestResponse)
}

type TestResponse struct {
	Version string `json:"version"`
}

func (r *TestResponse) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, "version"); err != nil {
		return err
	}
	type plain TestResponse
	return DecodePlain(data, (*plain)(r))
}

// HelloRequest introduces the client to the venue.
type HelloRequest struct {
	ClientName    string `json:"client_name"`
	ClientVersion string `json:"client_version"`
}

func (HelloRequest) Method() string {
	return "public/hello"
}

func (HelloRequest) NewResponse() *HelloResponse {
	return new(HelloResponse)
}

type HelloResponse TestResponse

func (r *HelloResponse) UnmarshalJSON(data []byte) error {
	return (*TestResponse)(r).UnmarshalJSON(data)
}
