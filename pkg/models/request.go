package models

// Request binds an outbound operation to its method name and its one response type.
// Method returns the same constant for every value of a request type.
type Request[R any] interface {
	Method() string
	NewResponse() *R
}

// EmptyRequest is implemented by requests whose whole meaning is the method name.
type EmptyRequest interface {
	Empty() bool
}

// ParamsForm is the encoding of "no parameters" for an empty request.
type ParamsForm uint8

const (
	ParamsOmitted    ParamsForm = iota // params member left out of the envelope
	ParamsNull                         // "params": null
	ParamsEmptyArray                   // "params": []
)

var paramsFormTable = newEnumTable("params form", "omitted", "null", "empty_array")

func (pf ParamsForm) String() string {
	return paramsFormTable.str(uint8(pf))
}

// EmptyParamsFormer lets an empty request pick a form other than ParamsOmitted.
type EmptyParamsFormer interface {
	EmptyParams() ParamsForm
}

// IsEmptyBody reports whether req carries nothing but its method name.
func IsEmptyBody(req interface{}) bool {
	if e, ok := req.(EmptyRequest); ok {
		return e.Empty()
	}
	return false
}

// EncodeParams encodes the params member of req. A nil result means the member is omitted.
func EncodeParams(req interface{}) ([]byte, error) {
	if !IsEmptyBody(req) {
		return json.Marshal(req)
	}
	form := ParamsOmitted
	if f, ok := req.(EmptyParamsFormer); ok {
		form = f.EmptyParams()
	}
	switch form {
	case ParamsNull:
		return []byte("null"), nil
	case ParamsEmptyArray:
		return []byte("[]"), nil
	}
	return nil, nil
}

// DecodeResponse decodes a result payload into the response type bound to req.
func DecodeResponse[R any](req Request[R], data []byte) (*R, error) {
	if isNull(data) {
		return nil, &DecodeError{Family: req.Method(), Reason: "null result"}
	}
	resp := req.NewResponse()
	if err := Unmarshal(data, resp); err != nil {
		return nil, AsDecodeError(req.Method(), err)
	}
	return resp, nil
}

// emptyParams is embedded by empty requests.
type emptyParams struct{}

func (emptyParams) Empty() bool {
	return true
}
