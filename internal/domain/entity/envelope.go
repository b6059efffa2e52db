package entity

// ResultCodeOK is the result code the upstream API returns on success.
// Any other value is an application-level failure even on HTTP 200.
const ResultCodeOK = "00"

// Header is the result header of the G2B OpenAPI response envelope.
type Header struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

// OK reports whether the header signals upstream success.
func (h Header) OK() bool {
	return h.ResultCode == ResultCodeOK
}

// Body is the paginated payload of the G2B OpenAPI response envelope.
type Body[T any] struct {
	Items      []T `json:"items"`
	NumOfRows  int `json:"numOfRows"`
	PageNo     int `json:"pageNo"`
	TotalCount int `json:"totalCount"`
}

// Envelope is the G2B OpenAPI response wrapper:
//
//	{"response": {"header": {...}, "body": {...}}}
type Envelope[T any] struct {
	Response struct {
		Header Header  `json:"header"`
		Body   Body[T] `json:"body"`
	} `json:"response"`
}

// NewEnvelope builds a success envelope around the given items.
// Used by the mock data path, which mirrors the live API shape.
func NewEnvelope[T any](items []T, pageNo, numOfRows, totalCount int) Envelope[T] {
	var env Envelope[T]
	env.Response.Header = Header{ResultCode: ResultCodeOK, ResultMsg: "정상"}
	env.Response.Body = Body[T]{
		Items:      items,
		NumOfRows:  numOfRows,
		PageNo:     pageNo,
		TotalCount: totalCount,
	}
	return env
}
