// Package entity defines the core domain entities for the bid-monitoring
// service: bid notices, pre-notices, and contract records as returned by the
// G2B (나라장터) procurement OpenAPI, along with the API envelope and
// domain-specific errors.
package entity

// BidNotice represents a single government tender notice.
// Field names and JSON tags follow the G2B OpenAPI response schema.
// A BidNotice is immutable once returned by the client or mock generator.
type BidNotice struct {
	BidNtceNo     string `json:"bidNtceNo"`               // notice number, unique per notice
	BidNtceNm     string `json:"bidNtceNm"`               // notice name
	DminsttNm     string `json:"dminsttNm"`               // demanding institution name
	BidMethdNm    string `json:"bidMethdNm"`              // bidding method name
	PresmptPrce   string `json:"presmptPrce"`             // estimated price, string-encoded won
	BidNtceDt     string `json:"bidNtceDt"`               // notice date
	OpengDt       string `json:"opengDt"`                 // opening date
	SucsfbidNm    string `json:"sucsfbidNm,omitempty"`    // winner name
	SucsfbidAmt   string `json:"sucsfbidAmt,omitempty"`   // winning price
	BidNtceDtlURL string `json:"bidNtceDtlUrl,omitempty"` // source URL
}

// PreNotice represents an advance announcement preceding a full bid notice.
type PreNotice struct {
	BfSpecRgstNo    string `json:"bfSpecRgstNo"`              // pre-notice registration number
	PrdctNm         string `json:"prdctNm"`                   // product/work name
	RlDminsttNm     string `json:"rlDminsttNm"`               // real demanding institution
	AsignBdgtAmt    string `json:"asignBdgtAmt"`              // assigned budget, string-encoded won
	RgstDt          string `json:"rgstDt"`                    // registration date
	OpninRgstClseDt string `json:"opninRgstClseDt,omitempty"` // opinion close date
	SpecDocURL      string `json:"specDocUrl,omitempty"`      // specification document URL
}
