package entity

// Contract represents an awarded contract record.
// Same lifecycle as BidNotice: created by the external API or the mock
// generator at request time, never mutated afterwards.
type Contract struct {
	CntrctNo      string `json:"cntrctNo"`               // contract number, unique
	CntrctNm      string `json:"cntrctNm"`               // contract name
	CntrctInsttNm string `json:"cntrctInsttNm"`          // contracting institution name
	CntrctMthdNm  string `json:"cntrctMthdNm"`           // contract method name
	CntrctAmt     string `json:"cntrctAmt"`              // contract price, string-encoded won
	CntrctCnclsDt string `json:"cntrctCnclsDt"`          // contract conclusion date
	CntrctDtlURL  string `json:"cntrctDtlUrl,omitempty"` // source URL
}
