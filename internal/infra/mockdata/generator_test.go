package mockdata_test

import (
	"strconv"
	"testing"

	"bizeyes/internal/infra/mockdata"
)

func TestBids_Count(t *testing.T) {
	for _, n := range []int{0, 1, 10, 100} {
		got := mockdata.Bids(n)
		if len(got) != n {
			t.Errorf("Bids(%d) len = %d", n, len(got))
		}
	}
}

func TestBids_Shape(t *testing.T) {
	// Values are random but required fields must always be present
	// with parseable amounts.
	for _, b := range mockdata.Bids(50) {
		if b.BidNtceNo == "" || b.BidNtceNm == "" || b.DminsttNm == "" || b.BidMethdNm == "" {
			t.Fatalf("missing required field: %+v", b)
		}
		price, err := strconv.ParseInt(b.PresmptPrce, 10, 64)
		if err != nil {
			t.Fatalf("presmptPrce %q not an integer: %v", b.PresmptPrce, err)
		}
		if price < 10_000_000 || price >= 5_000_000_000 {
			t.Errorf("presmptPrce %d outside realistic bounds", price)
		}
		if b.BidNtceDt == "" || b.OpengDt == "" {
			t.Fatalf("missing dates: %+v", b)
		}
		if b.OpengDt <= b.BidNtceDt {
			// yyyyMMddHHmm strings compare chronologically
			t.Errorf("opening date %s not after notice date %s", b.OpengDt, b.BidNtceDt)
		}
	}
}

func TestPreNotices_Shape(t *testing.T) {
	for _, p := range mockdata.PreNotices(30) {
		if p.BfSpecRgstNo == "" || p.PrdctNm == "" || p.RlDminsttNm == "" {
			t.Fatalf("missing required field: %+v", p)
		}
		if _, err := strconv.ParseInt(p.AsignBdgtAmt, 10, 64); err != nil {
			t.Fatalf("asignBdgtAmt %q not an integer: %v", p.AsignBdgtAmt, err)
		}
	}
}

func TestContracts_Shape(t *testing.T) {
	for _, c := range mockdata.Contracts(30) {
		if c.CntrctNo == "" || c.CntrctNm == "" || c.CntrctInsttNm == "" {
			t.Fatalf("missing required field: %+v", c)
		}
		if _, err := strconv.ParseInt(c.CntrctAmt, 10, 64); err != nil {
			t.Fatalf("cntrctAmt %q not an integer: %v", c.CntrctAmt, err)
		}
	}
}
