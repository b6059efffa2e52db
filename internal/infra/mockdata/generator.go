// Package mockdata produces plausible placeholder bid, pre-notice, and
// contract datasets with zero external dependency. It is used as the default
// data source when no live G2B service key is configured, as a fallback after
// a live call fails, and as fixtures for demo endpoints.
//
// Determinism is not required (each call may yield different random values),
// but the structural shape (required fields present, correct types) is stable
// across calls.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"bizeyes/internal/domain/entity"
)

// TotalCount is the fixed totalCount reported by mock envelopes.
// This is a deliberate stand-in for the live API's real count.
const TotalCount = 100

var institutions = []string{
	"조달청",
	"서울특별시청",
	"한국도로공사",
	"국방부",
	"한국전력공사",
	"부산광역시청",
	"국민건강보험공단",
	"한국토지주택공사",
}

var bidMethods = []string{
	"일반경쟁",
	"제한경쟁",
	"지명경쟁",
	"수의계약",
}

var workNames = []string{
	"청사 시설물 유지보수 공사",
	"정보시스템 통합 유지관리 용역",
	"도로 포장 보수공사",
	"사무용 전산장비 구매",
	"상수도관 개량공사",
	"홈페이지 고도화 용역",
	"노후 전기설비 교체공사",
	"보안관제 위탁운영 용역",
}

const dateFormat = "200601021504" // yyyyMMddHHmm, upstream convention

// Bids returns exactly n mock bid notices.
func Bids(n int) []entity.BidNotice {
	out := make([]entity.BidNotice, n)
	now := time.Now()
	for i := range out {
		noticeDate := now.AddDate(0, 0, -rand.IntN(30))
		openDate := noticeDate.AddDate(0, 0, 7+rand.IntN(14))
		out[i] = entity.BidNotice{
			BidNtceNo:     fmt.Sprintf("%s-%05d", noticeDate.Format("20060102"), i+1),
			BidNtceNm:     pick(workNames),
			DminsttNm:     pick(institutions),
			BidMethdNm:    pick(bidMethods),
			PresmptPrce:   fmt.Sprintf("%d", won(10_000_000, 5_000_000_000)),
			BidNtceDt:     noticeDate.Format(dateFormat),
			OpengDt:       openDate.Format(dateFormat),
			BidNtceDtlURL: fmt.Sprintf("https://www.g2b.go.kr/link/notice/%05d", i+1),
		}
	}
	return out
}

// PreNotices returns exactly n mock pre-notices.
func PreNotices(n int) []entity.PreNotice {
	out := make([]entity.PreNotice, n)
	now := time.Now()
	for i := range out {
		regDate := now.AddDate(0, 0, -rand.IntN(14))
		closeDate := regDate.AddDate(0, 0, 5+rand.IntN(10))
		out[i] = entity.PreNotice{
			BfSpecRgstNo:    fmt.Sprintf("R%s%05d", regDate.Format("20060102"), i+1),
			PrdctNm:         pick(workNames),
			RlDminsttNm:     pick(institutions),
			AsignBdgtAmt:    fmt.Sprintf("%d", won(5_000_000, 1_000_000_000)),
			RgstDt:          regDate.Format(dateFormat),
			OpninRgstClseDt: closeDate.Format(dateFormat),
		}
	}
	return out
}

// Contracts returns exactly n mock contract records.
func Contracts(n int) []entity.Contract {
	out := make([]entity.Contract, n)
	now := time.Now()
	for i := range out {
		contractDate := now.AddDate(0, 0, -rand.IntN(90))
		out[i] = entity.Contract{
			CntrctNo:      fmt.Sprintf("C%s-%04d", contractDate.Format("20060102"), i+1),
			CntrctNm:      pick(workNames),
			CntrctInsttNm: pick(institutions),
			CntrctMthdNm:  pick(bidMethods),
			CntrctAmt:     fmt.Sprintf("%d", won(10_000_000, 3_000_000_000)),
			CntrctCnclsDt: contractDate.Format(dateFormat),
			CntrctDtlURL:  fmt.Sprintf("https://www.g2b.go.kr/link/contract/%04d", i+1),
		}
	}
	return out
}

func pick(table []string) string {
	return table[rand.IntN(len(table))]
}

// won returns a random amount in the [min, max) range, rounded down to the
// nearest 100,000 won so the figures look like real budget lines.
func won(min, max int64) int64 {
	v := min + rand.Int64N(max-min)
	return v - v%100_000
}
