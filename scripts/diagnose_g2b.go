// Command diagnose_g2b probes every configured 나라장터 OpenAPI endpoint
// with a one-row request and prints a per-endpoint diagnostic table.
// Useful when a service key stops working or the API generation changes.
//
// Usage:
//
//	G2B_SERVICE_KEY=... go run scripts/diagnose_g2b.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// EndpointDiagnostic is the probe result for a single operation.
type EndpointDiagnostic struct {
	Operation    string `json:"operation"`
	Status       string `json:"status"` // "OK", "HTTP_ERROR", "PARSE_ERROR", "API_ERROR", "TIMEOUT"
	HTTPCode     int    `json:"http_code"`
	ResultCode   string `json:"result_code"`
	ResultMsg    string `json:"result_msg,omitempty"`
	TotalCount   int    `json:"total_count"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResponseTime int64  `json:"response_time_ms"`
}

// probeEnvelope is the minimal response shape shared by all list operations.
type probeEnvelope struct {
	Response struct {
		Header struct {
			ResultCode string `json:"resultCode"`
			ResultMsg  string `json:"resultMsg"`
		} `json:"header"`
		Body struct {
			TotalCount int `json:"totalCount"`
		} `json:"body"`
	} `json:"response"`
}

func main() {
	serviceKey := os.Getenv("G2B_SERVICE_KEY")
	if serviceKey == "" {
		log.Fatal("G2B_SERVICE_KEY must be set; the client falls back to mock data without it, so there is nothing to diagnose")
	}

	baseURL := os.Getenv("G2B_API_BASE_URL")
	if baseURL == "" {
		baseURL = "https://apis.data.go.kr/1230000/BidPublicInfoService"
	}

	operations := map[string]string{
		"bid_list":        "getBidPblancListInfoServcPPSSrch",
		"bid_detail":      "getBidPblancListInfoServc",
		"pre_notice_list": "getPublicPrcureThngInfoThngPPSSrch",
		"contract_list":   "getCntrctInfoListServcPPSSrch",
		"contract_detail": "getCntrctInfoListServc",
	}

	client := &http.Client{Timeout: 15 * time.Second}

	fmt.Printf("Probing %s (%d operations)\n\n", baseURL, len(operations))

	var results []EndpointDiagnostic
	okCount := 0
	for name, path := range operations {
		diag := probe(client, baseURL, path, serviceKey)
		diag.Operation = name
		if diag.Status == "OK" {
			okCount++
		}
		results = append(results, diag)

		fmt.Printf("%-16s %-12s http=%-3d resultCode=%-3s total=%-8d %dms %s\n",
			diag.Operation, diag.Status, diag.HTTPCode, diag.ResultCode,
			diag.TotalCount, diag.ResponseTime, diag.ErrorMessage)
	}

	fmt.Printf("\n%d/%d operations healthy\n", okCount, len(operations))

	if os.Getenv("DIAGNOSE_JSON") == "true" {
		out, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(out))
	}

	if okCount < len(operations) {
		os.Exit(1)
	}
}

func probe(client *http.Client, baseURL, path, serviceKey string) EndpointDiagnostic {
	q := url.Values{}
	// 공공데이터포털 keys arrive pre-encoded; decode before re-encoding
	if decoded, err := url.QueryUnescape(serviceKey); err == nil {
		q.Set("serviceKey", decoded)
	} else {
		q.Set("serviceKey", serviceKey)
	}
	q.Set("type", "json")
	q.Set("pageNo", "1")
	q.Set("numOfRows", "1")

	reqURL := fmt.Sprintf("%s/%s?%s", strings.TrimRight(baseURL, "/"), path, q.Encode())

	start := time.Now()
	resp, err := client.Get(reqURL)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		status := "HTTP_ERROR"
		if strings.Contains(err.Error(), "deadline exceeded") || strings.Contains(err.Error(), "Timeout") {
			status = "TIMEOUT"
		}
		return EndpointDiagnostic{Status: status, ErrorMessage: err.Error(), ResponseTime: elapsed}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Printf("failed to close response body: %v", err)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return EndpointDiagnostic{Status: "HTTP_ERROR", HTTPCode: resp.StatusCode, ErrorMessage: err.Error(), ResponseTime: elapsed}
	}

	if resp.StatusCode != http.StatusOK {
		return EndpointDiagnostic{Status: "HTTP_ERROR", HTTPCode: resp.StatusCode, ResponseTime: elapsed}
	}

	var env probeEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return EndpointDiagnostic{
			Status:       "PARSE_ERROR",
			HTTPCode:     resp.StatusCode,
			ErrorMessage: fmt.Sprintf("not JSON (XML error page?): %v", err),
			ResponseTime: elapsed,
		}
	}

	diag := EndpointDiagnostic{
		HTTPCode:     resp.StatusCode,
		ResultCode:   env.Response.Header.ResultCode,
		ResultMsg:    env.Response.Header.ResultMsg,
		TotalCount:   env.Response.Body.TotalCount,
		ResponseTime: elapsed,
	}
	if env.Response.Header.ResultCode != "00" {
		diag.Status = "API_ERROR"
		diag.ErrorMessage = env.Response.Header.ResultMsg
		return diag
	}
	diag.Status = "OK"
	return diag
}
