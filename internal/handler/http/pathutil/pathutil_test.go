package pathutil_test

import (
	"errors"
	"testing"

	"bizeyes/internal/handler/http/pathutil"
)

func TestExtractNoticeNo(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"valid", "/notices/20240115-00042", "20240115-00042", false},
		{"empty segment", "/notices/", "", true},
		{"nested path", "/notices/123/extra", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pathutil.ExtractNoticeNo(tt.path, "/notices/")
			if tt.wantErr {
				if !errors.Is(err, pathutil.ErrInvalidNoticeNo) {
					t.Fatalf("err = %v, want ErrInvalidNoticeNo", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %q err=%v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/notices/20240115-00042", "/notices/:bidNtceNo"},
		{"/notices/20240115-00042?x=1", "/notices/:bidNtceNo"},
		{"/notices/search", "/notices/search"},
		{"/notices", "/notices"},
		{"/webhook/bid-notice", "/webhook/bid-notice"},
		{"/healthz", "/healthz"},
		{"/", "/"},
	}
	for _, tt := range tests {
		if got := pathutil.NormalizePath(tt.in); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
