package server

import (
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/knitworks/pattern-analyzer/internal/common"
)

func TestToStatusError(t *testing.T) {
	tests := []struct {
		err     error
		code    codes.Code
		message string
	}{
		{common.ErrFileTooLarge, codes.InvalidArgument, "file_too_large"},
		{common.ErrUnsupportedFileType, codes.InvalidArgument, "unsupported_file_type"},
		{common.ErrInsufficientCredits, codes.ResourceExhausted, "insufficient_credits"},
		{common.ErrAdRewardLimitReached, codes.ResourceExhausted, "ad_reward_limit_reached"},
		{common.ErrNotAuthenticated, codes.Unauthenticated, "not_authenticated"},
		{common.ErrStorageUnavailable, codes.Unavailable, "storage_unavailable"},
		{common.ErrNetwork, codes.Unavailable, "network_error"},
		{common.ErrParsingFailed, codes.Internal, "parsing_failed"},
		{common.ErrAnalysisFailedCreditUsed, codes.Internal, "analysis_failed_credit_used"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			st, ok := status.FromError(toStatusError(tt.err))
			if !ok {
				t.Fatal("not a status error")
			}
			if st.Code() != tt.code {
				t.Errorf("code = %s, want %s", st.Code(), tt.code)
			}
			if st.Message() != tt.message {
				t.Errorf("message = %q, want %q", st.Message(), tt.message)
			}
		})
	}

	// Wrapped errors map through their cause.
	wrapped := common.NewAppError("UPLOAD_TOO_LARGE", "21MB", common.ErrFileTooLarge)
	st, _ := status.FromError(toStatusError(wrapped))
	if st.Code() != codes.InvalidArgument {
		t.Errorf("wrapped code = %s, want InvalidArgument", st.Code())
	}
}

func TestParseSinceDate(t *testing.T) {
	if got, err := parseSinceDate(""); err != nil || !got.IsZero() {
		t.Errorf("empty = %v, %v; want zero time", got, err)
	}

	got, err := parseSinceDate("2026-08-01")
	if err != nil {
		t.Fatalf("parseSinceDate: %v", err)
	}
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := parseSinceDate("08/01/2026"); err == nil {
		t.Error("accepted a non-ISO date")
	}
}
