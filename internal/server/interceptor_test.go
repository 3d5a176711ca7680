package server

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	"github.com/knitworks/pattern-analyzer/internal/common"
)

func TestUnaryRequestID_StampsContext(t *testing.T) {
	interceptor := UnaryRequestID(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/patterns.v1.AnalysisService/Analyze"}

	seen := make([]string, 0, 2)
	handler := func(ctx context.Context, _ any) (any, error) {
		id := common.RequestIDFromContext(ctx)
		if id == "" {
			t.Fatal("handler saw no request id")
		}
		seen = append(seen, id)
		return "ok", nil
	}

	for i := 0; i < 2; i++ {
		resp, err := interceptor(context.Background(), nil, info, handler)
		if err != nil {
			t.Fatalf("interceptor: %v", err)
		}
		if resp != "ok" {
			t.Fatalf("resp = %v, want handler response", resp)
		}
	}
	if seen[0] == seen[1] {
		t.Errorf("request id reused across calls: %s", seen[0])
	}
}

func TestUnaryRequestID_PassesErrorThrough(t *testing.T) {
	interceptor := UnaryRequestID(nil)
	info := &grpc.UnaryServerInfo{FullMethod: "/patterns.v1.AnalysisService/Analyze"}
	want := errors.New("handler failed")

	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, want
	})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want handler error", err)
	}
}
