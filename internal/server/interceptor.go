package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/knitworks/pattern-analyzer/internal/common"
)

// UnaryRequestID stamps every incoming call with a fresh request id and
// logs its outcome. Handlers and the pipeline below them read the id back
// from the context for their own log lines.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqID := uuid.NewString()
		ctx = common.WithRequestID(ctx, reqID)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start).Milliseconds()
		if err != nil {
			logger.Warn("rpc.request.failed",
				"method", info.FullMethod, "req_id", reqID, "elapsed_ms", elapsed, "error", err)
		} else {
			logger.Info("rpc.request.ok",
				"method", info.FullMethod, "req_id", reqID, "elapsed_ms", elapsed)
		}
		return resp, err
	}
}
