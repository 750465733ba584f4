package app

import (
	"context"

	"euroasia/internal/common"
)

func analyticsPayload(ctx context.Context, payload map[string]string) map[string]string {
	if payload == nil {
		payload = map[string]string{}
	}
	if requestID, ok := common.RequestIDFromContext(ctx); ok {
		payload["request_id"] = requestID
	}
	return payload
}
