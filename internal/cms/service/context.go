package service

import (
	"context"

	"github.com/risechangeslives/risecms/pkg/httpx"
)

// callerID reports the authenticated user id carried on the request
// context, or 0 for unauthenticated callers.
func callerID(ctx context.Context) int {
	return httpx.UserIDFromContext(ctx)
}
