package testutil

import (
	"context"

	"github.com/Kal1-linux/CouponCo/internal/types"
)

const (
	TestUserID    = "user_test_01"
	TestRequestID = "req_test_01"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxRequestID, TestRequestID)
	ctx = types.SetUserID(ctx, TestUserID)
	return ctx
}
