package mycontext

import (
	"context"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/shopfront/checkoutlambda/lib/myuuid"
)

// CtxInvocationID is the context key under which the correlation id of the
// current invocation is stored (used by mylog)
type CtxInvocationID struct{}

// ContextFromLambda returns a context carrying a correlation id: the AWS
// request id when the runtime provides one, a fresh uuid otherwise.
func ContextFromLambda(ctx context.Context, uuider myuuid.UUIDer) context.Context {
	invocationID := ""
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		invocationID = lc.AwsRequestID
	} else {
		invocationID = uuider.Create()
	}

	return context.WithValue(ctx, CtxInvocationID{}, invocationID)
}

func InvocationID(ctx context.Context) string {
	id, ok := ctx.Value(CtxInvocationID{}).(string)
	if !ok {
		return ""
	}
	return id
}
