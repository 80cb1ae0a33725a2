package mycontext

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"

	"github.com/shopfront/checkoutlambda/lib/myuuid"
)

func TestContextFromLambda(t *testing.T) {

	t.Run("Uses the runtime request id when present", func(t *testing.T) {
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
			AwsRequestID: "req-123",
		})

		c := ContextFromLambda(ctx, myuuid.RealUUIDer{})

		assert.Equal(t, "req-123", InvocationID(c))
	})

	t.Run("Generates an id outside the runtime", func(t *testing.T) {
		c := ContextFromLambda(context.Background(), myuuid.RealUUIDer{})

		assert.NotEmpty(t, InvocationID(c))
	})

	t.Run("Empty on plain contexts", func(t *testing.T) {
		assert.Equal(t, "", InvocationID(context.Background()))
	})
}
