package myhttp

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
)

type Responder interface {
	Write(c context.Context, httpStatus int, resp any) events.APIGatewayProxyResponse
	WriteError(c context.Context, errorCode int, err error) events.APIGatewayProxyResponse
}

type ErrorResponse struct {
	Error string `json:"error"`
}
