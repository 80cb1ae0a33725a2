package myhttp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/shopfront/checkoutlambda/lib/myerrors"
	"github.com/shopfront/checkoutlambda/lib/mylog"
)

// Text builds a plain-text response. Used for responses that must not be
// JSON, such as the method-not-allowed reply.
func Text(httpStatus int, body string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: httpStatus,
		Headers:    map[string]string{"Content-Type": "text/plain"},
		Body:       body,
	}
}

// JSON builds a response with a JSON-encoded body.
func JSON(httpStatus int, resp any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Error marshalling response body: %s", err)
		return Text(http.StatusInternalServerError, "Internal Server Error")
	}

	return events.APIGatewayProxyResponse{
		StatusCode: httpStatus,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func NewResponder(logger mylog.Logger) Responder {
	return &responder{
		logger: logger,
	}
}

type responder struct {
	logger mylog.Logger
}

func (r responder) Write(c context.Context, httpStatus int, resp any) events.APIGatewayProxyResponse {
	r.logger.Log(c, mylog.SeverityInfo, "Success response: http-status:%d", httpStatus)
	return JSON(httpStatus, resp)
}

// WriteError logs the error exactly once and maps it onto a response with
// an {"error": ...} body.
func (r responder) WriteError(c context.Context, errorCode int, err error) events.APIGatewayProxyResponse {
	httpStatus := myerrors.GetHTTPStatus(err)

	severity := mylog.SeverityWarn
	if httpStatus >= http.StatusInternalServerError {
		severity = mylog.SeverityError
	}
	r.logger.Log(c, severity, "Error response: http-status:%d, error-code:%d, error-msg:%s", httpStatus, errorCode, err)

	return JSON(httpStatus, ErrorResponse{
		Error: err.Error(),
	})
}
