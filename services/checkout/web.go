package checkout

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/shopfront/checkoutlambda/lib/mycontext"
	"github.com/shopfront/checkoutlambda/lib/myhttp"
	"github.com/shopfront/checkoutlambda/lib/mylog"
	"github.com/shopfront/checkoutlambda/lib/mytime"
	"github.com/shopfront/checkoutlambda/lib/myuuid"
)

type WebService struct {
	logger    mylog.Logger
	responder myhttp.Responder
	uuider    myuuid.UUIDer
	service   *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, payer Payer, nower mytime.Nower, uuider myuuid.UUIDer) *WebService {
	logger := mylog.New("checkout")

	return &WebService{
		logger:    logger,
		responder: myhttp.NewResponder(logger),
		uuider:    uuider,
		service:   newService(cfg, payer, nower, logger),
	}
}

// Handle processes a single function invocation. Failures are encoded in
// the response; the returned error is always nil so the runtime never
// rewraps them.
func (s *WebService) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	c := mycontext.ContextFromLambda(ctx, s.uuider)

	if request.HTTPMethod != http.MethodPost {
		return myhttp.Text(http.StatusMethodNotAllowed, "Method Not Allowed"), nil
	}

	items, err := parsePurchaseItems(request.Body)
	if err != nil {
		// The shape error is a user error with a fixed message and is
		// deliberately not logged. Everything else shares the catch-all.
		if errors.Is(err, ErrItemsNotArray) {
			return myhttp.JSON(http.StatusBadRequest, myhttp.ErrorResponse{Error: err.Error()}), nil
		}
		return s.responder.WriteError(c, 1, err), nil
	}

	redirectURL, err := s.service.startCheckout(c, items)
	if err != nil {
		return s.responder.WriteError(c, 2, err), nil
	}

	return s.responder.Write(c, http.StatusOK, sessionResponse{URL: redirectURL}), nil
}
