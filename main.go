package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/shopfront/checkoutlambda/lib/mytime"
	"github.com/shopfront/checkoutlambda/lib/myuuid"
	"github.com/shopfront/checkoutlambda/services/checkout"
)

func main() {
	_ = godotenv.Load()

	// A missing api key is not fatal here: the provider call will fail
	// and surface as an error response.
	cfg := checkout.Config{
		APIKey:     os.Getenv("STRIPE_SECRET_KEY"),
		SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
	}

	webService := checkout.NewWebService(cfg, checkout.NewPayer(), mytime.RealNower{}, myuuid.RealUUIDer{})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		startLocalServerBlocking(webService)
		return
	}

	lambda.Start(webService.Handle)
}
