package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"

	"github.com/shopfront/checkoutlambda/services/checkout"
)

// startLocalServerBlocking serves the function behind a plain web server
// for local development, converting every request into the event shape
// the handler sees in production.
func startLocalServerBlocking(webService *checkout.WebService) {
	router := mux.NewRouter()
	router.PathPrefix("/").HandlerFunc(bridgeHandler(webService))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}

func bridgeHandler(webService *checkout.WebService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event, err := eventFromHTTPRequest(r)
		if err != nil {
			log.Printf("Error reading request: %s", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		response, err := webService.Handle(r.Context(), event)
		if err != nil {
			log.Printf("Handler error: %s", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		for key, value := range response.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(response.StatusCode)
		_, _ = w.Write([]byte(response.Body))
	}
}

func eventFromHTTPRequest(r *http.Request) (events.APIGatewayProxyRequest, error) {
	headers := make(map[string]string)
	for key, values := range r.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	body := ""
	if r.Body != nil {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return events.APIGatewayProxyRequest{}, err
		}
		body = string(data)
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod: r.Method,
		Path:       r.URL.Path,
		Headers:    headers,
		Body:       body,
	}, nil
}
