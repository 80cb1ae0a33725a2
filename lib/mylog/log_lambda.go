package mylog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/shopfront/checkoutlambda/lib/mycontext"
)

func init() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		New = newLambdaLogger
		// Disable log prefixes such as the default timestamp.
		// Prefix text prevents the entry from being parsed as JSON.
		// CloudWatch adds its own timestamp when ingesting the line.
		log.SetFlags(0)
	}
}

type structuredLogger struct {
	componentName string
}

func newLambdaLogger(componentName string) Logger {
	return structuredLogger{
		componentName: componentName,
	}
}

func (l structuredLogger) Log(ctx context.Context, severity Severity, format string, a ...any) {
	log.Println(entry{
		Component:    l.componentName,
		InvocationID: mycontext.InvocationID(ctx),
		Severity:     string(severity),
		Message:      l.componentName + ":" + fmt.Sprintf(format, a...),
	}.String())
}

type entry struct {
	Component    string `json:"component,omitempty"`
	InvocationID string `json:"invocationId,omitempty"`
	Severity     string `json:"severity,omitempty"`
	Message      string `json:"message"`
}

func (e entry) String() string {
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("error marshalling log record: %v", err)
	}

	return string(out)
}
