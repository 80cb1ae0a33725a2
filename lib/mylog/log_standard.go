package mylog

import (
	"context"
	"fmt"
	"os"

	"github.com/shopfront/checkoutlambda/lib/mycontext"
)

func init() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		New = newStandardLogger
	}
}

type standardLogger struct {
	componentName string
}

func newStandardLogger(componentName string) Logger {
	return standardLogger{
		componentName: componentName,
	}
}

func (l standardLogger) Log(ctx context.Context, severity Severity, format string, a ...any) {
	fmt.Fprintf(os.Stderr, "\n%s - %s - %s - %s\n", l.componentName, mycontext.InvocationID(ctx), string(severity), fmt.Sprintf(format, a...))
}
