package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 CGO_ENABLED=0 go build -o bootstrap ./cmd/lambda-http

import (
	"context"
	"net/http"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"workwise-backend/internal/bootstrap"
	"workwise-backend/internal/shared/config"
	"workwise-backend/internal/shared/telemetry"
)

var (
	initOnce  sync.Once
	initErr   error
	ginLambda *ginadapter.GinLambdaV2
)

func initApp() {
	cfg := config.Load()
	// Lambda has no file system worth persisting to.
	if cfg.StateStore == "file" {
		cfg.StateStore = "postgres"
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		initErr = err
		return
	}
	ginLambda = ginadapter.NewV2(app.Router)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	initOnce.Do(initApp)
	if initErr != nil {
		telemetry.Error("lambda.bootstrap_failed", map[string]any{"error": initErr.Error()})
		return errorResponse("internal", "bootstrap failed"), initErr
	}
	return ginLambda.ProxyWithContext(ctx, req)
}

func errorResponse(code, message string) events.APIGatewayV2HTTPResponse {
	return events.APIGatewayV2HTTPResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error":{"code":"` + code + `","message":"` + message + `"}}`,
		Headers:    map[string]string{"Content-Type": "application/json"},
	}
}

func main() {
	lambda.Start(handler)
}
