package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/mrled/suns/numcheck/internal/logger"
	"github.com/mrled/suns/numcheck/internal/metrics"
	"github.com/mrled/suns/numcheck/internal/model"
	"github.com/mrled/suns/numcheck/internal/repository"
	"github.com/mrled/suns/numcheck/internal/repository/dynamorepo"
	"github.com/mrled/suns/numcheck/internal/repository/memrepo"
	"github.com/mrled/suns/numcheck/internal/service/check"
)

// Handler holds the dependencies for the httpapi Lambda handler
type Handler struct {
	repo    model.CheckRepository
	metrics *metrics.Metrics
	log     *slog.Logger
}

// AbsRequest is the JSON payload for /v1/abs
type AbsRequest struct {
	N *int64 `json:"n"`
}

// PalindromeRequest is the JSON payload for /v1/palindrome
type PalindromeRequest struct {
	X *int64 `json:"x"`
}

// AssertRequest is the JSON payload for /v1/assert.
// A and B must be JSON scalars: numbers, strings, booleans or null.
// Integers compare as int64, other numbers as float64.
type AssertRequest struct {
	Name string          `json:"name"`
	A    json.RawMessage `json:"a"`
	B    json.RawMessage `json:"b"`
}

// AbsResponse is the JSON response for /v1/abs
type AbsResponse struct {
	Result int64 `json:"result"`
}

// PalindromeResponse is the JSON response for /v1/palindrome
type PalindromeResponse struct {
	Result bool `json:"result"`
}

// AssertResponse is the JSON response for /v1/assert
type AssertResponse struct {
	Passed bool   `json:"passed"`
	Line   string `json:"line"`
}

// RecordResponse is one entry of the /v1/history response
type RecordResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	Passed    bool   `json:"passed"`
	CheckTime string `json:"checkTime"`
}

// HistoryResponse is the JSON response for /v1/history
type HistoryResponse struct {
	Records []RecordResponse `json:"records"`
	Count   int              `json:"count"`
}

// NewHandler creates a new httpapi handler configured from the environment.
// Records go to DYNAMODB_TABLE when it is set, otherwise they are kept in memory
// for the lifetime of the Lambda container.
func NewHandler() (*Handler, error) {
	log := logger.NewDefaultLogger()
	log = logger.WithExecutable(log, "httpapi")
	logger.SetDefault(log)

	ctx := context.Background()

	dynamoTable := os.Getenv("DYNAMODB_TABLE")
	if dynamoTable == "" {
		log.Warn("DYNAMODB_TABLE is not set, check records will not outlive this container")
		return NewHandlerWithRepository(memrepo.NewMemoryRepository(), metrics.NewMetrics(), log), nil
	}
	log.Info("Using DynamoDB table", slog.String("table", dynamoTable))

	// Optional endpoint override for local development or testing
	dynamoEndpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if dynamoEndpoint != "" {
		log.Info("Using custom DynamoDB endpoint", slog.String("endpoint", dynamoEndpoint))
	} else if os.Getenv("AWS_REGION") == "" {
		// When not using a custom endpoint, AWS_REGION is required
		return nil, fmt.Errorf("AWS_REGION environment variable is required when DYNAMODB_ENDPOINT is not set")
	}

	client, err := repository.NewDynamoClient(ctx, dynamoEndpoint)
	if err != nil {
		log.Error("Failed to create DynamoDB client", slog.String("error", err.Error()))
		return nil, err
	}

	repo := dynamorepo.NewDynamoRepository(client, dynamoTable)
	log.Info("DynamoDB repository initialized", slog.String("table", dynamoTable))

	return NewHandlerWithRepository(repo, metrics.NewMetrics(), log), nil
}

// NewHandlerWithRepository creates a handler around an existing repository
func NewHandlerWithRepository(repo model.CheckRepository, m *metrics.Metrics, log *slog.Logger) *Handler {
	return &Handler{
		repo:    repo,
		metrics: m,
		log:     log,
	}
}

// Handle processes API Gateway HTTP requests
func (h *Handler) Handle(ctx context.Context, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestLogger := logger.WithLambda(h.log,
		os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
		os.Getenv("AWS_LAMBDA_FUNCTION_VERSION"),
		request.RequestContext.RequestID)

	requestLogger.Info("Incoming request",
		slog.String("method", request.RequestContext.HTTP.Method),
		slog.String("path", request.RequestContext.HTTP.Path),
		slog.String("raw_path", request.RawPath))

	// For API Gateway v2, the path is in RequestContext.HTTP.Path
	path := request.RequestContext.HTTP.Path
	if path == "" {
		path = request.RawPath
	}
	path = strings.TrimPrefix(path, "/api")

	var route func(context.Context, *slog.Logger, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)
	method := "POST"
	switch path {
	case "/v1/abs":
		route = h.handleAbs
	case "/v1/palindrome":
		route = h.handlePalindrome
	case "/v1/assert":
		route = h.handleAssert
	case "/v1/history":
		route = h.handleHistory
		method = "GET"
	default:
		requestLogger.Warn("Path not matched", slog.String("path", path))
		return errorResponseV2(404, fmt.Sprintf("Unknown endpoint: %s", path))
	}

	if httpMethod := request.RequestContext.HTTP.Method; httpMethod != method {
		requestLogger.Warn("Method validation failed", slog.String("received_method", httpMethod))
		return errorResponseV2(405, fmt.Sprintf("Method not allowed. Only %s is supported for this endpoint (received: %s)", method, httpMethod))
	}

	return route(ctx, requestLogger, request)
}

func (h *Handler) newChecker(out *bytes.Buffer, log *slog.Logger) *check.Checker {
	return check.NewChecker(out,
		check.WithRepository(h.repo),
		check.WithLogger(log),
		check.WithMetrics(h.metrics))
}

func (h *Handler) handleAbs(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var req AbsRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponseV2(400, fmt.Sprintf("Invalid request body: %v", err))
	}
	if req.N == nil {
		return errorResponseV2(400, "n field is required")
	}

	result, err := h.newChecker(&bytes.Buffer{}, log).Abs(ctx, *req.N)
	if err != nil {
		log.Error("Failed to record check", slog.String("error", err.Error()))
		return errorResponseV2(500, "failed to record check")
	}

	return jsonResponseV2(log, AbsResponse{Result: result})
}

func (h *Handler) handlePalindrome(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var req PalindromeRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponseV2(400, fmt.Sprintf("Invalid request body: %v", err))
	}
	if req.X == nil {
		return errorResponseV2(400, "x field is required")
	}

	result, err := h.newChecker(&bytes.Buffer{}, log).Palindrome(ctx, *req.X)
	if err != nil {
		log.Error("Failed to record check", slog.String("error", err.Error()))
		return errorResponseV2(500, "failed to record check")
	}

	return jsonResponseV2(log, PalindromeResponse{Result: result})
}

// decodeScalar decodes a JSON scalar. Arrays and objects are rejected
// because their decoded forms cannot be compared with ==.
// Integral numbers become int64 so they print in plain decimal and compare
// exactly; other numbers become float64.
func decodeScalar(field string, raw json.RawMessage) (any, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%s field is required", field)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid %s value: %v", field, err)
	}

	switch n := v.(type) {
	case nil, bool, string:
		return v, nil
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %v", field, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%s must be a number, string, boolean or null", field)
	}
}

func (h *Handler) handleAssert(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	var req AssertRequest
	if err := json.Unmarshal([]byte(request.Body), &req); err != nil {
		return errorResponseV2(400, fmt.Sprintf("Invalid request body: %v", err))
	}
	if req.Name == "" {
		return errorResponseV2(400, "name field is required")
	}

	a, err := decodeScalar("a", req.A)
	if err != nil {
		return errorResponseV2(400, err.Error())
	}
	b, err := decodeScalar("b", req.B)
	if err != nil {
		return errorResponseV2(400, err.Error())
	}

	var out bytes.Buffer
	result, err := check.Equal(ctx, h.newChecker(&out, log), req.Name, a, b)
	if err != nil {
		log.Error("Failed to record check", slog.String("error", err.Error()))
		return errorResponseV2(500, "failed to record check")
	}

	return jsonResponseV2(log, AssertResponse{Passed: result.Passed, Line: result.Line()})
}

func (h *Handler) handleHistory(ctx context.Context, log *slog.Logger, request events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	filter := model.RecordFilter{}
	if k := request.QueryStringParameters["kind"]; k != "" {
		kind, err := model.ParseCheckKind(k)
		if err != nil {
			return errorResponseV2(400, err.Error())
		}
		filter.Kinds = []model.CheckKind{kind}
	}
	if name := request.QueryStringParameters["name"]; name != "" {
		filter.Names = []string{name}
	}
	outcome, err := model.ParseOutcome(request.QueryStringParameters["outcome"])
	if err != nil {
		return errorResponseV2(400, err.Error())
	}
	filter.Outcome = outcome

	records, err := h.repo.List(ctx)
	if err != nil {
		log.Error("Failed to list records", slog.String("error", err.Error()))
		return errorResponseV2(500, "failed to list records")
	}

	records = model.FilterRecords(records, filter)
	model.SortRecords(records, string(model.SortByTime))

	response := HistoryResponse{Records: make([]RecordResponse, 0, len(records)), Count: len(records)}
	for _, r := range records {
		response.Records = append(response.Records, RecordResponse{
			ID:        r.ID,
			Kind:      string(r.Kind),
			Name:      r.Name,
			Input:     r.Input,
			Output:    r.Output,
			Passed:    r.Passed,
			CheckTime: r.CheckTime.UTC().Format("2006-01-02T15:04:05.000000000Z07:00"),
		})
	}

	return jsonResponseV2(log, response)
}

func jsonResponseV2(log *slog.Logger, v any) (events.APIGatewayV2HTTPResponse, error) {
	responseBody, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to marshal response", slog.String("error", err.Error()))
		return errorResponseV2(500, "failed to generate response")
	}

	return events.APIGatewayV2HTTPResponse{
		StatusCode: 200,
		Body:       string(responseBody),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

// errorResponseV2 creates a standardized error response for API Gateway v2
func errorResponseV2(statusCode int, message string) (events.APIGatewayV2HTTPResponse, error) {
	errorBody := map[string]string{
		"error": message,
	}
	body, _ := json.Marshal(errorBody)

	return events.APIGatewayV2HTTPResponse{
		StatusCode: statusCode,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}
