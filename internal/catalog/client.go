// Package catalog is a typed HTTP client for the product catalog backend.
// It speaks the backend's JSON dialect and translates transport and status
// failures into application errors, so callers never see raw HTTP details.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gungun-1908/InsightCart/internal/domain"
	apperrors "github.com/gungun-1908/InsightCart/pkg/errors"
	"github.com/gungun-1908/InsightCart/pkg/httpclient"
	"github.com/gungun-1908/InsightCart/pkg/tracing"
)

// Backend defines the catalog operations the storefront depends on.
type Backend interface {
	Register(ctx context.Context, fields map[string]string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	MostBought(ctx context.Context) ([]domain.Product, error)
	Recommendations(ctx context.Context, email string) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error
	SaveTransaction(ctx context.Context, tx domain.Transaction) (domain.CheckoutResult, error)
}

// Client implements Backend against a catalog service base URL.
type Client struct {
	http    *httpclient.Client
	baseURL string
	tracer  trace.Tracer
}

// NewClient creates a catalog client. baseURL must not have a trailing slash.
func NewClient(httpClient *httpclient.Client, baseURL string) *Client {
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tracing.Tracer("catalog"),
	}
}

// errorPayload is the backend's error envelope.
type errorPayload struct {
	Error string `json:"error"`
}

// messagePayload is the backend's success envelope for write operations.
type messagePayload struct {
	Message string `json:"message"`
}

// Register creates a user account on the backend and returns its
// confirmation message. The field set is forwarded as-is; the backend owns
// validation of the registration schema.
func (c *Client) Register(ctx context.Context, fields map[string]string) (string, error) {
	ctx, span := c.startSpan(ctx, "Register", http.MethodPost, "/register")
	defer span.End()

	var payload messagePayload
	if err := c.postJSON(ctx, "/register", fields, &payload); err != nil {
		return "", c.recordErr(span, "register", err)
	}
	return payload.Message, nil
}

// Login authenticates a user and returns the backend's confirmation message.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	ctx, span := c.startSpan(ctx, "Login", http.MethodPost, "/login")
	defer span.End()

	body := map[string]string{"email": email, "password": password}

	var payload messagePayload
	if err := c.postJSON(ctx, "/login", body, &payload); err != nil {
		return "", c.recordErr(span, "login", err)
	}
	return payload.Message, nil
}

// MostBought returns the backend's best-selling products, most purchased
// first. An absent or empty list is returned as nil.
func (c *Client) MostBought(ctx context.Context) ([]domain.Product, error) {
	ctx, span := c.startSpan(ctx, "MostBought", http.MethodGet, "/most_bought")
	defer span.End()

	var payload struct {
		MostBoughtProducts []domain.Product `json:"most_bought_products"`
	}
	if err := c.getJSON(ctx, "/most_bought", &payload); err != nil {
		return nil, c.recordErr(span, "most_bought", err)
	}
	return payload.MostBoughtProducts, nil
}

// Recommendations returns products recommended for the given user email.
// A user with no recommendations yields nil, not an error.
func (c *Client) Recommendations(ctx context.Context, email string) ([]domain.Product, error) {
	ctx, span := c.startSpan(ctx, "Recommendations", http.MethodGet, "/recommendations/{email}")
	defer span.End()

	path := "/recommendations/" + url.PathEscape(email)

	var payload struct {
		RecommendedProducts []domain.Product `json:"recommended_products"`
	}
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, c.recordErr(span, "recommendations", err)
	}
	return payload.RecommendedProducts, nil
}

// Search returns products whose category matches the query. No matches
// yields nil.
func (c *Client) Search(ctx context.Context, query string) ([]domain.Product, error) {
	ctx, span := c.startSpan(ctx, "Search", http.MethodGet, "/search")
	defer span.End()

	path := "/search?query=" + url.QueryEscape(query)

	var payload struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, c.recordErr(span, "search", err)
	}
	return payload.Products, nil
}

// SaveProducts uploads the storefront's showcase products so the backend
// catalog stays in sync with what the page displays.
func (c *Client) SaveProducts(ctx context.Context, products []domain.Product) error {
	ctx, span := c.startSpan(ctx, "SaveProducts", http.MethodPost, "/save_products")
	defer span.End()

	var payload messagePayload
	if err := c.postJSON(ctx, "/save_products", products, &payload); err != nil {
		return c.recordErr(span, "save_products", err)
	}
	return nil
}

// SaveTransaction records a completed checkout and returns the backend's
// confirmation message and transaction ID.
func (c *Client) SaveTransaction(ctx context.Context, tx domain.Transaction) (domain.CheckoutResult, error) {
	ctx, span := c.startSpan(ctx, "SaveTransaction", http.MethodPost, "/save_transaction")
	defer span.End()

	var payload struct {
		Message       string `json:"message"`
		TransactionID string `json:"transaction_id"`
	}
	if err := c.postJSON(ctx, "/save_transaction", tx, &payload); err != nil {
		return domain.CheckoutResult{}, c.recordErr(span, "save_transaction", err)
	}
	return domain.CheckoutResult{
		Message:       payload.Message,
		TransactionID: payload.TransactionID,
	}, nil
}

// ---------------------------------------------------------------------------
// Transport helpers
// ---------------------------------------------------------------------------

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	op := operationFromPath(path)

	resp, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		observeRequest(op, "transport_error")
		return apperrors.BackendUnavailable(op, err)
	}
	defer resp.Body.Close()

	return c.decodeResponse(op, resp, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	op := operationFromPath(path)

	resp, err := c.http.PostJSON(ctx, c.baseURL+path, body)
	if err != nil {
		observeRequest(op, "transport_error")
		return apperrors.BackendUnavailable(op, err)
	}
	defer resp.Body.Close()

	return c.decodeResponse(op, resp, out)
}

func (c *Client) decodeResponse(op string, resp *http.Response, out any) error {
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		observeRequest(op, "rejected")

		var errPayload errorPayload
		// Best effort: an undecodable error body still produces a useful error.
		_ = json.NewDecoder(resp.Body).Decode(&errPayload)
		return apperrors.BackendRejected(op, resp.StatusCode, errPayload.Error)
	}

	observeRequest(op, "ok")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.BackendUnavailable(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) startSpan(ctx context.Context, name, method, route string) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, "catalog."+name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("http.route", route),
		),
	)
}

func (c *Client) recordErr(span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, op+" failed")
	return err
}

// operationFromPath maps a request path to a stable metric/error label.
func operationFromPath(path string) string {
	op := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(op, "/?"); i >= 0 {
		op = op[:i]
	}
	return op
}
